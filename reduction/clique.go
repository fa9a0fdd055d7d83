package reduction

// Clique is one k-clique contributing an s→c edge of Weight and a c→v
// edge to each of Members (dense vertex indices). Construct is agnostic
// to k: the same builder serves both the k=2 (edge) and k=3 (triangle)
// clique-weight tables.
type Clique struct {
	Members []int
	Weight  int64
}
