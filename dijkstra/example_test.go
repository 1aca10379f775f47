package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/evacsim/dijkstra"
)

// ExampleShortestPathTree grows a tree from a sink and walks the parents of a
// far vertex back to it. On a symmetric network the walk is already in
// travel order.
func ExampleShortestPathTree() {
	// 0-1 (2), 1-3 (2), 0-2 (1), 2-3 (5); sink is 3.
	l := newArcList(4)
	l.addBoth(0, 1, 2)
	l.addBoth(1, 3, 2)
	l.addBoth(0, 2, 1)
	l.addBoth(2, 3, 5)

	tree, err := dijkstra.ShortestPathTree(l, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := []int{0}
	for u := 0; u != tree.Root; u = tree.Parent[u] {
		path = append(path, tree.Parent[u])
	}
	fmt.Printf("dist=%.0f path=%v\n", tree.Dist[0], path)
	// Output: dist=4 path=[0 1 3]
}
