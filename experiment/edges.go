package experiment

import (
	"sort"

	"github.com/katalvlaran/glyphos/mjlog"
)

// NearestEdges returns the undirected k-nearest-neighbour edge list of x.
// Each point links to its k closest other points (ties broken by index);
// edges are emitted once as (i, j) with i < j, sorted lexicographically.
// Points of mismatched dimension are never linked.
// Complexity: O(N² log N).
func NearestEdges(x [][]float64, k int) [][2]int {
	if k <= 0 || len(x) < 2 {
		return nil
	}

	type cand struct {
		j int
		d float64
	}
	seen := make(map[[2]int]struct{})
	for i := range x {
		cands := make([]cand, 0, len(x)-1)
		for j := range x {
			if j == i {
				continue
			}
			d, err := mjlog.Distance(x[i], x[j])
			if err != nil {
				continue
			}
			cands = append(cands, cand{j: j, d: d})
		}
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].d != cands[b].d {
				return cands[a].d < cands[b].d
			}
			return cands[a].j < cands[b].j
		})
		for n := 0; n < k && n < len(cands); n++ {
			e := [2]int{i, cands[n].j}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			seen[e] = struct{}{}
		}
	}

	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}
		return edges[a][1] < edges[b][1]
	})

	return edges
}
