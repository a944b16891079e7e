package workflow

// Graph is an allowed-edge table for a request kind's status machine.
// Each request kind declares its edges once and asks CanTransition
// before any status write; the conditional update in the repository is
// what makes the answer hold under concurrent callers.
type Graph[S comparable] struct {
	edges map[S][]S
}

// NewGraph builds a Graph from a from-state to reachable-states table.
func NewGraph[S comparable](edges map[S][]S) Graph[S] {
	copied := make(map[S][]S, len(edges))
	for from, tos := range edges {
		copied[from] = append([]S(nil), tos...)
	}
	return Graph[S]{edges: copied}
}

// CanTransition reports whether the edge from -> to is declared.
func (g Graph[S]) CanTransition(from, to S) bool {
	for _, next := range g.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state has no outgoing edges.
func (g Graph[S]) IsTerminal(s S) bool {
	return len(g.edges[s]) == 0
}
