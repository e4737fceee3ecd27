package ecs

import "sort"

// depNode is one entry a dependency graph is built over — a stage, a
// system, or anything else the scheduler needs to order by label.
type depNode struct {
	name     string
	labels   []Label
	ordering Ordering
}

// buildDependencyGraph follows the construction recipe: index every node by
// the labels it carries (a BitSet of node indices per label, one bit per
// node), then for each node's ordering.after/before, add an edge to every
// node sharing the referenced label. An edge i -> j means "node j must run
// before node i".
func buildDependencyGraph(nodes []depNode) (map[int]map[int]map[Label]struct{}, error) {
	labelIndex := make(map[LabelID]*BitSet)
	for i, n := range nodes {
		for _, l := range n.labels {
			bits, ok := labelIndex[l.ID]
			if !ok {
				bits = NewBitSet(len(nodes))
				labelIndex[l.ID] = bits
			}
			bits.Insert(i)
		}
	}

	graph := make(map[int]map[int]map[Label]struct{}, len(nodes))
	for i := range nodes {
		graph[i] = make(map[int]map[Label]struct{})
	}
	addEdge := func(from, to int, l Label) {
		if graph[from][to] == nil {
			graph[from][to] = make(map[Label]struct{})
		}
		graph[from][to][l] = struct{}{}
	}

	for i, n := range nodes {
		for _, l := range n.ordering.After {
			referents, ok := labelIndex[l.ID]
			if !ok {
				return nil, &UnknownLabelError{Label: l}
			}
			for _, j := range referents.Ones() {
				addEdge(i, j, l)
			}
		}
		for _, l := range n.ordering.Before {
			referents, ok := labelIndex[l.ID]
			if !ok {
				return nil, &UnknownLabelError{Label: l}
			}
			for _, k := range referents.Ones() {
				addEdge(k, i, l)
			}
		}
	}
	return graph, nil
}

// topologicalOrder sorts nodes by their dependency graph, depth-first with a
// currently-on-path stack for cycle detection. Unvisited nodes are picked up
// in ascending index order, which is what gives nodes with no recorded
// dependencies their input order in the output (P2).
func topologicalOrder(bucket string, nodes []depNode) ([]int, error) {
	graph, err := buildDependencyGraph(nodes)
	if err != nil {
		return nil, err
	}

	n := len(nodes)
	visited := make([]bool, n)
	onPath := make([]bool, n)
	var pathStack []int
	order := make([]int, 0, n)

	var visit func(i int) error
	visit = func(i int) error {
		if onPath[i] {
			start := 0
			for k, v := range pathStack {
				if v == i {
					start = k
					break
				}
			}
			cycle := append([]int(nil), pathStack[start:]...)
			names := make([]string, len(cycle))
			for k, idx := range cycle {
				names[k] = nodes[idx].name
			}
			return &DependencyCycleError{Bucket: bucket, Cycle: cycle, Names: names}
		}
		if visited[i] {
			return nil
		}
		onPath[i] = true
		pathStack = append(pathStack, i)

		neighbors := make([]int, 0, len(graph[i]))
		for j := range graph[i] {
			neighbors = append(neighbors, j)
		}
		sort.Ints(neighbors)
		for _, j := range neighbors {
			if err := visit(j); err != nil {
				return err
			}
		}

		onPath[i] = false
		pathStack = pathStack[:len(pathStack)-1]
		visited[i] = true
		order = append(order, i)
		return nil
	}

	for i := 0; i < n; i++ {
		if !visited[i] {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}
