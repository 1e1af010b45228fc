package internal

// ReconstructPath walks parent links back from goal to start and returns the
// path in start-to-goal order. The walk gives up after limit links, so a
// corrupted parent chain can never loop; ok is false in that case or when
// the chain ends before reaching start.
func ReconstructPath[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	goal NodeType,
	start NodeType,
	limit int,
) (path []NodeType, ok bool) {
	current := goal
	path = []NodeType{current}
	for current != start {
		if len(path) > limit {
			return nil, false
		}
		previousNode, exists := parentOf(current)
		if !exists {
			return nil, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
