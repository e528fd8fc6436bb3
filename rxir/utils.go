package rxir

// ConnectedBlocks returns the set of blocks directly reachable from block
// by its terminator's successor edges, in source order. Return is
// currently the only terminator and has no successors, so this always
// returns nil; the traversal contract (RelatedBlocks) is written so that
// branches and jumps can be dropped in later without touching it.
func ConnectedBlocks(m *Module, block BlockId) []BlockId {
	return nil
}

// RelatedBlocks returns every block reachable from fn's entry, in the
// order a depth-first search from entry would visit them (visiting each
// block's successors in source order, emitting a block the first time it
// is visited). With only Return defined today, every block has no
// successors, so the result is always just the entry block — but the
// traversal itself is written generally, so it keeps working once
// branches exist.
func RelatedBlocks(m *Module, fn Function) []BlockId {
	visited := map[BlockId]bool{}
	var order []BlockId

	var visit func(id BlockId)
	visit = func(id BlockId) {
		if visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		for _, succ := range ConnectedBlocks(m, id) {
			visit(succ)
		}
	}

	visit(fn.Entry)
	return order
}
