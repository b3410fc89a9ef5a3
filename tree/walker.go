package tree

// Walker is a function called for each node of a tree. The depth of the root
// is 0 and i is the position of the node among its siblings.
type Walker func(depth, i int, n *Node) error

// Walk performs a depth first search of the tree starting with the root,
// calling the Walker for each node. If the Walker returns an error, processing
// stops immediately and the error is returned.
func (w Walker) Walk(t *Tree) error {
	type entry struct {
		depth int
		i     int
		node  *Node
	}

	openStack := make([]entry, 0, 10)

	pushStack := func(depth int, n *Node) {
		for i := len(n.children) - 1; i >= 0; i-- {
			openStack = append(openStack, entry{depth, i, n.children[i]})
		}
	}

	popStack := func() entry {
		end := len(openStack) - 1
		e := openStack[end]
		openStack = openStack[:end]
		return e
	}

	openStack = append(openStack, entry{0, 0, t.root})
	for len(openStack) > 0 {
		e := popStack()
		if err := w(e.depth, e.i, e.node); err != nil {
			return err
		}
		pushStack(e.depth+1, e.node)
	}

	return nil
}
