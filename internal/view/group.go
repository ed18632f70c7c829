package view

// MaxChildren is the most direct children a container may hold.
// Hosts built on stack-style layout engines reject larger containers.
const MaxChildren = 10

// Group returns children unchanged when it fits within MaxChildren.
// Longer lists are folded into Group nodes of at most MaxChildren each,
// repeating until the top level fits. Order is preserved.
func Group(children []Node) []Node {
	if len(children) <= MaxChildren {
		return children
	}

	var groups []Node
	for start := 0; start < len(children); start += MaxChildren {
		end := start + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		chunk := make([]Node, end-start)
		copy(chunk, children[start:end])
		groups = append(groups, Node{Kind: KindGroup, Children: chunk})
	}
	return Group(groups)
}
