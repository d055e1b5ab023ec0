// Package outline defines the canonical document tree shared by the
// markdown and mind-map package codecs.
package outline

// Node is one topic in an outline tree. Children keep document order
// and are owned exclusively by their parent. Nodes are built append-only
// during parsing and discarded after rendering or serialization.
type Node struct {
	Title    string
	Note     string
	Children []*Node
}

// AddChild appends a child node and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// AppendNote accumulates a line of note text, newline-joined.
func (n *Node) AppendNote(line string) {
	if n.Note == "" {
		n.Note = line
		return
	}
	n.Note += "\n" + line
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the node and all descendants depth-first in document
// order. It stops early if fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree, including n itself.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) bool {
		total++
		return true
	})
	return total
}
