// Package markdown converts between markdown text and outline trees,
// and provides the heading restructuring transform.
package markdown

import (
	"regexp"
	"strings"

	"mdmind/internal/outline"
)

// DefaultRootTitle is used when a document has no level-1 heading.
const DefaultRootTitle = "Markdown 思维导图"

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletPattern  = regexp.MustCompile(`^( *)([-*+])\s+(.+)$`)
)

// Parse builds an outline tree from markdown text. It never fails:
// unrecognized input degrades to notes or leaf children of the nearest
// node, and a document without structure yields the default root alone.
//
// Depth is tracked with an explicit stack holding the chain from the
// root to the current insertion point, so each line is processed once.
func Parse(text string) *outline.Node {
	root := &outline.Node{Title: DefaultRootTitle}
	stack := []*outline.Node{root}
	sawRootTitle := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			title := strings.TrimSpace(m[2])

			// The first level-1 heading names the root itself.
			if level == 1 && !sawRootTitle {
				root.Title = title
				sawRootTitle = true
				stack = stack[:1]
				continue
			}

			// Later level-1 headings become direct children; levels
			// 2-6 land one level shallower than their marker count.
			depth := level - 1
			if depth < 1 {
				depth = 1
			}
			stack = insert(stack, depth, &outline.Node{Title: title})
			continue
		}

		if m := bulletPattern.FindStringSubmatch(raw); m != nil {
			// Two spaces of indentation per nesting level.
			depth := len(m[1])/2 + 1
			title := strings.TrimSpace(m[3])
			stack = insert(stack, depth, &outline.Node{Title: title})
			continue
		}

		// Plain text: note on the current node until it has children,
		// then a leaf child per line.
		top := stack[len(stack)-1]
		if top.IsLeaf() {
			top.AppendNote(line)
		} else {
			top.AddChild(&outline.Node{Title: line})
		}
	}

	return root
}

// insert pops the stack down to the target depth, attaches the node to
// the resulting top and pushes it. A stack shallower than the target
// depth attaches to the current top instead.
func insert(stack []*outline.Node, depth int, node *outline.Node) []*outline.Node {
	if depth < 1 {
		depth = 1
	}
	for len(stack) > depth {
		stack = stack[:len(stack)-1]
	}
	stack[len(stack)-1].AddChild(node)
	return append(stack, node)
}
