package markdown

import (
	"strings"

	"mdmind/internal/outline"
)

// FallbackTitle replaces empty topic titles in rendered output.
const FallbackTitle = "未命名主题"

// Mode selects the rendering style.
type Mode string

const (
	// ModeHeader renders one heading per level, saturating at six.
	ModeHeader Mode = "header"
	// ModeList renders the root as a level-1 heading and everything
	// below as nested bullets.
	ModeList Mode = "list"
)

// ParseMode maps a user-supplied mode name onto a Mode, defaulting to
// ModeHeader for anything unrecognized.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeList {
		return ModeList
	}
	return ModeHeader
}

// Render converts an outline tree to markdown text. It is total: any
// tree renders, empty titles fall back to FallbackTitle.
func Render(root *outline.Node, mode Mode) string {
	return RenderSheets([]*outline.Node{root}, mode)
}

// RenderSheets renders one tree per sheet and concatenates the results,
// separated by a blank line.
func RenderSheets(roots []*outline.Node, mode Mode) string {
	parts := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == nil {
			continue
		}
		var lines []string
		if mode == ModeList {
			renderList(root, 0, &lines)
		} else {
			renderHeader(root, 1, &lines)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n")
}

// renderHeader emits a node at the given heading level. Levels beyond
// six saturate into indented bullets.
func renderHeader(n *outline.Node, level int, lines *[]string) {
	title := n.Title
	if title == "" {
		title = FallbackTitle
	}

	if level <= 6 {
		*lines = append(*lines, strings.Repeat("#", level)+" "+title)
	} else {
		*lines = append(*lines, strings.Repeat("  ", level-7)+"- "+title)
	}

	if note := strings.TrimSpace(n.Note); note != "" {
		*lines = append(*lines, "")
		for _, noteLine := range strings.Split(note, "\n") {
			*lines = append(*lines, "> "+noteLine)
		}
		*lines = append(*lines, "")
	}

	for _, child := range n.Children {
		renderHeader(child, level+1, lines)
	}

	// Blank line between top-level sections.
	if level <= 3 {
		*lines = append(*lines, "")
	}
}

// renderList emits the root as a heading and descendants as bullets
// indented two spaces per level, notes as matching blockquotes.
func renderList(n *outline.Node, depth int, lines *[]string) {
	title := n.Title
	if title == "" {
		title = FallbackTitle
	}

	if depth == 0 {
		*lines = append(*lines, "# "+title, "")
	} else {
		*lines = append(*lines, strings.Repeat("  ", depth-1)+"- "+title)
	}

	if note := strings.TrimSpace(n.Note); note != "" {
		indent := strings.Repeat("  ", depth)
		for _, noteLine := range strings.Split(note, "\n") {
			*lines = append(*lines, indent+"> "+noteLine)
		}
	}

	for _, child := range n.Children {
		renderList(child, depth+1, lines)
	}
}
