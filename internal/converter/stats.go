package converter

import (
	"strings"

	"mdmind/internal/markdown"
)

// DocumentStats summarizes the heading structure of a markdown
// document, including how many level-2 headings a restructuring pass
// would produce.
type DocumentStats struct {
	// TotalLines is the total number of lines in the document.
	TotalLines int `json:"total_lines"`
	// H1Count is the number of level-1 headings.
	H1Count int `json:"h1_count"`
	// H2Count is the number of level-2 headings.
	H2Count int `json:"h2_count"`
	// H3Count is the number of level-3 headings.
	H3Count int `json:"h3_count"`
	// ConvertedH2Count is the level-2 heading count after a
	// restructuring pass: one synthesized per level-3 heading.
	ConvertedH2Count int `json:"converted_h2_count"`
}

// Stats computes document statistics from markdown text.
func Stats(text string) DocumentStats {
	lines := strings.Split(text, "\n")
	stats := DocumentStats{TotalLines: len(lines)}

	for _, h := range markdown.ScanHeadings(lines) {
		switch h.Level {
		case 1:
			stats.H1Count++
		case 2:
			stats.H2Count++
		case 3:
			stats.H3Count++
		}
	}
	stats.ConvertedH2Count = stats.H2Count + stats.H3Count
	return stats
}
