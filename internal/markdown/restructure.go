package markdown

import "strings"

// DefaultSectionLabel labels level-3 headings that have no level-2
// ancestor to take a section name from.
const DefaultSectionLabel = "未分类"

// Heading is one heading line found in a document.
type Heading struct {
	Line  int // zero-based line index
	Level int // 1..6
	Title string
}

// ScanHeadings indexes every heading line in the document once.
func ScanHeadings(lines []string) []Heading {
	var headings []Heading
	for i, line := range lines {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			headings = append(headings, Heading{
				Line:  i,
				Level: len(m[1]),
				Title: strings.TrimSpace(m[2]),
			})
		}
	}
	return headings
}

// Restructure promotes level-3 headings to their own level-2 sections:
// original level-2 heading lines are dropped, and each level-3 heading
// gains a synthesized level-2 heading carrying the title of the nearest
// preceding level-2 (DefaultSectionLabel when there is none). All other
// lines pass through unchanged. Applying the transform twice yields the
// same output as applying it once.
func Restructure(text string) string {
	lines := strings.Split(text, "\n")
	headings := ScanHeadings(lines)

	byLine := make(map[int]int, len(headings))
	for i, h := range headings {
		byLine[h.Line] = i
	}

	result := make([]string, 0, len(lines))
	for i, line := range lines {
		hi, ok := byLine[i]
		if !ok {
			result = append(result, line)
			continue
		}
		switch headings[hi].Level {
		case 2:
			// Replaced by the synthesized heading before each level-3.
		case 3:
			result = append(result, "## "+sectionLabel(headings, hi), line)
		default:
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// sectionLabel finds the nearest level-2 heading preceding headings[from].
func sectionLabel(headings []Heading, from int) string {
	for i := from - 1; i >= 0; i-- {
		if headings[i].Level == 2 {
			return headings[i].Title
		}
	}
	return DefaultSectionLabel
}
