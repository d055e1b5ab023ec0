package markdown

import (
	"strings"
	"testing"
)

func TestRestructure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "degenerate case stays unchanged",
			text: "## A\n### B\ntext\n## C\n### D\n",
			want: "## A\n### B\ntext\n## C\n### D\n",
		},
		{
			name: "section label repeats per level-3",
			text: "## A\n### B\n### C",
			want: "## A\n### B\n## A\n### C",
		},
		{
			name: "no preceding level-2 uses default label",
			text: "# T\n### orphan",
			want: "# T\n## " + DefaultSectionLabel + "\n### orphan",
		},
		{
			name: "level-2 without any level-3 is dropped",
			text: "## lonely\ntext",
			want: "text",
		},
		{
			name: "other lines pass through untouched",
			text: "# T\nplain\n- bullet\n#### deep",
			want: "# T\nplain\n- bullet\n#### deep",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Restructure(tt.text)
			if got != tt.want {
				t.Errorf("Restructure() =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestRestructure_Idempotent(t *testing.T) {
	inputs := []string{
		"## A\n### B\ntext\n### C\n## D\n### E",
		"# T\n### orphan\nbody",
		"## A\nno subsections here",
	}
	for _, input := range inputs {
		once := Restructure(input)
		twice := Restructure(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestScanHeadings(t *testing.T) {
	lines := strings.Split("# one\ntext\n### three\n  ## indented", "\n")

	headings := ScanHeadings(lines)

	if len(headings) != 3 {
		t.Fatalf("found %d headings, want 3", len(headings))
	}
	if headings[0].Level != 1 || headings[0].Title != "one" || headings[0].Line != 0 {
		t.Errorf("unexpected first heading: %+v", headings[0])
	}
	if headings[1].Level != 3 || headings[1].Line != 2 {
		t.Errorf("unexpected second heading: %+v", headings[1])
	}
	// Leading whitespace is trimmed before matching.
	if headings[2].Level != 2 || headings[2].Title != "indented" {
		t.Errorf("unexpected third heading: %+v", headings[2])
	}
}
