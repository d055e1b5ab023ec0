package converter

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DocumentStats
	}{
		{
			name: "mixed headings",
			text: strings.Join([]string{
				"# Title",
				"## Section",
				"### Sub A",
				"### Sub B",
				"body",
				"#### ignored by the counters",
			}, "\n"),
			want: DocumentStats{
				TotalLines:       6,
				H1Count:          1,
				H2Count:          1,
				H3Count:          2,
				ConvertedH2Count: 3,
			},
		},
		{
			name: "no headings",
			text: "plain\ntext",
			want: DocumentStats{TotalLines: 2},
		},
		{
			name: "empty input still counts one line",
			text: "",
			want: DocumentStats{TotalLines: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stats(tt.text)
			if got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
