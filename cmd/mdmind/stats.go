package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdmind/internal/converter"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file.md]",
	Short: "Show heading statistics for a Markdown file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading markdown file", err)
		}

		stats := converter.Stats(string(text))

		if statsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(stats); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("总行数: %d\n", stats.TotalLines)
		fmt.Printf("一级标题数量: %d\n", stats.H1Count)
		fmt.Printf("二级标题数量: %d\n", stats.H2Count)
		fmt.Printf("三级标题数量: %d\n", stats.H3Count)
		fmt.Printf("转换后二级标题数量: %d\n", stats.ConvertedH2Count)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
}
