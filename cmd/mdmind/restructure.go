package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mdmind/internal/converter"
)

var restructureOutput string

var restructureCmd = &cobra.Command{
	Use:   "restructure [file.md]",
	Short: "Promote level-3 headings to their own level-2 sections",
	Long: `Restructure rewrites a Markdown document so every level-3 heading is
preceded by a level-2 heading named after the section it belonged to.
Original level-2 headings are absorbed into the generated ones.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		text, err := os.ReadFile(input)
		if err != nil {
			fatal("Error reading markdown file", err)
		}

		svc := converter.NewService()
		out, err := svc.Restructure(context.Background(), string(text))
		if err != nil {
			fatal("Error restructuring markdown", err)
		}

		output := restructureOutput
		if output == "" {
			base := strings.TrimSuffix(input, filepath.Ext(input))
			output = base + "（转换版）.md"
		}
		if err := os.WriteFile(output, []byte(out), 0644); err != nil {
			fatal("Error writing markdown", err)
		}

		stats := converter.Stats(string(text))
		fmt.Println("转换完成！")
		fmt.Printf("总行数: %d\n", stats.TotalLines)
		fmt.Printf("一级标题数量: %d\n", stats.H1Count)
		fmt.Printf("原二级标题数量: %d\n", stats.H2Count)
		fmt.Printf("三级标题数量: %d\n", stats.H3Count)
		fmt.Printf("转换后二级标题数量: %d\n", stats.ConvertedH2Count)
		fmt.Printf("输出文件: %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(restructureCmd)
	restructureCmd.Flags().StringVarP(&restructureOutput, "output", "o", "", "Output file path")
}
