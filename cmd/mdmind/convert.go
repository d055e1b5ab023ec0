package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mdmind/internal/converter"
	"mdmind/internal/markdown"
)

var (
	md2xmindOutput string
	xmind2mdOutput string
	xmind2mdList   bool
	optimizeOutput string
)

var md2xmindCmd = &cobra.Command{
	Use:   "md2xmind [file.md]",
	Short: "Convert a Markdown file to a mind-map package",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		text, err := os.ReadFile(input)
		if err != nil {
			fatal("Error reading markdown file", err)
		}

		svc := converter.NewService()
		pkg, err := svc.MarkdownToPackage(context.Background(), string(text))
		if err != nil {
			fatal("Error generating package", err)
		}

		output := md2xmindOutput
		if output == "" {
			output = replaceSuffix(input, ".xmind")
		}
		if err := os.WriteFile(output, pkg, 0644); err != nil {
			fatal("Error writing package", err)
		}
		fmt.Printf("转换完成: %s -> %s\n", input, output)
	},
}

var xmind2mdCmd = &cobra.Command{
	Use:   "xmind2md [file.xmind]",
	Short: "Convert a mind-map package to Markdown",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		data, err := os.ReadFile(input)
		if err != nil {
			fatal("Error reading package file", err)
		}

		mode := markdown.ModeHeader
		suffix := ".md"
		if xmind2mdList {
			mode = markdown.ModeList
			suffix = "_list.md"
		}

		svc := converter.NewService()
		text, err := svc.PackageToMarkdown(context.Background(), data, mode)
		if err != nil {
			fatal("Error converting package", err)
		}

		output := xmind2mdOutput
		if output == "" {
			output = replaceSuffix(input, suffix)
		}
		if err := os.WriteFile(output, []byte(text), 0644); err != nil {
			fatal("Error writing markdown", err)
		}
		fmt.Printf("转换完成: %s -> %s\n", input, output)
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file.xmind]",
	Short: "Round-trip a package through the heading restructurer",
	Long: `Optimize reads a mind-map package, renders it to Markdown, promotes
level-3 headings to level-2 sections and packages the result again.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		data, err := os.ReadFile(input)
		if err != nil {
			fatal("Error reading package file", err)
		}

		svc := converter.NewService()
		pkg, err := svc.Optimize(context.Background(), data)
		if err != nil {
			fatal("Error optimizing package", err)
		}

		output := optimizeOutput
		if output == "" {
			output = replaceSuffix(input, "-optimized.xmind")
		}
		if err := os.WriteFile(output, pkg, 0644); err != nil {
			fatal("Error writing package", err)
		}
		fmt.Printf("转换完成: %s -> %s\n", input, output)
	},
}

// replaceSuffix swaps the file extension for the given suffix.
func replaceSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

func init() {
	rootCmd.AddCommand(md2xmindCmd)
	md2xmindCmd.Flags().StringVarP(&md2xmindOutput, "output", "o", "", "Output file path")

	rootCmd.AddCommand(xmind2mdCmd)
	xmind2mdCmd.Flags().StringVarP(&xmind2mdOutput, "output", "o", "", "Output file path")
	xmind2mdCmd.Flags().BoolVar(&xmind2mdList, "list", false, "Render nested bullets instead of headings")

	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "Output file path")
}
