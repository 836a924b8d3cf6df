package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/decode"
	"scribe/internal/docbuild"
	"scribe/internal/render"
)

var (
	renderJSON     bool
	renderMarkdown bool
	renderWidth    int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Decode a raw response and render the document",
	Long: `Decodes a raw agent response (file argument or stdin) into the canonical
document, tokenizes the markdown into blocks with the next-steps table
injected, and prints the styled result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "emit the block sequence as JSON")
	renderCmd.Flags().BoolVar(&renderMarkdown, "markdown", false, "print the canonical markdown via glamour instead of blocks")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "wrap width (0 = config value)")
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	res := decode.DecodeWithResult(raw)
	doc := res.Document

	width := renderWidth
	if width == 0 {
		width = cfg.Render.Width
	}

	if renderMarkdown {
		fmt.Fprint(cmd.OutOrStdout(), render.Markdown(doc.Markdown, width))
		return nil
	}

	table := docbuild.RenderActionItemTable(doc.ActionItems, cfg.Render.StatusGlyphs)
	blocks := cfg.NewBuilder().Build(doc.Markdown, &docbuild.Replacement{
		Title: cfg.Render.OverrideSection,
		Block: table,
	})

	if renderJSON {
		data, err := docbuild.EncodeBlocks(blocks)
		if err != nil {
			return fmt.Errorf("encode blocks: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), render.New(width).Render(blocks))
	for _, q := range doc.SuggestedQuestions {
		fmt.Fprintf(cmd.OutOrStdout(), "  ? %s\n", q)
	}
	return nil
}
