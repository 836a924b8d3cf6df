package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/decode"
)

var askCmd = &cobra.Command{
	Use:   "ask [file]",
	Short: "Decode a single-turn Q&A response",
	Long: `Decodes a transcript-interrogation response (file argument or stdin).
Malformed responses come back as a displayable error result rather than a
failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	res := decode.DecodeInterrogation(raw)
	out := cmd.OutOrStdout()
	if res.Question != "" {
		fmt.Fprintf(out, "Q: %s\n", res.Question)
	}
	fmt.Fprintf(out, "A: %s\n", res.Answer)
	if res.NotInTranscript {
		fmt.Fprintln(out, "(not answered from the transcript)")
	}
	for _, s := range res.FollowUpSuggestions {
		fmt.Fprintf(out, "  ? %s\n", s)
	}
	return nil
}
