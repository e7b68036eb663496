package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) newDecryptCmd() *cobra.Command {
	var (
		input   inputFlags
		scores  bool
		top     int
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Break a Caesar cipher by dictionary scoring",
		Long: `Decrypt ciphertext without knowing the shift. Every shift from 0 to 25 is
tried and the one producing the most dictionary words wins; on a tie the
smaller shift is reported.

  shiftcipher decrypt --text "khoor zruog"
  shiftcipher decrypt --file message.txt --scores --top 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input.read(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("scores") {
				c.cfg.Output.IncludeScores = scores
			}
			if cmd.Flags().Changed("top") {
				c.cfg.Output.TopCandidates = top
			}

			application, err := c.newApp(cmd)
			if err != nil {
				return err
			}

			res, err := application.Decrypt(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("decryption failed: %w", err)
			}

			var plain strings.Builder
			fmt.Fprintf(&plain, "shift %d: %s\n", res.Shift, res.Plaintext)
			for _, cand := range res.Candidates {
				fmt.Fprintf(&plain, "  %2d  score %-3d %s\n", cand.Shift, cand.Score, cand.Plaintext)
			}
			return c.writeOutput(cmd, outFile, res, plain.String())
		},
	}

	input.register(cmd, "decrypt")
	cmd.Flags().BoolVar(&scores, "scores", false, "Include the best scoring candidates")
	cmd.Flags().IntVar(&top, "top", 5, "Number of candidates to include with --scores (0 for all)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
