package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NivBraz/shiftcipher/internal/models"
	"github.com/NivBraz/shiftcipher/pkg/caesar"
)

func (c *cli) newEncryptCmd() *cobra.Command {
	var (
		input   inputFlags
		shift   string
		rotate  []string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a Caesar shift",
		Long: `Encrypt text by shifting every letter. Digits, whitespace and punctuation
are left alone, and letters keep their case.

  shiftcipher encrypt --text "Attack at Dawn!" --shift 5
  shiftcipher encrypt --file secret.txt --shift 3 --rotate 10 --rotate 17

Each --rotate re-encrypts the original text with another shift.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input.read(cmd)
			if err != nil {
				return err
			}

			n, err := caesar.ParseShift(shift)
			if err != nil {
				return err
			}
			extra := make([]int, 0, len(rotate))
			for _, r := range rotate {
				s, err := caesar.ParseShift(r)
				if err != nil {
					return err
				}
				extra = append(extra, s)
			}

			application, err := c.newApp(cmd)
			if err != nil {
				return err
			}

			res := application.Encrypt(text, n)
			defer application.CloseSession(res.Session)

			results := []models.EncryptResult{res}
			for _, s := range extra {
				changed, err := application.ChangeShift(res.Session, s)
				if err != nil {
					return err
				}
				results = append(results, changed)
			}

			var plain strings.Builder
			for _, r := range results {
				fmt.Fprintf(&plain, "shift %d: %s\n", r.Shift, r.Ciphertext)
			}
			return c.writeOutput(cmd, outFile, results, plain.String())
		},
	}

	input.register(cmd, "encrypt")
	cmd.Flags().StringVarP(&shift, "shift", "s", "", "Number of places to shift each letter")
	cmd.Flags().StringSliceVarP(&rotate, "rotate", "r", nil, "Re-encrypt the original text with these shifts")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("shift")
	return cmd
}
