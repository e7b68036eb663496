package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type wordCheck struct {
	Word  string `json:"word"`
	Known bool   `json:"known"`
}

func (c *cli) newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words WORD...",
		Short: "Check words against the configured dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := c.newApp(cmd)
			if err != nil {
				return err
			}

			wb := application.WordBank()
			checks := make([]wordCheck, 0, len(args))
			var plain strings.Builder
			for _, word := range args {
				known := wb.Contains(word)
				checks = append(checks, wordCheck{Word: word, Known: known})
				fmt.Fprintf(&plain, "%s\t%t\n", word, known)
			}
			return c.writeOutput(cmd, "", checks, plain.String())
		},
	}
}
