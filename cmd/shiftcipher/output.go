package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NivBraz/shiftcipher/internal/config"
)

// inputFlags selects where a command reads its text from.
type inputFlags struct {
	text string
	file string
}

func (in *inputFlags) register(cmd *cobra.Command, verb string) {
	cmd.Flags().StringVarP(&in.text, "text", "t", "", "Text to "+verb)
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "File to "+verb)
}

// read returns --text, the contents of --file, or piped stdin, in that order.
func (in *inputFlags) read(cmd *cobra.Command) (string, error) {
	if in.text != "" {
		return in.text, nil
	}

	if in.file != "" {
		data, err := os.ReadFile(in.file)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", in.file, err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", errNoInput
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", errNoInput
	}
	return text, nil
}

var errNoInput = errors.New("no input text provided. Use --text, --file, or pipe to stdin")

// writeOutput renders v as JSON, or plain as text, to outFile or stdout.
func (c *cli) writeOutput(cmd *cobra.Command, outFile string, v any, plain string) error {
	var out []byte
	if c.cfg.Output.Format == config.OutputText {
		out = []byte(plain)
	} else {
		var err error
		if c.cfg.Output.PrettyPrint {
			out, err = json.MarshalIndent(v, "", "    ")
		} else {
			out, err = json.Marshal(v)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		out = append(out, '\n')
	}

	if outFile == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0600)
}
