package cmd

import (
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trithemius-backend/crypto"
)

var ciphers = []string{"simple", "poly", "sblock", "enhanced"}

// newCipherCmd builds the encrypt or decrypt command; both share flags and
// differ only in the operation suffix.
func newCipherCmd(a *app, direction crypto.OperationType) *cobra.Command {
	var (
		cipher string
		key    string
		shift  int
	)

	cmd := &cobra.Command{
		Use:   string(direction) + " [text]",
		Short: fmt.Sprintf("%s text (reads stdin when no text is given)", direction),
		Example: fmt.Sprintf(`  trithemius %[1]s --cipher poly --key КЛЮЧ "ПРИВЕТ_МИР"
  echo "ПРИВЕТ_МИР" | trithemius %[1]s --cipher enhanced --key КЛЮЧ`, direction),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ciphers, cipher) {
				return fmt.Errorf("unknown cipher %q, expected one of %v", cipher, ciphers)
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			name := cipher + "_" + string(direction)
			result, err := a.registry.Execute(cmd.Context(), name, text, crypto.Params{Key: key, Shift: shift})
			if err != nil {
				return err
			}
			a.logger.Debug("cipher applied", "operation", name, "length", utf8.RuneCountInString(text))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&cipher, "cipher", "c", "poly", "cipher: simple, poly, sblock or enhanced")
	cmd.Flags().StringVarP(&key, "key", "k", "", "keyword (16 symbols for sblock)")
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "poly shift 1..31 (default from config)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newPipelineCmd(a *app) *cobra.Command {
	var (
		file    string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "pipeline [text]",
		Short: "Run a chain of operations described in a YAML file",
		Long: `pipeline runs the steps listed in a YAML file, in order:

  steps:
    - name: simple_encrypt
      key: МАМА
    - name: poly_encrypt
      key: ПЕРВЫЙ
      shift: 5

With --reverse the inverse operations run in reverse order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read pipeline %s: %w", file, err)
			}
			var p crypto.Pipeline
			if err := yaml.Unmarshal(data, &p); err != nil {
				return fmt.Errorf("parse pipeline %s: %w", file, err)
			}
			if len(p.Steps) == 0 {
				return fmt.Errorf("pipeline %s has no steps", file)
			}
			if reverse {
				if p, err = a.registry.Reverse(p); err != nil {
					return err
				}
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			result, err := a.registry.Run(cmd.Context(), p, text)
			if err != nil {
				return err
			}
			a.logger.Debug("pipeline applied", "steps", len(p.Steps), "reverse", reverse, "length", utf8.RuneCountInString(text))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML pipeline file")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "run the inverse pipeline")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
