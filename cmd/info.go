package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trithemius-backend/analysis"
	"trithemius-backend/models"
)

func newAlphabetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet [key]",
		Short: "Print the base alphabet and the alphabet permuted by a keyword",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base:  %s\n", a.system.Alphabet())
			if len(args) == 1 {
				fmt.Fprintf(out, "keyed: %s\n", a.system.CustomAlphabetString(args[0]))
			}
			return nil
		},
	}
}

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the registered operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tINVERSE\tDESCRIPTION")
			for _, op := range a.registry.List() {
				info := models.NewOperationInfo(op)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Type, info.Inverse, info.Description)
			}
			return w.Flush()
		},
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		opts   analysis.Options
		format string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report position influence, key order and avalanche of the cipher system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := analysis.Analyze(a.system, opts)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Symbol, "symbol", "", "symbol placed in every S-block position (default "+analysis.DefaultSymbol+")")
	flags.StringVar(&opts.Text, "text", "", "avalanche plaintext (default "+analysis.DefaultText+")")
	flags.StringVar(&opts.Modified, "modified", "", "plaintext differing in one symbol (default: last letter advanced)")
	flags.StringVarP(&opts.Key, "key", "k", "", "avalanche key (default "+analysis.DefaultKey+")")
	flags.StringVar(&opts.OrderText, "order-text", "", "key order plaintext (default "+analysis.DefaultOrderText+")")
	flags.StringVar(&opts.FirstKey, "first-key", "", "first key of the key order check")
	flags.StringVar(&opts.SecondKey, "second-key", "", "second key of the key order check")
	flags.Float64Var(&opts.Threshold, "threshold", analysis.DefaultThreshold, "changed share of symbols that counts as avalanche")
	flags.StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeReport(w io.Writer, format string, r analysis.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintln(w, "S-block position influence:")
		for _, p := range r.Positions {
			fmt.Fprintf(w, "  position %d: %s -> %s\n", p.Position, p.Input, p.Output)
		}
		fmt.Fprintf(w, "  distinct by position: %t\n", r.Distinct)

		k := r.KeyOrder
		fmt.Fprintln(w, "Key order:")
		fmt.Fprintf(w, "  %s + %s + %s -> %s\n", k.Text, k.FirstKey, k.SecondKey, k.Ciphertext)
		fmt.Fprintf(w, "  decrypted: %s (round trip %t)\n", k.Decrypted, k.RoundTrip)

		av := r.Avalanche
		fmt.Fprintln(w, "Avalanche:")
		fmt.Fprintf(w, "  %s -> %s\n", av.Text, av.Ciphertext)
		fmt.Fprintf(w, "  %s -> %s\n", av.Modified, av.ModifiedCiphertext)
		_, err := fmt.Fprintf(w, "  changed %d of %d symbols (%.1f%%), avalanche %t\n", av.Changed, av.Total, av.Percent, av.Present)
		return err
	default:
		return fmt.Errorf("unknown format %q, expected text, json or yaml", format)
	}
}
