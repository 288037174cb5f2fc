// Package cmd holds the trithemius command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trithemius-backend/config"
	"trithemius-backend/crypto"
	"trithemius-backend/logging"
)

// app is the state shared by every subcommand, resolved before any of them runs.
type app struct {
	v        *viper.Viper
	cfg      config.Config
	logger   *slog.Logger
	system   *crypto.System
	registry *crypto.Registry
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "trithemius",
		Short: "Trithemius cipher family over the 32-symbol telegraph alphabet",
		Long: `trithemius encrypts and decrypts Russian text with the keyword Trithemius
cipher, its self-shifting polyalphabetic variant, keyed S-blocks and the
enhanced poly + S-block pipeline. It runs as a CLI or as an HTTP API (serve).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is ./"+config.LocalFile+" when present)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")

	_ = a.v.BindEnv("config", "TRITHEMIUS_CONFIG")
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newServeCmd(a),
		newCipherCmd(a, crypto.OperationTypeEncrypt),
		newCipherCmd(a, crypto.OperationTypeDecrypt),
		newPipelineCmd(a),
		newAlphabetCmd(a),
		newAnalyzeCmd(a),
		newOpsCmd(a),
	)
	return root
}

// init loads the configuration and builds the logger and the cipher system.
// Flags are bound on the same viper as the config keys, so they win over
// the environment, which wins over the config file.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.LoadViper(a.v, a.v.GetString("config"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}

	opts, err := cfg.SystemOptions()
	if err != nil {
		return fmt.Errorf("cipher config: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.system = crypto.NewSystem(opts...)
	a.registry = crypto.NewRegistry(a.system)
	return nil
}

// readText joins args, or reads stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
