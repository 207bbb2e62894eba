package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cmdMain = &cobra.Command{
	Use:               "ed25519ref",
	Short:             "Big-integer reference Ed25519: derive keys, sign, verify and run test vectors",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	Run:               printUsageAndExit1,
}

var flagMain struct {
	LogLevel  string
	LogFormat string
}

var logger = zerolog.Nop()

func init() {
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogFormat, "log-format", "text", "Log format (text or json)")
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(flagMain.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagMain.LogLevel, err)
	}

	switch flagMain.LogFormat {
	case "text":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})
	case "json":
		logger = zerolog.New(cmd.ErrOrStderr())
	default:
		return fmt.Errorf("invalid log format %q", flagMain.LogFormat)
	}
	logger = logger.Level(level).With().Timestamp().Logger()
	return nil
}

// decodeHexFlag decodes a hex flag value, tolerating a 0x prefix.
func decodeHexFlag(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(value), "0x"))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

// messageFromFlags returns --message (hex) or --message-text, which are
// mutually exclusive.
func messageFromFlags(hexMsg, textMsg string) ([]byte, error) {
	if hexMsg != "" && textMsg != "" {
		return nil, fmt.Errorf("--message and --message-text are mutually exclusive")
	}
	if textMsg != "" {
		return []byte(textMsg), nil
	}
	return decodeHexFlag("message", hexMsg)
}
