package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

var cmdVerify = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signature",
	Args:  cobra.NoArgs,
	RunE:  verify,
}

var flagVerify struct {
	Signature   string
	PublicKey   string
	Message     string
	MessageText string
}

func init() {
	cmdMain.AddCommand(cmdVerify)
	cmdVerify.Flags().StringVar(&flagVerify.Signature, "signature", "", "64-byte signature in hex")
	cmdVerify.Flags().StringVar(&flagVerify.PublicKey, "public-key", "", "32-byte public key in hex")
	cmdVerify.Flags().StringVar(&flagVerify.Message, "message", "", "Message in hex")
	cmdVerify.Flags().StringVar(&flagVerify.MessageText, "message-text", "", "Message as literal text")
	_ = cmdVerify.MarkFlagRequired("signature")
	_ = cmdVerify.MarkFlagRequired("public-key")
}

// failureClass names the kind of rejection for log output.
func failureClass(err error) string {
	switch {
	case errors.Is(err, ed25519ref.ErrInvalidLength):
		return "invalid-length"
	case errors.Is(err, ed25519ref.ErrNotOnCurve):
		return "not-on-curve"
	case errors.Is(err, ed25519ref.ErrVerificationFailed):
		return "verification-failed"
	default:
		return "internal"
	}
}

func verify(cmd *cobra.Command, args []string) error {
	sig, err := decodeHexFlag("signature", flagVerify.Signature)
	if err != nil {
		return err
	}
	pub, err := decodeHexFlag("public-key", flagVerify.PublicKey)
	if err != nil {
		return err
	}
	msg, err := messageFromFlags(flagVerify.Message, flagVerify.MessageText)
	if err != nil {
		return err
	}

	if err := ed25519ref.Verify(sig, msg, pub); err != nil {
		logger.Error().Str("reason", failureClass(err)).Err(err).Msg("Signature rejected")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
