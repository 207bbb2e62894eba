package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

var cmdSign = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message with a seed",
	Args:  cobra.NoArgs,
	RunE:  sign,
}

var flagSign struct {
	Seed        string
	Message     string
	MessageText string
	CrossCheck  bool
}

func init() {
	cmdMain.AddCommand(cmdSign)
	cmdSign.Flags().StringVar(&flagSign.Seed, "seed", "", "32-byte seed in hex")
	cmdSign.Flags().StringVar(&flagSign.Message, "message", "", "Message in hex")
	cmdSign.Flags().StringVar(&flagSign.MessageText, "message-text", "", "Message as literal text")
	cmdSign.Flags().BoolVar(&flagSign.CrossCheck, "cross-check", false, "Confirm the signature with filippo.io/edwards25519")
	_ = cmdSign.MarkFlagRequired("seed")
}

func sign(cmd *cobra.Command, args []string) error {
	seed, err := decodeHexFlag("seed", flagSign.Seed)
	if err != nil {
		return err
	}
	msg, err := messageFromFlags(flagSign.Message, flagSign.MessageText)
	if err != nil {
		return err
	}

	pub, err := ed25519ref.PublicKey(seed)
	if err != nil {
		return err
	}
	sig, err := ed25519ref.Sign(msg, seed, pub)
	if err != nil {
		return err
	}
	logger.Debug().Int("message_len", len(msg)).Hex("public_key", pub).Msg("Signed message")

	if flagSign.CrossCheck {
		ok, err := ed25519ref.CrossCheckSignature(sig, msg, pub)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("edwards25519 rejects the signature")
		}
		logger.Info().Msg("Signature confirmed by edwards25519")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%x\n", sig)
	return nil
}
