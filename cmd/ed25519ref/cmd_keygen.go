package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

var cmdKeygen = &cobra.Command{
	Use:   "keygen",
	Short: "Derive the public key for a seed (a random seed is drawn if none is given)",
	Args:  cobra.NoArgs,
	RunE:  keygen,
}

var flagKeygen struct {
	Seed       string
	CrossCheck bool
}

func init() {
	cmdMain.AddCommand(cmdKeygen)
	cmdKeygen.Flags().StringVar(&flagKeygen.Seed, "seed", "", "32-byte seed in hex")
	cmdKeygen.Flags().BoolVar(&flagKeygen.CrossCheck, "cross-check", false, "Confirm the public key with filippo.io/edwards25519")
}

func keygen(cmd *cobra.Command, args []string) error {
	var seed []byte
	if flagKeygen.Seed == "" {
		seed = make([]byte, ed25519ref.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			return fmt.Errorf("generate seed: %w", err)
		}
		logger.Debug().Msg("Generated random seed")
	} else {
		var err error
		seed, err = decodeHexFlag("seed", flagKeygen.Seed)
		if err != nil {
			return err
		}
	}

	kp, err := ed25519ref.NewKeyPair(seed)
	if err != nil {
		return err
	}

	if flagKeygen.CrossCheck {
		ok, err := ed25519ref.CrossCheckPublicKey(kp.Seed, kp.PublicKey)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("edwards25519 derives a different public key")
		}
		logger.Info().Msg("Public key confirmed by edwards25519")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seed:       %x\n", kp.Seed)
	fmt.Fprintf(cmd.OutOrStdout(), "public key: %x\n", kp.PublicKey)
	return nil
}
