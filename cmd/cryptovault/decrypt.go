package main

import (
	"github.com/spf13/cobra"

	"github.com/cryptovault/cryptovault"
)

var (
	decryptOverwrite       bool
	decryptRemoveContainer bool
	decryptVerbose         bool
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <path.enc>",
	Short: "Decrypt a \".enc\" container, recovering the original file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(decryptVerbose)
		srcPath := args[0]

		pass, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
		defer pass.Destroy()

		opts := cryptovault.DecryptOptions{
			Overwrite:       decryptOverwrite,
			RemoveContainer: decryptRemoveContainer,
		}

		engine := cryptovault.New()
		dst, err := engine.DecryptFile(srcPath, pass, opts)
		if err != nil {
			log.Error().Err(err).Str("src", srcPath).Msg("decrypt failed")
			return err
		}
		log.Info().Str("src", srcPath).Str("dst", dst).Msg("decrypted")
		return nil
	},
}

func init() {
	decryptCmd.Flags().BoolVar(&decryptOverwrite, "overwrite", false, "overwrite an existing plaintext target")
	decryptCmd.Flags().BoolVar(&decryptRemoveContainer, "remove-container", false, "delete the \".enc\" file after a successful decrypt")
	decryptCmd.Flags().BoolVarP(&decryptVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(decryptCmd)
}
