package main

import (
	"github.com/spf13/cobra"

	"github.com/cryptovault/cryptovault"
)

var (
	encryptProfile      string
	encryptKeepBackup   bool
	encryptSecureDelete bool
	encryptOverwrite    bool
	encryptVerbose      bool
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <path>",
	Short: "Encrypt a file in place, producing a \".enc\" container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(encryptVerbose)
		srcPath := args[0]

		pass, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
		defer pass.Destroy()

		opts := cryptovault.EncryptOptions{
			Profile:      cryptovault.Profile(encryptProfile),
			KeepBackup:   encryptKeepBackup,
			SecureDelete: encryptSecureDelete,
			Overwrite:    encryptOverwrite,
		}

		engine := cryptovault.New()
		dst, err := engine.EncryptFile(srcPath, pass, opts)
		if err != nil {
			log.Error().Err(err).Str("src", srcPath).Msg("encrypt failed")
			return err
		}
		log.Info().Str("src", srcPath).Str("dst", dst).Msg("encrypted")
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringVar(&encryptProfile, "profile", string(cryptovault.ProfileBalanced), "KDF cost profile: fast, balanced, secure, paranoid")
	encryptCmd.Flags().BoolVar(&encryptKeepBackup, "keep-backup", false, "rename the original to \"*.backup\" instead of deleting it")
	encryptCmd.Flags().BoolVar(&encryptSecureDelete, "secure-delete", false, "overwrite the original with zeros before unlinking it")
	encryptCmd.Flags().BoolVar(&encryptOverwrite, "overwrite", false, "overwrite an existing \".enc\" target")
	encryptCmd.Flags().BoolVarP(&encryptVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(encryptCmd)
}
