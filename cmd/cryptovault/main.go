package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cryptovault",
	Short: "cryptovault encrypts and decrypts files on disk with a passphrase",
	Long: `cryptovault is a local, zero-configuration tool for protecting secrets
stored alongside source code. It runs no server, manages no long-lived key
material, and trusts no third-party service: security rests entirely on the
passphrase you supply and the cost of the key derivation function.

Available commands:
  encrypt    Encrypt a file in place, producing a ".enc" container
  decrypt    Decrypt a ".enc" container, recovering the original file
  verify     Check whether a passphrase opens a container without writing output
  inspect    Report a container's cost parameters without the passphrase
  sweep      Remove stale temp files left behind by a crashed prior run
`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
