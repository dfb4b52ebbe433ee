package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cryptovault/cryptovault"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <path.enc>",
	Short: "Check whether a passphrase opens a container, without writing output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath := args[0]

		data, err := os.ReadFile(srcPath)
		if err != nil {
			return err
		}

		pass, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
		defer pass.Destroy()

		engine := cryptovault.New()
		if engine.VerifyPassphrase(data, pass) {
			fmt.Println("ok: passphrase authenticates this container")
			return nil
		}
		fmt.Println("fail: wrong passphrase or corrupt container")
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
