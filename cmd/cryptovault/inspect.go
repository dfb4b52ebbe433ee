package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptovault/cryptovault"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path.enc>",
	Short: "Report a container's cost parameters and size without the passphrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := cryptovault.New()
		info, err := engine.InspectContainer(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("version:       0x%04x\n", info.Version)
		fmt.Printf("kdf_id:        %d\n", info.KDFID)
		fmt.Printf("aead_id:       %d\n", info.AEADID)
		fmt.Printf("mem_cost_kib:  %d\n", info.Params.MemoryCostKiB)
		fmt.Printf("time_cost:     %d\n", info.Params.TimeCost)
		fmt.Printf("parallelism:   %d\n", info.Params.Parallelism)
		fmt.Printf("ciphertext:    %d bytes\n", info.CiphertextLen)
		fmt.Printf("total size:    %d bytes\n", info.TotalSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
