// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/kvbench/core"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Generate a fresh credential for benchmark runs",
	Run: func(cmd *cobra.Command, args []string) {
		priv := core.GenerateKey(nil)
		fmt.Println("credential:", priv.Seed())
		fmt.Println("public key:", priv.PublicKey().String())
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}
