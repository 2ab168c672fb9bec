// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/wooyang2018/kvbench/server"
)

var serverConfig = server.DefaultConfig

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a mock ledger node that accepts benchmark transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return server.New(serverConfig).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&serverConfig.Port, "port", "p",
		serverConfig.Port, "api port")
	serveCmd.Flags().DurationVar(&serverConfig.Delay, "delay",
		serverConfig.Delay, "artificial ack delay per transaction")
}
