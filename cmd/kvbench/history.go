// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/kvbench/bench"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored benchmark run records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if config.HistoryPath == "" {
			return errors.New("history path is required")
		}
		h, err := bench.OpenHistory(config.HistoryPath)
		if err != nil {
			return err
		}
		defer h.Close()
		recs, err := h.List(historyLimit)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			fmt.Printf("%s  requested %d  succeeded %d  failed %d  elapsed %.3fs  tps %.2f\n",
				rec.End.Format(time.RFC3339), rec.Requested, rec.Succeeded,
				rec.Failed, rec.Elapsed.Seconds(), rec.TPS)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum records to list")
}
