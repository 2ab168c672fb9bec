// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/kvbench/bench"
	"github.com/wooyang2018/kvbench/logger"
)

const (
	FlagAddr       = "addr"
	FlagCredential = "credential"
	FlagCount      = "count"
	FlagNamespace  = "namespace"
	FlagPolicy     = "policy"
	FlagTimeout    = "timeout"
	FlagHistory    = "history"
)

var (
	config     = bench.DefaultConfig
	configFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "kvbench",
	Short: "Throughput benchmark client for key value ledger services",
	RunE:  runBenchmark,
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if configFile != "" {
		if err := loadConfigFile(cmd); err != nil {
			return err
		}
	}
	driver := bench.NewDriver(config, nil)
	metrics, err := driver.Run(context.Background())
	if metrics != nil {
		if rerr := metrics.Report(os.Stdout); rerr != nil {
			logger.I().Warnw("cannot emit report", "error", rerr)
		}
		saveHistory(metrics)
	}
	return err
}

// loadConfigFile applies the config file under the command line, so an
// explicitly set flag always wins over the file.
func loadConfigFile(cmd *cobra.Command) error {
	flagged := config
	config = bench.DefaultConfig
	if err := bench.LoadFile(configFile, &config); err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed(FlagAddr) {
		config.Addr = flagged.Addr
	}
	if f.Changed(FlagCredential) {
		config.Credential = flagged.Credential
	}
	if f.Changed(FlagCount) {
		config.Count = flagged.Count
	}
	if f.Changed(FlagNamespace) {
		config.Namespace = flagged.Namespace
	}
	if f.Changed(FlagPolicy) {
		config.Policy = flagged.Policy
	}
	if f.Changed(FlagTimeout) {
		config.Timeout = flagged.Timeout
	}
	if f.Changed(FlagHistory) {
		config.HistoryPath = flagged.HistoryPath
	}
	return nil
}

func saveHistory(metrics *bench.RunMetrics) {
	if config.HistoryPath == "" {
		return
	}
	h, err := bench.OpenHistory(config.HistoryPath)
	if err != nil {
		logger.I().Warnw("cannot open history store", "error", err)
		return
	}
	defer h.Close()
	if err := h.Put(metrics); err != nil {
		logger.I().Warnw("cannot save run record", "error", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logger.Init(debug)
	})

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug mode")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a yaml or json config file")
	rootCmd.PersistentFlags().StringVar(&config.HistoryPath, FlagHistory,
		config.HistoryPath, "leveldb directory for run history")

	rootCmd.Flags().StringVarP(&config.Addr, FlagAddr, "a",
		config.Addr, "target node address (host:port or url)")
	rootCmd.Flags().StringVarP(&config.Credential, FlagCredential, "c",
		config.Credential, "hex encoded credential seed")
	rootCmd.Flags().Uint64VarP(&config.Count, FlagCount, "n",
		config.Count, "number of transactions to submit")
	rootCmd.Flags().StringVar(&config.Namespace, FlagNamespace,
		config.Namespace, "key namespace shared by every transaction")
	rootCmd.Flags().StringVar(&config.Policy, FlagPolicy,
		config.Policy, "submit failure policy (abort|continue)")
	rootCmd.Flags().DurationVar(&config.Timeout, FlagTimeout,
		config.Timeout, "per submission timeout")
}
