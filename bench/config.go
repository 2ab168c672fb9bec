// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Submit failure policies. Abort stops the run on the first failed
// submission and reports partial metrics. Continue counts the failure,
// keeps going and surfaces the count in the final report.
const (
	PolicyAbort    = "abort"
	PolicyContinue = "continue"
)

type Config struct {
	Addr        string        // target node address, host:port or url
	Credential  string        // hex encoded signing key seed
	Count       uint64        // number of transactions to submit
	Namespace   string        // key shared by every transaction of the run
	Policy      string        // submit failure policy
	Timeout     time.Duration // per submission timeout, zero means none
	HistoryPath string        // leveldb directory for run records, empty disables
}

var DefaultConfig = Config{
	Count:     10000,
	Namespace: "kvbench",
	Policy:    PolicyAbort,
	Timeout:   10 * time.Second,
}

func (config Config) Validate() error {
	if config.Addr == "" {
		return errors.New("target address is required")
	}
	if config.Credential == "" {
		return errors.New("credential is required")
	}
	if config.Namespace == "" {
		return errors.New("namespace is required")
	}
	switch config.Policy {
	case PolicyAbort, PolicyContinue:
	default:
		return fmt.Errorf("unknown submit failure policy %q", config.Policy)
	}
	return nil
}

type fileConfig struct {
	Addr       string  `yaml:"addr" json:"addr"`
	Credential string  `yaml:"credential" json:"credential"`
	Count      *uint64 `yaml:"count" json:"count"`
	Namespace  string  `yaml:"namespace" json:"namespace"`
	Policy     string  `yaml:"policy" json:"policy"`
	Timeout    string  `yaml:"timeout" json:"timeout"`
	History    string  `yaml:"history" json:"history"`
}

// LoadFile fills config from a yaml or json file. Absent file fields
// leave the corresponding config fields untouched.
func LoadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file, %w", err)
	}
	fc := new(fileConfig)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	case ".json":
		err = json.Unmarshal(data, fc)
	default:
		return fmt.Errorf("unsupported config format %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot parse %s, %w", path, err)
	}
	return fc.merge(config)
}

func (fc *fileConfig) merge(config *Config) error {
	if fc.Addr != "" {
		config.Addr = fc.Addr
	}
	if fc.Credential != "" {
		config.Credential = fc.Credential
	}
	if fc.Count != nil {
		config.Count = *fc.Count
	}
	if fc.Namespace != "" {
		config.Namespace = fc.Namespace
	}
	if fc.Policy != "" {
		config.Policy = fc.Policy
	}
	if fc.History != "" {
		config.HistoryPath = fc.History
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("cannot parse timeout, %w", err)
		}
		config.Timeout = d
	}
	return nil
}
