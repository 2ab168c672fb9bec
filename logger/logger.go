// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package logger

import (
	"go.uber.org/zap"
)

var myLogger *zap.SugaredLogger

// Set sets a global logger
func Set(logger *zap.SugaredLogger) {
	myLogger = logger
}

func I() *zap.SugaredLogger {
	return myLogger
}

// Init creates and sets the global logger. Debug mode uses the zap
// development config for human readable console output.
func Init(debug bool) {
	var inner *zap.Logger
	var err error
	if debug {
		inner, err = zap.NewDevelopment()
	} else {
		inner, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Set(inner.Sugar())
}

func init() {
	Set(zap.NewNop().Sugar())
}
