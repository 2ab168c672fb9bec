// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package server

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wooyang2018/kvbench/core"
	"github.com/wooyang2018/kvbench/logger"
)

type Config struct {
	Port  int
	Delay time.Duration // artificial ack delay per transaction
}

var DefaultConfig = Config{
	Port: 9040,
}

// Server is a minimal in process ledger node. It verifies and
// acknowledges signed key value transactions without consensus or
// persistence, which makes it a fixed cost target for harness
// development and end to end tests.
type Server struct {
	config  Config
	txCount int64
}

func New(config Config) *Server {
	return &Server{config: config}
}

type Status struct {
	TxCount int64 `json:"txCount"`
}

func (s *Server) TxCount() int64 {
	return atomic.LoadInt64(&s.txCount)
}

func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/status", s.getStatus)
	r.POST("/transactions", s.postTransaction)
	return r
}

func (s *Server) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, Status{TxCount: s.TxCount()})
}

func (s *Server) postTransaction(c *gin.Context) {
	tx := core.NewTransaction()
	if err := c.ShouldBindJSON(tx); err != nil {
		c.String(http.StatusBadRequest, "cannot parse transaction, %v", err)
		return
	}
	if err := tx.Validate(); err != nil {
		c.String(http.StatusBadRequest, "invalid transaction, %v", err)
		return
	}
	if s.config.Delay > 0 {
		time.Sleep(s.config.Delay)
	}
	atomic.AddInt64(&s.txCount, 1)
	c.JSON(http.StatusOK, hex.EncodeToString(tx.Hash()))
}

// Run serves the api until the listener fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	logger.I().Infow("serving mock ledger api", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}
