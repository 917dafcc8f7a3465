package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/hdlcbody/internal/config"
	"github.com/danmuck/hdlcbody/internal/logging"
	"github.com/danmuck/hdlcbody/internal/server"
	"github.com/gin-gonic/gin"
)

func main() {
	path := flag.String("config", "cmd/hdlcd/config.toml", "path to hdlcd config.toml")
	flag.Parse()

	logging.ConfigureRuntime()
	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hdlcd: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(gin.ReleaseMode)

	srv := server.New(cfg, logging.New(cfg.ID))
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hdlcd: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path and applies its log_level unless HDLC_LOG_LEVEL
// already chose one.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if _, err := logging.ApplyConfigLevel(cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
