// Command sinspline serves the B-spline visualizer.
//
//	sinspline -config sinspline.yaml
//
// Every setting can also come from SINSPLINE_* environment variables; see
// package config.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sinspline/config"
	"github.com/katalvlaran/sinspline/server"
	"github.com/sgostarter/i/l"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("path", *configPath)).Fatal("load config")
	}

	s, err := server.New(cfg, logger)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = s.Run(ctx); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("server stopped")
	}
}
