package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
	"github.com/hyunwoo/naver-mail-mcp/internal/mcp"
	"github.com/hyunwoo/naver-mail-mcp/internal/tools"
)

var (
	version       = "dev"
	showVersion   = flag.Bool("version", false, "Show version information")
	naverID       = flag.String("naver-id", "", "Naver ID (falls back to NAVER_ID)")
	naverPassword = flag.String("naver-password", "", "Naver password (falls back to NAVER_PASSWORD)")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("naver-mail-mcp version %s\n", version)
		os.Exit(0)
	}

	// Set up logging. Stdout carries the MCP protocol, so logs go to stderr.
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	// Load configuration; flags win over the environment. Credentials are
	// fixed from here on and never change while the process runs.
	cfg := config.Load()
	if *naverID != "" {
		cfg.NaverID = *naverID
	}
	if *naverPassword != "" {
		cfg.NaverPassword = *naverPassword
	}

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Naver Mail MCP Server")
	if !cfg.HasCredentials() {
		logger.Warn("No credentials supplied; tool calls will be rejected until restarted with --naver-id and --naver-password")
	}

	factory := mail.NewSessionFactory(cfg, logger)
	service := mail.NewService(cfg, factory, logger)
	registry := tools.NewRegistry(service, logger)
	server := mcp.NewServer(cfg, registry, logger)

	// Set up signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
	case err := <-errChan:
		logger.WithError(err).Error("Server error")
		cancel()
	}

	logger.Info("Shutting down Naver Mail MCP Server")
}
