// Command monarch-mcp serves Monarch Money personal-finance data as MCP
// tools. Credentials come from the environment; the session is acquired
// lazily on the first tool call.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/monarch-agent/monarch-mcp/internal/auth"
	"github.com/monarch-agent/monarch-mcp/internal/config"
	"github.com/monarch-agent/monarch-mcp/internal/session"
	"github.com/monarch-agent/monarch-mcp/internal/tools"
	"github.com/monarch-agent/monarch-mcp/internal/types"
	"github.com/monarch-agent/monarch-mcp/pkg/monarch"
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:           "monarch-mcp",
		Short:         "MCP server for Monarch Money",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				// Refuse to start without credentials
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.LogLevel)

	var retryConfig *types.RetryConfig
	if cfg.RetryMax > 0 {
		retryConfig = &types.RetryConfig{
			MaxRetries: cfg.RetryMax,
			RetryWait:  types.DefaultRetryWait,
			MaxWait:    types.DefaultRetryMaxWait,
		}
	}

	client, err := monarch.NewClient(&monarch.ClientOptions{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.HTTPTimeout,
		Logger:      logger,
		SentryDSN:   cfg.SentryDSN,
		RetryConfig: retryConfig,
	})
	if err != nil {
		return fmt.Errorf("initializing client: %w", err)
	}
	defer client.Close()

	authService := auth.NewService(cfg.BaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
	sessions := session.NewManager(authService, client, cfg.Credentials, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "monarch-mcp",
		Version: version,
	}, nil)

	tools.Register(server, tools.New(client, sessions, logger))

	switch cfg.Transport {
	case config.TransportSSE:
		return serveSSE(ctx, server, cfg.ListenAddr, logger)
	default:
		logger.Info("serving MCP over stdio")
		return server.Run(ctx, &mcp.StdioTransport{})
	}
}

func serveSSE(ctx context.Context, server *mcp.Server, addr string, logger types.Logger) error {
	handler := mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	logger.Info("serving MCP over SSE", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
