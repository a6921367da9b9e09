package main

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/polyforge/simplifyd/internal/hostproc"
	"github.com/polyforge/simplifyd/internal/service"
	"github.com/polyforge/simplifyd/internal/settings"
)

const (
	defaultAddress = "localhost"
	defaultPort    = "33700"
)

var (
	serveAddress string
	servePort    string
)

var serveCmd = &cobra.Command{
	Use:   "serve [address]",
	Short: "Run the simplification HTTP service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddress
		if len(args) == 1 {
			addr = args[0]
		}
		return runServe(addr, servePort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", defaultAddress, "listen address")
	serveCmd.Flags().StringVar(&servePort, "port", defaultPort, "listen port")
}

func runServe(address, port string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	store := settings.NewStore()
	adapter := service.NewAdapter(log, store)
	host := hostproc.New(log, adapter, net.JoinHostPort(address, port))

	return host.Run(context.Background())
}
