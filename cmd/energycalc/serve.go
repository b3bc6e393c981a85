package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energycalc/internal/calculation"
	"github.com/jgoulah/energycalc/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the energy consumption form in the browser",
	Long: `Starts a local web server with the household input form. Submitting the form shows
the consumption report. The server stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8501)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.GetServerAddress()
	if serveAddr != "" {
		addr = serveAddr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := calculation.NewService(newEstimator(), logger)
	srv := server.New(svc, formDefaults(), logger)

	fmt.Fprintf(cmd.OutOrStdout(), "Open http://%s in your browser\n", listener.Addr())

	if err := srv.Run(ctx, listener); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
