package main

import (
	"context"
	"fmt"
	"io"
	log2 "log"
	"net/http"
	"os"

	"citibike/backend/internal/config"
	"citibike/backend/internal/handler"
	"citibike/backend/internal/log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:           "server",
	Short:         "Serve the hello world endpoint",
	Long:          "Serve GET / on the port from the PORT environment variable (default 8080).",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.LoadDotEnv(); err != nil {
			log2.Fatalf("unable to load .env: %v", err)
		}

		cfg, cfgErr := config.LoadServer()
		logger, err := log.New(cfg.Debug)
		if err != nil {
			log2.Fatalf("unable to initialize logger: %v", err)
		}
		defer logger.Sync()

		if cfgErr != nil {
			logger.Fatal("unable to load config", "error", cfgErr)
		}

		if err := run(cfg, logger, http.ListenAndServe); err != nil {
			logger.Fatal("unable to start server",
				"port", cfg.Port,
				"error", err)
		}
	},
}

type listenFunc func(addr string, handler http.Handler) error

// run blocks in listen until the server fails.
func run(cfg config.Server, logger log.Logger, listen listenFunc) error {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(logger)

	logger.Info("server listening", "port", cfg.Port, "debug", cfg.Debug)
	return listen(cfg.Addr(), router.Handler())
}

func main() {
	os.Exit(execute(context.Background(), serverCmd, os.Stderr))
}

// execute keeps stdout free of anything but command output.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
