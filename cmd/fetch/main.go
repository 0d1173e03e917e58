package main

import (
	"context"
	"fmt"
	"io"
	log2 "log"
	"os"

	"citibike/backend/internal/config"
	"citibike/backend/internal/log"
	"citibike/backend/internal/render"
	"citibike/backend/internal/service"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print the citibike trips sample as JSON",
	Long: "Run the configured query (default: 100 rows of the public new_york_citibike " +
		"trips table) and print the rows to stdout as a JSON array of objects.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.LoadDotEnv(); err != nil {
			log2.Fatalf("unable to load .env: %v", err)
		}

		cfg, cfgErr := config.LoadQuery()
		logger, err := log.New(cfg.Debug)
		if err != nil {
			log2.Fatalf("unable to initialize logger: %v", err)
		}
		defer logger.Sync()

		if cfgErr != nil {
			logger.Fatal("unable to load config", "error", cfgErr)
		}

		client, err := service.NewClient(cfg.Driver)
		if err != nil {
			logger.Fatal("unable to create query client", "driver", cfg.Driver, "error", err)
		}

		if err := run(cmd.Context(), cfg, client, os.Stdout, logger); err != nil {
			logger.Fatal("fetch failed",
				"driver", cfg.Driver,
				"error", err)
		}
	},
}

// run writes to out only once the whole result set is fetched and rendered.
func run(ctx context.Context, cfg config.Query, client service.QueryClient, out io.Writer, logger log.Logger) error {
	if err := client.Connect(ctx, cfg.Target()); err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(); err != nil {
			logger.Warn("unable to close query client", "error", err)
		}
	}()

	logger.Debug("running query", "sql", cfg.SQL)
	rows, err := service.Fetch(ctx, client, cfg.SQL)
	if err != nil {
		return err
	}
	logger.Debug("query finished", "rows", len(rows))

	response, err := render.Render(rows)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, response)
	return err
}

func main() {
	os.Exit(execute(context.Background(), fetchCmd, os.Stderr))
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
