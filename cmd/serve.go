package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/devfolio/internal/content"
	"github.com/Zachkp/devfolio/internal/store"
	"github.com/Zachkp/devfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		portfolio, err := content.Load(cfg.Content.File, cfg.Content.Dir, cfg.Content.Glob)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		st, err := store.Open(cfg.Database.Path, cfg.Database.Salt)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer st.Close()

		srv, err := web.New(cfg, portfolio, st, newSender(cfg))
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
