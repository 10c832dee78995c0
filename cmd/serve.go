package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Kavindu379/portfolio/internal/contact"
	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/store"
	"github.com/Kavindu379/portfolio/internal/web"
)

const dbFile = "portfolio.db"

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long:  `Starts the web server: the page, its fragments, the live session websocket and the admin dashboard. Content files are reloaded when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		gin.SetMode(cfg.Mode)

		st, err := store.Open(filepath.Join(cfg.DataDir, dbFile))
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		src, err := content.NewSource(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := src.Watch(ctx); err != nil {
			log.Printf("content: live reload disabled: %v", err)
		}

		if cfg.Contact.UsesRelay() {
			log.Printf("contact: delivering through %s", cfg.Contact.RelayEndpoint)
		} else {
			log.Printf("contact: delivering through SMTP %s", cfg.Contact.SMTP.Host)
		}
		svc := contact.NewService(contact.SenderFromConfig(cfg.Contact), st)

		srv, err := web.New(web.Deps{
			Config:  cfg,
			Store:   st,
			Content: src,
			Contact: svc,
		})
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
