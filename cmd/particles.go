package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Kavindu379/portfolio/internal/preview"
	"github.com/Kavindu379/portfolio/internal/ui"
)

var (
	particlesTheme string
	skipPreload    bool
)

var particlesCmd = &cobra.Command{
	Use:   "particles",
	Short: "Preview the particle background in the terminal",
	Long: `Runs the background animation with the same settings the browser gets.
Move the mouse to grab particles, click to push more, press t to toggle
the theme and q or Esc to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		theme := ui.ParseTheme(particlesTheme, ui.ParseTheme(cfg.DefaultTheme, ui.DefaultTheme))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !skipPreload {
			if err := preview.Preload(ctx, os.Stderr, cfg.LoadingWindow); err != nil {
				return err
			}
		}
		return preview.Start(ctx, theme)
	},
}

func init() {
	particlesCmd.Flags().StringVar(&particlesTheme, "theme", "", "light or dark (defaults to the configured theme)")
	particlesCmd.Flags().BoolVar(&skipPreload, "no-preload", false, "skip the loading bar")
	rootCmd.AddCommand(particlesCmd)
}
