package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Kavindu379/portfolio/internal/config"
	"github.com/Kavindu379/portfolio/internal/content"
)

var (
	colorAccent = lipgloss.Color("6")
	colorMuted  = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the site content",
	Long:  `Loads the content catalog the server would use and prints its projects, services and timeline. Exits non-zero when the catalog is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		c, err := content.LoadDir(cfg.ContentDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCatalog(c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func renderCatalog(c *content.Catalog) string {
	var b strings.Builder
	p := c.Profile
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString(mutedStyle.Render(" " + strings.Join(p.Roles, " · ")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Projects (%d)", len(c.Projects))))
	b.WriteString("\n")
	for _, pr := range c.Projects {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%2d  %s", pr.ID, pr.Title)))
		b.WriteString(mutedStyle.Render(" " + pr.Category))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Services (%d)", len(c.Services))))
	b.WriteString("\n")
	for _, s := range c.Services {
		b.WriteString(itemStyle.Render(s.Title))
		b.WriteString(mutedStyle.Render(" /services/" + s.Slug()))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Timeline"))
	b.WriteString("\n")
	for _, e := range c.Timeline {
		b.WriteString(itemStyle.Render(e.Date + "  " + e.Title))
		b.WriteString("\n")
	}
	return b.String()
}
