package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavindu379/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with an interactive wizard",
	Long:  `Asks for the port, default theme, contact delivery and admin credentials, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
