package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Personal portfolio site with a contact form",
	Long: `devfolio serves a single-page portfolio: biography, skills, projects,
experience and a contact form that mails messages to the owner.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "devfolio.yml", "config file path")
}
