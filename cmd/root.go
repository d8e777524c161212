package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benedict-erwin/soc-dashboard/config"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:           "soc-dashboard",
	Short:         "SOC Analytics Dashboard",
	Long:          `SOC Analytics Dashboard: runs the alert, asset, rule and response-time queries against the SOC database and renders PNG charts`,
	RunE:          runDashboard,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}

// init initializes all application dependencies and registers commands
func init() {
	// Initialize config
	if err := config.Init(); err != nil {
		panic(err)
	}

	// Initialize logger
	logger.Init(config.Get().App.Timezone, config.Get().App.Env)
	logger.Debug().
		Str("db_host", config.Get().Database.Host).
		Str("output_dir", config.Get().Output.Dir).
		Msg("Configuration loaded")

	// Initialize utils
	if err := utils.InitTimezone(); err != nil {
		logger.Warn().Err(err).Msg("Timezone initialization failed, continuing with UTC")
	}

	// Add commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(testConnectionCmd)
	rootCmd.AddCommand(queriesCmd)
}
