package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/cli/results"
	"github.com/vvraju56/web-scraper/pkg/config"
)

var (
	flagServer     string
	flagAPIVersion string
	flagTimeout    int
	flagVerbose    bool

	flagURLFile  string
	flagFormat   string
	flagOutDir   string
	flagInterval int
	flagWait     int
)

// app is built by the root PersistentPreRunE and shared by every
// subcommand.
var app *App

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "Terminal client for the scrape service",
	Long: `Collects URLs, sends them to the scrape service and shows the emails
and phone numbers it extracted. Run without a subcommand for the
interactive view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(flagVerbose)

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags beat the config file for this invocation only; they
		// are never written back.
		if flagServer != "" {
			cfg.Service.BaseURL = flagServer
		}
		if flagAPIVersion != "" {
			cfg.Service.APIVersion = flagAPIVersion
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Service.TimeoutSeconds = flagTimeout
		}

		app = NewApp(cfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunTUI()
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url ...]",
	Short: "Scrape URLs once and print the extracted contacts",
	Long: `Sends the given URLs to the scrape service in a single request and
prints the extracted contacts as a table. With no arguments and no
--file, URLs are read from stdin, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunScrape(args, flagURLFile)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Save the export file for the service's most recent scrape",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunDownload(flagFormat, flagOutDir)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Poll a URL and print newly discovered contacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunWatch(args[0], time.Duration(flagInterval)*time.Second)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the scrape service is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunHealth(time.Duration(flagWait) * time.Second)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.ShowConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <section.key=value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.SetConfig(args[0]); err != nil {
			return err
		}
		fmt.Println("Configuration updated successfully")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "scrape service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAPIVersion, "api-version", "", "service contract, v2 or v1 (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds, -1 for none (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "write debug detail to the log file")

	scrapeCmd.Flags().StringVarP(&flagURLFile, "file", "f", "", "read URLs from a file, one per line")

	downloadCmd.Flags().StringVar(&flagFormat, "format", "excel", "export format: excel, csv or json (csv and json need the v1 contract)")
	downloadCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "directory to save into (defaults to config download_dir)")

	watchCmd.Flags().IntVarP(&flagInterval, "interval", "i", 0, "seconds between polls (defaults to config interval_seconds)")

	healthCmd.Flags().IntVarP(&flagWait, "wait", "w", 0, "seconds to keep retrying before giving up")

	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(scrapeCmd, downloadCmd, watchCmd, healthCmd, configCmd)
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		results.WriteToStderr(results.FormatErrorMessage(err))
		os.Exit(1)
	}
}
