package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/models"
	"github.com/vvraju56/web-scraper/pkg/scraper/scrapertest"
)

var (
	flagDemoAddr   string
	flagDemoLegacy bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Serve a canned scrape service for trying the client locally",
	Long: `Starts a stand-in for the scrape service that answers every route with
fixture data. It listens on the port the client already expects, so a
second terminal can run the interactive view against it right away.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(flagDemoAddr, flagDemoLegacy)
	},
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoAddr, "addr", ":5000", "listen address")
	demoCmd.Flags().BoolVar(&flagDemoLegacy, "legacy", false, "answer with the v1 array contract instead of the typed one")
	rootCmd.AddCommand(demoCmd)
}

// runDemo blocks until interrupted, then drains in-flight requests
// before exiting.
func runDemo(addr string, legacy bool) error {
	fake := scrapertest.New()
	if legacy {
		fake.RespondLegacy(models.LegacyScrapeResponse{
			Emails: []string{"info@example.com", "sales@example.com"},
			Phones: []string{"(555) 123-4567"},
		})
	} else {
		fake.Respond(models.ScrapeResponse{
			Success: true,
			Data: []models.Contact{
				{Type: models.ContactEmail, Value: "info@example.com", Source: "https://example.com/contact"},
				{Type: models.ContactEmail, Value: "sales@example.com", Source: "https://example.com/about"},
				{Type: models.ContactPhone, Value: "(555) 123-4567", Source: "https://example.com/contact"},
			},
			Summary: models.Summary{TotalEmails: 2, TotalPhones: 1, TotalURLsScraped: 1},
		})
	}
	fake.ServeDownload("scraped_data_demo.csv",
		[]byte("type,value,source\nEmail,info@example.com,https://example.com/contact\n"))

	srv := &http.Server{
		Addr:         addr,
		Handler:      fake.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Demo scrape service listening on %s (ctrl+c to stop)\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.LogError(err, "demo server failed")
			fmt.Fprintf(os.Stderr, "demo server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
