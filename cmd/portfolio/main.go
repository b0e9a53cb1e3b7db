package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/kirusanth290/portfolio/internal/client"
	"github.com/kirusanth290/portfolio/internal/logging"
	"github.com/kirusanth290/portfolio/internal/version"
)

const defaultSiteURL = "http://localhost:8080"

var logger *logging.Logger

func initLogger() {
	logConfig := logging.DefaultConfig()
	logConfig.File = "~/.portfolio/cli.log"

	logging.Configure(logConfig)
	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio CLI - talk to a running portfolio site",
	Long: `Portfolio CLI sends contact messages to a running portfolio site
and reports build information.`,
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Long: `Send a message through a site's contact form endpoint.
The message is submitted once; failures are reported, never retried.

Example:
  portfolio contact --name Jane --email jane@example.com --message "Hi there"
  portfolio contact --url https://kirusanth.dev --name Jane --email jane@example.com --message "Hi"`,
	Run: func(cmd *cobra.Command, args []string) {
		siteURL, _ := cmd.Flags().GetString("url")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")

		c := client.New(siteURL, &http.Client{Timeout: 30 * time.Second}, logger)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending..."
		s.Start()
		status := c.Submit(context.Background(), client.Submission{
			Name:    name,
			Email:   email,
			Message: message,
		})
		s.Stop()

		if !status.OK {
			logger.Error("%s", status.Text)
			logger.Close()
			os.Exit(1)
		}
		logger.Info("%s", status.Text)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("Portfolio version: %s", version.Info())

		siteURL, _ := cmd.Flags().GetString("url")
		if siteURL == "" {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		info, err := version.CheckServerVersion(ctx, http.DefaultClient, siteURL)
		if err != nil {
			logger.Warn("Could not reach %s: %v", siteURL, err)
			return
		}

		logger.Info("Server version: %s (%s)", info.Version, info.Status)
		if version.IsUpdateAvailable(version.Version, info.Version) {
			logger.Info("  Server runs a newer build than this CLI")
		}
	},
}

func init() {
	initLogger()

	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(versionCmd)

	contactCmd.Flags().String("url", defaultSiteURL, "Base URL of the portfolio site")
	contactCmd.Flags().String("name", "", "Your name")
	contactCmd.Flags().String("email", "", "Your email address")
	contactCmd.Flags().String("message", "", "Message to send")
	contactCmd.MarkFlagRequired("name")
	contactCmd.MarkFlagRequired("email")
	contactCmd.MarkFlagRequired("message")

	versionCmd.Flags().String("url", "", "Also report the version served at this site URL")
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
