package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/taxref/internal/cli"
	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	settings config.Settings
	logFile  *os.File
	rootCmd  = &cobra.Command{
		Use:   "taxref",
		Short: "📘 所得類別及職務類別查詢器",
		Long: `taxref: look up Taiwanese withholding income categories (所得類別) and
occupation categories (職務類別) by name or code, with tax rates, exemption
limits and supplementary health insurance details.

Run without a subcommand to open the interactive browser.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Assigned here because both hooks reach back to rootCmd.
	rootCmd.PersistentPreRunE = initConfig
	rootCmd.RunE = runBrowse

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/taxref/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	config.SetDefaults(viper.GetViper())

	addBrowseFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(feesCmd())
	rootCmd.AddCommand(itemsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Commands that need to report an interrupt, such as export, install
	// their own handler on top of this context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup
	if logFile != nil {
		_ = logFile.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName(config.DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TAXREF")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	settings = loaded

	// Set up logging
	if err := setupLogging(isInteractive(cmd)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// isInteractive reports whether cmd takes over the terminal: the root
// command itself or browse.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "browse"
}

// setupLogging installs the global logger. Interactive sessions log to the
// configured file or nowhere, so that log lines never land on the
// alternate screen.
func setupLogging(interactive bool) error {
	level, err := common.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	switch {
	case settings.LogFile != "":
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	common.SetupLogger(w, level, settings.LogFormat)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			slog.Debug("taxref version", "version", version)
			fmt.Fprintf(cmd.OutOrStdout(), "taxref %s\n", version)
		},
	}
}
