package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/trainfinder/internal/api"
	"github.com/mobil-koeln/trainfinder/internal/cache"
	"github.com/mobil-koeln/trainfinder/internal/config"
	"github.com/mobil-koeln/trainfinder/internal/logging"
	"github.com/mobil-koeln/trainfinder/internal/output"
	"github.com/mobil-koeln/trainfinder/internal/tui"
	"github.com/mobil-koeln/trainfinder/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

// errReported marks failures whose message was already printed
var errReported = errors.New("error already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trainfinder",
	Short: "Look up a train's route schedule by train number",
	Long: `trainfinder looks up a train by its number and shows the route
schedule returned by a train-info service.

Features:
  - Interactive form with a route timeline or raw JSON view
  - One-shot lookups for scripting
  - Browser form and JSON endpoint (serve)
  - Optional response caching

Quick Start:
  1. Launch the form:          trainfinder (or trainfinder tui)
  2. Look up a train:          trainfinder get 12951
  3. Print the raw response:   trainfinder get 12951 --json
  4. Serve the browser form:   trainfinder serve --port 3000`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
}

// Global flags
var (
	flagBaseURL  string
	flagTimeout  int
	flagColor    string
	flagCache    bool
	flagLogLevel string
	flagLogFile  string
)

// Command flags
var (
	flagJSON bool
	flagPort string
)

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)

	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Train-info service URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds, 0 waits indefinitely")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagCache, "cache", false, "Cache responses on disk")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Start in JSON view")
	tuiCmd.Flags().BoolVar(&flagJSON, "json", false, "Start in JSON view")
	getCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the response as JSON")
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "", "Port to listen on (default 3000)")
}

// loadConfig reads .env and the environment, then applies set flags
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	flags := cmd.Flags()

	if flags.Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if flags.Changed("timeout") && flagTimeout >= 0 {
		cfg.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if flags.Changed("color") {
		cfg.Color = flagColor
	}
	if flags.Changed("cache") {
		cfg.Cache = flagCache
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("port") {
		cfg.Port = flagPort
	}
	return cfg
}

// createLogger returns the logger for a command. Without a log file the
// form stays silent and the other commands log to stderr.
func createLogger(cfg *config.Config, interactive bool) (*zap.SugaredLogger, func(), error) {
	if cfg.LogFile != "" {
		return logging.NewFile(cfg.LogFile, cfg.LogLevel)
	}
	if interactive {
		return logging.Nop(), func() {}, nil
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	return logger, func() { _ = logger.Sync() }, nil
}

// createClient creates an API client with common options
func createClient(cfg *config.Config, logger *zap.SugaredLogger) (*api.Client, error) {
	opts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout),
	}

	if cfg.Cache {
		opts = append(opts, api.WithDefaultCache(cfg.CacheTTL))
	}

	return api.NewClient(opts...)
}

var tuiCmd = &cobra.Command{
	Use:   "tui [train_no]",
	Short: "Launch the interactive lookup form",
	Long: `Launch a full-screen form: type a train number and press Enter.

Keyboard:
  Enter               Get data
  Tab                 Toggle route timeline / JSON
  Up/Down PgUp/PgDn   Scroll the result
  Esc                 Clear the input
  Ctrl+C              Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logger, closeLog, err := createLogger(cfg, true)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	client, err := createClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	var opts []tui.Option
	opts = append(opts, tui.WithLogger(logger))
	if flagJSON {
		opts = append(opts, tui.WithJSONView())
	}
	if len(args) == 1 {
		opts = append(opts, tui.WithTrainNumber(args[0]))
	}

	model := tui.New(client, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var getCmd = &cobra.Command{
	Use:   "get <train_no>",
	Short: "Look up a train and print its route schedule",
	Long: `Fetch a train's schedule once and print it.

By default the route is printed as a timeline. With --json the response
is printed as indented JSON; a response that is not JSON is shown as
{"message": "<response text>"}.

Examples:
  trainfinder get 12951
  trainfinder get 12951 --json
  trainfinder get 12951 --base-url https://trains.example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	mode := output.ParseColorMode(cfg.Color)
	opts := output.TableOptions{Colors: output.NewColorsFor(mode, cmd.OutOrStdout())}
	errOpts := output.TableOptions{Colors: output.NewColorsFor(mode, cmd.ErrOrStderr())}

	logger, closeLog, err := createLogger(cfg, false)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	client, err := createClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	trainNumber := ""
	if len(args) == 1 {
		trainNumber = args[0]
	}

	r, err := client.FetchTrain(cmd.Context(), trainNumber)
	if err != nil {
		if !api.IsValidation(err) {
			logger.Debugw("lookup failed", "train_no", trainNumber, "error", err)
		}
		output.RenderError(cmd.ErrOrStderr(), api.UserMessage(err), errOpts)
		return errReported
	}

	if flagJSON {
		return output.RenderJSON(cmd.OutOrStdout(), r)
	}
	output.RenderTrain(cmd.OutOrStdout(), r, opts)
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookup form and a JSON endpoint over HTTP",
	Long: `Start an HTTP server with:

  GET /                       lookup form (?train_no=<n>[&view=json])
  GET /api/train?train_no=<n> response as JSON
  GET /health                 health check

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logger, closeLog, err := createLogger(cfg, false)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	client, err := createClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("forwarding lookups", "base_url", client.BaseURL(), "cache", cfg.Cache)
	return web.NewServer(client, logger).ListenAndServe(ctx, ":"+cfg.Port)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCacheSweep(cmd, (*cache.FileCache).Clear)
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCacheSweep(cmd, (*cache.FileCache).Cleanup)
	},
}

func runCacheSweep(cmd *cobra.Command, sweep func(*cache.FileCache) (int, error)) error {
	cfg := loadConfig(cmd)

	fc, err := cache.NewFileCache(cache.DefaultCacheDir(), cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	n, err := sweep(fc)
	if err != nil {
		return fmt.Errorf("failed to clean cache: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached responses from %s\n", n, fc.Dir())
	return nil
}
