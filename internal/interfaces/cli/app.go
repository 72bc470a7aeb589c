// Package cli is the catalog-admin command line. Each entity collection gets
// list/get/create/update/delete commands driven by the same list screens and
// forms the interactive console uses.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/config"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/logger"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/storage"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/telemetry"
)

// IOStreams are the streams commands read from and write to
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// App holds the dependencies shared by every command. They are built in
// setup, after flags are parsed.
type App struct {
	IO       IOStreams
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *telemetry.ClientMetrics
	Tracing  *telemetry.TracerProvider
	Meters   *telemetry.MeterProvider
	Logs     *telemetry.LoggerProvider
	Client   *httpclient.Client
	Services *catalog.Services

	entities []entity
	storage  *storage.S3ObjectStorage
	input    *bufio.Reader

	configFile string
	apiURL     string
	logLevel   string
	output     string
	yes        bool
}

// NewApp creates an App writing to streams
func NewApp(streams IOStreams) *App {
	a := &App{
		IO:       streams,
		Logger:   zap.NewNop(),
		entities: registry(),
	}
	a.Services = catalog.NewServices(a)
	return a
}

// Execute runs the command line with args
func Execute(ctx context.Context, streams IOStreams, args []string) error {
	app := NewApp(streams)
	defer app.Close(context.WithoutCancel(ctx))

	root := app.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Command builds the root command
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog-admin",
		Short: "Manage the retail catalog from the terminal",
		Long: `catalog-admin manages the retail catalog through its REST API.

Every collection (authors, suppliers, gift-cards, ...) has list, get, create,
update, delete and fields subcommands; collections with statistics add stats.
Field values are given as --set key=value; run "<collection> fields" to see
the keys a collection accepts.

Run "catalog-admin console <collection>" for the interactive table view.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.IO.In)
	root.SetOut(a.IO.Out)
	root.SetErr(a.IO.ErrOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./config.toml or $HOME/.catalog-admin/config.toml)")
	pf.StringVar(&a.apiURL, "api-url", "", "catalog API base URL, overrides api.base_url")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVarP(&a.output, "output", "o", "table", "output format: table or json")
	pf.BoolVarP(&a.yes, "yes", "y", false, "answer yes to confirmations")

	for _, e := range a.entities {
		root.AddCommand(e.command(a))
	}
	root.AddCommand(
		newConsoleCommand(a),
		newImportCommand(a),
		newMediaCommand(a),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(a.configFile)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.API.BaseURL = a.apiURL
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.output != "table" && a.output != "json" {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown output format %q, use table or json", a.output))
	}
	a.Config = cfg
	a.Logger = a.newLogger(cmd)

	a.Metrics = telemetry.NewClientMetrics()
	if cfg.Metrics.ListenAddr != "" {
		addr, err := a.Metrics.Serve(cfg.Metrics.ListenAddr, cfg.Metrics.Path)
		if err != nil {
			return err
		}
		a.Logger.Info("Metrics endpoint listening", zap.String("addr", addr), zap.String("path", cfg.Metrics.Path))
	}

	telCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
		ExportInterval:    cfg.Telemetry.ExportInterval,
	}
	a.Logs, err = telemetry.NewLoggerProvider(cmd.Context(), telCfg, a.Logger)
	if err != nil {
		return err
	}
	a.Logger = a.Logs.Bridge(a.Logger, logger.ParseLevel(cfg.Log.Level))

	a.Tracing, err = telemetry.NewTracerProvider(cmd.Context(), telCfg, a.Logger)
	if err != nil {
		return err
	}
	a.Meters, err = telemetry.NewMeterProvider(cmd.Context(), telCfg, a.Logger)
	if err != nil {
		return err
	}
	if a.Meters.IsEnabled() {
		if err := a.Metrics.UseMeter(a.Meters.Meter(telemetry.TracerName)); err != nil {
			return err
		}
	}

	a.Client, err = httpclient.New(httpclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Token:     cfg.API.Token,
		Headers:   cfg.API.Headers,
		Logger:    logger.Named(a.Logger, "api"),
		Metrics:   a.Metrics,
		Tracer:    a.Tracing.Tracer(telemetry.TracerName),
	})
	if err != nil {
		return err
	}

	a.Logger.Debug("Catalog admin ready",
		zap.String("env", cfg.App.Env),
		zap.String("api", a.Client.BaseURL()),
		zap.String("command", cmd.CommandPath()),
	)
	return nil
}

// newLogger sends logs to the command's error stream. The console owns the
// terminal, so there logs go to the configured file or nowhere.
func (a *App) newLogger(cmd *cobra.Command) *zap.Logger {
	cfg := &logger.Config{
		Level:  a.Config.Log.Level,
		Format: a.Config.Log.Format,
		Output: a.Config.Log.Output,
	}
	interactive := cmd.Annotations["console"] == "true"

	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		if interactive {
			return logger.NewWriter(cfg, io.Discard)
		}
		return logger.NewWriter(cfg, a.IO.ErrOut)
	case "stdout":
		if interactive {
			return logger.NewWriter(cfg, io.Discard)
		}
		return logger.NewWriter(cfg, a.IO.Out)
	}
	l, err := logger.New(cfg)
	if err != nil {
		return logger.NewWriter(cfg, a.IO.ErrOut)
	}
	return l
}

// Close stops the metrics endpoint and flushes spans, metrics and logs
func (a *App) Close(ctx context.Context) {
	if a.Metrics != nil {
		if err := a.Metrics.Stop(ctx); err != nil {
			a.Logger.Warn("Failed to stop metrics endpoint", zap.Error(err))
		}
	}
	if a.Tracing != nil {
		_ = a.Tracing.Shutdown(ctx)
	}
	if a.Meters != nil {
		_ = a.Meters.Shutdown(ctx)
	}
	_ = logger.Sync(a.Logger)
	if a.Logs != nil {
		_ = a.Logs.Shutdown(ctx)
	}
}

// Do sends a request through the API client built by setup
func (a *App) Do(ctx context.Context, req httpclient.Request, out any) error {
	if a.Client == nil {
		return shared.NewDomainError("INVALID_STATE", "catalog API client is not configured")
	}
	return a.Client.Do(ctx, req, out)
}

// Confirm asks on the terminal. --yes answers for the user.
func (a *App) Confirm(ctx context.Context, message string) bool {
	if a.yes {
		return true
	}
	if a.input == nil {
		a.input = bufio.NewReader(a.IO.In)
	}
	fmt.Fprintf(a.IO.Out, "%s [y/N]: ", message)
	line, err := a.input.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Alert prints a failure message on the error stream
func (a *App) Alert(ctx context.Context, message string) {
	fmt.Fprintln(a.IO.ErrOut, message)
}

func (a *App) objectStorage() (*storage.S3ObjectStorage, error) {
	if a.storage != nil {
		return a.storage, nil
	}
	s, err := storage.NewS3ObjectStorage(&a.Config.Storage, storage.WithLogger(logger.Named(a.Logger, "storage")))
	if err != nil {
		return nil, fmt.Errorf("media storage: %w", err)
	}
	a.storage = s
	return s, nil
}

func (a *App) lookup(name string) (entity, bool) {
	for _, e := range a.entities {
		if e.matches(name) {
			return e, true
		}
	}
	return nil, false
}

func (a *App) entityNames() []string {
	names := make([]string, len(a.entities))
	for i, e := range a.entities {
		names[i] = e.name()
	}
	return names
}

func (a *App) jsonOutput() bool { return a.output == "json" }
