package commands

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/crousapi/config"
	"github.com/kbukum/crousapi/crous"
	"github.com/kbukum/crousapi/logger"
	"github.com/kbukum/crousapi/observability"
	"github.com/kbukum/crousapi/version"
)

const serviceName = "crous"

// app holds the state shared by subcommands for one invocation.
type app struct {
	configFile string

	log      *logger.Logger
	client   *crous.Client
	shutdown func(context.Context) error
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root, a := newRootCommand()
	return a.execute(root)
}

// newRootCommand builds the command tree and the state its commands share.
func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:          "crous",
		Short:        "Query CROUS regions, restaurants and menus",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./crous.yml, ./config/crous.yml or ~/.config/crous/crous.yml)")

	root.AddCommand(regionsCmd(a), restaurantsCmd(a), menusCmd(a), versionCmd())
	return root, a
}

// execute runs root and tears down whatever setup created. Cobra skips
// post-run hooks when a command fails, so teardown is deferred here instead.
func (a *app) execute(root *cobra.Command) (err error) {
	start := time.Now()
	defer func() {
		if terr := a.teardown(context.Background()); err == nil {
			err = terr
		}
	}()

	cmd, err := root.ExecuteC()
	name := root.Name()
	if cmd != nil {
		name = cmd.Name()
	}

	log := logger.GetGlobalLogger().WithComponent("cli")
	elapsed := logger.DurationFields(name, time.Since(start))
	if err != nil {
		log.Debug("command failed", elapsed, logger.ErrorFields(name, err))
		return err
	}
	log.Debug("command finished", elapsed)
	return nil
}

func (a *app) setup(ctx context.Context) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	a.log = logger.New(&cfg.Logging, serviceName)
	logger.SetGlobalLogger(a.log)

	a.shutdown, err = observability.Setup(ctx, cfg.Telemetry, serviceName, version.Version)
	if err != nil {
		return err
	}

	clientOpts := []crous.Option{crous.WithLogger(a.log)}
	if cfg.Telemetry.Enabled() {
		metrics, err := observability.NewClientMetrics(observability.Meter(observability.InstrumentationName))
		if err != nil {
			return err
		}
		clientOpts = append(clientOpts, crous.WithMetrics(metrics))
	}

	a.client, err = crous.NewFromConfig(cfg, clientOpts...)
	if err != nil {
		return err
	}
	a.log.Debug("client ready", logger.Fields(logger.FieldURL, cfg.BaseURL))
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	return shutdown(ctx)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
