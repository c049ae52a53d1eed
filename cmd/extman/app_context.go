package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/alexisbeaulieu97/extman/internal/config"
	"github.com/alexisbeaulieu97/extman/internal/logger"
	"github.com/alexisbeaulieu97/extman/internal/prefs"
	"github.com/alexisbeaulieu97/extman/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Prefs  prefs.Store
	Theme  *theme.Controller

	logFile *os.File
}

// appOptions selects where diagnostics go. The interactive UI owns the
// terminal, so it logs to the configured file; other commands log to stderr.
type appOptions struct {
	logToFile bool
	stderr    io.Writer
}

func newAppContext(ctx context.Context, flags *rootFlags, opts appOptions) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the config file or the EXTMAN_* environment variables.")
	}

	app := &AppContext{Config: cfg}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	logOpts := logger.Options{Level: level, HumanReadable: true, Writer: opts.stderr}
	if opts.logToFile {
		file, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Check permissions on the log directory or set log.file.")
		}
		app.logFile = file
		logOpts.Writer = file
		logOpts.HumanReadable = false
	}
	log, err := logger.New(logOpts)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating logger", err, "Use one of debug, info, warn, error for log.level.")
	}
	app.Logger = log

	store, err := prefs.Open(cfg.Preferences.Backend, cfg.Preferences.Path)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "opening preference store", err, "Check the preferences path or remove a corrupted store file.")
	}
	app.Prefs = store

	app.Theme = theme.NewController(store)
	mode, err := app.Theme.Initialize(ctx)
	if err != nil {
		log.Warn(err, "theme preference unavailable")
	}
	log.WithFields(map[string]any{
		"theme":   mode.String(),
		"backend": cfg.Preferences.Backend,
		"source":  cfg.DataSource,
	}).Debug("application initialized")

	return app, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	stateDir, err := defaultStateDir()
	if err != nil {
		return nil, err
	}

	opts := config.LoadOptions{
		Path:     defaultConfigPath(stateDir),
		StateDir: stateDir,
	}
	if flags.configPath != "" {
		opts.Path = flags.configPath
		opts.Required = true
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	if flags.dataSource != "" {
		cfg.DataSource = flags.dataSource
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Close releases the preference store and the log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}

	var errs []error
	if a.Prefs != nil {
		errs = append(errs, a.Prefs.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}
