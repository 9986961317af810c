// Package app defines lift's commands and wires them to the application
// state
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lift/internal/apperr"
	"github.com/ayoisaiah/lift/internal/config"
	"github.com/ayoisaiah/lift/internal/osutil"
	"github.com/ayoisaiah/lift/internal/pathutil"
	"github.com/ayoisaiah/lift/internal/state"
	"github.com/ayoisaiah/lift/internal/ui"
	"github.com/ayoisaiah/lift/report"
	"github.com/ayoisaiah/lift/store"
)

const (
	envNoColor     = "NO_COLOR"
	envLiftNoColor = "LIFT_NO_COLOR"
)

var errNoSession = &apperr.Error{
	Message: "no workout in progress: start one with 'lift start'",
}

// liftApp holds everything a command needs. It is created for each command
// and closed when the command returns.
type liftApp struct {
	cfg     *config.Config
	db      store.DB
	root    *state.Root
	log     *slog.Logger
	logFile io.Closer
	now     func() time.Time
}

func (a *liftApp) Close() error {
	err := a.db.Close()

	if a.logFile != nil {
		err = errors.Join(err, a.logFile.Close())
	}

	return err
}

func (a *liftApp) reportOpts() report.Options {
	return report.Options{
		Labels:     a.root.Resolver(),
		Unit:       a.cfg.Display.Unit,
		TimeFormat: a.cfg.TimeFormat(),
	}
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPaths(configPath, pathutil.DBFilePath(), pathutil.LogFilePath()),
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
}

// open loads the configuration, sets up logging and reads the database.
func open(ctx *cli.Context) (*liftApp, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Display.NoColor {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logger, logFile, err := newLogger(cfg.System.LogPath, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	logger.Debug("database opened", slog.String("path", db.Path()))

	return &liftApp{
		cfg:     cfg,
		db:      db,
		log:     logger,
		logFile: logFile,
		now:     time.Now,
		root: state.Load(
			db,
			state.WithLogger(logger),
			state.WithRules(cfg.Rules()),
		),
	}, nil
}

// withApp opens the application state for the duration of an action.
func withApp(fn func(ctx *cli.Context, a *liftApp) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		a, err := open(ctx)
		if err != nil {
			return err
		}

		defer func() {
			if err := a.Close(); err != nil {
				slog.Error("closing database failed", slog.Any("error", err))
			}
		}()

		return fn(ctx, a)
	}
}

// editConfigAction handles the edit-config command which opens the lift config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction opens the tracker when a workout is in progress, and prints
// an overview of recent workouts otherwise.
func defaultAction(ctx *cli.Context, a *liftApp) error {
	if a.root.Session.Active() {
		return runTracker(a)
	}

	records := a.root.History.Records()

	report.Insights(
		ctx.App.Writer,
		records,
		a.now(),
		a.cfg.Insights.WindowDays,
		a.reportOpts(),
	)

	if len(records) > recentWorkouts {
		records = records[:recentWorkouts]
	}

	if len(records) > 0 {
		fmt.Fprintln(ctx.App.Writer)
		report.History(ctx.App.Writer, records, a.reportOpts())
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/lift/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if LIFT_NO_COLOR is set
	if _, exists := os.LookupEnv(envLiftNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting lift")

	return nil
}
