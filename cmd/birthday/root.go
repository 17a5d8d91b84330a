// Root command for the birthday CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/birthdays/internal/logging"
	"github.com/mesh-intelligence/birthdays/internal/paths"
	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/birthdays"
	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	output    string
	logLevel  string
	logFormat string
}

// app carries the state shared by every command of one invocation.
type app struct {
	flags  rootFlags
	cfg    *viper.Viper
	log    *slog.Logger
	now    func() time.Time
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		now:    time.Now,
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.DiscardHandler),
	}
}

// run executes args and returns the process exit code.
func run(args []string, a *app) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(a.stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps storage failures to exitSysError and everything else
// (validation, usage) to exitUserError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrPersistence), errors.Is(err, types.ErrStoreDetached):
		return exitSysError
	default:
		return exitUserError
	}
}

// newRootCmd creates the top-level "birthday" command with global flags
// and all subcommands registered.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:     "birthday",
		Short:   "🎂 Remember the birthdays of people you know",
		Version: birthdays.Version,
		// Errors are printed once by run.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: per-user data dir)")
	pf.StringVarP(&a.flags.output, "output", "o", "", "output format: table, json or yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newVersionCmd(a),
		newInitCmd(a),
		newAddCmd(a),
		newAllCmd(a),
		newNextCmd(a),
		newSearchCmd(a),
		newTodayCmd(a),
		newForgetCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger. It runs before every
// command except version and help.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return types.Persistf(err, "resolve config dir")
	}

	cfg, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if format := a.outputFormat(); !render.ValidFormat(format) {
		return fmt.Errorf("%w: unknown output format %q", types.ErrValidation, format)
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.GetString(cfgKeyLogLevel),
		Format: cfg.GetString(cfgKeyLogFormat),
		Output: a.stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	a.log = log.With("command", cmd.Name())
	a.log.Debug("config loaded", "config_dir", configDir, "config_file", cfg.ConfigFileUsed())
	return nil
}

// outputFormat returns the effective output format.
func (a *app) outputFormat() string {
	if a.cfg == nil {
		return render.FormatTable
	}
	return a.cfg.GetString(cfgKeyOutput)
}

// today returns the reference date for this invocation.
func (a *app) today() dates.Date {
	return dates.Today(a.now())
}
