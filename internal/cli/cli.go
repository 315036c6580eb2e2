// Package cli implements the skyq command line: flag parsing, query
// assembly, output and exit codes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/config"
	"github.com/litescript/skyq/internal/ephem"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/logging"
	"github.com/litescript/skyq/internal/parse"
	"github.com/litescript/skyq/internal/property"
	"github.com/litescript/skyq/internal/query"
	"github.com/litescript/skyq/internal/render"
	"github.com/litescript/skyq/internal/skyerr"
	"github.com/litescript/skyq/internal/ui"
	"github.com/litescript/skyq/internal/version"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // evaluation and I/O errors
	ExitUsage   = 2 // bad input, unknown names, unmet requirements
)

const (
	minRefresh = 100 * time.Millisecond
	maxRefresh = 5 * time.Minute
)

var errUsage = errors.New("usage: skyq [flags] <object> <property>[,<property>...] [<property>...]")

// Options inject the collaborators Run would otherwise build itself.
type Options struct {
	Clock    instant.Clock
	Provider ephem.Provider
	Catalog  *catalog.Catalog
	// Lookup reads the environment; defaults to os.LookupEnv.
	Lookup config.LookupFunc
	// IsTTY reports whether w is a terminal.
	IsTTY func(w io.Writer) bool
}

func (o *Options) defaults() {
	if o.Clock == nil {
		o.Clock = instant.SystemClock{}
	}
	if o.Provider == nil {
		o.Provider = ephem.NewMeeusProvider()
	}
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Lookup == nil {
		o.Lookup = os.LookupEnv
	}
	if o.IsTTY == nil {
		o.IsTTY = isTerminal
	}
}

type flags struct {
	date       string
	location   string
	format     string
	ephem      string
	skipErrors bool
	watch      bool
	refresh    time.Duration
	list       bool
	logLevel   string
	version    bool
}

func newFlagSet(cfg config.Config, f *flags, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("skyq", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(true)
	fs.StringVarP(&f.date, "date", "d", "now", "date (now, @unix, <n>jd, +1d, YYYY-MM-DD[THH:MM[:SS]])")
	fs.StringVarP(&f.location, "location", "l", cfg.Location, "observer lat,long (e.g. 51.5,0.1w) or none")
	fs.StringVarP(&f.format, "format", "T", cfg.Format, "output format: term, csv, json or msgpack")
	fs.StringVarP(&f.ephem, "ephem", "E", "", "sweep start,step,end (empty start means the -d date)")
	fs.BoolVar(&f.skipErrors, "skip-errors", false, "mark failing sweep rows instead of aborting")
	fs.BoolVar(&f.watch, "watch", false, "live view refreshed every --refresh")
	fs.DurationVar(&f.refresh, "refresh", cfg.Refresh, "watch refresh interval")
	fs.BoolVar(&f.list, "list", false, "list objects and properties")
	fs.StringVar(&f.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVarP(&f.version, "version", "V", false, "print version")
	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage.Error())
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, fs.FlagUsages())
	}
	return fs
}

// Run executes skyq with args (without the program name) and returns the
// process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) int {
	opts.defaults()

	cfg, err := config.Load(opts.Lookup)
	if err != nil {
		return fail(stderr, opts.Catalog, err)
	}

	var f flags
	fs := newFlagSet(cfg, &f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "skyq: %v\n", err)
		return ExitUsage
	}

	if f.version {
		fmt.Fprintf(stdout, "skyq %s\n", version.Version)
		return ExitOK
	}

	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return fail(stderr, opts.Catalog, skyerr.Configuration("log level", f.logLevel, "expected debug, info, warn or error"))
	}
	log := logging.New(level, stderr)
	defer func() { _ = log.Sync() }()
	if cfg.Path != "" {
		log.Debug("loaded config from %s", cfg.Path)
	}

	out := bufio.NewWriter(stdout)
	if f.list {
		writeList(out, opts.Catalog)
		if err := out.Flush(); err != nil {
			return fail(stderr, opts.Catalog, err)
		}
		return ExitOK
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return ExitUsage
	}

	a := app{opts: opts, flags: f, log: log, color: !cfg.NoColor && opts.IsTTY(stdout)}
	if err := a.run(ctx, fs.Args(), out, stdout); err != nil {
		return fail(stderr, opts.Catalog, err)
	}
	return ExitOK
}

// app carries one invocation's state.
type app struct {
	opts  Options
	flags flags
	log   *logging.Logger
	color bool
}

func (a app) run(ctx context.Context, args []string, out *bufio.Writer, tty io.Writer) error {
	format, err := render.ParseFormat(a.flags.format)
	if err != nil {
		return err
	}
	loc, err := parse.LatLong(a.flags.location)
	if err != nil {
		return err
	}
	dates := parse.NewDateParser(a.opts.Clock)
	at, err := dates.Parse(a.flags.date, instant.Now(a.opts.Clock))
	if err != nil {
		return err
	}

	obj, err := a.opts.Catalog.Resolve(args[0])
	if err != nil {
		return err
	}
	props, err := property.NewRegistry(a.opts.Catalog).ResolveAll(args[1:])
	if err != nil {
		return err
	}
	q := query.Query{Object: obj, Props: props, Location: loc}

	policy := query.AbortAll
	if a.flags.skipErrors {
		policy = query.SkipRow
	}
	exec := &query.Executor{
		Evaluator: property.Evaluator{Provider: a.opts.Provider},
		Policy:    policy,
		Log:       a.log,
	}
	a.log.Debugw("query", "object", obj.Name, "properties", len(props), "date", at.String(),
		"provider", a.opts.Provider.Name())

	if a.flags.watch {
		if a.flags.ephem != "" {
			return skyerr.Configuration("flags", "--watch --ephem", "watch shows a single instant")
		}
		return a.watch(ctx, exec, q, tty)
	}

	var res query.Result
	if a.flags.ephem != "" {
		spec, err := dates.Ephemeris(a.flags.ephem, at)
		if err != nil {
			return err
		}
		res, err = exec.Sweep(ctx, q, spec)
		if err != nil {
			return err
		}
	} else {
		res, err = exec.At(q, at)
		if err != nil {
			return err
		}
	}

	if err := render.Write(out, res, format, render.Options{Color: a.color}); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (a app) watch(ctx context.Context, exec *query.Executor, q query.Query, tty io.Writer) error {
	// Validate up front so bad queries fail with a diagnostic, not a view.
	if err := exec.Validate(q); err != nil {
		return err
	}
	refresh := min(max(a.flags.refresh, minRefresh), maxRefresh)
	model := ui.New(ui.Options{
		Executor: exec,
		Query:    q,
		Provider: a.opts.Provider,
		Clock:    a.opts.Clock,
		Refresh:  refresh,
	})
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(tty), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

// fail prints err and returns its exit code.
func fail(stderr io.Writer, c *catalog.Catalog, err error) int {
	fmt.Fprintf(stderr, "skyq: %v\n", err)
	if skyerr.IsNotFound(err) {
		fmt.Fprintf(stderr, "skyq: valid objects: %s\n", strings.Join(c.Names(), ", "))
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch skyerr.KindOf(err) {
	case skyerr.KindParse, skyerr.KindResolution, skyerr.KindRequirement, skyerr.KindConfiguration:
		return ExitUsage
	}
	return ExitFailure
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
