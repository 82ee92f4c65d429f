package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/exitcode"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/server"
	"github.com/idilsaglam/todolist/internal/source"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Interactive runs the TUI. Swapped out in tests.
type Interactive func(ctx context.Context, src source.Source, opts tui.Options) ([]model.Record, error)

// Options come from root flags.
type Options struct {
	ConfigFile string
	Overrides  config.Overrides

	Stdout, Stderr io.Writer
	Interactive    Interactive
	// Ready is told the bound address once `serve` listens.
	Ready func(net.Addr)
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Interactive == nil {
		o.Interactive = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()

	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return exitcode.Success
	case "ui", "ls", "seed", "serve":
	default:
		ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return exitcode.Usage
	}

	cfg, err := config.Load(opt.ConfigFile, opt.Overrides)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return exitcode.Usage
	}
	ui.SetTheme(cfg.Theme)

	switch cmd {
	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo ui")
			return exitcode.Usage
		}
		return doInteractive(ctx, cfg, opt)

	case "ls":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo ls")
			return exitcode.Usage
		}
		return doList(ctx, cfg, opt)

	case "seed":
		text := strings.Join(a, " ")
		if model.Blank(text) {
			ui.Fail(opt.Stderr, "usage: todo seed <text...>")
			return exitcode.Usage
		}
		return doSeed(cfg, opt, text)

	default: // serve
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo serve")
			return exitcode.Usage
		}
		return doServe(ctx, cfg, opt)
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - load a todo list from an endpoint and add to it

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  ls                 Fetch once and print the list
  seed <text...>     Append an item to the seed file served by 'serve'
  serve              Serve the seed file at GET /todos

Flags:
  -config <file>     Config file (default $XDG_CONFIG_HOME/todo/config.yaml)
  -endpoint <url>    Endpoint to load todos from
  -theme <name>      %s

Environment:
  TODO_ENDPOINT, TODO_TIMEOUT, TODO_RETRIES, TODO_ON_LOAD_ERROR, ...

Examples:
  todo seed "Learn Jest"
  todo serve &
  todo
`, strings.Join(ui.Themes, ", "))
}

// -------------- subcommand impls ----------------

func newSource(cfg *config.Config, log *slog.Logger) source.Source {
	src := source.NewHTTP(cfg.Endpoint, cfg.Timeout, log)
	return source.WithRetry(src, cfg.Retries, cfg.RetryDelay, log)
}

func openLog(cfg *config.Config, opt Options) (*slog.Logger, func() error, bool) {
	log, closeFn, err := logging.OpenFile(cfg.LogFile, cfg.Level(), cfg.LogFormat)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return nil, nil, false
	}
	return log, closeFn, true
}

func doInteractive(ctx context.Context, cfg *config.Config, opt Options) int {
	log, closeLog, ok := openLog(cfg, opt)
	if !ok {
		return exitcode.Error
	}
	defer closeLog()

	items, err := opt.Interactive(ctx, newSource(cfg, log), tui.Options{
		OnLoadError: cfg.OnLoadError,
		Logger:      log,
	})
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return exitcode.Error
	}
	log.Info("exited", "count", len(items))
	return exitcode.Success
}

func doList(ctx context.Context, cfg *config.Config, opt Options) int {
	log, closeLog, ok := openLog(cfg, opt)
	if !ok {
		return exitcode.Error
	}
	defer closeLog()

	items, err := newSource(cfg, log).Fetch(ctx)
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return exitcode.Error
	}

	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s   %s %d", t.Title.Render("Todos"), t.Accent.Render("Total"), len(items)),
		"",
	}
	lines = append(lines, flatLines(items)...)
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo seed \"Buy milk\"`"))
	ui.Panel(opt.Stdout, lines)
	return exitcode.Success
}

func doSeed(cfg *config.Config, opt Options, text string) int {
	store, err := jsonstore.New(cfg.SeedFile)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return exitcode.Error
	}
	if _, err := store.Add(model.Record{Text: text}); err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return exitcode.Error
	}
	ui.OK(opt.Stdout, "added")
	return exitcode.Success
}

func doServe(ctx context.Context, cfg *config.Config, opt Options) int {
	store, err := jsonstore.New(cfg.SeedFile)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return exitcode.Error
	}
	log := logging.New(logging.Config{Level: cfg.Level(), Format: cfg.LogFormat, Output: opt.Stderr})
	log.Info("serving seed file", "path", store.Path)
	if err := server.Serve(ctx, cfg.Addr, server.Handler(store, log), log, opt.Ready); err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return exitcode.Error
	}
	return exitcode.Success
}

// -------------- rendering helpers --------------

func flatLines(items []model.Record) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		text := ansi.Truncate(it.Text, 80, "...")
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Accent.Render(t.Bullet), text))
	}
	return out
}
