package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"essentials/internal/config"
	"essentials/internal/content"
	"essentials/internal/trace"
	"essentials/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// shutdownTimeout bounds the final span flush.
const shutdownTimeout = 2 * time.Second

// options holds the parsed CLI flags.
type options struct {
	configPath string
	print      bool
	topic      string
	inline     bool
}

// errUsage marks flag errors; main exits 2 for these.
var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("essentials", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default ~/.config/essentials/config.toml)")
	fs.BoolVar(&opts.print, "print", false, "render one frame to stdout and exit")
	fs.StringVar(&opts.topic, "topic", "", "with -print, select this topic first (components, jsx, props, state)")
	fs.BoolVar(&opts.inline, "inline", false, "render inline instead of on the alternate screen")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: essentials [flags]\n\n")
		fmt.Fprintf(stderr, "Browse the React essentials: core concepts and tabbed examples.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.topic != "" && !opts.print {
		return options{}, fmt.Errorf("%w: -topic requires -print", errUsage)
	}
	if opts.topic != "" {
		if _, err := content.ParseTopic(opts.topic); err != nil {
			return options{}, fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	return opts, nil
}

// setupLogging routes the std logger to cfg.File, or discards it. The returned
// closer is never nil.
func setupLogging(cfg config.LogConfig) (io.Closer, error) {
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.File, "essentials")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	provider, err := trace.NewProvider(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(sctx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	ui.SetTheme(ui.Theme{Accent: cfg.UI.AccentColor, Highlight: cfg.UI.HighlightColor})
	model := ui.NewAppModel(ui.Options{
		Tagline:  content.PickTagline(rand.IntN),
		Recorder: provider.Recorder(),
		Width:    cfg.UI.Width,
	})
	log.Printf("start: print=%v tracing=%v", opts.print, provider.Enabled())

	if opts.print {
		if opts.topic != "" {
			topic, err := content.ParseTopic(opts.topic)
			if err != nil {
				return err
			}
			model.Examples.Select(topic)
		}
		_, err := fmt.Fprintln(stdout, model.Render())
		return err
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen && !opts.inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))
	if _, err := tea.NewProgram(model.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "essentials: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "essentials: %v\n", err)
		os.Exit(1)
	}
}
