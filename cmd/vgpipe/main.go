// Command vgpipe resolves and generates the runtime configuration of the
// variation-graph pipeline.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vgpipe/vgpipe/internal/conf"
	"github.com/vgpipe/vgpipe/internal/container"
	"github.com/vgpipe/vgpipe/internal/l10n"
)

func main() {
	app := newApp(container.Detect)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.T("error: %v", err))
		os.Exit(1)
	}
}

// newApp builds the command-line application. The probe decides the default
// container engine; tests inject a fixed one.
func newApp(probe conf.ProbeFunc) *cli.App {
	return &cli.App{
		Name:    "vgpipe",
		Usage:   l10n.T("configure the variation-graph pipeline"),
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: l10n.T("minimum level to log (debug, info, warn, error)"),
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: l10n.T("log output format (text or json)"),
				Value: "text",
			},
		},
		Before: func(ctx *cli.Context) error {
			return setupLogging(ctx.String("log-level"), ctx.String("log-format"))
		},
		Commands: []*cli.Command{
			generateConfigCommand(probe),
			resolveCommand(probe),
		},
	}
}

// setupLogging installs the process-wide slog handler per the global flags.
func setupLogging(level, format string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return errors.New(l10n.T("unknown log level %q", level))
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return errors.New(l10n.T("unknown log format %q", format))
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// generateConfigCommand writes a starter configuration document for the
// operator to edit.
func generateConfigCommand(probe conf.ProbeFunc) *cli.Command {
	return &cli.Command{
		Name:  "generate-config",
		Usage: l10n.T("write a starter configuration document"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "whole-genome",
				Usage: l10n.T("emit the profile tuned to process a whole genome on 32-core instances"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: l10n.T("file to write to instead of standard output"),
			},
		},
		Action: func(ctx *cli.Context) error {
			store := conf.NewStore(probe)
			text := store.Render(ctx.Bool("whole-genome"))
			if path := ctx.String("config"); path != "" {
				if err := os.WriteFile(path, []byte(text), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				return nil
			}
			_, err := fmt.Fprint(ctx.App.Writer, text)
			return err
		},
	}
}

// resolveCommand loads the base document, merges the command line over it
// and prints the result. Running it against a document doubles as
// validation.
func resolveCommand(probe conf.ProbeFunc) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: l10n.T("path to a configuration document"),
		},
		&cli.BoolFlag{
			Name:  "whole-genome-config",
			Usage: l10n.T("base the resolution on the whole-genome preset"),
		},
		&cli.StringSliceFlag{
			Name:  "more-mpmap-opts",
			Usage: l10n.T("additional vg mpmap option list, repeat per extra mapping run"),
		},
	}
	flags = append(flags, optionFlags()...)

	return &cli.Command{
		Name:  "resolve",
		Usage: l10n.T("print the configuration the pipeline would run with"),
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			store := conf.NewStore(probe)
			source := &conf.Source{
				Path:        ctx.String("config"),
				WholeGenome: ctx.Bool("whole-genome-config"),
				Presets:     store,
			}
			base, err := source.Read()
			if err != nil {
				return cli.Exit(err, 2)
			}
			resolved := conf.Resolve(argsFromContext(ctx), base)
			return conf.WriteDocument(ctx.App.Writer, resolved)
		},
	}
}

// optionFlags generates one flag per schema option, so the command line and
// the document schema cannot drift apart. Sequence-typed options are
// accepted as free text and normalized during resolution.
func optionFlags() []cli.Flag {
	opts := conf.Options()
	flags := make([]cli.Flag, 0, len(opts))
	for _, opt := range opts {
		name := conf.DocumentKey(opt.Name)
		usage := l10n.T(opt.Desc)
		switch opt.Kind {
		case conf.KindBool:
			flags = append(flags, &cli.BoolFlag{Name: name, Usage: usage})
		case conf.KindInt:
			flags = append(flags, &cli.IntFlag{Name: name, Usage: usage})
		case conf.KindOptsList:
			flags = append(flags, &cli.StringSliceFlag{Name: name, Usage: usage})
		default:
			flags = append(flags, &cli.StringFlag{Name: name, Usage: usage})
		}
	}
	return flags
}

// argsFromContext collects every recognized option from the parsed command
// line. Options the user did not pass carry nil, the absent sentinel.
func argsFromContext(ctx *cli.Context) conf.Args {
	args := make(conf.Args)
	for _, opt := range conf.Options() {
		name := conf.DocumentKey(opt.Name)
		if !ctx.IsSet(name) {
			args[opt.Name] = nil
			continue
		}
		switch opt.Kind {
		case conf.KindBool:
			args[opt.Name] = ctx.Bool(name)
		case conf.KindInt:
			args[opt.Name] = ctx.Int(name)
		case conf.KindOptsList:
			args[opt.Name] = ctx.StringSlice(name)
		default:
			args[opt.Name] = ctx.String(name)
		}
	}
	if ctx.IsSet("more-mpmap-opts") {
		args[conf.MoreMpmapOpts] = ctx.StringSlice("more-mpmap-opts")
	} else {
		args[conf.MoreMpmapOpts] = nil
	}
	return args
}
