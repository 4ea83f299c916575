package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplegmap/internal/wizard"
	"github.com/goliatone/go-simplegmap/pkg/address"
	"github.com/goliatone/go-simplegmap/pkg/formatter"
	"github.com/goliatone/go-simplegmap/pkg/logging"
	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
	"github.com/goliatone/go-simplegmap/pkg/render/template/gotemplate"
	"github.com/goliatone/go-simplegmap/pkg/renderers/html"
	"github.com/goliatone/go-simplegmap/pkg/settings"
)

// staticMapKeyEnv holds the Static Maps API key when -static-map-key is not
// given.
const staticMapKeyEnv = "SIMPLEGMAP_STATIC_MAP_KEY"

type options struct {
	configPath      string
	envFile         string
	langcode        string
	renderer        string
	templatesDir    string
	templateName    string
	addressesPath   string
	addressTemplate string
	staticMapKey    string
	summary         bool
	validate        bool
	wizard          bool
	output          string
	logLevel        string
	logFormat       string
	values          []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, wizard.NewSurveyDriver(os.Stdout)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, wizard.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "gmap-cli: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("gmap-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gmap-cli [flags] [address...]\n")
		fmt.Fprintf(fs.Output(), "\nRender Google Maps output for address values. Without arguments, addresses are read from stdin, one per line.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", "", "settings YAML file")
	fs.StringVar(&opts.envFile, "env-file", "", "dotenv file loaded before settings")
	fs.StringVar(&opts.langcode, "lang", "", "content language code used when settings follow the page language")
	fs.StringVar(&opts.renderer, "renderer", render.JSONRendererName, "output renderer (json, html)")
	fs.StringVar(&opts.templatesDir, "templates", "", "template directory for the html renderer and address templates")
	fs.StringVar(&opts.templateName, "template", html.DefaultTemplateName, "map template name for the html renderer")
	fs.StringVar(&opts.addressesPath, "addresses", "", "YAML file with structured addresses")
	fs.StringVar(&opts.addressTemplate, "address-template", "", "address template name or inline template (built-in layout if empty)")
	fs.StringVar(&opts.staticMapKey, "static-map-key", "", "Static Maps API key (defaults to $"+staticMapKeyEnv+")")
	fs.BoolVar(&opts.summary, "summary", false, "print a settings summary and exit")
	fs.BoolVar(&opts.validate, "validate", false, "validate settings and exit")
	fs.BoolVar(&opts.wizard, "wizard", false, "edit settings interactively and write them as YAML")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.values = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, driver wizard.PromptDriver) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	logger, err := logging.New(opts.logLevel, opts.logFormat, stderr)
	if err != nil {
		return err
	}

	s, err := settings.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Debug("settings loaded", slog.String("config", opts.configPath), slog.Any("settings", s.Map()))

	switch {
	case opts.wizard:
		edited, err := wizard.Run(ctx, driver, s)
		if err != nil {
			return err
		}
		if opts.output == "" {
			return settings.Write(stdout, edited)
		}
		if err := settings.WriteFile(opts.output, edited); err != nil {
			return err
		}
		logger.Info("settings written", slog.String("path", opts.output))
		return nil
	case opts.validate:
		if err := settings.Validate(s); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout, "settings OK")
		return err
	case opts.summary:
		for _, line := range settings.Summary(s, settings.SummaryOptions{}) {
			if _, err := fmt.Fprintln(stdout, line); err != nil {
				return err
			}
		}
		return nil
	}

	if err := settings.Validate(s); err != nil {
		logger.Warn("settings invalid, rendering with fallbacks", slog.String("error", err.Error()))
	}

	registry, err := newRegistry(opts)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(opts.renderer)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.List(), ", "))
	}

	staticKey := opts.staticMapKey
	if staticKey == "" {
		staticKey = os.Getenv(staticMapKeyEnv)
	}
	formatterOpts := []formatter.Option{
		formatter.WithLogger(logger),
		formatter.WithRenderOptions(render.RenderOptions{StaticMapAPIKey: staticKey}),
	}

	var elements []formatter.Element
	if opts.addressesPath != "" {
		elements, err = renderAddresses(ctx, opts, s.Config(), renderer, formatterOpts)
	} else {
		elements, err = renderValues(ctx, opts, stdin, s.Config(), renderer, formatterOpts)
	}
	if err != nil {
		return err
	}
	logger.Debug("rendered elements", slog.Int("count", len(elements)), slog.String("renderer", renderer.Name()))

	return writeElements(opts.output, stdout, elements)
}

func newRegistry(opts options) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewJSONRenderer("  "))

	if opts.templatesDir != "" {
		renderer, err := html.New(
			html.WithBaseDir(opts.templatesDir),
			html.WithTemplateName(opts.templateName),
		)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func renderValues(ctx context.Context, opts options, stdin io.Reader, cfg mapdisplay.FormatterConfig, renderer render.Renderer, formatterOpts []formatter.Option) ([]formatter.Element, error) {
	values := opts.values
	if len(values) == 0 {
		read, err := readLines(stdin)
		if err != nil {
			return nil, err
		}
		values = read
	}

	items := make([]mapdisplay.FieldItem, 0, len(values))
	for _, value := range values {
		items = append(items, mapdisplay.FieldItem{Value: value})
	}

	f, err := formatter.NewStringFormatter(cfg, renderer, formatterOpts...)
	if err != nil {
		return nil, err
	}
	return f.ViewElements(ctx, items, opts.langcode)
}

func renderAddresses(ctx context.Context, opts options, cfg mapdisplay.FormatterConfig, renderer render.Renderer, formatterOpts []formatter.Option) ([]formatter.Element, error) {
	items, err := loadAddresses(opts.addressesPath)
	if err != nil {
		return nil, err
	}

	templatesDir := opts.templatesDir
	if templatesDir == "" {
		templatesDir = "."
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(templatesDir))
	if err != nil {
		return nil, err
	}
	addresses, err := address.NewTemplateFormatter(engine, opts.addressTemplate)
	if err != nil {
		return nil, err
	}

	f, err := formatter.NewAddressFormatter(cfg, renderer, addresses, formatterOpts...)
	if err != nil {
		return nil, err
	}
	return f.ViewElements(ctx, items, opts.langcode)
}

func loadAddresses(path string) ([]address.Address, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	var items []address.Address
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse addresses: %w", err)
	}
	return items, nil
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func writeElements(path string, stdout io.Writer, elements []formatter.Element) error {
	var b strings.Builder
	for _, el := range elements {
		b.Write(el.Output)
		b.WriteString("\n")
	}

	if path == "" {
		_, err := io.WriteString(stdout, b.String())
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
