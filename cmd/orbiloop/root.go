package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbiloops"
	"github.com/katalvlaran/orbiloops/exchange"
	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg        Config
	configPath string
	logLevel   string
	typ        string

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	rootCmd := &cobra.Command{
		Use:   "orbiloop",
		Short: "Explore non-crossing loops on wallpaper orbifolds",
		Long: `orbiloop builds loops on the fundamental domain of the p2, p3 and p4
orbifolds. Each loop is a chain of chords between glued boundary points
that never cross, and closes into a curve on the tiled plane.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (default from config, else warn)")
	pf.StringVarP(&a.typ, "type", "t", "", "orbifold type: p2|p3|p4 (default from config, else p3)")

	rootCmd.AddCommand(
		a.enumerateCmd(),
		a.checkCmd(),
		a.segmentsCmd(),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	// 1) Persistent flags
	if a.typ != "" {
		t, err := orbifold.ParseType(a.typ)
		if err != nil {
			return err
		}
		cfg.Type = t
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	// 2) Command flags that shadow config keys
	flags := cmd.Flags()
	if flags.Changed("max-edges") {
		cfg.MaxEdges, _ = flags.GetInt("max-edges")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("output") {
		cfg.Format, _ = flags.GetString("output")
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// 3) Logger
	level, _ := parseLevel(cfg.LogLevel)
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	orbiloops.SetLogger(a.logger)
	a.logger.Debug("orbiloop: configured", "type", cfg.Type.String(), "max_edges", cfg.MaxEdges, "count", cfg.Count, "format", cfg.Format)

	return nil
}

// load reads and replays a document file. A type given on the command
// line must agree with the document.
func (a *app) load(file string) (exchange.Document, *path.State, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return exchange.Document{}, nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := exchange.Decode(data)
	if err != nil {
		a.logger.Warn("orbiloop: rejected document", "file", file, "error", err)
		return exchange.Document{}, nil, err
	}
	if a.typ != "" && doc.Type != a.cfg.Type {
		return exchange.Document{}, nil, fmt.Errorf("%w: document is %s, --type is %s", errConfig, doc.Type, a.cfg.Type)
	}
	s, err := exchange.Import(doc)
	if err != nil {
		a.logger.Warn("orbiloop: rejected document", "file", file, "error", err)
		return doc, nil, err
	}

	return doc, s, nil
}
