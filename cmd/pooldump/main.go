// Diagnostic tool for inspecting ISOBUS VT object pool files.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/open-agri/go-vtpool/vtpool"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	permissive := flag.Bool("permissive", false, "stop at the first unsupported object instead of failing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pooldump [-config pooldump.toml] [-permissive] <pool.iop>")
		os.Exit(2)
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *permissive {
		cfg.Permissive = true
	}

	logger := initLogger(cfg.LogLevel)

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("failed to read pool file")
		os.Exit(1)
	}

	opts := []vtpool.Option{vtpool.WithEmitter(vtpool.NewZerologEmitter(logger))}
	if cfg.Permissive {
		opts = append(opts, vtpool.WithPermissiveTypes())
	}

	pool := vtpool.New(opts...)
	if err := pool.Parse(data); err != nil {
		logger.Error().Err(err).Msg("object pool parse failed")
		os.Exit(1)
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(summarize(pool)); err != nil {
		logger.Error().Err(err).Msg("failed to encode summary")
		os.Exit(1)
	}
}

func initLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "pooldump").Logger()
}

// poolSummary is the YAML shape printed for a parsed pool.
type poolSummary struct {
	Version string          `yaml:"version"`
	Objects []objectSummary `yaml:"objects"`
}

type objectSummary struct {
	ID       string                 `yaml:"id"`
	Type     string                 `yaml:"type"`
	Children []childSummary         `yaml:"children,omitempty"`
	Keys     []string               `yaml:"keys,omitempty"`
	Macros   []uint16               `yaml:"macros,omitempty"`
	Detail   map[string]interface{} `yaml:"detail,omitempty"`
}

type childSummary struct {
	ID string `yaml:"id"`
	X  int16  `yaml:"x"`
	Y  int16  `yaml:"y"`
}

func summarize(pool *vtpool.Pool) poolSummary {
	version, _ := pool.Version()
	summary := poolSummary{Version: string(version)}
	for _, obj := range pool.Objects() {
		summary.Objects = append(summary.Objects, summarizeObject(obj))
	}
	return summary
}

func summarizeObject(obj vtpool.Object) objectSummary {
	s := objectSummary{
		ID:   hexID(obj.ObjectID()),
		Type: obj.ObjectType().String(),
	}

	switch o := obj.(type) {
	case *vtpool.WorkingSet:
		s.Children = childSummaries(o.Children())
		s.Macros = o.Macros()
		s.Detail = map[string]interface{}{
			"background_colour": o.BackgroundColour(),
			"selectable":        o.Selectable(),
			"active_mask":       hexID(o.ActiveMask()),
			"languages":         o.Languages(),
		}
	case *vtpool.AlarmMask:
		s.Children = childSummaries(o.Children())
		s.Macros = o.Macros()
		s.Detail = map[string]interface{}{
			"background_colour": o.BackgroundColour(),
			"soft_key_mask":     hexID(o.SoftKeyMask()),
			"priority":          o.Priority(),
			"acoustic_signal":   o.AcousticSignal(),
		}
	case *vtpool.DataMask:
		s.Children = childSummaries(o.Children())
		s.Macros = o.Macros()
		s.Detail = map[string]interface{}{
			"background_colour": o.BackgroundColour(),
			"soft_key_mask":     hexID(o.SoftKeyMask()),
		}
	case *vtpool.Container:
		s.Children = childSummaries(o.Children())
		s.Macros = o.Macros()
		s.Detail = map[string]interface{}{
			"width":  o.Width(),
			"height": o.Height(),
			"hidden": o.Hidden(),
		}
	case *vtpool.SoftKeyMask:
		s.Macros = o.Macros()
		for _, key := range o.Keys() {
			s.Keys = append(s.Keys, hexID(key))
		}
		s.Detail = map[string]interface{}{
			"background_colour": o.BackgroundColour(),
		}
	case *vtpool.Key:
		s.Children = childSummaries(o.Children())
		s.Macros = o.Macros()
		s.Detail = map[string]interface{}{
			"background_colour": o.BackgroundColour(),
			"key_code":          o.KeyCode(),
		}
	}
	return s
}

func childSummaries(children []vtpool.ChildRef) []childSummary {
	out := make([]childSummary, 0, len(children))
	for _, c := range children {
		out = append(out, childSummary{ID: hexID(c.ID), X: c.X, Y: c.Y})
	}
	return out
}

func hexID(id vtpool.ObjectID) string {
	return fmt.Sprintf("0x%04X", uint16(id))
}
