// Command emojicap generates emoji image challenges from a directory of
// glyph bitmaps.
//
// Usage:
//
//	emojicap -assets ./emojis -display 5 -keyboard 10 -out captcha.png
//	emojicap -assets ./emojis -count 100 -out ./challenges
//	emojicap -assets ./emojis -list
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/gogpu/emojicap"
	"github.com/gogpu/emojicap/backend"
	_ "github.com/gogpu/emojicap/backend/canvas" // register canvas renderer
	"github.com/gogpu/emojicap/internal/cache"
	"github.com/gogpu/emojicap/internal/config"
	"github.com/gogpu/emojicap/metrics"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("emojicap: %v", err)
	}
}

// manifestEntry is one line of the batch manifest.
type manifestEntry struct {
	ID        string   `json:"id"`
	File      string   `json:"file"`
	Correct   string   `json:"correct"`
	Displayed []string `json:"displayed"`
	Keyboard  []string `json:"keyboard"`
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("emojicap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		assets     = fs.String("assets", "", "directory of <hex code point>.<ext> glyph files")
		ext        = fs.String("ext", "", "glyph file extension")
		display    = fs.Int("display", 0, "glyphs shown on the image")
		keyboard   = fs.Int("keyboard", 0, "glyphs offered on the keyboard")
		out        = fs.String("out", "", "output PNG file, or directory when -count > 1")
		count      = fs.Int("count", 0, "number of challenges to generate")
		backendArg = fs.String("backend", "", "renderer: "+strings.Join(backend.Available(), ", "))
		seed       = fs.Uint64("seed", 0, "random seed for reproducible output (0 = random)")
		list       = fs.Bool("list", false, "list the glyph catalog and exit")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags given explicitly override file and environment values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.Assets.Dir = *assets
		case "ext":
			cfg.Assets.Extension = *ext
		case "display":
			cfg.Challenge.Display = *display
		case "keyboard":
			cfg.Challenge.Keyboard = *keyboard
		case "out":
			cfg.Output.Path = *out
		case "count":
			cfg.Output.Count = *count
		case "backend":
			cfg.Backend = *backendArg
		case "seed":
			cfg.Challenge.Seed = *seed
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	emojicap.SetLogger(newLogger(stderr, cfg.LogLevel))

	catalog := emojicap.LoadCatalog(cfg.Assets.Dir, cfg.Assets.Extension)
	if *list {
		for _, id := range catalog.IDs() {
			fmt.Fprintln(stdout, emojicap.FormatGlyph(id))
		}
		return nil
	}

	renderer, err := backend.Get(cfg.Backend)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	col := metrics.NewCollector(reg)
	col.SetCatalogSize(catalog.Len())

	composer := emojicap.NewComposer(catalog,
		emojicap.WithRenderer(renderer),
		emojicap.WithObserver(col),
		emojicap.WithLayout(emojicap.Layout{
			Width:   cfg.Challenge.Width,
			Height:  cfg.Challenge.Height,
			Spacing: cfg.Challenge.Spacing,
		}),
		emojicap.WithBackground(gg.Hex(cfg.Challenge.Background).Color()),
	)

	var rng emojicap.Rand
	if cfg.Challenge.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Challenge.Seed, cfg.Challenge.Seed))
	}

	if cfg.Output.Count == 1 {
		ch, err := composer.Generate(rng, cfg.Challenge.Display, cfg.Challenge.Keyboard)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.Path, ch.Image, 0o644); err != nil {
			return fmt.Errorf("writing challenge: %w", err)
		}
		printChallenge(stdout, cfg.Output.Path, ch)
		return nil
	}

	if err := writeBatch(stdout, composer, rng, cfg); err != nil {
		return err
	}
	if cs, ok := renderer.(interface{ CacheStats() cache.Stats }); ok {
		st := cs.CacheStats()
		emojicap.Logger().Debug("sprite cache", "entries", st.Len, "hit_rate", st.HitRate())
	}
	return writeMetrics(filepath.Join(cfg.Output.Path, "metrics.prom"), reg)
}

// writeMetrics dumps the gathered metrics in the Prometheus text format.
func writeMetrics(path string, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(f, mf); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return f.Close()
}

// writeBatch writes cfg.Output.Count challenges named by UUID into the
// output directory, with one manifest line per challenge.
func writeBatch(stdout io.Writer, composer *emojicap.Composer, rng emojicap.Rand, cfg *config.Config) error {
	dir := cfg.Output.Path
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var enc *json.Encoder
	if cfg.Output.Manifest {
		f, err := os.Create(filepath.Join(dir, "manifest.jsonl"))
		if err != nil {
			return fmt.Errorf("creating manifest: %w", err)
		}
		defer func() { _ = f.Close() }()
		enc = json.NewEncoder(f)
	}

	for range cfg.Output.Count {
		ch, err := composer.Generate(rng, cfg.Challenge.Display, cfg.Challenge.Keyboard)
		if err != nil {
			return err
		}

		id := uuid.NewString()
		name := id + ".png"
		if err := os.WriteFile(filepath.Join(dir, name), ch.Image, 0o644); err != nil {
			return fmt.Errorf("writing challenge %s: %w", id, err)
		}

		if enc != nil {
			entry := manifestEntry{
				ID:        id,
				File:      name,
				Correct:   fmt.Sprintf("%U", ch.Correct),
				Displayed: codePoints(ch.Displayed),
				Keyboard:  codePoints(ch.Keyboard),
			}
			if err := enc.Encode(entry); err != nil {
				return fmt.Errorf("writing manifest: %w", err)
			}
		}
	}

	fmt.Fprintf(stdout, "wrote %d challenges to %s\n", cfg.Output.Count, dir)
	return nil
}

func printChallenge(w io.Writer, path string, ch *emojicap.Challenge) {
	fmt.Fprintf(w, "image:     %s\n", path)
	fmt.Fprintf(w, "correct:   %s\n", emojicap.FormatGlyph(ch.Correct))
	fmt.Fprintln(w, "displayed:")
	for _, id := range ch.Displayed {
		fmt.Fprintf(w, "  %s\n", emojicap.FormatGlyph(id))
	}
	fmt.Fprintln(w, "keyboard:")
	for _, id := range ch.Keyboard {
		fmt.Fprintf(w, "  %s\n", emojicap.FormatGlyph(id))
	}
}

func codePoints(ids []rune) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%U", id)
	}
	return out
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
