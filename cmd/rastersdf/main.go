// Command rastersdf converts a black and white, or alpha masked, image into a
// signed distance field PNG with white color and the field in the alpha channel.
//
//	rastersdf input-file output-file [options]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/soypat/rastersdf"
	"github.com/soypat/rastersdf/gleval"
	"github.com/soypat/rastersdf/gsdfaux"
	"github.com/soypat/rastersdf/resample"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type config struct {
	params  rastersdf.Parameters
	preview string
	verbose bool
	input   string
	output  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	} else if err != nil {
		fmt.Fprintln(stderr, "rastersdf:", err)
		return exitUsage
	}
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	rastersdf.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if err := generate(cfg); err != nil {
		fmt.Fprintln(stderr, "rastersdf:", err)
		return exitFail
	}
	return exitOK
}

func generate(cfg config) error {
	p := cfg.params
	if cfg.preview == "" {
		return rastersdf.GenerateFile(cfg.input, cfg.output, p)
	}
	// With a preview the field is kept in memory to render it a second time.
	if err := p.Validate(); err != nil {
		return err
	}
	img, err := rastersdf.Load(cfg.input)
	if err != nil {
		return err
	}
	field, err := rastersdf.Generate(img, p)
	if err != nil {
		return err
	}
	if err = rastersdf.Save(cfg.output, field, p.Depth16); err != nil {
		return err
	}
	sdf, err := gleval.NewFieldSDF2(field, p.Spread)
	if err != nil {
		return err
	}
	conv := gsdfaux.ColorConversionInigoQuilez(p.Spread)
	if err = gsdfaux.RenderPNGFile(cfg.preview, sdf, field.Width, conv); err != nil {
		return fmt.Errorf("writing preview %s: %w", cfg.preview, err)
	}
	return nil
}

// parseArgs parses flags interleaved with the two positional file arguments.
func parseArgs(args []string, stderr io.Writer) (cfg config, err error) {
	cfg.params = rastersdf.DefaultParameters()
	fs := flag.NewFlagSet("rastersdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	p := &cfg.params
	spread := float32Flag{&p.Spread}
	quality := float32Flag{&p.Quality}
	scale := float32Flag{&p.Scale}
	fs.Var(spread, "spread", "Spread of the distance field in output pixels.")
	fs.Var(spread, "p", "Shorthand for -spread.")
	fs.Var(quality, "quality", "Supersample the input by this factor before computing the field.")
	fs.Var(quality, "q", "Shorthand for -quality.")
	fs.Var(scale, "scale", "Scale the output by this factor after computing the field.")
	fs.Var(scale, "s", "Shorthand for -scale.")
	fs.BoolVar(&p.Invert, "invert", false, "Invert the input. Use when the shape is white or only defined by alpha.")
	fs.BoolVar(&p.Invert, "i", false, "Shorthand for -invert.")
	fs.BoolVar(&p.AutoSize, "autosize", false, "Pad the input so shapes touching the border get the full spread, trim the result.")
	fs.BoolVar(&p.AutoSize, "a", false, "Shorthand for -autosize.")
	fs.StringVar(&p.Filter, "filter", p.Filter, "Resampling filter: "+resample.NameLanczos+", "+resample.NameCatmullRom+" or "+resample.NameBiLinear+".")
	fs.BoolVar(&p.Depth16, "16", false, "Write 16 bit alpha.")
	fs.StringVar(&cfg.preview, "preview", "", "Also write a color visualization of the field to this PNG file.")
	fs.BoolVar(&cfg.verbose, "v", false, "Log pipeline stages.")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: rastersdf input-file output-file [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err = fs.Parse(args); err != nil {
			return cfg, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != 2 {
		fs.Usage()
		return cfg, fmt.Errorf("expected input and output file, got %d arguments", len(positional))
	}
	cfg.input, cfg.output = positional[0], positional[1]
	return cfg, nil
}

// float32Flag implements flag.Value for float32 parameters.
type float32Flag struct{ v *float32 }

func (f float32Flag) String() string {
	if f.v == nil {
		return ""
	}
	return fmt.Sprint(*f.v)
}

func (f float32Flag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f.v = float32(v)
	return nil
}
