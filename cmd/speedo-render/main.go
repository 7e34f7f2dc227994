// Command speedo-render draws speedometer gauges to PNG files.
//
//	speedo-render -value 120 -o gauge.png
//	speedo-render -frames 31 -o frames/speed.png
//
// With -frames the value sweeps from 0 to max and one file per frame is
// written next to -o, numbered speed_000.png, speed_001.png, ...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"golang.org/x/sync/errgroup"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/fontface"
	"github.com/roffe/speedo/pkg/gaugeconfig"
	"github.com/roffe/speedo/pkg/raster"
	"github.com/roffe/speedo/pkg/speedometer"
)

type options struct {
	configFile string
	out        string
	size       int
	value      float64
	maxValue   float64
	frames     int
	background string
	openResult bool
	dumpConfig bool
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	var o options
	flag.StringVar(&o.configFile, "config", "", "config file (default: "+gaugeconfig.CONFFILE+" in the config folder)")
	flag.StringVar(&o.out, "o", "speedometer.png", "output file")
	flag.IntVar(&o.size, "size", speedometer.PreferredSize, "image side in pixels")
	flag.Float64Var(&o.value, "value", 0, "value to show")
	flag.Float64Var(&o.maxValue, "max", 0, "scale maximum, overrides the config file")
	flag.IntVar(&o.frames, "frames", 0, "render a sweep of this many frames from 0 to max")
	flag.StringVar(&o.background, "bg", "#171718", "background color")
	flag.BoolVar(&o.openResult, "open", false, "open the result when done")
	flag.BoolVar(&o.dumpConfig, "dump-config", false, "print the effective config as TOML and exit")
	flag.Parse()

	if err := run(context.Background(), o); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, o options) error {
	file, err := loadConfig(o.configFile)
	if err != nil {
		return err
	}
	opts, err := file.Options()
	if err != nil {
		return err
	}
	if o.maxValue != 0 {
		opts = append(opts, speedometer.WithMax(o.maxValue))
	}
	bg, err := colors.Parse(o.background)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}
	if o.size <= 0 {
		return fmt.Errorf("-size must be positive")
	}

	fonts, err := fontface.New()
	if err != nil {
		return err
	}
	defer fonts.Close()

	g, err := speedometer.New(fonts, opts...)
	if err != nil {
		return err
	}
	cfg := g.Config()

	if o.dumpConfig {
		return gaugeconfig.FromConfig(cfg, g.Value()).Write(os.Stdout)
	}

	if o.frames <= 0 {
		g.SetValue(o.value)
		if err := raster.SavePNG(o.out, g, fonts, o.size, bg); err != nil {
			return err
		}
		log.Println("wrote", o.out)
		return openResult(o, o.out)
	}

	names := frameNames(o.out, o.frames)
	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(runtime.NumCPU())
	for i, name := range names {
		value := frameValue(i, o.frames, cfg.Max)
		errg.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			// faces are not safe for concurrent drawing, every frame gets its own
			ff, err := fontface.New()
			if err != nil {
				return err
			}
			defer ff.Close()
			fg, err := speedometer.New(ff, speedometer.WithConfig(cfg), speedometer.WithValue(value))
			if err != nil {
				return err
			}
			return raster.SavePNG(name, fg, ff, o.size, bg)
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	log.Printf("wrote %d frames to %s", len(names), filepath.Dir(o.out))
	return openResult(o, filepath.Dir(o.out))
}

func loadConfig(path string) (*gaugeconfig.File, error) {
	if path != "" {
		return gaugeconfig.Load(path)
	}
	return gaugeconfig.LoadDefault()
}

func openResult(o options, path string) error {
	if !o.openResult {
		return nil
	}
	return open.Run(path)
}

// frameValue spreads frames evenly over [0, max], first and last included.
func frameValue(i, frames int, maxValue float64) float64 {
	if frames <= 1 {
		return maxValue
	}
	return maxValue * float64(i) / float64(frames-1)
}

func frameNames(out string, frames int) []string {
	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	if ext == "" {
		ext = ".png"
	}
	names := make([]string, frames)
	for i := range names {
		names[i] = fmt.Sprintf("%s_%03d%s", base, i, ext)
	}
	return names
}
