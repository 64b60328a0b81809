// Command motiondemo annotates a still image with a scripted motion
// stroke and exports a looping warp animation.
//
// Environment configuration (prefix MOTIONDEMO_):
//
//	MOTIONDEMO_FFMPEG   path to the ffmpeg binary (default "ffmpeg")
//	MOTIONDEMO_FORMAT   output container: webm, mp4 or gif (default webm)
//	MOTIONDEMO_WORKERS  regeneration worker bound (default GOMAXPROCS)
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/zedczegh/starmotion"
	"github.com/zedczegh/starmotion/encoder"
	"github.com/zedczegh/starmotion/surface"
)

type config struct {
	FFmpeg  string `default:"ffmpeg"`
	Format  string `default:"webm"`
	Workers int    `default:"0"`
}

func main() {
	var (
		input    = flag.String("input", "sky.png", "source PNG image")
		outDir   = flag.String("out", ".", "output directory")
		rate     = flag.Int("rate", 30, "export frame rate")
		duration = flag.Float64("duration", 2, "loop duration in seconds")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	var cfg config
	if err := envconfig.Process("motiondemo", &cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	if *verbose {
		starmotion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := starmotion.LoadPNG(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	dst := surface.NewImageSurface(src.Width(), src.Height())
	defer func() {
		_ = dst.Close()
	}()
	eng := starmotion.NewEngine(src, dst, starmotion.WithWorkers(cfg.Workers))

	drawDemoStrokes(eng, src.Width(), src.Height())

	result, err := eng.Export(context.Background(), &encoder.FFmpeg{Path: cfg.FFmpeg}, starmotion.ExportRequest{
		Format:          cfg.Format,
		FrameRate:       *rate,
		DurationSeconds: *duration,
	})
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	out := filepath.Join(*outDir, result.Filename)
	if err := os.WriteFile(out, result.Blob, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}
	log.Printf("Exported %d frames to %s (%d bytes)\n", result.FrameCount, out, len(result.Blob))
}

// drawDemoStrokes sweeps one motion trail across the upper third of
// the image and paints a range band around it.
func drawDemoStrokes(eng *starmotion.Engine, w, h int) {
	y := float64(h) / 3

	eng.PointerDown(starmotion.ToolMotion, starmotion.Pt(float64(w)*0.15, y))
	for x := 0.2; x <= 0.85; x += 0.05 {
		eng.PointerMove(starmotion.Pt(float64(w)*x, y-float64(h)*0.02*x))
	}
	eng.PointerUp()

	eng.PointerDown(starmotion.ToolRange, starmotion.Pt(float64(w)*0.15, y))
	for x := 0.2; x <= 0.85; x += 0.05 {
		eng.PointerMove(starmotion.Pt(float64(w)*x, y))
	}
	eng.PointerUp()
}
