// Command isovox renders a TOML voxel scene to an isometric image.
//
// Usage:
//
//	isovox -model scene.toml -out scene.png
//	isovox -model scene.toml -all -out spin.gif -delay 50
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/lumberjack"

	"github.com/gogpu/isovox"
	"github.com/gogpu/isovox/model"
	"github.com/gogpu/isovox/snapshot"
)

type config struct {
	model    string
	out      string
	rotation int
	all      bool
	scale    int
	caption  string
	delay    int

	verbose    bool
	logfile    string
	logMaxSize int
	logMaxAge  int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.model, "model", "", "scene file (TOML, required)")
	flag.StringVar(&cfg.out, "out", "isovox.png", "output file; the extension picks the format (png, bmp, tif, gif)")
	flag.IntVar(&cfg.rotation, "rotation", -1, "view rotation 0-3 (-1 keeps the scene's)")
	flag.BoolVar(&cfg.all, "all", false, "render all four rotations")
	flag.IntVar(&cfg.scale, "scale", 2, "integer upscaling factor")
	flag.StringVar(&cfg.caption, "caption", "", "caption drawn above the image")
	flag.IntVar(&cfg.delay, "delay", 100, "GIF frame delay in 1/100 s")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.StringVar(&cfg.logfile, "logfile", "", "write logs to this rotating file instead of stderr")
	flag.IntVar(&cfg.logMaxSize, "log-max-size", 10, "log file size in megabytes before rotation")
	flag.IntVar(&cfg.logMaxAge, "log-max-age", 7, "days to keep rotated log files")
	flag.Parse()

	logger, closer := newLogger(cfg)
	isovox.SetLogger(logger)

	err := run(cfg, logger)
	if err != nil {
		logger.Error("isovox: failed", "err", err)
	}
	if closer != nil {
		_ = closer.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds the command logger. With a log file the output goes
// through lumberjack and the returned closer must be closed on exit.
func newLogger(cfg config) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.logfile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	}
	l := &lumberjack.Logger{
		Filename: cfg.logfile,
		MaxSize:  cfg.logMaxSize, // megabytes
		MaxAge:   cfg.logMaxAge,  // days
	}
	return slog.New(slog.NewTextHandler(l, opts)), l
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.model == "" {
		return fmt.Errorf("-model is required")
	}
	gif := strings.EqualFold(filepath.Ext(cfg.out), ".gif")
	if !gif {
		if _, err := snapshot.FormatFromPath(cfg.out); err != nil {
			return err
		}
	}

	m, err := model.Load(cfg.model)
	if err != nil {
		return err
	}
	v, err := m.New()
	if err != nil {
		return err
	}
	flushes := m.Apply(v)

	dx, dy, dz := v.Dims()
	logger.Info("isovox: scene loaded",
		"path", cfg.model,
		"dims", fmt.Sprintf("%dx%dx%d", dx, dy, dz),
		"boxes", len(m.Boxes),
		"voxels", humanize.Comma(int64(dx*dy*dz)),
		"implicitFlushes", flushes)

	rotations := []int{v.Rotation()}
	switch {
	case cfg.all:
		rotations = []int{0, 1, 2, 3}
	case cfg.rotation >= 0:
		rotations = []int{cfg.rotation & 3}
	}

	frames := make([]image.Image, 0, len(rotations))
	for _, r := range rotations {
		v.SetRotation(r)
		v.Flush()
		s := v.LastFlush()
		logger.Debug("isovox: rendered",
			"rotation", r, "full", s.Full, "shaded", s.Shaded, "rendered", s.Rendered)
		frames = append(frames, compose(v.Bitmap(), cfg.scale, captionText(cfg, r)))
	}

	if gif {
		return save(logger, cfg.out, func(path string) error {
			return snapshot.SaveGIF(path, frames, cfg.delay)
		})
	}
	for i, frame := range frames {
		path := cfg.out
		if cfg.all {
			path = suffixed(cfg.out, rotations[i])
		}
		err := save(logger, path, func(path string) error {
			return snapshot.Save(path, frame)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func captionText(cfg config, r int) string {
	if !cfg.all {
		return cfg.caption
	}
	return strings.TrimSpace(fmt.Sprintf("%s r%d", cfg.caption, r))
}

// compose scales the bitmap and, when text is set, prepends a caption band.
func compose(b *isovox.Bitmap, scale int, text string) image.Image {
	img := snapshot.Scale(b, scale)
	if text == "" {
		return img
	}

	band := snapshot.CaptionHeight() + 4
	r := img.Bounds()
	out := snapshot.Viewport(img, image.Rect(0, -band, r.Dx(), r.Dy()))
	snapshot.Caption(out, image.Pt(2, band-4), text, color.White)
	return out
}

// suffixed inserts "-rN" before the extension of path.
func suffixed(path string, r int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-r%d%s", strings.TrimSuffix(path, ext), r, ext)
}

func save(logger *slog.Logger, path string, write func(string) error) error {
	if err := write(path); err != nil {
		return err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	logger.Info("isovox: wrote", "path", path, "size", humanize.Bytes(uint64(fi.Size())))
	return nil
}
