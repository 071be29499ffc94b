package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"github.com/sketchvec/contour"
	"github.com/sketchvec/contour/utils"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image (file or directory)")
	destination = flag.String("out", "", "Destination (file or directory); .svg or .png")
	low         = flag.Float64("low", 10, "Hysteresis low threshold")
	high        = flag.Float64("high", 50, "Hysteresis high threshold")
	simplify    = flag.Float64("simplify", 1, "Path simplification stride")
	minLength   = flag.Int("minlen", 4, "Minimum traced path length in pixels")
	maxDim      = flag.Int("maxdim", 0, "Downscale longest image side to this size before tracing (0 = off)")
	lineWidth   = flag.Float64("width", 1, "Stroke width of the output polylines")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal().Msg("Usage: contour -in input.png -out traced.svg")
	}
	if *low > *high {
		log.Fatal().Float64("low", *low).Float64("high", *high).
			Msg("low threshold must not exceed high threshold")
	}

	fs, err := os.Stat(*source)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open source")
	}

	toProcess := make(map[string]string)

	switch mode := fs.Mode(); {
	case mode.IsDir():
		// Supported image files.
		extensions := []string{".jpg", ".jpeg", ".png", ".webp"}

		files, err := os.ReadDir(*source)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read source dir")
		}
		dst, err := os.Stat(*destination)
		if err != nil || !dst.Mode().IsDir() {
			log.Fatal().Msg("please specify a directory as destination")
		}

		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Name()))
			for _, iex := range extensions {
				if ext == iex {
					name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
					in := filepath.Join(*source, f.Name())
					out := filepath.Join(*destination, name+".svg")
					toProcess[in] = out
				}
			}
		}

	case mode.IsRegular():
		toProcess[*source] = *destination
	}

	proc := &contour.Processor{
		LowThreshold:   *low,
		HighThreshold:  *high,
		SimplifyFactor: *simplify,
		MinPathLength:  *minLength,
	}

	for in, out := range toProcess {
		if err := trace(proc, in, out); err != nil {
			log.Fatal().Err(err).Str("file", in).Msg("tracing failed")
		}
	}
}

func trace(proc *contour.Processor, in, out string) error {
	file, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("unable to open source file: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("unable to decode image: %w", err)
	}

	var spinner *utils.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spinner = utils.NewSpinner()
		spinner.Start("Tracing edges...")
	}
	start := time.Now()

	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	scaled := contour.Downscale(src, *maxDim)

	paths, err := proc.ProcessImage(scaled)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return err
	}
	if sw, sh := scaled.Bounds().Dx(), scaled.Bounds().Dy(); sw != width || sh != height {
		paths = paths.Scale(float64(width)/float64(sw), float64(height)/float64(sh))
	}

	if spinner != nil {
		spinner.Stop()
	}
	log.Debug().Int("paths", len(paths)).Int("points", paths.Points()).Msg("traced")

	if err := write(paths, width, height, out); err != nil {
		return err
	}
	log.Info().
		Str("in", in).Str("out", out).
		Int("paths", len(paths)).
		Str("took", utils.FormatTime(time.Since(start))).
		Msg("done")
	return nil
}

func write(paths contour.PathSet, width, height int, out string) error {
	fq, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer fq.Close()

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		renderer := &contour.Renderer{LineWidth: *lineWidth}
		return png.Encode(fq, renderer.Draw(paths, width, height))
	default:
		svg := &contour.SVG{
			Title:       filepath.Base(out),
			Description: "Edge tracing guides",
			StrokeWidth: *lineWidth,
		}
		return svg.WriteSVG(fq, paths, width, height)
	}
}
