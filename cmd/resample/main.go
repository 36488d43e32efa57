// Command resample scales or rotates an image file with a cubic filter.
//
// Usage:
//
//	resample -input photo.png -output half.png -scale 0.5
//	resample -input photo.jpg -output thumb.jpg -width 160 -height 120 -filter mitchell
//	resample -input photo.png -output tilted.png -rotate 15
//	resample -input frame.raw -rawformat GrayF32 -rawsize 640x480 -output frame2x.raw -scale 2
//
//	resample -input - -output - -crop 10,10,200,100 -scale 2 < in.png > out.png
//
// Raw files hold tightly packed rows in the named pixel format. A .raw output
// is written the same way, in the input's format. "-" reads stdin or writes a
// PNG to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/resample"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (PNG, JPEG, BMP or TIFF), - for stdin")
		output  = flag.String("output", "out.png", "output file (.png, .jpg or .raw), - for PNG on stdout")
		cropArg = flag.String("crop", "", "crop the input to X,Y,WIDTH,HEIGHT before resampling")
		width   = flag.Int("width", 0, "output width in pixels")
		height  = flag.Int("height", 0, "output height in pixels")
		scale   = flag.Float64("scale", 0, "scale factor, used when width and height are not set")
		rotate  = flag.Float64("rotate", 0, "rotation in degrees about the image center")
		filter  = flag.String("filter", "catmull-rom", "cubic filter: catmull-rom, mitchell, bspline or hermite")
		coeffB  = flag.Float64("b", math.NaN(), "B coefficient, overrides -filter")
		coeffC  = flag.Float64("c", math.NaN(), "C coefficient, overrides -filter")
		mode    = flag.String("mode", "full", "resize mode: full or separable")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		quality = flag.Int("quality", 90, "JPEG quality")
		verbose = flag.Bool("v", false, "log driver activity")
		rawFmt  = flag.String("rawformat", "", "read -input as raw pixels in this format (Gray8, RGBA8, GrayF32, ...)")
		rawSize = flag.String("rawsize", "", "raw input size, WIDTHxHEIGHT")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		resample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	coeffs, err := parseFilter(*filter)
	if err != nil {
		log.Fatal(err)
	}
	if !math.IsNaN(*coeffB) {
		coeffs.B = *coeffB
	}
	if !math.IsNaN(*coeffC) {
		coeffs.C = *coeffC
	}
	m, err := parseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	src, err := load(*input, *rawFmt, *rawSize)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}
	if *cropArg != "" {
		if src, err = crop(src, *cropArg); err != nil {
			log.Fatal(err)
		}
	}

	dstW, dstH, err := targetSize(src.Width(), src.Height(), *width, *height, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []resample.Option{
		resample.WithCoefficients(coeffs),
		resample.WithMode(m),
		resample.WithWorkers(*workers),
	}

	start := time.Now()
	var dst *resample.ImageBuf
	if *rotate != 0 {
		dst, err = rotateResize(ctx, src, dstW, dstH, *rotate, opts)
	} else {
		dst, err = resample.Resize(ctx, src, dstW, dstH, opts...)
	}
	if err != nil {
		log.Fatalf("Failed to resample: %v (status %v)", err, resample.StatusOf(err))
	}
	elapsed := time.Since(start)

	if err := save(dst, *output, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%s: %d×%d → %d×%d, %d pixels, %v, %v\n",
		*output, src.Width(), src.Height(), dstW, dstH, dstW*dstH, coeffs, elapsed.Round(time.Millisecond))
	if *verbose {
		p.Fprintf(os.Stderr, "%v pixels, %s\n", dst.Format(), textureSummary(dst.Format()))
	}
}

// textureSummary describes how a result in format f would be uploaded to a GPU.
func textureSummary(f resample.Format) string {
	tf := f.TextureFormat()
	if tf == gputypes.TextureFormatUndefined {
		return "no matching GPU texture format, convert before upload"
	}
	return fmt.Sprintf("uploads as GPU texture format %v", tf)
}

// crop parses "X,Y,WIDTH,HEIGHT" and returns that region of img as a view.
func crop(img *resample.ImageBuf, spec string) (*resample.ImageBuf, error) {
	var x, y, w, h int
	if _, err := fmt.Sscanf(spec, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
		return nil, fmt.Errorf("invalid crop %q: %w", spec, err)
	}
	sub := img.SubImage(x, y, w, h)
	if sub == nil {
		return nil, fmt.Errorf("crop %q is outside the %dx%d image", spec, img.Width(), img.Height())
	}
	return sub, nil
}

// rotateResize maps the destination onto the source by scaling and rotating
// about both image centers, then warps.
func rotateResize(ctx context.Context, src *resample.ImageBuf, w, h int, degrees float64, opts []resample.Option) (*resample.ImageBuf, error) {
	sx := float64(src.Width()) / float64(w)
	sy := float64(src.Height()) / float64(h)

	// dst pixel -> centered dst -> scaled -> rotated back -> src pixel.
	toCenter := resample.Translate(-(float64(w)-1)/2, -(float64(h)-1)/2)
	fromCenter := resample.Translate((float64(src.Width())-1)/2, (float64(src.Height())-1)/2)
	rot := resample.RotateAt(-degrees*math.Pi/180, 0, 0)

	m := resample.Multiply(fromCenter, resample.Multiply(rot, resample.Multiply(resample.Scale(sx, sy), toCenter)))
	return resample.Warp(ctx, src, w, h, m, opts...)
}

func parseFilter(name string) (resample.Coefficients, error) {
	switch strings.ToLower(name) {
	case "catmull-rom", "catmullrom", "cubic":
		return resample.CatmullRom, nil
	case "mitchell":
		return resample.Mitchell, nil
	case "bspline", "b-spline":
		return resample.BSpline, nil
	case "hermite":
		return resample.Hermite, nil
	default:
		return resample.Coefficients{}, fmt.Errorf("unknown filter %q", name)
	}
}

func parseMode(name string) (resample.Mode, error) {
	switch strings.ToLower(name) {
	case "full", "2d":
		return resample.ModeFull, nil
	case "separable":
		return resample.ModeSeparable, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

// targetSize resolves the output size. A single given dimension keeps the
// aspect ratio; with neither given, scale applies to both.
func targetSize(srcW, srcH, w, h int, scale float64) (int, int, error) {
	switch {
	case w > 0 && h > 0:
		return w, h, nil
	case w > 0:
		return w, max(1, int(math.Round(float64(srcH)*float64(w)/float64(srcW)))), nil
	case h > 0:
		return max(1, int(math.Round(float64(srcW)*float64(h)/float64(srcH)))), h, nil
	case scale > 0:
		return max(1, int(math.Round(float64(srcW)*scale))), max(1, int(math.Round(float64(srcH)*scale))), nil
	case w == 0 && h == 0 && scale == 0:
		return srcW, srcH, nil
	default:
		return 0, 0, fmt.Errorf("invalid output size %dx%d, scale %v", w, h, scale)
	}
}

func load(path, rawFormat, rawSize string) (*resample.ImageBuf, error) {
	if rawFormat == "" {
		if path == "-" {
			data, err := readInput(path)
			if err != nil {
				return nil, err
			}
			return resample.LoadImageFromBytes(data)
		}
		return resample.LoadImage(path)
	}
	format, ok := resample.ParseFormat(rawFormat)
	if !ok {
		return nil, fmt.Errorf("unknown raw format %q", rawFormat)
	}
	var w, h int
	if _, err := fmt.Sscanf(rawSize, "%dx%d", &w, &h); err != nil {
		return nil, fmt.Errorf("invalid raw size %q: %w", rawSize, err)
	}
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return resample.FromRaw(data, w, h, format, format.RowBytes(w))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func save(img *resample.ImageBuf, path string, quality int) error {
	if path == "-" {
		data, err := img.EncodeToBytes()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".raw":
		return os.WriteFile(path, img.Data(), 0o644)
	case ".jpg", ".jpeg":
		return img.SaveJPEG(path, quality)
	default:
		return img.SavePNG(path)
	}
}
