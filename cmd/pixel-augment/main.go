package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/pixel-augment/internal/imgconv"
	"github.com/ironsheep/pixel-augment/internal/tensor"
	"github.com/ironsheep/pixel-augment/internal/transform"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixel-augment %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Configure logging to stderr (stdout stays clean for shell pipelines)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("PIXEL_AUGMENT_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("pixel-augment v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	var (
		inPath     = flag.String("in", "", "input image file (required)")
		outPath    = flag.String("out", "", "output image file (required)")
		effect     = flag.String("effect", "", "effect to apply: snow, cutout or normalize (required)")
		width      = flag.Int("width", 0, "resize input to this width before the effect (0 = keep)")
		height     = flag.Int("height", 0, "resize input to this height before the effect (0 = keep)")
		snowPoint  = flag.Float64("snow-point", 0.2, "snow: amount of the lightness range to bleach (0-1)")
		brightness = flag.Float64("brightness", 2.5, "snow: lightness multiplier for bleached pixels")
		holesSpec  = flag.String("holes", "", "cutout: holes as \"x1,y1,x2,y2;x1,y1,x2,y2;...\"")
		fill       = flag.Float64("fill", 0, "cutout: fill value for masked pixels")
		meanSpec   = flag.String("mean", "0", "normalize: mean, scalar or comma-separated per channel")
		stdSpec    = flag.String("std", "1", "normalize: std, scalar or comma-separated per channel")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" || *effect == "" {
		printUsage()
		os.Exit(2)
	}

	img, err := imgconv.Load(*inPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *inPath, err)
	}
	if *width > 0 && *height > 0 {
		img, err = imgconv.Resize(img, *width, *height)
		if err != nil {
			log.Fatalf("Failed to resize: %v", err)
		}
	}
	if debug {
		c, h, w := img.Shape()
		log.Printf("Loaded %s: %dx%d, %d channels", *inPath, w, h, c)
	}

	var result *tensor.Tensor
	switch *effect {
	case "snow":
		result, err = transform.AddSnow(img, *snowPoint, *brightness)
	case "cutout":
		var holes []transform.Hole
		holes, err = parseHoles(*holesSpec)
		if err == nil {
			result, err = transform.Cutout(img, holes, *fill)
		}
	case "normalize":
		var mean, std []float64
		if mean, err = parseFloats(*meanSpec); err == nil {
			if std, err = parseFloats(*stdSpec); err == nil {
				result, err = transform.Normalize(img, mean, std)
			}
		}
		if err == nil {
			// Normalized values are unbounded statistics; clamp to a
			// displayable [0,1] range for the output file.
			result = transform.Clip(result, tensor.Float32, 1)
		}
	default:
		log.Fatalf("Unknown effect %q (want snow, cutout or normalize)", *effect)
	}
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", *effect, err)
	}

	if err := imgconv.Save(result, *outPath); err != nil {
		log.Fatalf("Failed to save %s: %v", *outPath, err)
	}
	if debug {
		log.Printf("Wrote %s", *outPath)
	}
}

func printUsage() {
	fmt.Println("pixel-augment - pixel-level augmentation effects for image files")
	fmt.Println()
	fmt.Println("Usage: pixel-augment -in FILE -out FILE -effect NAME [options]")
	fmt.Println()
	fmt.Println("Effects:")
	fmt.Println("  snow         Bleach dark lightness regions (-snow-point, -brightness)")
	fmt.Println("  cutout       Mask rectangular regions (-holes, -fill)")
	fmt.Println("  normalize    Per-channel (x-mean)/std rescaling (-mean, -std)")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PIXEL_AUGMENT_LOG_LEVEL=debug    Enable debug logging")
}

// parseHoles parses "x1,y1,x2,y2" rectangles separated by semicolons.
func parseHoles(spec string) ([]transform.Hole, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("cutout needs at least one hole, pass -holes")
	}
	var holes []transform.Hole
	for _, part := range strings.Split(spec, ";") {
		fields := strings.Split(strings.TrimSpace(part), ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("invalid hole %q: want x1,y1,x2,y2", part)
		}
		coords := make([]int, 4)
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("invalid hole coordinate %q: %w", f, err)
			}
			coords[i] = v
		}
		holes = append(holes, transform.Hole{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]})
	}
	return holes, nil
}

// parseFloats parses a comma-separated list of floats.
func parseFloats(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
