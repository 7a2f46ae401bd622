// Command stereoconv converts coordinates between latitude/longitude and a
// stereographic projection. It reads one coordinate pair per line from
// stdin and writes the converted pair to stdout.
//
//	echo "40 -105" | stereoconv -latt 45 -lont -100 -lat-true 60
//	echo "-402.1 -560.3" | stereoconv -latt 45 -lont -100 -inverse
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tzneal/stereo"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "stereoconv:", err)
		os.Exit(1)
	}
}

type config struct {
	latt, lont float64
	scale      float64
	latTrue    float64
	polar      bool
	latts      float64
	south      bool
	fe, fn     float64
	radius     float64
	inverse    bool
	params     bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("stereoconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&c.latt, "latt", 90, "tangent latitude, degrees")
	fs.Float64Var(&c.lont, "lont", -105, "tangent longitude, degrees")
	fs.Float64Var(&c.scale, "scale", 1, "scale factor at the tangent point")
	fs.Float64Var(&c.latTrue, "lat-true", math.NaN(), "latitude of true scale, degrees; overrides -scale")
	fs.BoolVar(&c.polar, "polar", false, "polar projection with scale from -latts")
	fs.Float64Var(&c.latts, "latts", 90, "latitude of the natural origin for -polar, degrees")
	fs.BoolVar(&c.south, "south", false, "south pole for -polar")
	fs.Float64Var(&c.fe, "fe", 0, "false easting, km")
	fs.Float64Var(&c.fn, "fn", 0, "false northing, km")
	fs.Float64Var(&c.radius, "radius", stereo.EarthRadius, "earth radius, km")
	fs.BoolVar(&c.inverse, "inverse", false, "convert x y to lat lon")
	fs.BoolVar(&c.params, "params", false, "print the projection parameters and exit")
	fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

func (c config) projection() (*stereo.Stereographic, error) {
	opts := []stereo.Option{stereo.WithFalseOrigin(c.fe, c.fn)}
	var p *stereo.Stereographic
	switch {
	case c.polar:
		h := stereo.HemisphereNorth
		if c.south {
			h = stereo.HemisphereSouth
		}
		p = stereo.NewPolar(c.latts, c.latt, c.lont, h, opts...)
	case !math.IsNaN(c.latTrue):
		p = stereo.NewTrueScale(c.latt, c.lont, c.latTrue, opts...)
	default:
		// NewStereographic reads a zero scale as 1
		if !(c.scale > 0) || math.IsInf(c.scale, 0) {
			return nil, fmt.Errorf("%w: %v", stereo.ErrInvalidScale, c.scale)
		}
		p = stereo.NewStereographic(c.latt, c.lont, c.scale, opts...)
	}
	// rebuild through the builder to reject a bad radius or tangent latitude
	return stereo.From(p).SetEarthRadius(c.radius).Build()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if c.verbose {
		stereo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer stereo.SetLogger(nil)
	}

	p, err := c.projection()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	if c.params {
		for _, param := range p.Parameters() {
			fmt.Fprintf(w, "%s = %v\n", param.Name, param.Value)
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, b, err := parsePair(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		var u, v float64
		if c.inverse {
			u, v = p.Inverse(a, b)
		} else {
			u, v = p.Forward(a, b)
		}
		fmt.Fprintf(w, "%s %s\n", formatFloat(u), formatFloat(v))
	}
	return sc.Err()
}

func parsePair(text string) (float64, float64, error) {
	fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 values, got %d", len(fields))
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
