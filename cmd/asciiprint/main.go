package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kevin-cantwell/asciiprint"
	"github.com/urfave/cli"
)

// Positional arguments of the legacy calling convention, after the file name.
var legacyArgs = []string{"ramp", "rotate", "contrast", "brightness", "pages", "pitch", "row-frequency", "page-width", "gap", "mirror"}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciiprint"
	app.Usage = "Converts an image to ASCII text sized for a fixed-pitch character printer."
	app.UsageText = "1) asciiprint [options] FILE\n" +
		/*      */ "   2) asciiprint FILE RAMP ROTATE CONTRAST BRIGHTNESS PAGES PITCH ROWFREQ PAGEWIDTH GAP MIRROR"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Load a YAML printer profile from `FILE`. Flags override its values.",
		},
		cli.IntFlag{
			Name:  "ramp,m",
			Usage: "`INDEX` of the character ramp. Unknown indexes fall back to 0. See --list-ramps.",
			Value: asciiprint.DefaultRamp,
		},
		cli.StringFlag{
			Name:  "ramp-name",
			Usage: "Select the character ramp by `NAME` instead of by index.",
		},
		cli.IntFlag{
			Name:  "rotate,r",
			Usage: "`ROTATE` = 1 turns the image by 180 degrees.",
		},
		cli.IntFlag{
			Name:  "mirror",
			Usage: "`MIRROR` = 1 flips the image horizontally.",
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 1.0 gives the original image. Greater values increase contrast.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 1.0 gives the original image. Greater values lighten it.",
			Value: 1.0,
		},
		cli.IntFlag{
			Name:  "pages,p",
			Usage: "Number of `PAGES` printed side by side.",
			Value: 1,
		},
		cli.IntFlag{
			Name:  "pitch",
			Usage: "Horizontal `PITCH` in characters per inch.",
			Value: 10,
		},
		cli.IntFlag{
			Name:  "row-frequency,l",
			Usage: "Vertical `ROWS` per inch.",
			Value: 6,
		},
		cli.Float64Flag{
			Name:  "page-width,w",
			Usage: "Printable `WIDTH` of one page in inches.",
			Value: 8.0,
		},
		cli.IntFlag{
			Name:  "gap,g",
			Usage: "`INCHES` left blank on each side of a join between pages.",
		},
		cli.StringFlag{
			Name:  "filter",
			Usage: "Resampling `FILTER`: " + strings.Join(asciiprint.Filters(), ", ") + ".",
			Value: asciiprint.DefaultFilter,
		},
		cli.BoolFlag{
			Name:  "dither",
			Usage: "Diffuse quantization error across neighbouring characters.",
		},
		cli.BoolFlag{
			Name:  "full-height",
			Usage: "Print the last row of the image, which is otherwise dropped.",
		},
		cli.BoolFlag{
			Name:  "split",
			Usage: "Print each page on its own, separated by form feeds, without the gaps.",
		},
		cli.StringFlag{
			Name:  "preview",
			Usage: "Also render the printed page to a PNG `FILE`.",
		},
		cli.BoolFlag{
			Name:  "list-ramps",
			Usage: "List the character ramps and exit.",
		},
		cli.BoolFlag{
			Name:  "verbose,V",
			Usage: "Log the computed layout to stderr.",
		},
	}
	app.Action = func(c *cli.Context) error {
		logger := log.New(io.Discard, "asciiprint: ", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		if c.Bool("list-ramps") {
			for i, r := range asciiprint.Ramps {
				fmt.Fprintf(stdout, "%2d %-24s %q\n", i, r.Name, r.Chars)
			}
			return nil
		}

		var (
			path string
			cfg  asciiprint.Config
			err  error
		)
		switch c.NArg() {
		case 1:
			path = c.Args().First()
			cfg, err = flagConfig(c)
		case len(legacyArgs) + 1:
			path, cfg, err = positionalConfig(c)
		default:
			cli.ShowAppHelp(c)
			return cli.NewExitError("expected an image file", 1)
		}
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		if cfg.RampName == "" && !asciiprint.HasRamp(cfg.Ramp) {
			logger.Printf("ramp %d does not exist, using %d", cfg.Ramp, asciiprint.DefaultRamp)
		}
		text, err := asciiprint.Render(path, cfg)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		layout := asciiprint.NewLayout(cfg)
		logger.Printf("%d pages of %d columns, %d gap columns, %d rows",
			layout.Pages, layout.PageColumns, layout.GapColumns, strings.Count(string(text), "\n"))

		if c.Bool("split") {
			err = asciiprint.SplitPages(stdout, text, layout)
		} else {
			_, err = stdout.Write(text)
		}
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		if out := c.String("preview"); out != "" {
			if err := writePreview(out, text, layout); err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			logger.Printf("wrote preview to %s", out)
		}
		return nil
	}
	return app
}

// configFlags are the flags that set a Config field, in the order they are
// applied.
var configFlags = []struct {
	name string
	set  func(c *cli.Context, cfg *asciiprint.Config)
}{
	{"ramp", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Ramp = c.Int("ramp") }},
	{"ramp-name", func(c *cli.Context, cfg *asciiprint.Config) { cfg.RampName = c.String("ramp-name") }},
	{"rotate", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Rotate = c.Int("rotate") }},
	{"mirror", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Mirror = c.Int("mirror") }},
	{"contrast", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Contrast = c.Float64("contrast") }},
	{"brightness", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Brightness = c.Float64("brightness") }},
	{"pages", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Pages = c.Int("pages") }},
	{"pitch", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Pitch = c.Int("pitch") }},
	{"row-frequency", func(c *cli.Context, cfg *asciiprint.Config) { cfg.RowFrequency = c.Int("row-frequency") }},
	{"page-width", func(c *cli.Context, cfg *asciiprint.Config) { cfg.PageWidth = c.Float64("page-width") }},
	{"gap", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Gap = c.Int("gap") }},
	{"filter", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Filter = c.String("filter") }},
	{"dither", func(c *cli.Context, cfg *asciiprint.Config) { cfg.Dither = c.Bool("dither") }},
	{"full-height", func(c *cli.Context, cfg *asciiprint.Config) { cfg.FullHeight = c.Bool("full-height") }},
}

// profileConfig returns the --config profile, or the defaults.
func profileConfig(c *cli.Context) (asciiprint.Config, error) {
	if path := c.String("config"); path != "" {
		return asciiprint.LoadConfig(path)
	}
	return asciiprint.DefaultConfig(), nil
}

// flagConfig starts from the --config profile, or the defaults, and applies
// every flag given on the command line.
func flagConfig(c *cli.Context) (asciiprint.Config, error) {
	cfg, err := profileConfig(c)
	if err != nil {
		return cfg, err
	}
	for _, f := range configFlags {
		if c.IsSet(f.name) {
			f.set(c, &cfg)
		}
	}
	return cfg, nil
}

// positionalConfig applies the positional arguments over the --config profile
// and then the flags that have no positional slot. A flag that repeats a
// positional argument is rejected.
func positionalConfig(c *cli.Context) (string, asciiprint.Config, error) {
	cfg, err := profileConfig(c)
	if err != nil {
		return "", cfg, err
	}
	path, cfg, err := legacyConfig(cfg, c.Args())
	if err != nil {
		return "", cfg, err
	}
	for _, f := range configFlags {
		if !c.IsSet(f.name) {
			continue
		}
		if f.name == "ramp-name" || isLegacyArg(f.name) {
			return "", cfg, &asciiprint.ConfigError{
				Field:  f.name,
				Reason: "given both as a flag and as a positional argument",
			}
		}
		f.set(c, &cfg)
	}
	return path, cfg, nil
}

func isLegacyArg(name string) bool {
	for _, arg := range legacyArgs {
		if arg == name {
			return true
		}
	}
	return false
}

// legacyConfig parses FILE RAMP ROTATE CONTRAST BRIGHTNESS PAGES PITCH ROWFREQ
// PAGEWIDTH GAP MIRROR, the order used by the printer wrapper scripts, over
// base.
func legacyConfig(base asciiprint.Config, args []string) (string, asciiprint.Config, error) {
	cfg := base
	if len(args) != len(legacyArgs)+1 {
		return "", cfg, &asciiprint.ConfigError{
			Field:  "arguments",
			Reason: fmt.Sprintf("expected %d, got %d", len(legacyArgs)+1, len(args)),
		}
	}

	ints := map[string]*int{
		"ramp":          &cfg.Ramp,
		"rotate":        &cfg.Rotate,
		"pages":         &cfg.Pages,
		"pitch":         &cfg.Pitch,
		"row-frequency": &cfg.RowFrequency,
		"gap":           &cfg.Gap,
		"mirror":        &cfg.Mirror,
	}
	floats := map[string]*float64{
		"contrast":   &cfg.Contrast,
		"brightness": &cfg.Brightness,
		"page-width": &cfg.PageWidth,
	}
	for i, name := range legacyArgs {
		value := strings.TrimSpace(args[i+1])
		if p, ok := ints[name]; ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return "", cfg, &asciiprint.ConfigError{Field: name, Reason: fmt.Sprintf("%q is not an integer", value)}
			}
			*p = n
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", cfg, &asciiprint.ConfigError{Field: name, Reason: fmt.Sprintf("%q is not a number", value)}
		}
		*floats[name] = f
	}
	cfg.RampName = ""
	return args[0], cfg, nil
}

func writePreview(path string, text []byte, layout asciiprint.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := asciiprint.WritePreview(f, text, layout); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
