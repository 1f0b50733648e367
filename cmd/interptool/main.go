package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/vearutop/interpolation"
	"github.com/vearutop/interpolation/internal/job"
	"github.com/vearutop/interpolation/internal/policy"
	"github.com/vearutop/interpolation/internal/resample"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "modes":
		err = runModes(os.Args[2:], os.Stdout)
	case "resolve":
		err = runResolve(os.Args[2:], os.Stdout)
	case "resize":
		err = runResize(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: interptool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  modes   [-backend imaging|draw|nfnt]")
	fmt.Fprintln(os.Stderr, "  resolve -mode LINEAR [-backend imaging]")
	fmt.Fprintln(os.Stderr, "  resize  -in input.jpg -out output.jpg -w 800 -h 600 [-mode LANCZOS | -random LINEAR,LANCZOS [-seed 1]] [-backend imaging] [-q 85]")
	fmt.Fprintln(os.Stderr, "  batch   -config jobs.yaml [-v]")
	fmt.Fprintln(os.Stderr, "Modes: "+modeList())
}

func modeList() string {
	names := make([]string, 0, len(interpolation.Modes()))
	for _, m := range interpolation.Modes() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func runModes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("modes", flag.ContinueOnError)
	backend := fs.String("backend", "", "show a single backend")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	backends := resample.Backends()
	if *backend != "" {
		b, err := resample.ParseBackend(*backend)
		if err != nil {
			return err
		}
		backends = []resample.Backend{b}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "MODE\tIDENTIFIER"
	for _, b := range backends {
		header += "\t" + strings.ToUpper(string(b))
	}
	fmt.Fprintln(tw, header)
	for _, m := range interpolation.Modes() {
		row := m.String() + "\t" + m.Identifier()
		for _, b := range backends {
			if resample.Supports(b, m) {
				row += "\tyes"
			} else {
				row += "\t-"
			}
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

func runResolve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	mode := fs.String("mode", "", "mode name or identifier")
	backend := fs.String("backend", string(resample.BackendImaging), "imaging, draw or nfnt")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mode == "" {
		return errors.New("missing required arguments")
	}
	m, err := interpolation.ParseMode(*mode)
	if err != nil {
		return err
	}
	b, err := resample.ParseBackend(*backend)
	if err != nil {
		return err
	}
	desc, err := resample.Describe(b, m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", m, m.Identifier(), desc)
	return err
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image, format by extension")
	width := fs.Int("w", 0, "target width")
	height := fs.Int("h", 0, "target height")
	mode := fs.String("mode", interpolation.Linear.String(), "mode name or identifier")
	backend := fs.String("backend", string(resample.BackendImaging), "imaging, draw or nfnt")
	random := fs.String("random", "", "comma-separated modes to pick from at random, overrides -mode")
	seed := fs.Int64("seed", 1, "seed for -random")
	q := fs.Int("q", 85, "JPEG quality")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}
	if *q < 1 || *q > 100 {
		return fmt.Errorf("quality out of range: %d", *q)
	}
	m, err := interpolation.ParseMode(*mode)
	if err != nil {
		return err
	}
	if *random != "" {
		if m, err = pickRandom(*random, *seed); err != nil {
			return err
		}
	}
	b, err := resample.ParseBackend(*backend)
	if err != nil {
		return err
	}
	img, err := resample.Load(*inPath)
	if err != nil {
		return err
	}
	resized, err := resample.Resize(img, *width, *height, m, b)
	if err != nil {
		return err
	}
	return resample.Save(resized, *outPath, *q)
}

func pickRandom(list string, seed int64) (interpolation.Mode, error) {
	var modes []interpolation.Mode
	for _, s := range strings.Split(list, ",") {
		m, err := interpolation.ParseMode(s)
		if err != nil {
			return 0, err
		}
		modes = append(modes, m)
	}
	r, err := policy.NewRandom(modes, seed)
	if err != nil {
		return 0, err
	}
	return r.Select(policy.Env{}), nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML batch file")
	verbose := fs.Bool("v", false, "debug logging")
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: interptool batch -config jobs.yaml")
		fs.PrintDefaults()
		fmt.Fprint(os.Stderr, "\nExample config:\n\n"+job.ExampleConfig)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("missing required arguments")
	}
	conf, err := job.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := job.Run(ctx, conf, logger)
	if err != nil {
		return err
	}
	logger.Debug("batch done", "jobs", len(results))
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
