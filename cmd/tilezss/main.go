// Command tilezss compresses and decompresses raw grayscale image data with
// the tilezss codec. It is a thin host around the tilezss package: argument
// parsing, file I/O, and directory creation live here; the bit-exact codec
// logic does not.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilezss/tilezss"
	"github.com/tilezss/tilezss/internal/batch"
	"github.com/tilezss/tilezss/internal/logx"
)

const usageText = `Usage: tilezss (-c | -d) -i PATH -o PATH [-a -w N] [-m] [-v] [-r]
       tilezss -b MANIFEST
Use -h for more info.`

const helpText = `tilezss - dictionary codec for raw grayscale image data

  -c          compress (exactly one of -c/-d is required, unless -b is used)
  -d          decompress
  -a          adaptive tile scan (modifies -c; requires -w)
  -m          delta (first-difference) model (modifies -c)
  -i PATH     input file (required unless -b is used)
  -o PATH     output file (required unless -b is used; parent dir is created)
  -w N        tile row width in pixels (required with -c -a)
  -b MANIFEST run every job listed in a YAML manifest instead of -i/-o
  -v          verbose logging
  -r          report the compression ratio and chosen mode to stdout
  -h          show this help
`

type config struct {
	compress   bool
	decompress bool
	adaptive   bool
	delta      bool
	input      string
	output     string
	width      int
	manifest   string
	verbose    bool
	report     bool
	help       bool
}

func parseFlags(args []string) (config, error) {
	var c config
	flags := flag.NewFlagSet("tilezss", flag.ContinueOnError)
	flags.BoolVar(&c.compress, "c", false, "compress")
	flags.BoolVar(&c.decompress, "d", false, "decompress")
	flags.BoolVar(&c.adaptive, "a", false, "adaptive tile scan")
	flags.BoolVar(&c.delta, "m", false, "delta model")
	flags.StringVar(&c.input, "i", "", "input path")
	flags.StringVar(&c.output, "o", "", "output path")
	flags.IntVar(&c.width, "w", 0, "tile row width in pixels")
	flags.StringVar(&c.manifest, "b", "", "batch manifest path")
	flags.BoolVar(&c.verbose, "v", false, "verbose logging")
	flags.BoolVar(&c.report, "r", false, "report compression ratio")
	flags.BoolVar(&c.help, "h", false, "show help")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	return c, nil
}

func tilezssCli(args []string, log *logx.Logger) int {
	c, err := parseFlags(args)
	if err != nil {
		return 1
	}

	if c.help {
		fmt.Print(helpText)
		return 0
	}

	if c.verbose {
		log.SetLevel(logx.LevelDebug)
	}

	if c.manifest != "" {
		if c.input != "" || c.output != "" {
			log.Errorln("-b cannot be combined with -i or -o")
			fmt.Fprintln(os.Stderr, usageText)
			return 1
		}
		return runBatch(c.manifest, log, c.report)
	}

	job, err := jobFromConfig(c)
	if err != nil {
		log.Errorln(err)
		fmt.Fprintln(os.Stderr, usageText)
		return 1
	}

	if err := runJob(job, log); err != nil {
		log.Errorln(err)
		return 1
	}
	return 0
}

// job is the host's normalized view of one encode or decode request,
// assembled either from CLI flags directly or from a batch.Job entry.
type job struct {
	compress bool
	input    string
	output   string
	adaptive bool
	delta    bool
	width    int
	report   bool
}

func jobFromConfig(c config) (job, error) {
	if c.compress == c.decompress {
		return job{}, fmt.Errorf("exactly one of -c or -d is required")
	}
	if c.input == "" {
		return job{}, fmt.Errorf("missing -i input path")
	}
	if c.output == "" {
		return job{}, fmt.Errorf("missing -o output path")
	}
	if c.compress && c.adaptive && c.width <= 0 {
		return job{}, fmt.Errorf("adaptive compression requires -w")
	}
	return job{
		compress: c.compress,
		input:    c.input,
		output:   c.output,
		adaptive: c.adaptive,
		delta:    c.delta,
		width:    c.width,
		report:   c.report,
	}, nil
}

func runJob(j job, log *logx.Logger) error {
	input, err := os.ReadFile(j.input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", j.input, err)
	}

	var output []byte
	if j.compress {
		opts := tilezss.DefaultEncodeOpts()
		if j.adaptive {
			opts = tilezss.AdaptiveEncodeOpts(uint16(j.width), j.delta)
		} else {
			opts.Delta = j.delta
		}
		log.Debugf("encoding %s (%d bytes, adaptive=%v, delta=%v)", j.input, len(input), j.adaptive, j.delta)
		output, err = tilezss.Encode(input, opts)
		if err != nil {
			return err
		}
		if j.report {
			reportRatio(j.input, len(input), output, opts)
		}
	} else {
		log.Debugf("decoding %s (%d bytes)", j.input, len(input))
		output, err = tilezss.Decode(input)
		if err != nil {
			return err
		}
	}

	if dir := filepath.Dir(j.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(j.output, output, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", j.output, err)
	}
	log.Infof("wrote %s (%d bytes)", j.output, len(output))
	return nil
}

func reportRatio(name string, inLen int, encoded []byte, opts tilezss.EncodeOpts) {
	mode := "static"
	orientation := ""
	if opts.Mode == tilezss.Adaptive {
		mode = "adaptive"
		vertical, _ := tilezss.Orientation(encoded)
		orientation = "horizontal"
		if vertical {
			orientation = "vertical"
		}
	}
	outLen := len(encoded)
	ratio := 1.0
	if inLen > 0 {
		ratio = float64(outLen) / float64(inLen)
	}
	fmt.Printf("%s: %d -> %d bytes (%.3fx) mode=%s", name, inLen, outLen, ratio, mode)
	if orientation != "" {
		fmt.Printf(" orientation=%s", orientation)
	}
	fmt.Printf(" delta=%v\n", opts.Delta)
}

func runBatch(path string, log *logx.Logger, report bool) int {
	m, err := batch.Load(path)
	if err != nil {
		log.Errorln(err)
		return 1
	}

	status := 0
	for i, bj := range m.Jobs {
		j := job{
			compress: bj.Op == "compress",
			input:    bj.Input,
			output:   bj.Output,
			adaptive: bj.Adaptive,
			delta:    bj.Delta,
			width:    bj.Width,
			report:   report,
		}
		if err := runJob(j, log); err != nil {
			log.Errorf("job %d (%s): %v", i, bj.Input, err)
			status = 1
			continue
		}
	}
	return status
}

func main() {
	os.Exit(tilezssCli(os.Args[1:], logx.Default()))
}
