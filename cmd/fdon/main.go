// Command fdon converts an FDON document to JSON.
//
// It reads the named file, minifies it, parses the result and writes
// the JSON rendering to stdout (or a file). On a syntax error it
// prints the message together with a caret window into the minified
// document and exits non-zero.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	fdon "github.com/TeaserLang/fdon-go"
)

var version = "dev"

type options struct {
	Output     string `short:"o" long:"output" description:"Write the JSON result to the file, rather than stdout" value-name:"filename"`
	MinifyOnly bool   `short:"m" long:"minify-only" description:"Print the minified document and exit without parsing"`
	Timings    bool   `short:"t" long:"timings" description:"Report per-phase timing and sizes on stderr"`
	Sample     int    `long:"sample" description:"Print only the first N bytes of the JSON output" value-name:"N"`
	Debug      bool   `long:"debug" description:"Pretty-print the parsed tree on stderr"`
	NoColor    bool   `long:"no-color" description:"Disable colored diagnostics"`
	Version    bool   `long:"version" description:"Show this version"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[option...] file.fdon"
	args, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 2
	}
	if opts.Version {
		fmt.Println(version)
		return 0
	}
	if len(args) != 1 {
		parser.WriteHelp(os.Stderr)
		return 2
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdon: %v\n", err)
		return 1
	}

	startMinify := time.Now()
	minified := fdon.Minify(raw)
	minifyTime := time.Since(startMinify)

	if opts.MinifyOnly {
		if err := writeOutput(opts.Output, minified); err != nil {
			fmt.Fprintf(os.Stderr, "fdon: %v\n", err)
			return 1
		}
		return 0
	}

	arena := new(fdon.Arena)
	startParse := time.Now()
	v, err := fdon.Parse(minified, arena)
	parseTime := time.Since(startParse)
	if err != nil {
		printParseError(err, minified, !opts.NoColor)
		return 1
	}

	if opts.Debug {
		pp.Fprintln(os.Stderr, v.Interface())
	}

	startSerialize := time.Now()
	out := fdon.AppendJSON(make([]byte, 0, len(minified)), v)
	serializeTime := time.Since(startSerialize)

	jsonSize := len(out)
	if opts.Sample > 0 && len(out) > opts.Sample {
		out = out[:opts.Sample]
	}
	if err := writeOutput(opts.Output, out); err != nil {
		fmt.Fprintf(os.Stderr, "fdon: %v\n", err)
		return 1
	}

	if opts.Timings {
		fmt.Fprintf(os.Stderr, "input size:    %d bytes\n", len(raw))
		fmt.Fprintf(os.Stderr, "minified size: %d bytes\n", len(minified))
		fmt.Fprintf(os.Stderr, "json size:     %d bytes\n", jsonSize)
		fmt.Fprintf(os.Stderr, "minify:        %.6f ms\n", ms(minifyTime))
		fmt.Fprintf(os.Stderr, "parse:         %.6f ms\n", ms(parseTime))
		fmt.Fprintf(os.Stderr, "serialize:     %.6f ms\n", ms(serializeTime))
		fmt.Fprintf(os.Stderr, "total:         %.6f ms\n", ms(minifyTime+parseTime+serializeTime))
	}
	return 0
}

func ms(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printParseError(err error, minified []byte, color bool) {
	var perr *fdon.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "fdon: %v\n", err)
		return
	}
	msg := fmt.Sprintf("fdon: syntax error: %v", perr)
	if color && term.IsTerminal(int(os.Stderr.Fd())) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, perr.Window(minified))
}
