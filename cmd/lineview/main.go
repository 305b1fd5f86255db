// Package main is the entry point for the lineview command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dshills/lineview"
	"github.com/dshills/lineview/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run())
}

type options struct {
	regex      string
	literal    string
	lineRange  string
	countOnly  bool
	configPath string
	logLevel   string
	files      []string
}

func run() int {
	opts := parseFlags()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return exitError
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", cfg.LogLevel)
		return exitError
	}
	log.SetLevel(level)

	bufOpts, err := lineEndingOptions(cfg.LineEnding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	var pattern *lineview.Pattern
	if opts.regex != "" {
		cache := lineview.NewPatternCache(cfg.CacheCapacity)
		pattern, err = cache.Compile(opts.regex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	lo, hi, hasRange, err := parseLineRange(opts.lineRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	inputs := opts.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	matched := false
	for _, name := range inputs {
		content, err := readInput(name)
		if err != nil {
			log.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Error("read failed")
			return exitError
		}

		buf := lineview.New(content, bufOpts...)
		base := 1
		if hasRange {
			buf, err = buf.Slice(lo, hi)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid line range %q: %v\n", opts.lineRange, err)
				return exitError
			}
			base = lo + 1
		}

		count, err := scan(buf, name, base, pattern, opts, cfg.MaxMatches)
		if err != nil {
			log.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Error("scan failed")
			return exitError
		}
		log.WithFields(logrus.Fields{
			"file":    name,
			"lines":   buf.Len(),
			"matches": count,
		}).Debug("scanned input")

		if opts.countOnly {
			fmt.Printf("%s:%d\n", name, count)
		}
		if count > 0 {
			matched = true
		}
	}

	if !matched {
		return exitNoMatch
	}
	return exitMatch
}

// scan walks the buffer lines and reports matches. With no search term
// every line is reported, which makes -lines usable on its own.
func scan(buf *lineview.Buffer, name string, base int, pattern *lineview.Pattern, opts options, maxMatches int) (int, error) {
	count := 0
	lineNo := base
	it := buf.Iter()
	for it.Next() {
		line := it.View()

		var match lineview.View
		var ok bool
		switch {
		case pattern != nil:
			match, ok = line.FindPattern(pattern)
		case opts.literal != "":
			match, ok = line.Find(opts.literal)
		default:
			match, ok = line, true
		}

		if ok {
			count++
			if !opts.countOnly {
				rel, err := match.RelPosition(line)
				if err != nil {
					return count, err
				}
				fmt.Printf("%s:%d:%d-%d\t%s\n", name, lineNo, rel, rel+match.Len(), line.Text())
			}
			if maxMatches > 0 && count >= maxMatches {
				break
			}
		}
		lineNo++
	}
	return count, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.regex, "e", "", "Regular expression to search for")
	flag.StringVar(&opts.literal, "f", "", "Literal string to search for")
	flag.StringVar(&opts.lineRange, "lines", "", "Restrict to a line range LO:HI (zero-based, half-open)")
	flag.BoolVar(&opts.countOnly, "count", false, "Print match counts instead of matching lines")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lineview - line-oriented text search\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lineview [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lineview -e 'TODO|FIXME' main.go    Search files with a regex\n")
		fmt.Fprintf(os.Stderr, "  lineview -f error -count app.log    Count literal matches\n")
		fmt.Fprintf(os.Stderr, "  lineview -lines 10:20 app.log       Print a line range\n")
		fmt.Fprintf(os.Stderr, "  cat app.log | lineview -f panic     Search stdin\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(exitMatch)
	}

	if showVersion {
		fmt.Printf("lineview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(exitMatch)
	}

	if opts.regex != "" && opts.literal != "" {
		fmt.Fprintf(os.Stderr, "Error: -e and -f are mutually exclusive\n")
		os.Exit(exitError)
	}

	opts.files = flag.Args()
	return opts
}

func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func lineEndingOptions(ending string) ([]lineview.Option, error) {
	switch ending {
	case "", "auto":
		return []lineview.Option{lineview.WithDetectedLineEnding()}, nil
	case "lf":
		return []lineview.Option{lineview.WithLF()}, nil
	case "crlf":
		return []lineview.Option{lineview.WithCRLF()}, nil
	case "cr":
		return []lineview.Option{lineview.WithCR()}, nil
	default:
		return nil, fmt.Errorf("invalid line ending %q (must be auto, lf, crlf, or cr)", ending)
	}
}

// parseLineRange parses "LO:HI" into a half-open line range.
// "LO:" means through the end of the buffer.
func parseLineRange(s string) (lo, hi int, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	loStr, hiStr, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false, fmt.Errorf("invalid line range %q (expected LO:HI)", s)
	}
	lo, err = strconv.Atoi(loStr)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid line range %q: %v", s, err)
	}
	if hiStr == "" {
		hi = int(^uint(0) >> 1)
	} else {
		hi, err = strconv.Atoi(hiStr)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid line range %q: %v", s, err)
		}
	}
	return lo, hi, true, nil
}
