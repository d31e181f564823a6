// Package main is the csvedit command, a small driver for the csvbuf
// library: it loads a CSV file into a buffer, prints it, optionally
// overwrites one cell, and saves the result.
//
// Delimiters and log level come from CLI flags, optionally preloaded
// from a YAML config file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-csvbuf/pkg/csvbuf"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "csvedit: %v\n", err)
		os.Exit(1)
	}
}

// config is the optional YAML config file.
type config struct {
	FieldDelim string `yaml:"field_delim"`
	TextDelim  string `yaml:"text_delim"`
	LogLevel   string `yaml:"log_level"`
}

func mainImpl() error {
	configPath := flag.String("config", "", "Optional YAML config file (field_delim, text_delim, log_level)")
	fieldDelim := flag.String("field-delim", "", "Field delimiter character (default ',')")
	textDelim := flag.String("text-delim", "", "Text delimiter character (default '\"')")
	setCell := flag.String("set", "", "Cell to overwrite as row,col (0-based)")
	setValue := flag.String("value", "", "Text written to the cell named by -set")
	getCell := flag.String("get", "", "Cell to print as row,col (0-based)")
	output := flag.String("o", "", "Output file (default: overwrite the input in place when -set is used)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	if flag.NArg() != 1 {
		return fmt.Errorf("usage: csvedit [flags] <file.csv>")
	}
	path := flag.Arg(0)

	cfg := config{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", *configPath, err)
		}
	}
	// Flags win over the config file.
	if *fieldDelim == "" {
		*fieldDelim = cfg.FieldDelim
	}
	if *textDelim == "" {
		*textDelim = cfg.TextDelim
	}
	if cfg.LogLevel != "" && *logLevel == "info" {
		*logLevel = cfg.LogLevel
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	opts := csvbuf.DefaultOptions()
	if *fieldDelim != "" {
		if opts.FieldDelim, err = parseDelim("field-delim", *fieldDelim); err != nil {
			return err
		}
	}
	if *textDelim != "" {
		if opts.TextDelim, err = parseDelim("text-delim", *textDelim); err != nil {
			return err
		}
	}
	buf, err := csvbuf.NewWithOptions(opts)
	if err != nil {
		return err
	}

	if err := buf.Load(path); err != nil {
		return err
	}
	slog.Info("loaded", "path", path, "rows", buf.Height())

	if *getCell != "" {
		row, col, err := parseCell(*getCell)
		if err != nil {
			return err
		}
		text, ok := buf.Field(row, col)
		if !ok {
			slog.Warn("cell is empty or absent", "row", row, "col", col)
		}
		fmt.Println(text)
		return nil
	}

	if *setCell == "" {
		// Plain print of the buffer as it would be saved.
		os.Stdout.Write(buf.Render())
		fmt.Println()
		return nil
	}

	row, col, err := parseCell(*setCell)
	if err != nil {
		return err
	}
	buf.SetField(row, col, *setValue)
	slog.Info("cell updated", "row", row, "col", col, "value", *setValue)

	dest := *output
	if dest == "" {
		dest = path
	}
	if err := buf.Save(dest); err != nil {
		return err
	}
	slog.Info("saved", "path", dest, "rows", buf.Height())
	return nil
}

// parseCell splits "row,col" into indices.
func parseCell(s string) (int, int, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid cell %q, want row,col", s)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	if row < 0 || col < 0 {
		return 0, 0, fmt.Errorf("cell %q indices must not be negative", s)
	}
	return row, col, nil
}

// parseDelim decodes a flag value that must be a single character.
func parseDelim(name, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("-%s must be a single character, got %q", name, s)
	}
	return r, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
