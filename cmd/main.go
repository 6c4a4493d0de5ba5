// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"cardscan/internal/config"
	"cardscan/internal/formatters"
	jsonformatter "cardscan/internal/formatters/json"
	textformatter "cardscan/internal/formatters/text"
	yamlformatter "cardscan/internal/formatters/yaml"
	"cardscan/internal/help"
	"cardscan/internal/observability"
	"cardscan/internal/ocr"
	"cardscan/internal/ocr/pdftext"
	"cardscan/internal/ocr/tesseract"
	"cardscan/internal/paths"
	"cardscan/internal/pipeline"
	"cardscan/internal/validate"
	"cardscan/internal/version"
)

func main() {
	inputFile := flag.String("file", "", "Path to the card image (PNG/JPEG) or PDF scan")
	textFile := flag.String("text", "", "Path to already-recognized text (use '-' for stdin); skips the OCR engine")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	engineName := flag.String("engine", "", "Recognition engine: tesseract, pdftext (default: by file extension)")
	verbose := flag.Bool("verbose", false, "Display detailed information including address components")
	debug := flag.Bool("debug", false, "Enable debug logging of pipeline stages")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	strict := flag.Bool("strict", false, "Exit non-zero when the extracted contact fails validation")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help (use '-help extractors' or '-help <extractor>' for stage detail)")
	flag.Usage = func() {
		help.NewSystem(!isTerminal(os.Stderr)).ShowGeneralHelp()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *showHelp {
		h := help.NewSystem(*noColor || !isTerminal(os.Stdout))
		switch topic := flag.Arg(0); {
		case topic == "":
			h.ShowGeneralHelp()
		case strings.EqualFold(topic, "extractors"):
			h.ShowExtractorsHelp()
		case h.ShowExtractorHelp(topic):
		default:
			fmt.Fprintf(os.Stderr, "Unknown help topic: %s\n", topic)
			h.ShowExtractorsHelp()
			os.Exit(1)
		}
		return
	}

	if *inputFile == "" && *textFile == "" {
		fmt.Fprintln(os.Stderr, "Error: either -file or -text is required")
		flag.Usage()
		os.Exit(1)
	}

	cfgPath := *configFile
	if cfgPath == "" {
		cfgPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFormat != "" {
		cfg.Defaults.Format = *outputFormat
	}
	if *verbose {
		cfg.Defaults.Verbose = true
	}
	if *debug {
		cfg.Defaults.Debug = true
	}
	if *noColor || !isTerminal(os.Stdout) {
		cfg.Defaults.NoColor = true
		color.NoColor = true
	}

	level := observability.ObservabilityOff
	if cfg.Defaults.Debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	p := pipeline.New(cfg, observer)

	var result pipeline.Result
	if *textFile != "" {
		text, err := readTextInput(*textFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		result = p.ProcessText(text, 100)
	} else {
		image, err := os.ReadFile(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine, err := resolveEngine(*engineName, *inputFile, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		result, err = p.ScanBusinessCard(context.Background(), image, engine)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	validation := validate.NewValidator().Validate(result.Contact, result.Confidence, result.FieldConfidences)

	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	registry.Register(yamlformatter.NewFormatter())

	rendered, err := registry.Format(cfg.Defaults.Format, result, validation, formatters.FormatterOptions{
		Verbose: cfg.Defaults.Verbose,
		NoColor: cfg.Defaults.NoColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := paths.ValidateOutputPath(*outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outputFile, []byte(rendered), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(rendered)
		if !strings.HasSuffix(rendered, "\n") {
			fmt.Println()
		}
	}

	if *strict && !validation.IsValid {
		os.Exit(2)
	}
}

// resolveEngine picks the recognizer: the explicit flag wins, then the
// file extension (PDF scans carry a text layer), then the configured
// default.
func resolveEngine(flagName, path string, cfg *config.Config) (ocr.Recognizer, error) {
	name := flagName
	if name == "" {
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			name = "pdftext"
		} else {
			name = cfg.OCR.Engine
		}
	}

	switch name {
	case "tesseract":
		return tesseract.NewEngine(), nil
	case "pdftext":
		return pdftext.NewEngine(), nil
	case "noop":
		return ocr.NoopRecognizer(), nil
	default:
		return nil, fmt.Errorf("unknown recognition engine: %s", name)
	}
}

func readTextInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
