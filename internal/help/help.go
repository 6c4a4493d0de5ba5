// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help renders CLI help: general usage, the extractor list, and
// per-extractor detail pages.
package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ExtractorInfo describes one extraction stage for the help pages.
type ExtractorInfo struct {
	Name                string   // Name of the extractor (e.g., "EMAIL")
	ShortDescription    string   // One line for the extractor list
	DetailedDescription string   // What the extractor does and how it scores
	Patterns            []string // Shapes the extractor matches
	Confidence          string   // How its confidence is assigned
	Examples            []string // Input lines and what they yield
}

// System manages help content for the application
type System struct {
	extractors map[string]ExtractorInfo
	colors     map[string]*color.Color
}

// NewSystem creates a help system with the built-in extractor pages.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	s := &System{
		extractors: make(map[string]ExtractorInfo),
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"item":    color.New(color.FgCyan),
			"example": color.New(color.FgMagenta),
		},
	}
	for _, info := range builtinExtractors() {
		s.Register(info)
	}
	return s
}

// Register adds an extractor page to the system.
func (h *System) Register(info ExtractorInfo) {
	h.extractors[strings.ToLower(info.Name)] = info
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Cardscan - Business Card Contact Extraction")
	fmt.Println("===========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  cardscan -file <path-to-image> [options]")
	fmt.Println("  cardscan -text <path-to-text|-> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -file\t<path>\tPath to the card image or PDF scan")
	fmt.Fprintln(w, "  -text\t<path>\tPath to already-recognized text, or - for stdin")
	fmt.Fprintln(w, "  -config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(w, "  -output\t<path>\tPath to output file (default: stdout)")
	fmt.Fprintln(w, "  -engine\t<engine>\tRecognition engine: tesseract, pdftext, noop")
	fmt.Fprintln(w, "  -verbose\t\tDisplay address components, logo colors and suggestions")
	fmt.Fprintln(w, "  -debug\t\tEnable debug logging of pipeline stages to stderr")
	fmt.Fprintln(w, "  -no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  -strict\t\tExit nonzero when the extracted contact fails validation")
	fmt.Fprintln(w, "  -version\t\tShow version information")
	fmt.Fprintln(w, "  -help\t\tShow this help message")
	fmt.Fprintln(w, "  -help extractors\t\tList the extraction stages")
	fmt.Fprintln(w, "  -help <extractor>\t\tShow detailed help for one stage")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  cardscan -file card.jpg")
	h.colors["example"].Println("  cardscan -file scan.pdf -format json -output contact.json")
	h.colors["example"].Println("  cardscan -text - < recognized.txt")
	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: config.yaml or cardscan.yaml (in current directory)")
	fmt.Println("  User config: <user config dir>/cardscan/config.yaml")
	fmt.Println("  Environment: CARDSCAN_CONFIG_DIR - Override config directory")
}

// ShowExtractorsHelp displays the one-line summary of every extractor.
func (h *System) ShowExtractorsHelp() {
	h.colors["title"].Println("Extraction Stages")
	fmt.Println("=================")
	fmt.Println()

	var names []string
	for _, info := range h.extractors {
		names = append(names, info.Name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  EXTRACTOR\tDESCRIPTION")
	fmt.Fprintln(w, "  ---------\t-----------")
	for _, n := range names {
		info := h.extractors[strings.ToLower(n)]
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use -help <extractor> for patterns, confidence and examples.")
}

// ShowExtractorHelp displays the detail page for one extractor. It reports
// whether the name was known.
func (h *System) ShowExtractorHelp(name string) bool {
	info, ok := h.extractors[strings.ToLower(name)]
	if !ok {
		return false
	}

	h.colors["title"].Println(info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Patterns) > 0 {
		fmt.Println()
		h.colors["header"].Println("PATTERNS:")
		for _, p := range info.Patterns {
			h.colors["item"].Println("  " + p)
		}
	}

	if info.Confidence != "" {
		fmt.Println()
		h.colors["header"].Println("CONFIDENCE:")
		fmt.Println("  " + info.Confidence)
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, e := range info.Examples {
			h.colors["example"].Println("  " + e)
		}
	}
	return true
}

func builtinExtractors() []ExtractorInfo {
	return []ExtractorInfo{
		{
			Name:                "EMAIL",
			ShortDescription:    "Email addresses, including spaced-out recognition damage",
			DetailedDescription: "Matches standard addresses, E-prefixed lines and Email: labels. Repairs domains the recognizer split with spaces. Results are lowercased and deduplicated.",
			Patterns:            []string{"user@domain.tld", "E user@domain.tld", "Email: user@domain.tld", "user@ domain tld (spaced domain)"},
			Confidence:          "Fixed 85 when at least one address is found.",
			Examples:            []string{`"ahmed@ sicurouae ae" -> ahmed@sicurouae.ae`},
		},
		{
			Name:                "PHONE",
			ShortDescription:    "Phone and fax numbers with T/F type markers",
			DetailedDescription: "An ordered pattern table leads with UAE mobile and landline shapes before generic international ones. Lines marked T or F keep the marker so the contact builder can type the slot.",
			Patterns:            []string{"+971 5X XXX XXXX (mobile)", "+971 X XXX XXXX (landline)", "T/F marked lines", "international +CC forms"},
			Confidence:          "Fixed 80 when at least one number is found.",
			Examples:            []string{`"T +971 2 4450707" -> work phone +971 2 445 0707`, `"F +971 2 4455052" -> fax +971 2 445 5052`},
		},
		{
			Name:                "WEBSITE",
			ShortDescription:    "Web addresses, with an email-domain fallback",
			DetailedDescription: "Matches explicit URLs and www forms; email addresses are excluded. When a card shows no website, one is derived from the email's domain.",
			Patterns:            []string{"https://...", "www.domain.tld", "bare domain.tld"},
			Confidence:          "Fixed 75 when at least one address is found.",
			Examples:            []string{`"johnny@arco.ae" and no URL -> https://arco.ae`},
		},
		{
			Name:                "NAME",
			ShortDescription:    "Person-name selection over the residual lines",
			DetailedDescription: "Scores every line left after contact data is removed: capitalized two-to-three word shapes gain, company indicators disqualify, honorifics short-circuit. The best line above threshold wins.",
			Patterns:            []string{"First Last", "Dr./Mr./Ms. prefixed lines", "First M. Last"},
			Confidence:          "Score-derived, capped at 95.",
			Examples:            []string{`"Johnny Jabbour" beats "ARCO Electromechanical LLC"`},
		},
		{
			Name:                "ORGANIZATION",
			ShortDescription:    "Organization and job title from brand, trade and title lines",
			DetailedDescription: "Pairs a brand line with a company-type line, falls back to the email domain for the brand, and picks the job title from a known-title table. Lines claimed by the name stage are skipped.",
			Patterns:            []string{"BRAND + trade word line", "email-domain brand", "known job titles"},
			Confidence:          "Fixed 75 for organization, 70 for title.",
			Examples:            []string{`"ARCO" + "electromechanical" -> ARCO electromechanical`},
		},
		{
			Name:                "ADDRESS",
			ShortDescription:    "Postal address assembly and component split",
			DetailedDescription: "Scores every cleaned line for address signals (box numbers, street words, countries, cities) and joins the claimants. The builder then splits street, city, state, zipcode and country.",
			Patterns:            []string{"P.O Box NNNNN", "street/road/avenue words", "known countries and UAE cities"},
			Confidence:          "Fixed 70 when an address is assembled.",
			Examples:            []string{`"A P.O Box 25475, Abu Dhabi, UAE" -> city Abu Dhabi, country UAE, zipcode 25475`},
		},
	}
}
