// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package orgtitle extracts the organization and job title from residual
// card lines. The organization is usually split across the card: a brand
// word near the logo and a company-type line ("electromechanical") lower
// down, with the email domain as a third witness. The extractor recombines
// whichever pieces exist.
package orgtitle

import (
	"regexp"
	"strings"

	"cardscan/internal/extractors"
)

// Confidences assigned when the respective field is found.
const (
	OrganizationConfidence = 75
	TitleConfidence        = 70
)

// companyTypes are the generic trade words that complete a brand name.
var companyTypes = []string{
	"electromechanical", "mechanical", "electrical", "engineering",
	"systems", "solutions", "services", "trading", "contracting",
}

// titleKeywords mark a line as a job title.
var titleKeywords = []string{
	"manager", "director", "engineer", "developer", "designer", "analyst",
	"consultant", "specialist", "coordinator", "administrator", "assistant",
	"officer", "estimation", "business development", "sales", "marketing",
	"finance", "operations", "project", "technical", "general", "regional",
}

var (
	knownBrands  = regexp.MustCompile(`(?i)^(sicuro|arco|adnoc|emirates|etisalat|du|mashreq)$`)
	knownTitles  = regexp.MustCompile(`(?i)^(Estimation Engineer|Business Development Manager|Project Manager|Sales Manager|Technical Manager)`)
	mechTitle    = regexp.MustCompile(`(?i)estimation\s+engineer[-\s]?mechanical`)
	companyShape = regexp.MustCompile(`(?i)^[A-Z]{2,}\s+(electromechanical|mechanical)`)
)

// Result carries both extracted fields with their confidences. Either
// candidate may be empty.
type Result struct {
	Organization extractors.Candidate
	Title        extractors.Candidate
}

// Extract derives organization and title from lines. used marks lines
// already claimed by other extractors and is extended with the lines
// claimed here; name is the already-extracted person name, never eligible.
func Extract(lines []string, used map[int]bool, name string, emails []string) Result {
	domains := emailDomains(emails)

	typeLine, typeIdx := findCompanyType(lines, used, name)
	if typeIdx >= 0 {
		used[typeIdx] = true
	}

	brandLine, brandIdx := findBrand(lines, used, name, domains)
	if brandIdx >= 0 {
		used[brandIdx] = true
	}

	organization := combineOrganization(brandLine, typeLine, domains)
	title, titleIdx := findTitle(lines, used, name)
	if titleIdx >= 0 {
		used[titleIdx] = true
	}

	var res Result
	if organization != "" {
		res.Organization = extractors.Candidate{Value: organization, Confidence: OrganizationConfidence}
	}
	if title != "" {
		res.Title = extractors.Candidate{Value: title, Confidence: TitleConfidence}
	}
	return res
}

// emailDomains returns the first label of each email's domain, lowercased:
// "ashwin@arco.ae" contributes "arco".
func emailDomains(emails []string) []string {
	var out []string
	for _, email := range emails {
		parts := strings.Split(email, "@")
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		label := strings.ToLower(strings.Split(parts[1], ".")[0])
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

func findCompanyType(lines []string, used map[int]bool, name string) (string, int) {
	for i, line := range lines {
		if used[i] || line == name {
			continue
		}
		trimmed := strings.TrimSpace(line)
		// "Estimation Engineer-Mechanical" contains a trade word but is a
		// title, not the company-type half of the organization.
		if isJobTitle(trimmed) {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, t := range companyTypes {
			if lower == t || strings.Contains(lower, t) {
				return trimmed, i
			}
		}
	}
	return "", -1
}

// findBrand looks for a logo line: a known brand word or a line echoing
// the email domain.
func findBrand(lines []string, used map[int]bool, name string, domains []string) (string, int) {
	for i, line := range lines {
		if used[i] || line == name {
			continue
		}
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		matchesDomain := false
		for _, d := range domains {
			if strings.Contains(lower, d) {
				matchesDomain = true
				break
			}
		}
		if matchesDomain || knownBrands.MatchString(trimmed) {
			return trimmed, i
		}
	}
	return "", -1
}

// combineOrganization assembles the best available organization string.
// Priority: brand+type, domain+type, brand alone, domain alone.
func combineOrganization(brand, companyType string, domains []string) string {
	domainName := ""
	if len(domains) > 0 {
		domainName = strings.ToUpper(domains[0][:1]) + domains[0][1:]
	}

	switch {
	case brand != "" && companyType != "":
		return brand + " " + companyType
	case domainName != "" && companyType != "":
		return domainName + " " + companyType
	case brand != "":
		return brand
	case domainName != "":
		return domainName
	}
	return ""
}

func findTitle(lines []string, used map[int]bool, name string) (string, int) {
	for i, line := range lines {
		if used[i] || line == name {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if isJobTitle(trimmed) {
			return trimmed, i
		}
	}
	return "", -1
}

// isJobTitle accepts known title shapes, or any line with a title keyword
// that is not actually a "BRAND mechanical" company line.
func isJobTitle(line string) bool {
	if knownTitles.MatchString(line) || mechTitle.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			return !companyShape.MatchString(line)
		}
	}
	return false
}
