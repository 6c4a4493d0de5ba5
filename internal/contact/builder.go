// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contact

import (
	"regexp"
	"strings"

	"cardscan/internal/geodata"
)

// Fields is the extracted raw material the builder assembles.
type Fields struct {
	Name     string
	Emails   []string
	Phones   []string // normalized, type markers ("T ", "F ", "H ") intact
	Websites []string
	Org      string
	Title    string
	Address  string
}

var (
	prefixPattern = regexp.MustCompile(`(?i)^(Mr|Mrs|Ms|Dr|Prof|Sir|Dame)\.?\s+(.+)`)
	suffixPattern = regexp.MustCompile(`(?i)^(.+)\s+(Jr|Sr|III|IV|V|PhD|MD|Esq)\.?$`)
	typeMarker    = regexp.MustCompile(`^[TFH]\s+`)
	leadingBox    = regexp.MustCompile(`(?i)^A\s+`)
	poBoxPattern  = regexp.MustCompile(`(?i)P\.O\.?\s*Box`)
	zipPattern    = regexp.MustCompile(`\b(\d{4,6})\b`)
)

// Build assembles a complete contact: joined display fields, split name
// components, typed phone slots and parsed address components.
func Build(f Fields) Contact {
	c := Contact{
		Name:         f.Name,
		Organization: f.Org,
		Title:        f.Title,
		Address:      f.Address,
	}

	if len(f.Emails) > 0 {
		c.Email = f.Emails[0]
	}

	display := f.Phones
	if len(display) > 3 {
		display = display[:3]
	}
	c.Phone = strings.Join(display, " | ")

	if len(f.Websites) > 0 {
		c.Website = f.Websites[0]
	} else if c.Email != "" {
		if at := strings.Index(c.Email, "@"); at >= 0 && at+1 < len(c.Email) {
			c.Website = "https://" + c.Email[at+1:]
		}
	}

	parseNameComponents(&c)
	parsePhoneComponents(&c, f.Phones)
	parseAddressComponents(&c)
	return c
}

// parseNameComponents peels honorific prefix and generational suffix off
// the name, then splits on the first whitespace: one first name, the rest
// is the last name.
func parseNameComponents(c *Contact) {
	if c.Name == "" {
		return
	}

	if m := prefixPattern.FindStringSubmatch(c.Name); m != nil {
		c.Prefix = m[1]
		c.Name = strings.TrimSpace(m[2])
	}
	if m := suffixPattern.FindStringSubmatch(c.Name); m != nil {
		c.Name = strings.TrimSpace(m[1])
		c.Suffix = m[2]
	}

	parts := strings.Fields(c.Name)
	switch {
	case len(parts) >= 2:
		c.FirstName = parts[0]
		c.LastName = strings.Join(parts[1:], " ")
	case len(parts) == 1:
		c.FirstName = parts[0]
	}
}

// parsePhoneComponents fills the typed phone slots from the marker each
// number carried on the card. The first unmarked number is the mobile;
// later unmarked numbers fill work then home.
func parsePhoneComponents(c *Contact, phones []string) {
	used := make(map[string]bool)

	for _, phone := range phones {
		clean := strings.TrimSpace(typeMarker.ReplaceAllString(phone, ""))
		if used[clean] {
			continue
		}
		used[clean] = true

		switch {
		case strings.HasPrefix(phone, "T "):
			if c.WorkPhone == "" {
				c.WorkPhone = clean
			}
		case strings.HasPrefix(phone, "F "):
			if c.FaxPhone == "" {
				c.FaxPhone = clean
			}
		case strings.HasPrefix(phone, "H "):
			if c.HomePhone == "" {
				c.HomePhone = clean
			}
		default:
			// Only this branch fills the mobile slot, so an empty slot means
			// no unmarked number has been seen yet, at any list position.
			switch {
			case c.MobilePhone == "":
				c.MobilePhone = clean
			case c.HomePhone == "":
				c.HomePhone = clean
			case c.WorkPhone == "":
				c.WorkPhone = clean
			}
		}
	}
}

// parseAddressComponents splits the joined address into street, city,
// state, country and zipcode. "A P.O Box ..." loses its leading marker
// letter first; a P.O. Box is postal, not a street, so the street stays
// empty for box addresses with three or more parts.
func parseAddressComponents(c *Contact) {
	if c.Address == "" {
		return
	}

	address := strings.TrimSpace(c.Address)
	if leadingBox.MatchString(address) && poBoxPattern.MatchString(address) {
		address = strings.TrimSpace(leadingBox.ReplaceAllString(address, ""))
	}

	var parts []string
	for _, p := range strings.Split(address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return
	}

	var street, city, state, country string
	switch {
	case len(parts) >= 3:
		if !poBoxPattern.MatchString(parts[0]) {
			street = parts[0]
		}
		last := parts[len(parts)-1]
		if geodata.IsCountry(last) {
			country = last
			city = parts[len(parts)-2]
			if len(parts) >= 4 {
				state = strings.Join(parts[1:len(parts)-2], ", ")
			}
		} else {
			city = parts[1]
			state = strings.Join(parts[2:], ", ")
		}
	case len(parts) == 2:
		street = parts[0]
		city = parts[1]
	default:
		if poBoxPattern.MatchString(parts[0]) {
			street = parts[0]
		} else {
			city = parts[0]
		}
	}

	zipcode := ""
	for _, part := range parts {
		if m := zipPattern.FindStringSubmatch(part); m != nil {
			zipcode = m[1]
			break
		}
	}
	if zipcode != "" && strings.Contains(street, zipcode) {
		street = strings.TrimSpace(strings.TrimRight(strings.Replace(street, zipcode, "", 1), ": \t"))
	}

	c.Street = street
	c.City = city
	c.State = state
	c.Country = country
	c.Zipcode = zipcode
}
