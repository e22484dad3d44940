package parser

import (
	"regexp"
	"strings"
)

// Address holds the components extracted from a free-text annotation. Every
// field is optional; an all-empty Address is a valid parse result.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// IsEmpty reports whether no component was extracted.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Zip == ""
}

// Format renders the present components as "street, city, state zip",
// omitting absent parts and their separators.
func (a Address) Format() string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	tail := strings.TrimSpace(a.State + " " + a.Zip)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

var reZip = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// ParseAddress splits free text on commas and extracts street, city, state
// and zip. It never fails; unrecognizable text simply yields fewer
// components.
func ParseAddress(text string) Address {
	var segs []string
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return Address{}
	}

	var addr Address
	last := segs[len(segs)-1]

	if m := reZip.FindString(last); m != "" {
		addr.Zip = reZip.FindStringSubmatch(last)[1]
		last = strings.TrimSpace(strings.Replace(last, m, "", 1))
	}
	last, addr.State = extractState(last)

	switch {
	case len(segs) == 1:
		addr.Street = last
	case len(segs) == 2:
		addr.Street = segs[0]
		addr.City = last
	default:
		addr.Street = segs[0]
		addr.City = strings.Join(segs[1:len(segs)-1], ", ")
	}
	return addr
}

// extractState removes a 2-letter state code or a full state name from the
// text and returns the remainder plus the abbreviation.
func extractState(text string) (rest, state string) {
	fields := strings.Fields(text)
	for i, f := range fields {
		up := strings.ToUpper(strings.Trim(f, "."))
		if len(up) == 2 && stateCodes[up] {
			rest = strings.TrimSpace(strings.Join(append(fields[:i:i], fields[i+1:]...), " "))
			return rest, up
		}
	}

	lower := strings.ToLower(text)
	bestName := ""
	for name := range stateNames {
		if strings.Contains(lower, name) && len(name) > len(bestName) {
			bestName = name
		}
	}
	if bestName != "" {
		idx := strings.Index(lower, bestName)
		rest = strings.TrimSpace(text[:idx] + text[idx+len(bestName):])
		return rest, stateNames[bestName]
	}

	return strings.TrimSpace(text), ""
}
