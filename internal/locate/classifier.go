package locate

import (
	"regexp"
	"sort"
	"strings"
)

// Tier is the commercial-location quality classification.
type Tier string

const (
	TierPrime    Tier = "N°1"  // on a curated prime axis of the city
	TierNear     Tier = "1bis" // generic high-traffic-zone marker present
	TierStandard Tier = "2"    // default
	TierUnscored Tier = ""     // city undetected, scoring skipped
)

// Rank orders tiers for sorting: N°1 < 1bis < 2 < unscored.
func (t Tier) Rank() int {
	switch t {
	case TierPrime:
		return 0
	case TierNear:
		return 1
	case TierStandard:
		return 2
	default:
		return 3
	}
}

// Classifier detects a known city in listing text and scores its
// commercial-location quality against the prime-axis table.
type Classifier struct {
	cities       []string
	cityPatterns []*regexp.Regexp
	axes         map[string][]string
	keywords     *regexp.Regexp
}

// NewClassifier builds a classifier over the given city list. City
// order is significant: the first city whose name appears wins. A nil
// axes map falls back to the built-in PrimeAxes table, and an empty
// keyword list to DefaultPrimeKeywords.
func NewClassifier(cities []string, axes map[string][]string, keywords []string) *Classifier {
	if len(cities) == 0 {
		for city := range PrimeAxes {
			cities = append(cities, city)
		}
		// Map order is random; pin it so detection stays deterministic.
		sort.Strings(cities)
	}
	if axes == nil {
		axes = PrimeAxes
	}
	if len(keywords) == 0 {
		keywords = DefaultPrimeKeywords
	}

	patterns := make([]*regexp.Regexp, len(cities))
	for i, city := range cities {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(city) + `\b`)
	}

	return &Classifier{
		cities:       cities,
		cityPatterns: patterns,
		axes:         axes,
		keywords:     regexp.MustCompile(`(?i)(` + strings.Join(keywords, "|") + `)`),
	}
}

// DetectCity scans the text for a whole-word match against the known
// city list and returns the first hit, or fallback when none matches.
// The fallback is typically the city the search query was built with.
func (c *Classifier) DetectCity(raw, fallback string) string {
	for i, p := range c.cityPatterns {
		if p.MatchString(raw) {
			return c.cities[i]
		}
	}
	return fallback
}

// Score classifies the location quality of a listing, in strict
// precedence order: prime axis of the detected city, then generic
// high-traffic keywords, then the default tier. An undetected city
// yields TierUnscored — explicitly distinct from TierStandard.
func (c *Classifier) Score(city, raw string) Tier {
	if city == "" {
		return TierUnscored
	}

	lower := strings.ToLower(raw)
	for _, axis := range c.axes[city] {
		if axis != "" && strings.Contains(lower, strings.ToLower(axis)) {
			return TierPrime
		}
	}

	if c.keywords.MatchString(raw) {
		return TierNear
	}
	return TierStandard
}
