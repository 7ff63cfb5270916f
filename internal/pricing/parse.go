package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseFailed is the sentinel returned when no amount can be extracted.
// Callers must treat it (or any value <= 0) as unparseable and fall back to
// FallbackCost.
const ParseFailed = -1.0

// croreScale is the literal factor the estimator has always used for "crore"
// quantities. Standard usage is 1e7; changing this silently would shift every
// derived roadmap, so it stays as-is.
const croreScale = 1e6

const lakhScale = 1e5

var (
	rupeeRe = regexp.MustCompile(`(?i)₹\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*(lakhs?|lacs?|crores?|cr\b|l\b)?`)
	croreRe = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(?:crores?|cr)\b`)
	lakhRe  = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(?:lakhs?|lacs?|l)\b`)
	digitRe = regexp.MustCompile(`[0-9]{4,}`)
)

// suffixScale maps a captured unit word to its multiplier. Empty means a plain
// rupee figure.
func suffixScale(suffix string) float64 {
	switch {
	case suffix == "":
		return 1
	case strings.HasPrefix(strings.ToLower(suffix), "c"):
		return croreScale
	default:
		return lakhScale
	}
}

// ParseAmount extracts an INR amount from a cost-bearing sentence.
// Precedence: an explicit ₹-prefixed number, then a crore-suffixed quantity,
// then a lakh-suffixed one, then the largest bare run of 4+ digits anywhere in
// the text. Returns ParseFailed when nothing matches.
func ParseAmount(text string) float64 {
	// A sentence may carry several ₹ figures (e.g. a monthly yield next to
	// the corpus total); the estimate of interest is the largest one. A unit
	// word attached to the figure ("₹15 lakh") scales it.
	if ms := rupeeRe.FindAllStringSubmatch(text, -1); ms != nil {
		best := ParseFailed
		for _, m := range ms {
			raw := strings.ReplaceAll(m[1], ",", "")
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				if v *= suffixScale(m[2]); v > best {
					best = v
				}
			}
		}
		if best > 0 {
			return best
		}
	}
	if m := croreRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v * croreScale
		}
	}
	if m := lakhRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v * lakhScale
		}
	}
	best := ParseFailed
	for _, run := range digitRe.FindAllString(text, -1) {
		if v, err := strconv.ParseFloat(run, 64); err == nil && v > best {
			best = v
		}
	}
	return best
}
