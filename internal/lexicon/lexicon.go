// Package lexicon holds the static marker-word tables used for sentiment and
// aspect determination. The tables are initialized once at load time and never
// mutated, so they are safe to share across concurrent classifications without
// locking.
package lexicon

import "strings"

// Aspect names, in the order they are checked. The first aspect whose markers
// match wins; General is the fallback when nothing matches.
const (
	AspectGeneral = "General"
	AspectCamera  = "Camera"
	AspectBattery = "Battery"
	AspectDisplay = "Display"
	AspectAudio   = "Audio"
	AspectDesign  = "Design"
)

var positiveMarkers = []string{
	"great", "excellent", "amazing", "good", "love",
	"wonderful", "fantastic", "best", "awesome",
}

var negativeMarkers = []string{
	"bad", "terrible", "awful", "hate", "worst",
	"poor", "disappointing", "useless",
}

// aspectTable pairs an aspect with its marker words. Order is the fixed
// priority order: Camera > Battery > Display > Audio > Design.
type aspectTable struct {
	aspect  string
	markers []string
}

var aspectTables = []aspectTable{
	{AspectCamera, []string{"camera", "photo"}},
	{AspectBattery, []string{"battery", "charge"}},
	{AspectDisplay, []string{"screen", "display"}},
	{AspectAudio, []string{"speaker", "sound", "audio"}},
	{AspectDesign, []string{"design", "look"}},
}

// containsAny reports whether any marker occurs in the lowered text.
// Matching is substring containment, not word-boundary matching: "good"
// matches inside "goods". That recall-over-precision trade-off is
// intentional and callers rely on it being stable.
func containsAny(lowered string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lowered, m) {
			return true
		}
	}
	return false
}

// HasPositive reports whether the lowered text contains any positive marker.
func HasPositive(lowered string) bool {
	return containsAny(lowered, positiveMarkers)
}

// HasNegative reports whether the lowered text contains any negative marker.
func HasNegative(lowered string) bool {
	return containsAny(lowered, negativeMarkers)
}

// DetectAspect scans the aspect tables in priority order and returns the
// first aspect with a matching marker, or General when none match.
func DetectAspect(lowered string) string {
	for _, t := range aspectTables {
		if containsAny(lowered, t.markers) {
			return t.aspect
		}
	}
	return AspectGeneral
}

// Normalize lowers text for marker matching. Original casing is never
// needed inside the lexicon.
func Normalize(text string) string {
	return strings.ToLower(text)
}
