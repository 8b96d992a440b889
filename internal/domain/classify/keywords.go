package classify

import (
	"regexp"
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// Keyword families used across cascade stages. All matching is
// case-insensitive on pre-lowered text.
var (
	unidentifiedMarkers = []string{"unidentified", "jane doe", "john doe"}
	cyberMarkers        = []string{"cyber"}
	childrenMarkers     = []string{"crimes against children"}
	missingTagMarkers   = []string{"missing person"}
	seekingMarkers      = []string{"seeking information"}
	victimTagMarkers    = []string{"homicide", "sexual assault"}
	vicapMarkers        = []string{"vicap", "violent criminal apprehension"}
)

// Filler subject tags carry no classification signal: pure dates and
// generic assistance phrases.
var (
	numericDateRe = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}$`)
	writtenDateRe = regexp.MustCompile(`^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}$`)
	yearOnlyRe    = regexp.MustCompile(`^\d{4}$`)

	// City, ST style tags are locations, not charges.
	cityStateRe = regexp.MustCompile(`^[a-z .'-]+,\s*[a-z]{2}$`)
)

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isPureDate(tag string) bool {
	t := lower(tag)
	return numericDateRe.MatchString(t) || writtenDateRe.MatchString(t) || yearOnlyRe.MatchString(t)
}

func isFiller(tag string) bool {
	t := lower(tag)
	if t == "" || isPureDate(t) {
		return true
	}
	return strings.Contains(t, "assistance")
}

func isPureLocation(rec *model.RawRecord, tag string) bool {
	t := lower(tag)
	if cityStateRe.MatchString(t) {
		return true
	}
	for _, list := range []model.StringList{rec.PossibleStates, rec.PossibleCountries, rec.FieldOffices} {
		for _, entry := range list {
			if t == lower(entry) {
				return true
			}
		}
	}
	return false
}

// isCategoryLabel reports whether a subject tag merely restates the case
// category it was classified into.
func isCategoryLabel(cls model.Classification, tag string) bool {
	t := lower(tag)
	switch cls {
	case model.CyberMostWanted:
		return containsAny(t, cyberMarkers)
	case model.CrimesAgainstChildren:
		return containsAny(t, childrenMarkers)
	default:
		return false
	}
}

// joinedTags returns the lowercased subject tags joined for substring
// matching.
func joinedTags(rec *model.RawRecord) string {
	return lower(strings.Join(rec.Subjects, " | "))
}

// matchKeywords applies the shared keyword families to a lowered text,
// honoring the identity-unknown-beats-victim precedence.
func matchKeywords(text string) (model.Classification, bool) {
	switch {
	case containsAny(text, unidentifiedMarkers):
		return model.UnidentifiedPerson, true
	case strings.Contains(text, "missing"):
		return model.MissingPerson, true
	case containsAny(text, seekingMarkers):
		return model.SeekingInformation, true
	case containsAny(text, victimTagMarkers) || strings.Contains(text, "victim"):
		return model.VictimOfCrime, true
	default:
		return "", false
	}
}
