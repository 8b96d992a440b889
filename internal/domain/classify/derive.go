package classify

import (
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// defaultDescriptions are the per-category fallbacks used when a record
// carries no usable prose.
var defaultDescriptions = map[model.Classification]string{
	model.WantedCriminal:        "Wanted Criminal",
	model.CyberMostWanted:       "Cyber Most Wanted",
	model.CrimesAgainstChildren: "Crimes Against Children",
	model.MissingPerson:         "Missing Person",
	model.UnidentifiedPerson:    "Unidentified Person",
	model.VictimOfCrime:         "Victim of Crime",
	model.SeekingInformation:    "Seeking Information",
	model.Captured:              "Captured",
	model.Unspecified:           "No case details available",
}

// Describe derives the human-readable case summary for a classified
// record. Criminal categories summarize the charges; every other category
// falls back description -> details -> remarks -> category default.
func Describe(rec *model.RawRecord, cls model.Classification) string {
	if cls.Criminal() {
		if charges := Charges(rec, cls); len(charges) > 0 {
			return strings.Join(charges, ", ")
		}
		return defaultDescriptions[cls]
	}
	for _, text := range []string{rec.Description, rec.Details, rec.Remarks} {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return defaultDescriptions[cls]
}

// Charges derives the charge list from the subject tags. Only criminal
// categories carry charges; pure dates, pure locations and the category's
// own label are filtered out. Returns nil, never an empty slice.
func Charges(rec *model.RawRecord, cls model.Classification) []string {
	if !cls.Criminal() {
		return nil
	}
	out := make([]string, 0, len(rec.Subjects))
	for _, tag := range rec.Subjects {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || isPureDate(trimmed) || isPureLocation(rec, trimmed) || isCategoryLabel(cls, trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
