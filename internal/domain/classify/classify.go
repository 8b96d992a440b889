// Package classify assigns exactly one case category to a raw record.
//
// The classifier is a pure decision cascade, not a state machine over
// time: an ordered list of rules evaluated once per record. A later stage
// may refine the decision of an earlier one, but only while the current
// result is still generic (wanted-criminal or unspecified); a specific
// category is never widened back. Stage 0 (captured status) is absolute
// and terminal.
//
// The relative order of the stages is a product decision: explicit
// classification codes beat subject-tag keywords, which beat title
// keywords, which beat free-text phrases. At every stage identity-unknown
// language ("unidentified", "Jane/John Doe") takes precedence over
// generic victim-of-crime language. No stage returns an error; the
// cascade always terminates in a category.
package classify

import (
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// Result is the classifier's full output for a record.
type Result struct {
	Category            model.Classification
	CaseTypeDescription string
	Charges             []string
}

// stage is one cascade rule. ok reports whether the rule fired.
type stage func(rec *model.RawRecord) (cls model.Classification, ok bool)

// stages run in order after the absolute captured check.
var stages = []stage{
	stageExplicitCategoryTags,
	stageExplicitCodes,
	stageTagKeywords,
	stageTitleKeywords,
	stageFreeText,
	stageViCAP,
	stageDegenerateSubjects,
}

// Run classifies a record and derives its dependent display fields.
func Run(rec *model.RawRecord) Result {
	cls := Classify(rec)
	return Result{
		Category:            cls,
		CaseTypeDescription: Describe(rec, cls),
		Charges:             Charges(rec, cls),
	}
}

// Classify folds the cascade over a record and returns its category.
func Classify(rec *model.RawRecord) model.Classification {
	if cls, ok := stageCaptured(rec); ok {
		return cls
	}

	current := model.Unspecified
	for _, st := range stages {
		if !current.Generic() {
			break
		}
		if cls, ok := st(rec); ok {
			current = cls
		}
	}

	if current.Generic() {
		if !hasUsableText(rec) && !hasRealSubjects(rec) {
			return model.Unspecified
		}
		return model.WantedCriminal
	}
	return current
}

// stageCaptured is the absolute override: a captured status terminates the
// cascade regardless of every other field.
func stageCaptured(rec *model.RawRecord) (model.Classification, bool) {
	if lower(rec.Status) == "captured" {
		return model.Captured, true
	}
	return "", false
}

// stageExplicitCategoryTags catches the explicitly tagged criminal
// sub-categories.
func stageExplicitCategoryTags(rec *model.RawRecord) (model.Classification, bool) {
	text := joinedTags(rec) + " " + lower(rec.Title)
	switch {
	case containsAny(text, cyberMarkers):
		return model.CyberMostWanted, true
	case containsAny(text, childrenMarkers):
		return model.CrimesAgainstChildren, true
	default:
		return "", false
	}
}

// stageExplicitCodes maps recognized poster/person classification codes
// directly. Unrecognized codes fall through to weaker signals.
func stageExplicitCodes(rec *model.RawRecord) (model.Classification, bool) {
	for _, code := range []string{rec.PosterClassification, rec.PersonClassification} {
		switch lower(code) {
		case "missing":
			return model.MissingPerson, true
		case "information", "seeking information":
			return model.SeekingInformation, true
		case "victim":
			// The victim bucket is provisional: title-level identity
			// markers win over it.
			if containsAny(lower(rec.Title), unidentifiedMarkers) {
				return model.UnidentifiedPerson, true
			}
			return model.VictimOfCrime, true
		}
	}
	return "", false
}

// stageTagKeywords matches the keyword families against subject tags.
func stageTagKeywords(rec *model.RawRecord) (model.Classification, bool) {
	tags := joinedTags(rec)
	if tags == "" {
		return "", false
	}
	title := lower(rec.Title)
	switch {
	case containsAny(tags, unidentifiedMarkers):
		return model.UnidentifiedPerson, true
	case containsAny(tags, missingTagMarkers):
		return model.MissingPerson, true
	case containsAny(tags, seekingMarkers):
		return model.SeekingInformation, true
	case containsAny(tags, victimTagMarkers):
		if containsAny(title, unidentifiedMarkers) {
			return model.UnidentifiedPerson, true
		}
		return model.VictimOfCrime, true
	default:
		return "", false
	}
}

// stageTitleKeywords applies the same families to the title field.
func stageTitleKeywords(rec *model.RawRecord) (model.Classification, bool) {
	title := lower(rec.Title)
	if title == "" {
		return "", false
	}
	return matchKeywords(title)
}

// stageFreeText scans the concatenated prose fields for stronger
// contextual phrases.
func stageFreeText(rec *model.RawRecord) (model.Classification, bool) {
	text := lower(rec.FreeText())
	if text == "" {
		return "", false
	}

	if containsAny(text, unidentifiedMarkers) {
		return model.UnidentifiedPerson, true
	}
	if strings.Contains(text, "was last seen") &&
		(strings.Contains(text, "missing since") || strings.Contains(text, "disappearance")) {
		return model.MissingPerson, true
	}
	if strings.Contains(text, "seeking information on cause of death") {
		return model.SeekingInformation, true
	}
	if strings.Contains(text, "body was found") ||
		strings.Contains(text, "skeletal remains") ||
		strings.Contains(text, "cause of death") {
		return model.VictimOfCrime, true
	}
	if containsAny(text, seekingMarkers) || strings.Contains(text, "anyone with information") {
		return model.SeekingInformation, true
	}
	return "", false
}

// stageViCAP disambiguates records tagged by the violent-crime database
// program.
func stageViCAP(rec *model.RawRecord) (model.Classification, bool) {
	text := joinedTags(rec) + " " + lower(rec.Title)
	if !containsAny(text, vicapMarkers) {
		return "", false
	}
	switch {
	case strings.Contains(text, "unidentified") || strings.Contains(text, "victim"):
		return model.UnidentifiedPerson, true
	case containsAny(text, seekingMarkers):
		return model.SeekingInformation, true
	default:
		return "", false
	}
}

// stageDegenerateSubjects handles records whose subject tags are absent or
// pure filler by re-running the keyword families against title and
// description alone.
func stageDegenerateSubjects(rec *model.RawRecord) (model.Classification, bool) {
	for _, tag := range rec.Subjects {
		if !isFiller(tag) {
			return "", false
		}
	}
	text := lower(rec.Title + " " + rec.Description)
	if strings.TrimSpace(text) != "" {
		if cls, ok := matchKeywords(text); ok {
			return cls, true
		}
	}
	if !hasUsableText(rec) {
		return model.Unspecified, true
	}
	return "", false
}

// hasUsableText reports whether the record carries any name, title or
// description at all.
func hasUsableText(rec *model.RawRecord) bool {
	return strings.TrimSpace(rec.Title) != "" ||
		strings.TrimSpace(rec.Description) != ""
}

// hasRealSubjects reports whether any subject tag carries signal beyond
// filler. A title-less record with real tags is still a chargeable case,
// not an unspecified one.
func hasRealSubjects(rec *model.RawRecord) bool {
	for _, tag := range rec.Subjects {
		if !isFiller(tag) {
			return true
		}
	}
	return false
}
