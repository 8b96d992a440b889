// Package assemble composes resolver, normalizer and classifier output
// into the canonical normalized person entity.
package assemble

import (
	"fmt"
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/classify"
	"github.com/dragnet-io/dragnet/internal/domain/images"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/internal/domain/normalize"
)

// sourceNamespace prefixes every person id so ids stay stable and
// collision-free if a second source is ever aggregated.
const sourceNamespace = "fbi"

// Person builds an immutable normalized person from a raw record. The
// input is never mutated. A record without a usable identifier returns
// ErrNoIdentifier; callers drop that single record and keep the batch.
func Person(rec *model.RawRecord) (*model.Person, error) {
	if rec == nil {
		return nil, ErrNoIdentifier
	}
	rawID := strings.TrimSpace(rec.UID)
	if rawID == "" {
		return nil, fmt.Errorf("record %q: %w", rec.Title, ErrNoIdentifier)
	}

	imgs, _ := images.Resolve(rec.Images, rec.Title)
	result := classify.Run(rec)

	return &model.Person{
		ID:    sourceNamespace + ":" + rawID,
		RawID: rawID,
		Name:  strings.TrimSpace(rec.Title),

		Images:       imgs,
		ThumbnailURL: imgs[0],

		Classification:      result.Category,
		CaseTypeDescription: result.CaseTypeDescription,
		Charges:             result.Charges,

		Sex:                 normalize.Sex(rec.Sex),
		Race:                strings.TrimSpace(rec.Race),
		Nationality:         normalize.Strings(rec.Nationality),
		DateOfBirth:         normalize.DateOfBirth(rec.DatesOfBirthUsed),
		Age:                 normalize.Age(rec.AgeRange, rec.AgeMin, rec.AgeMax),
		PlaceOfBirth:        strings.TrimSpace(rec.PlaceOfBirth),
		Height:              normalize.Height(rec.HeightMin, rec.HeightMax),
		Weight:              strings.TrimSpace(rec.Weight),
		EyeColor:            normalize.EyeColor(rec.Eyes),
		HairColor:           normalize.HairColor(rec.Hair),
		DistinguishingMarks: strings.TrimSpace(rec.ScarsAndMarks),

		FieldOffices:      normalize.Strings(rec.FieldOffices),
		PossibleCountries: normalize.Strings(rec.PossibleCountries),
		PossibleStates:    normalize.Strings(rec.PossibleStates),
		Aliases:           normalize.Strings(rec.Aliases),
		RewardText:        strings.TrimSpace(rec.RewardText),
		WarningMessage:    strings.TrimSpace(rec.WarningMessage),
		Details:           strings.TrimSpace(rec.Details),
		Remarks:           strings.TrimSpace(rec.Remarks),
		Description:       strings.TrimSpace(rec.Description),

		Raw: rec,
	}, nil
}
