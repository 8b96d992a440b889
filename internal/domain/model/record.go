// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list field that the source sometimes serves as a bare
// string, sometimes as an array, and sometimes as null. Decoding is strict:
// any other JSON type is rejected rather than silently coerced.
type StringList []string

// UnmarshalJSON accepts null, a string, or an array of strings.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("string list scalar: %w", err)
		}
		if strings.TrimSpace(single) == "" {
			*s = nil
			return nil
		}
		*s = StringList{single}
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var raw []*string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("string list array: %w", err)
		}
		out := make(StringList, 0, len(raw))
		for _, v := range raw {
			if v == nil || strings.TrimSpace(*v) == "" {
				continue
			}
			out = append(out, *v)
		}
		if len(out) == 0 {
			*s = nil
			return nil
		}
		*s = out
		return nil
	}
	return fmt.Errorf("string list: unexpected JSON value %q", trimmed)
}

// ImageVariant is one raw image entry with its quality tiers. Any tier may
// be empty.
type ImageVariant struct {
	Original string `json:"original"`
	Large    string `json:"large"`
	Thumb    string `json:"thumb"`
	Caption  string `json:"caption"`
}

// RawRecord is a single untrusted record as served by the source API.
// Nearly every field is optional; absent strings decode to "" and absent
// lists to nil.
type RawRecord struct {
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Caution     string `json:"caution"`
	Remarks     string `json:"remarks"`

	WarningMessage string `json:"warning_message"`
	RewardText     string `json:"reward_text"`

	Images []ImageVariant `json:"images"`

	// Classification hints.
	Subjects             StringList `json:"subjects"`
	Status               string     `json:"status"`
	PosterClassification string     `json:"poster_classification"`
	PersonClassification string     `json:"person_classification"`

	// Physical attributes.
	Sex           string `json:"sex"`
	Race          string `json:"race"`
	Hair          string `json:"hair"`
	Eyes          string `json:"eyes"`
	HeightMin     *int   `json:"height_min"`
	HeightMax     *int   `json:"height_max"`
	Weight        string `json:"weight"`
	ScarsAndMarks string `json:"scars_and_marks"`

	// Biographic attributes.
	Nationality      StringList `json:"nationality"`
	DatesOfBirthUsed StringList `json:"dates_of_birth_used"`
	PlaceOfBirth     string     `json:"place_of_birth"`
	AgeRange         string     `json:"age_range"`
	AgeMin           *int       `json:"age_min"`
	AgeMax           *int       `json:"age_max"`

	// Case metadata.
	FieldOffices      StringList `json:"field_offices"`
	PossibleCountries StringList `json:"possible_countries"`
	PossibleStates    StringList `json:"possible_states"`
	Aliases           StringList `json:"aliases"`
	Publication       string     `json:"publication"`
	Modified          string     `json:"modified"`
}

// FreeText concatenates the prose fields scanned by the deep
// classification stage.
func (r *RawRecord) FreeText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Description, r.Details, r.Remarks} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
