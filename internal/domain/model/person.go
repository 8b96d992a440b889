package model

// Classification is the closed set of case categories a record can be
// assigned. Exactly one value applies to every normalized person.
type Classification string

// Case categories.
const (
	WantedCriminal        Classification = "wanted_criminal"
	CyberMostWanted       Classification = "cyber_most_wanted"
	CrimesAgainstChildren Classification = "crimes_against_children"
	MissingPerson         Classification = "missing_person"
	UnidentifiedPerson    Classification = "unidentified_person"
	VictimOfCrime         Classification = "victim_of_crime"
	SeekingInformation    Classification = "seeking_information"
	Captured              Classification = "captured"
	Unspecified           Classification = "unspecified"
)

// Criminal reports whether the category carries criminal charges.
func (c Classification) Criminal() bool {
	switch c {
	case WantedCriminal, CyberMostWanted, CrimesAgainstChildren:
		return true
	default:
		return false
	}
}

// Generic reports whether the category is still open to refinement by a
// later cascade stage.
func (c Classification) Generic() bool {
	return c == WantedCriminal || c == Unspecified
}

func (c Classification) String() string {
	return string(c)
}

// Classifications returns every category in cascade precedence order.
func Classifications() []Classification {
	return []Classification{
		WantedCriminal,
		CyberMostWanted,
		CrimesAgainstChildren,
		MissingPerson,
		UnidentifiedPerson,
		VictimOfCrime,
		SeekingInformation,
		Captured,
		Unspecified,
	}
}

// Person is the canonical, immutable normalized entity served to
// consumers. It is constructed once per refresh cycle and never mutated.
type Person struct {
	ID    string `json:"id"`
	RawID string `json:"rawId"`
	Name  string `json:"name"`

	// Display. Images is never empty; ThumbnailURL == Images[0].
	Images       []string `json:"images"`
	ThumbnailURL string   `json:"thumbnailUrl"`

	Classification      Classification `json:"classification"`
	CaseTypeDescription string         `json:"caseTypeDescription"`
	// Charges is populated only for criminal classifications.
	Charges []string `json:"charges"`

	Sex                 string   `json:"sex,omitempty"`
	Race                string   `json:"race,omitempty"`
	Nationality         []string `json:"nationality,omitempty"`
	DateOfBirth         string   `json:"dateOfBirth,omitempty"`
	Age                 string   `json:"age,omitempty"`
	PlaceOfBirth        string   `json:"placeOfBirth,omitempty"`
	Height              string   `json:"height,omitempty"`
	Weight              string   `json:"weight,omitempty"`
	EyeColor            string   `json:"eyeColor,omitempty"`
	HairColor           string   `json:"hairColor,omitempty"`
	DistinguishingMarks string   `json:"distinguishingMarks,omitempty"`

	FieldOffices      []string `json:"fieldOffices,omitempty"`
	PossibleCountries []string `json:"possibleCountries,omitempty"`
	PossibleStates    []string `json:"possibleStates,omitempty"`
	Aliases           []string `json:"aliases,omitempty"`
	RewardText        string   `json:"rewardText,omitempty"`
	WarningMessage    string   `json:"warningMessage,omitempty"`
	Details           string   `json:"details,omitempty"`
	Remarks           string   `json:"remarks,omitempty"`
	Description       string   `json:"description,omitempty"`

	// Raw retains the original record for fields the normalizer does not
	// canonicalize. Read-only.
	Raw *RawRecord `json:"-"`
}
