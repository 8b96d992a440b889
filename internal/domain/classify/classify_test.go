package classify_test

import (
	"testing"

	classify "github.com/dragnet-io/dragnet/internal/domain/classify"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify_CapturedOverride(t *testing.T) {
	Convey("Given a record whose status is captured", t, func() {
		rec := &model.RawRecord{
			UID:      "abc123",
			Title:    "JOHN SMITH",
			Status:   "Captured",
			Subjects: model.StringList{"Cyber's Most Wanted", "Bank Robbery"},
		}

		Convey("Then captured wins over every other signal", func() {
			So(classify.Classify(rec), ShouldEqual, model.Captured)
		})

		Convey("And the status casing does not matter", func() {
			rec.Status = "  CAPTURED "
			So(classify.Classify(rec), ShouldEqual, model.Captured)
		})
	})
}

func TestClassify_ExplicitCategoryTags(t *testing.T) {
	Convey("Given records with explicit category tags", t, func() {
		Convey("When the subjects mention cyber", func() {
			rec := &model.RawRecord{
				UID:      "c1",
				Title:    "IVAN PETROV",
				Subjects: model.StringList{"Cyber's Most Wanted"},
			}
			So(classify.Classify(rec), ShouldEqual, model.CyberMostWanted)
		})

		Convey("When the subjects mention crimes against children", func() {
			rec := &model.RawRecord{
				UID:      "c2",
				Title:    "SOME FUGITIVE",
				Subjects: model.StringList{"Crimes Against Children"},
			}
			So(classify.Classify(rec), ShouldEqual, model.CrimesAgainstChildren)
		})
	})
}

func TestClassify_ExplicitCodes(t *testing.T) {
	Convey("Given records with explicit classification codes", t, func() {
		Convey("When the poster classification is missing", func() {
			rec := &model.RawRecord{
				UID:                  "m1",
				Title:                "MARIA GARCIA",
				PosterClassification: "missing",
			}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})

		Convey("When the person classification seeks information", func() {
			rec := &model.RawRecord{
				UID:                  "s1",
				Title:                "SHOOTING WITNESSES",
				PersonClassification: "Seeking Information",
			}
			So(classify.Classify(rec), ShouldEqual, model.SeekingInformation)
		})

		Convey("When the code says victim", func() {
			rec := &model.RawRecord{
				UID:                  "v1",
				Title:                "ROBERT BROWN",
				PosterClassification: "victim",
			}
			So(classify.Classify(rec), ShouldEqual, model.VictimOfCrime)

			Convey("But a Jane Doe title beats the victim bucket", func() {
				rec.Title = "JANE DOE - HOMICIDE VICTIM"
				So(classify.Classify(rec), ShouldEqual, model.UnidentifiedPerson)
			})
		})

		Convey("When the code is unrecognized it falls through", func() {
			rec := &model.RawRecord{
				UID:                  "u1",
				Title:                "MISSING: ALICE SMITH",
				PosterClassification: "default",
			}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})
	})
}

func TestClassify_TagKeywords(t *testing.T) {
	Convey("Given records classified by subject tags", t, func() {
		Convey("When a tag names a missing person", func() {
			rec := &model.RawRecord{
				UID:      "t1",
				Title:    "ALICE SMITH",
				Subjects: model.StringList{"Missing Person"},
			}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})

		Convey("When a tag names a homicide", func() {
			rec := &model.RawRecord{
				UID:      "t2",
				Title:    "DAVID LEE",
				Subjects: model.StringList{"Homicide"},
			}
			So(classify.Classify(rec), ShouldEqual, model.VictimOfCrime)

			Convey("But an unidentified title wins the tie-break", func() {
				rec.Title = "UNIDENTIFIED MALE"
				So(classify.Classify(rec), ShouldEqual, model.UnidentifiedPerson)
			})
		})

		Convey("When a tag seeks information", func() {
			rec := &model.RawRecord{
				UID:      "t3",
				Title:    "BOMBING INCIDENT",
				Subjects: model.StringList{"Seeking Information"},
			}
			So(classify.Classify(rec), ShouldEqual, model.SeekingInformation)
		})
	})
}

func TestClassify_TitleKeywords(t *testing.T) {
	Convey("Given records classified by title alone", t, func() {
		Convey("When the title says unidentified", func() {
			rec := &model.RawRecord{UID: "n1", Title: "UNIDENTIFIED FEMALE"}
			So(classify.Classify(rec), ShouldEqual, model.UnidentifiedPerson)
		})

		Convey("When the title names a Doe", func() {
			rec := &model.RawRecord{UID: "n2", Title: "JOHN DOE (1987)"}
			So(classify.Classify(rec), ShouldEqual, model.UnidentifiedPerson)
		})

		Convey("When the title mentions missing", func() {
			rec := &model.RawRecord{UID: "n3", Title: "ALICE SMITH - MISSING"}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})
	})
}

func TestClassify_FreeText(t *testing.T) {
	Convey("Given records classified by prose phrases", t, func() {
		Convey("When the description describes a disappearance", func() {
			rec := &model.RawRecord{
				UID:         "f1",
				Title:       "MARIA GARCIA",
				Description: "Maria was last seen leaving work. She has been missing since March 2019.",
			}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})

		Convey("When remains were found", func() {
			rec := &model.RawRecord{
				UID:         "f2",
				Title:       "CASE 44-A",
				Description: "Skeletal remains were recovered near the riverbed.",
			}
			So(classify.Classify(rec), ShouldEqual, model.VictimOfCrime)
		})

		Convey("When the text asks about cause of death", func() {
			rec := &model.RawRecord{
				UID:         "f3",
				Title:       "CASE 44-B",
				Description: "The FBI is seeking information on cause of death of the individual.",
			}
			So(classify.Classify(rec), ShouldEqual, model.SeekingInformation)
		})

		Convey("When the text solicits tips", func() {
			rec := &model.RawRecord{
				UID:         "f4",
				Title:       "ARSON CASE",
				Description: "Anyone with information is urged to contact the field office.",
			}
			So(classify.Classify(rec), ShouldEqual, model.SeekingInformation)
		})

		Convey("And a specific category is never widened by later prose", func() {
			rec := &model.RawRecord{
				UID:                  "f5",
				Title:                "MARIA GARCIA",
				PosterClassification: "missing",
				Description:          "Her body was found weeks later.",
			}
			So(classify.Classify(rec), ShouldEqual, model.MissingPerson)
		})
	})
}

func TestClassify_ViCAP(t *testing.T) {
	Convey("Given a record tagged only by the violent-crime program", t, func() {
		rec := &model.RawRecord{
			UID:      "vc1",
			Subjects: model.StringList{"ViCAP Victim Alert"},
		}

		Convey("Then the victim wording resolves to unidentified", func() {
			So(classify.Classify(rec), ShouldEqual, model.UnidentifiedPerson)
		})
	})
}

func TestClassify_Degenerate(t *testing.T) {
	Convey("Given records with no usable signal", t, func() {
		Convey("When subjects are pure dates and nothing else exists", func() {
			rec := &model.RawRecord{
				UID:      "d1",
				Subjects: model.StringList{"January 5, 2010", "2010"},
			}
			So(classify.Classify(rec), ShouldEqual, model.Unspecified)
		})

		Convey("When the record is entirely blank", func() {
			rec := &model.RawRecord{UID: "d2"}
			So(classify.Classify(rec), ShouldEqual, model.Unspecified)
		})

		Convey("When only a criminal-looking title exists", func() {
			rec := &model.RawRecord{UID: "d3", Title: "JOHN SMITH"}
			So(classify.Classify(rec), ShouldEqual, model.WantedCriminal)
		})
	})
}

func TestClassify_DefaultCriminal(t *testing.T) {
	Convey("Given a plain fugitive record", t, func() {
		rec := &model.RawRecord{
			UID:      "w1",
			Title:    "JOHN SMITH",
			Subjects: model.StringList{"Bank Robbery", "Armed Robbery"},
		}

		Convey("Then nothing fires and the record stays wanted criminal", func() {
			So(classify.Classify(rec), ShouldEqual, model.WantedCriminal)
		})
	})

	Convey("Given a record with real tags but no title or description", t, func() {
		rec := &model.RawRecord{
			UID:      "w2",
			Subjects: model.StringList{"Bank Robbery", "Armed and Dangerous"},
		}
		result := classify.Run(rec)

		Convey("Then the tags alone keep it out of unspecified", func() {
			So(result.Category, ShouldEqual, model.WantedCriminal)
		})

		Convey("And the charges derive from those tags", func() {
			So(result.Charges, ShouldResemble, []string{"Bank Robbery", "Armed and Dangerous"})
		})
	})
}

func TestCharges(t *testing.T) {
	Convey("Given the charge derivation rules", t, func() {
		Convey("When the record is criminal", func() {
			rec := &model.RawRecord{
				UID:   "ch1",
				Title: "JOHN SMITH",
				Subjects: model.StringList{
					"Bank Robbery",
					"January 5, 2020",
					"Phoenix, AZ",
					"Armed Robbery",
				},
			}
			result := classify.Run(rec)

			Convey("Then dates and locations are filtered out", func() {
				So(result.Category, ShouldEqual, model.WantedCriminal)
				So(result.Charges, ShouldResemble, []string{"Bank Robbery", "Armed Robbery"})
			})
		})

		Convey("When a tag restates the category it is dropped", func() {
			rec := &model.RawRecord{
				UID:      "ch2",
				Title:    "IVAN PETROV",
				Subjects: model.StringList{"Cyber's Most Wanted", "Computer Intrusion"},
			}
			result := classify.Run(rec)
			So(result.Category, ShouldEqual, model.CyberMostWanted)
			So(result.Charges, ShouldResemble, []string{"Computer Intrusion"})
		})

		Convey("When a known location field matches a tag it is dropped", func() {
			rec := &model.RawRecord{
				UID:               "ch3",
				Title:             "JOHN SMITH",
				Subjects:          model.StringList{"Kidnapping", "United States"},
				PossibleCountries: model.StringList{"United States"},
			}
			result := classify.Run(rec)
			So(result.Charges, ShouldResemble, []string{"Kidnapping"})
		})

		Convey("When the record is not criminal", func() {
			rec := &model.RawRecord{
				UID:      "ch4",
				Title:    "ALICE SMITH - MISSING",
				Subjects: model.StringList{"Missing Person"},
			}
			result := classify.Run(rec)

			Convey("Then charges are nil, never empty", func() {
				So(result.Category, ShouldEqual, model.MissingPerson)
				So(result.Charges, ShouldBeNil)
			})
		})

		Convey("When every tag filters away", func() {
			rec := &model.RawRecord{
				UID:      "ch5",
				Title:    "JOHN SMITH",
				Subjects: model.StringList{"2019", "Phoenix, AZ"},
			}
			result := classify.Run(rec)
			So(result.Charges, ShouldBeNil)
		})
	})
}

func TestDescribe(t *testing.T) {
	Convey("Given the case description rules", t, func() {
		Convey("When the record is criminal the charges are joined", func() {
			rec := &model.RawRecord{
				UID:      "de1",
				Title:    "JOHN SMITH",
				Subjects: model.StringList{"Bank Robbery", "Armed Robbery"},
			}
			result := classify.Run(rec)
			So(result.CaseTypeDescription, ShouldEqual, "Bank Robbery, Armed Robbery")
		})

		Convey("When a criminal record has no charges the category label is used", func() {
			rec := &model.RawRecord{UID: "de2", Title: "JOHN SMITH"}
			result := classify.Run(rec)
			So(result.CaseTypeDescription, ShouldEqual, "Wanted Criminal")
		})

		Convey("When a non-criminal record carries prose", func() {
			rec := &model.RawRecord{
				UID:         "de3",
				Title:       "ALICE SMITH - MISSING",
				Description: "Last seen near her home.",
			}
			result := classify.Run(rec)
			So(result.CaseTypeDescription, ShouldEqual, "Last seen near her home.")
		})

		Convey("When nothing is usable the category default applies", func() {
			rec := &model.RawRecord{UID: "de4"}
			result := classify.Run(rec)
			So(result.Category, ShouldEqual, model.Unspecified)
			So(result.CaseTypeDescription, ShouldEqual, "No case details available")
		})
	})
}
