// Package normalize converts raw heterogeneous record fields into
// canonical display values. Every function is pure.
package normalize

import (
	"fmt"
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// metersPerInch is the conversion constant for height formatting.
const metersPerInch = 0.0254

const inchesPerFoot = 12

// Height formats height bounds given in inches into a display string.
//
//	min == max      -> `5'10" (1.78m)`
//	only max        -> `1.83m (max)`
//	only min        -> `At least 1.52m`
//	min != max      -> `1.73m - 1.78m`
//	neither         -> ""
func Height(minInches, maxInches *int) string {
	switch {
	case minInches != nil && maxInches != nil && *minInches == *maxInches:
		in := *minInches
		return fmt.Sprintf("%d'%d\" (%.2fm)", in/inchesPerFoot, in%inchesPerFoot, meters(in))
	case minInches != nil && maxInches != nil:
		return fmt.Sprintf("%.2fm - %.2fm", meters(*minInches), meters(*maxInches))
	case maxInches != nil:
		return fmt.Sprintf("%.2fm (max)", meters(*maxInches))
	case minInches != nil:
		return fmt.Sprintf("At least %.2fm", meters(*minInches))
	default:
		return ""
	}
}

func meters(inches int) float64 {
	return float64(inches) * metersPerInch
}

// Coded attribute tables. Keys are lowercase source codes; some sources
// spell values out in full, so full words map too. Unknown codes pass
// through verbatim.
var hairColors = map[string]string{
	"bal": "Bald", "blk": "Black", "bln": "Blond", "bro": "Brown",
	"gry": "Gray", "red": "Red", "sdy": "Sandy", "wht": "White",
	"aub": "Auburn",
	"bald": "Bald", "black": "Black", "blond": "Blond", "blonde": "Blond",
	"brown": "Brown", "gray": "Gray", "grey": "Gray", "sandy": "Sandy",
	"white": "White", "auburn": "Auburn",
}

var eyeColors = map[string]string{
	"blk": "Black", "blu": "Blue", "bro": "Brown", "grn": "Green",
	"gry": "Gray", "haz": "Hazel", "mar": "Maroon", "mul": "Multicolored",
	"pnk": "Pink",
	"black": "Black", "blue": "Blue", "brown": "Brown", "green": "Green",
	"gray": "Gray", "grey": "Gray", "hazel": "Hazel", "maroon": "Maroon",
	"multicolored": "Multicolored", "pink": "Pink",
}

var sexes = map[string]string{
	"m": "Male", "f": "Female",
	"male": "Male", "female": "Female",
}

// HairColor maps a coded hair color to its display label.
func HairColor(code string) string {
	return lookup(hairColors, code)
}

// EyeColor maps a coded eye color to its display label.
func EyeColor(code string) string {
	return lookup(eyeColors, code)
}

// Sex maps a coded sex value to its display label.
func Sex(code string) string {
	return lookup(sexes, code)
}

func lookup(table map[string]string, code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}
	if label, ok := table[strings.ToLower(trimmed)]; ok {
		return label
	}
	return trimmed
}

// Strings converts a decoded list field to a plain slice, nil when empty.
// Scalar-to-list coercion already happened at the decoding boundary.
func Strings(list model.StringList) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Age derives the display age. A free-text range descriptor is preferred
// over numeric bounds because descriptors carry context the numbers lose
// (e.g. "23 at time of disappearance").
func Age(ageRange string, ageMin, ageMax *int) string {
	if trimmed := strings.TrimSpace(ageRange); trimmed != "" {
		return trimmed
	}
	switch {
	case ageMin != nil && ageMax != nil && *ageMin == *ageMax:
		return fmt.Sprintf("%d years old", *ageMin)
	case ageMin != nil && ageMax != nil:
		return fmt.Sprintf("%d to %d years old", *ageMin, *ageMax)
	case ageMin != nil:
		return fmt.Sprintf("%d years old or older", *ageMin)
	case ageMax != nil:
		return fmt.Sprintf("up to %d years old", *ageMax)
	default:
		return ""
	}
}

// DateOfBirth picks the primary known birth date from the used-dates list.
func DateOfBirth(dates model.StringList) string {
	if len(dates) == 0 {
		return ""
	}
	return strings.TrimSpace(dates[0])
}
