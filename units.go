package simplertf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Twips is the native unit of the RTF grammar: one twentieth of a point,
// 1440 to the inch.
type Twips int

// Conversion factors between twips and common measurement units.
const (
	TwipsPerInch       = 1440
	TwipsPerCentimeter = 566.929133858
	TwipsPerMillimeter = TwipsPerCentimeter / 10
	TwipsPerPoint      = 20
)

// CmToTwips converts centimeters to twips, rounding to the nearest twip.
func CmToTwips(cm float64) Twips {
	return Twips(math.Round(cm * TwipsPerCentimeter))
}

// MmToTwips converts millimeters to twips, rounding to the nearest twip.
func MmToTwips(mm float64) Twips {
	return Twips(math.Round(mm * TwipsPerMillimeter))
}

// InchToTwips converts inches to twips, rounding to the nearest twip.
func InchToTwips(in float64) Twips {
	return Twips(math.Round(in * TwipsPerInch))
}

// PtToTwips converts points to twips.
func PtToTwips(pt float64) Twips {
	return Twips(math.Round(pt * TwipsPerPoint))
}

// ParseMeasure parses a measurement string into twips. A bare number is
// taken as raw twips; the suffixes "cm", "mm", "in" and "pt" select a unit.
//
//	ParseMeasure("1134")  // 1134 twips
//	ParseMeasure("2cm")   // 1134 twips
//	ParseMeasure("0.5in") // 720 twips
func ParseMeasure(m string) (Twips, error) {
	m = strings.TrimSpace(m)
	if m == "" {
		return 0, fmt.Errorf("%w: empty measure", ErrInvalidParam)
	}

	unit := ""
	num := m
	for _, suffix := range []string{"cm", "mm", "in", "pt"} {
		if strings.HasSuffix(m, suffix) {
			unit = suffix
			num = strings.TrimSpace(m[:len(m)-len(suffix)])
			break
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse measure %q", ErrInvalidParam, m)
	}

	switch unit {
	case "cm":
		return CmToTwips(v), nil
	case "mm":
		return MmToTwips(v), nil
	case "in":
		return InchToTwips(v), nil
	case "pt":
		return PtToTwips(v), nil
	default:
		return Twips(math.Round(v)), nil
	}
}
