package distance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var kilometersPerMile = decimal.RequireFromString("1.60934")

type Miles float64

type Kilometers float64

// ToKilometers converts and rounds to one decimal place.
func (m Miles) ToKilometers() Kilometers {
	km, _ := decimal.NewFromFloat(float64(m)).Mul(kilometersPerMile).Round(1).Float64()

	return Kilometers(km)
}

// ToMiles converts and rounds to one decimal place.
func (k Kilometers) ToMiles() Miles {
	mi, _ := decimal.NewFromFloat(float64(k)).DivRound(kilometersPerMile, 16).Round(1).Float64()

	return Miles(mi)
}

func (m Miles) String() string {
	return decimal.NewFromFloat(float64(m)).String()
}

type Unit string

const (
	UnitMiles      Unit = "miles"
	UnitKilometers Unit = "kilometers"
)

// ParseUnit accepts the usual spellings. An empty string means miles.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mi", "mile", "miles":
		return UnitMiles, nil
	case "k", "km", "kms", "kilometer", "kilometers", "kilometre", "kilometres":
		return UnitKilometers, nil
	default:
		return "", fmt.Errorf("distance: unknown unit %q", s)
	}
}

func ToMiles(value float64, unit Unit) Miles {
	if unit == UnitKilometers {
		return Kilometers(value).ToMiles()
	}

	return Miles(value)
}

const (
	Marathon     Miles = 26.2
	HalfMarathon Miles = 13.1
)

// Parse reads free text such as "5K", "10 km", "3.1 miles" or "half marathon".
// A bare number is taken as miles. Values that round to zero miles are
// rejected.
func Parse(s string) (Miles, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	switch text {
	case "":
		return 0, fmt.Errorf("distance: empty value")
	case "marathon":
		return Marathon, nil
	case "half", "half marathon", "half-marathon":
		return HalfMarathon, nil
	}

	end := strings.IndexFunc(text, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end < 0 {
		end = len(text)
	}

	value, err := decimal.NewFromString(text[:end])
	if err != nil {
		return 0, fmt.Errorf("distance: invalid value %q", s)
	}

	unit, err := ParseUnit(text[end:])
	if err != nil {
		return 0, err
	}

	v, _ := value.Float64()

	miles := ToMiles(v, unit)
	if miles <= 0 {
		return 0, fmt.Errorf("distance: value must be positive: %q", s)
	}

	return miles, nil
}
