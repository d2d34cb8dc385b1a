package fedex

import (
	"math"

	"github.com/tournevent/fedex/pkg/shipper"
)

// imperialCountries lists the origin countries for which the carrier expects
// imperial units.
var imperialCountries = map[string]bool{
	"US": true,
	"LR": true,
	"MM": true,
}

// locationUsesImperial decides the unit system from the origin country.
func locationUsesImperial(loc shipper.Location) bool {
	return imperialCountries[loc.CountryCode]
}

// minWeight is the smallest weight the carrier accepts; lighter packages are
// declared at this floor.
const minWeight = 0.1

// weightDetail is the wire representation of a package weight.
type weightDetail struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

// dimensionsDetail is the wire representation of package dimensions. The
// carrier requires whole units, rounded up so we never under-declare.
type dimensionsDetail struct {
	Length int    `json:"length"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Units  string `json:"units"`
}

// packageWeight converts a package weight to the active unit system, rounded
// to three decimals and floored at minWeight.
func packageWeight(pkg shipper.Package, imperial bool) weightDetail {
	var value float64
	units := "KG"
	if imperial {
		units = "LB"
		value = round3(pkg.Pounds())
	} else {
		value = round3(pkg.Kilograms())
	}
	if value < minWeight {
		value = minWeight
	}
	return weightDetail{Units: units, Value: value}
}

// packageDimensions converts package dimensions to the active unit system,
// rounding each axis to three decimals and then up to the next whole unit.
func packageDimensions(pkg shipper.Package, imperial bool) dimensionsDetail {
	units := "CM"
	if imperial {
		units = "IN"
	}
	return dimensionsDetail{
		Length: wholeDimension(&pkg, shipper.AxisLength, imperial),
		Width:  wholeDimension(&pkg, shipper.AxisWidth, imperial),
		Height: wholeDimension(&pkg, shipper.AxisHeight, imperial),
		Units:  units,
	}
}

func wholeDimension(pkg *shipper.Package, axis shipper.Axis, imperial bool) int {
	v := pkg.Centimetres(axis)
	if imperial {
		v = pkg.Inches(axis)
	}
	return int(math.Ceil(round3(v)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
