package fedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/fedex/pkg/shipper"
)

func TestLocationUsesImperial(t *testing.T) {
	assert.True(t, locationUsesImperial(shipper.Location{CountryCode: "US"}))
	assert.True(t, locationUsesImperial(shipper.Location{CountryCode: "LR"}))
	assert.True(t, locationUsesImperial(shipper.Location{CountryCode: "MM"}))

	assert.False(t, locationUsesImperial(shipper.Location{CountryCode: "CA"}))
	assert.False(t, locationUsesImperial(shipper.Location{CountryCode: "GB"}))
	assert.False(t, locationUsesImperial(shipper.Location{}))
}

func TestPackageWeight_Metric(t *testing.T) {
	pkg := shipper.Package{WeightGrams: 2500}

	w := packageWeight(pkg, false)
	assert.Equal(t, "KG", w.Units)
	assert.Equal(t, 2.5, w.Value)
}

func TestPackageWeight_ImperialRounding(t *testing.T) {
	// 1000 g = 2.20462... lb, rounded to three decimals.
	pkg := shipper.Package{WeightGrams: 1000}

	w := packageWeight(pkg, true)
	assert.Equal(t, "LB", w.Units)
	assert.Equal(t, 2.205, w.Value)
}

func TestPackageWeight_Floor(t *testing.T) {
	// A near-weightless package is declared at the carrier minimum in either
	// unit system.
	pkg := shipper.Package{WeightGrams: 10}

	assert.Equal(t, 0.1, packageWeight(pkg, false).Value)
	assert.Equal(t, 0.1, packageWeight(pkg, true).Value)
}

func TestPackageDimensions_RoundUp(t *testing.T) {
	pkg := shipper.Package{LengthCM: 30.2, WidthCM: 20, HeightCM: 10.01}

	metric := packageDimensions(pkg, false)
	assert.Equal(t, "CM", metric.Units)
	assert.Equal(t, 31, metric.Length)
	assert.Equal(t, 20, metric.Width)
	assert.Equal(t, 11, metric.Height)

	// 30.2 cm = 11.889... in, 20 cm = 7.874... in, 10.01 cm = 3.941... in.
	imperial := packageDimensions(pkg, true)
	assert.Equal(t, "IN", imperial.Units)
	assert.Equal(t, 12, imperial.Length)
	assert.Equal(t, 8, imperial.Width)
	assert.Equal(t, 4, imperial.Height)
}

func TestPackageDimensions_RoundsBeforeCeiling(t *testing.T) {
	// 25.401 cm is 10.000393... in; the three-decimal rounding must collapse
	// that to exactly 10 before the ceiling is taken.
	pkg := shipper.Package{LengthCM: 25.401, WidthCM: 25.401, HeightCM: 25.401}

	imperial := packageDimensions(pkg, true)
	assert.Equal(t, 10, imperial.Length)
	assert.Equal(t, 10, imperial.Width)
	assert.Equal(t, 10, imperial.Height)
}
