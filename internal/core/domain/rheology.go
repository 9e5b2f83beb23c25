package domain

import (
	"math"
	"sort"
)

// Formula names a viscosity model.
type Formula string

const (
	// FormulaKelvin is the canonical model: Arrhenius consistency index with
	// temperature converted to Kelvin. Results carry three decimals.
	FormulaKelvin Formula = "kelvin"

	// FormulaLegacy is the first published fit. It feeds the Celsius
	// temperature straight into the Arrhenius term. Results carry two decimals.
	FormulaLegacy Formula = "legacy"
)

const (
	kelvinOffset = 273.15

	kelvinAlpha  = 0.00223
	kelvinLambda = 3379.7

	// Rabinowitsch-Mooney style correction for a square channel.
	shearGeometryA = 0.6671
	shearGeometryB = 0.2121

	micrometersPerMillimeter = 1e3
)

// RheologyModel supplies the power-law indices for one formula.
type RheologyModel interface {
	Formula() Formula
	Precision() int
	// Indices returns the flow index n and consistency index K for m at the
	// given temperature in degrees Celsius.
	Indices(m Medium, temperatureC float64) (n, k float64, err error)
}

type kelvinModel struct{}

func (kelvinModel) Formula() Formula { return FormulaKelvin }
func (kelvinModel) Precision() int   { return 3 }

func (kelvinModel) Indices(m Medium, temperatureC float64) (float64, float64, error) {
	tk := temperatureC + kelvinOffset
	n := kelvinAlpha*tk - m.Kelvin.FlowIndexOffset
	k := m.Kelvin.ConsistencyPrefactor * math.Exp(kelvinLambda/tk)
	return n, k, nil
}

type legacyModel struct{}

func (legacyModel) Formula() Formula { return FormulaLegacy }
func (legacyModel) Precision() int   { return 2 }

// Indices keeps the original Celsius Arrhenius term. It is not converted to
// Kelvin so that results match values published with the first fit.
func (legacyModel) Indices(m Medium, temperatureC float64) (float64, float64, error) {
	if m.Legacy == nil {
		return 0, 0, ErrFormulaNotCalibrated
	}
	c := m.Legacy
	n := c.FlowIndexSlope*temperatureC + c.FlowIndexOffset
	k := c.ConsistencyPrefactor * math.Exp(c.ConsistencyActivation/temperatureC)
	return n, k, nil
}

var models = map[Formula]RheologyModel{
	FormulaKelvin: kelvinModel{},
	FormulaLegacy: legacyModel{},
}

// ModelFor returns the model registered for f.
func ModelFor(f Formula) (RheologyModel, bool) {
	m, ok := models[f]
	return m, ok
}

// Formulas lists the supported formulas by name.
func Formulas() []Formula {
	out := make([]Formula, 0, len(models))
	for f := range models {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ShearRate is the apparent wall shear rate in 1/s for a flow rate in µl/s
// through a square channel of the given side in µm.
func ShearRate(flowRate, channelSizeUM, n float64) float64 {
	side := channelSizeUM / micrometersPerMillimeter
	return 8 * flowRate / math.Pow(side, 3) * (shearGeometryA + shearGeometryB/n)
}

// Round rounds v to digits decimals, ties to even.
func Round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(v*scale) / scale
}
