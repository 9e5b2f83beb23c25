package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Input field names used in InputError.Field.
const (
	FieldMedium      = "medium"
	FieldTemperature = "temperature"
	FieldChannelSize = "channel_size"
	FieldFlowRate    = "flow_rate"
	FieldFormula     = "formula"
	FieldFlowIndex   = "flow_index"
	FieldViscosity   = "viscosity"
)

// RawInput carries the four values as the host received them. A nil pointer
// means the host did not supply the field at all.
type RawInput struct {
	Medium      *string
	Temperature *string
	ChannelSize *string
	FlowRate    *string
}

// CalculationInput is a parsed, validated set of inputs.
type CalculationInput struct {
	Medium        Medium
	TemperatureC  float64 // °C
	ChannelSizeUM float64 // µm
	FlowRate      float64 // µl/s
}

// ViscosityResult is the outcome of one evaluation.
type ViscosityResult struct {
	Medium           MediumID `json:"medium"`
	Formula          Formula  `json:"formula"`
	Viscosity        float64  `json:"viscosity"` // mPa·s, rounded
	Precision        int      `json:"precision"`
	FlowIndex        float64  `json:"flow_index"`
	ConsistencyIndex float64  `json:"consistency_index"`
	ShearRate        float64  `json:"shear_rate"`
}

// Display renders the result the way the dashboard shows it.
func (r ViscosityResult) Display() string {
	return "Computed viscosity [mPa.s]: \n" + strconv.FormatFloat(r.Viscosity, 'f', -1, 64)
}

// ParseInput checks presence and parseability of raw and resolves the
// medium against catalog. Missing fields are reported before parse errors,
// in field order.
func ParseInput(catalog *MediumCatalog, raw RawInput) (CalculationInput, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{FieldMedium, raw.Medium},
		{FieldTemperature, raw.Temperature},
		{FieldChannelSize, raw.ChannelSize},
		{FieldFlowRate, raw.FlowRate},
	}
	for _, f := range fields {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			return CalculationInput{}, missingInput(f.name)
		}
	}

	medium, ok := catalog.Lookup(MediumID(strings.TrimSpace(*raw.Medium)))
	if !ok {
		return CalculationInput{}, parseError(FieldMedium, ErrUnknownMedium)
	}

	var nums [3]float64
	for i, f := range fields[1:] {
		v, err := parseFinite(*f.value)
		if err != nil {
			return CalculationInput{}, parseError(f.name, err)
		}
		nums[i] = v
	}

	in := CalculationInput{
		Medium:        medium,
		TemperatureC:  nums[0],
		ChannelSizeUM: nums[1],
		FlowRate:      nums[2],
	}
	return in, in.Validate()
}

// Validate checks the domain constraints on a parsed input.
func (in CalculationInput) Validate() error {
	if in.ChannelSizeUM <= 0 {
		return domainError(FieldChannelSize, ErrNonPositiveChannel)
	}
	if in.FlowRate <= 0 {
		return domainError(FieldFlowRate, ErrNonPositiveFlowRate)
	}
	return nil
}

// decimalLiteral is the accepted number grammar: optional sign, decimal
// digits with an optional fraction, optional exponent. Hex floats, digit
// separators and inf/nan spellings are rejected.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseFinite(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return 0, ErrParse
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrParse
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrParse
	}
	return v, nil
}

// Evaluate applies model to in. It is pure and safe for concurrent use.
func Evaluate(model RheologyModel, in CalculationInput) (ViscosityResult, error) {
	if err := in.Validate(); err != nil {
		return ViscosityResult{}, err
	}

	n, k, err := model.Indices(in.Medium, in.TemperatureC)
	if err != nil {
		return ViscosityResult{}, domainError(FieldFormula, err)
	}
	if n == 0 {
		return ViscosityResult{}, domainError(FieldFlowIndex, ErrZeroFlowIndex)
	}
	if !isFinite(n) || !isFinite(k) {
		return ViscosityResult{}, domainError(FieldTemperature, ErrNonFiniteResult)
	}

	shear := ShearRate(in.FlowRate, in.ChannelSizeUM, n)
	viscosity := k * math.Pow(shear, n-1) * 1000
	if !isFinite(shear) || !isFinite(viscosity) {
		return ViscosityResult{}, domainError(FieldViscosity, ErrNonFiniteResult)
	}
	if viscosity < 0 {
		return ViscosityResult{}, domainError(FieldViscosity, ErrNegativeViscosity)
	}
	// Scaling for rounding can overflow near the top of the float64 range.
	rounded := Round(viscosity, model.Precision())
	if !isFinite(rounded) {
		return ViscosityResult{}, domainError(FieldViscosity, ErrNonFiniteResult)
	}

	return ViscosityResult{
		Medium:           in.Medium.ID,
		Formula:          model.Formula(),
		Viscosity:        rounded,
		Precision:        model.Precision(),
		FlowIndex:        n,
		ConsistencyIndex: k,
		ShearRate:        shear,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
