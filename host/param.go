package host

import (
	"math"
	"strconv"
)

// MinusInfinityDb is the level below which gain reads as silence.
const (
	MinusInfinityDb   = -100.0
	MinusInfinityGain = 1e-5
)

// DbToGain converts decibels to a linear gain.
func DbToGain(db float64) float64 {
	if db <= MinusInfinityDb {
		return 0
	}
	return math.Pow(10, db*0.05)
}

// GainToDb converts a linear gain to decibels.
func GainToDb(gain float64) float64 {
	return 20 * math.Log10(math.Max(gain, MinusInfinityGain))
}

// GainSkewFactor returns the skew that puts the dB midpoint of a range at the slider's center.
func GainSkewFactor(minDb, maxDb float64) float64 {
	minGain := DbToGain(minDb)
	maxGain := DbToGain(maxDb)
	midGain := DbToGain((minDb + maxDb) / 2)

	return math.Log(0.5) / math.Log((midGain-minGain)/(maxGain-minGain))
}

// Range maps plain parameter values to and from [0,1].
type Range interface {
	Normalize(plain float64) float64
	Unnormalize(normalized float64) float64
}

// Linear is a straight mapping over [Min,Max].
type Linear struct {
	Min float64
	Max float64
}

func (rng Linear) Normalize(plain float64) float64 {
	return clamp01((plain - rng.Min) / (rng.Max - rng.Min))
}

func (rng Linear) Unnormalize(normalized float64) float64 {
	return rng.Min + clamp01(normalized)*(rng.Max-rng.Min)
}

// Skewed bends a linear mapping by Factor; below 1 spreads the low end.
type Skewed struct {
	Min    float64
	Max    float64
	Factor float64
}

func (rng Skewed) Normalize(plain float64) float64 {
	return math.Pow(clamp01((plain-rng.Min)/(rng.Max-rng.Min)), rng.Factor)
}

func (rng Skewed) Unnormalize(normalized float64) float64 {
	return rng.Min + math.Pow(clamp01(normalized), 1/rng.Factor)*(rng.Max-rng.Min)
}

// Stepped is a linear integer range.
type Stepped struct {
	Min int
	Max int
}

func (rng Stepped) Normalize(plain float64) float64 {
	return Linear{Min: float64(rng.Min), Max: float64(rng.Max)}.Normalize(math.Round(plain))
}

func (rng Stepped) Unnormalize(normalized float64) float64 {
	return math.Round(Linear{Min: float64(rng.Min), Max: float64(rng.Max)}.Unnormalize(normalized))
}

// Param is one automatable plugin parameter.
type Param struct {
	ID     string
	Name   string
	Unit   string
	Range  Range
	Format func(plain float64) string

	plain float64
}

// Plain returns the value in the parameter's own units.
func (prm *Param) Plain() float64 {
	return prm.plain
}

// Normalized returns the value mapped onto [0,1].
func (prm *Param) Normalized() float64 {
	return prm.Range.Normalize(prm.plain)
}

// SetPlain clamps plain into range and stores it.
func (prm *Param) SetPlain(plain float64) {
	prm.plain = prm.Range.Unnormalize(prm.Range.Normalize(plain))
}

// SetNormalized stores the plain value for normalized.
func (prm *Param) SetNormalized(normalized float64) {
	prm.plain = prm.Range.Unnormalize(normalized)
}

// String formats the value with its unit.
func (prm *Param) String() string {
	format := prm.Format
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	}
	return format(prm.plain) + prm.Unit
}

// Params is the plugin's parameter set.
type Params struct {
	Gain   *Param
	Length *Param
	Pow    *Param
	Amount *Param
}

// DefaultParams returns the parameters at their defaults.
func DefaultParams() Params {

	prms := Params{
		Gain: &Param{
			ID:   "gain",
			Name: "Gain",
			Unit: " dB",
			Range: Skewed{
				Min:    DbToGain(-30),
				Max:    DbToGain(30),
				Factor: GainSkewFactor(-30, 30),
			},
			Format: formatDb,
		},
		Length: &Param{
			ID:     "length",
			Name:   "Length",
			Unit:   " bar",
			Range:  Stepped{Min: 0, Max: 4},
			Format: func(v float64) string { return strconv.Itoa(int(v)) },
		},
		Pow: &Param{
			ID:    "pow",
			Name:  "Pow",
			Range: Linear{Min: 0, Max: 20},
		},
		Amount: &Param{
			ID:    "amount",
			Name:  "Amount",
			Range: Linear{Min: 0, Max: 1},
		},
	}

	prms.Gain.SetPlain(DbToGain(0))
	prms.Length.SetPlain(0)
	prms.Pow.SetPlain(10)
	prms.Amount.SetPlain(0.5)

	return prms
}

// All lists the parameters in display order.
func (prms Params) All() []*Param {
	return []*Param{prms.Gain, prms.Length, prms.Pow, prms.Amount}
}

// unexported

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatDb prints gain in dB to two places, without a negative zero.
func formatDb(gain float64) string {
	if gain < MinusInfinityGain {
		return "-inf"
	}

	text := strconv.FormatFloat(GainToDb(gain), 'f', 2, 64)
	if text == "-0.00" {
		text = "0.00"
	}
	return text
}
