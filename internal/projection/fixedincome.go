package projection

import "math"

// ProjectFixedIncome projects the value of a fixed-income instrument under
// one of four regimes: simple or annual compounding, with or without
// reinvestment at maturity.
//
// Without reinvestment the value flatlines once the instrument matures.
// With reinvestment under simple interest, each completed term's proceeds
// buy a fresh instrument, so the total is a product of full-term growth
// factors times the partial current term. Under annual compounding,
// reinvestment is mathematically transparent: principal*(1+yield)^t holds
// for every year regardless of maturity.
func ProjectFixedIncome(p FixedIncomeParams, years int) []float64 {
	values := make([]float64, years+1)
	values[0] = p.Principal

	// A non-positive maturity has no defined term to accrue over; hold the
	// principal flat instead of dividing (or taking mod) by zero.
	if p.MaturityYears <= 0 {
		for t := 1; t <= years; t++ {
			values[t] = p.Principal
		}
		return values
	}

	for t := 1; t <= years; t++ {
		values[t] = fixedIncomeValueAt(p, t)
	}
	return values
}

func fixedIncomeValueAt(p FixedIncomeParams, t int) float64 {
	switch {
	case p.CompoundingMethod == CompoundingSimple && !p.ReinvestAtMaturity:
		held := min(t, p.MaturityYears)
		return p.Principal * (1 + p.AnnualYield*float64(held))

	case p.CompoundingMethod == CompoundingSimple && p.ReinvestAtMaturity:
		completed := t / p.MaturityYears
		remainder := t % p.MaturityYears
		termGrowth := 1 + p.AnnualYield*float64(p.MaturityYears)
		return p.Principal * math.Pow(termGrowth, float64(completed)) * (1 + p.AnnualYield*float64(remainder))

	case !p.ReinvestAtMaturity:
		held := min(t, p.MaturityYears)
		return p.Principal * math.Pow(1+p.AnnualYield, float64(held))

	default:
		return p.Principal * math.Pow(1+p.AnnualYield, float64(t))
	}
}
