package projection

import "math"

// ProjectPreciousMetal projects the liquidation value of a precious metal
// holding. The price compounds at the annual increase rate; the transaction
// fee models the cost of selling and is charged in every projected year,
// never at year 0.
func ProjectPreciousMetal(p PreciousMetalParams, years int) []float64 {
	values := make([]float64, years+1)
	values[0] = p.InitialInvestment

	for t := 1; t <= years; t++ {
		gross := p.InitialInvestment * math.Pow(1+p.AnnualPriceIncrease, float64(t))
		values[t] = gross * (1 - p.TransactionFeePercent)
	}
	return values
}
