package projection

// ProjectSecurity projects the liquidation value of a security position
// over the given number of years. The one-time fee is charged at purchase,
// so values[0] = initial_investment - one_time_fee.
//
// The expense ratio always drags on the compounded return. Dividends either
// compound into the principal (reinvested) or accrue as flat cash: each
// year's dividend is computed on the prior year's compounded balance and
// the cash pile earns no return.
func ProjectSecurity(p SecurityParams, years int) []float64 {
	values := make([]float64, years+1)
	values[0] = p.InitialInvestment - p.OneTimeFee

	netRate := p.AnnualReturn - p.ExpenseRatio

	if p.ReinvestDividends {
		rate := netRate + p.DividendYield
		for t := 1; t <= years; t++ {
			values[t] = values[t-1] * (1 + rate)
		}
		return values
	}

	principal := values[0]
	cash := 0.0
	for t := 1; t <= years; t++ {
		cash += principal * p.DividendYield
		principal *= 1 + netRate
		values[t] = principal + cash
	}
	return values
}
