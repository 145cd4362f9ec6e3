package projection

import "math"

// ProjectRentalProperty projects the total position value of a leveraged
// rental property: sale equity net of selling costs plus accumulated rental
// cash flow. values[0] is the down payment.
//
// The model runs two tracks per year. The amortization track holds the
// annual payment fixed for the life of the loan and splits it into interest
// on the remaining balance and principal repayment. The cash-flow track
// accumulates effective rent minus mortgage payment minus value-based
// expenses; accumulated cash earns no return.
//
// Selling costs are subtracted from equity every year, not only at sale:
// each point on the series answers "what would I walk away with if I sold
// at the end of this year".
func ProjectRentalProperty(p RentalPropertyParams, years int) []float64 {
	values := make([]float64, years+1)
	values[0] = p.DownPayment

	mortgage := p.PurchasePrice - p.DownPayment
	annualPayment := annualMortgagePayment(mortgage, p.MortgageRate, p.MortgageDuration)

	balance := math.Max(mortgage, 0)
	propertyValue := p.PurchasePrice
	cumulativeCashFlow := 0.0

	for t := 1; t <= years; t++ {
		// Appreciation applies before this year's income and expenses
		// are computed on the new value.
		propertyValue *= 1 + p.AnnualAppreciation

		payment := 0.0
		if t <= p.MortgageDuration && balance > 0 {
			payment = annualPayment
			interest := balance * p.MortgageRate
			principalPaid := math.Min(annualPayment-interest, balance)
			balance = math.Max(balance-principalPaid, 0)
		}

		expenses := propertyValue*(p.MaintenanceCostPercent+p.PropertyTaxRate) + p.InsuranceCost
		effectiveRent := p.MonthlyRentalIncome * 12 * (1 - p.VacancyRate)
		cumulativeCashFlow += effectiveRent - payment - expenses

		equity := propertyValue - balance - propertyValue*p.SellingCostPercent
		values[t] = equity + cumulativeCashFlow
	}
	return values
}

// annualMortgagePayment returns the fixed yearly payment for a level-payment
// mortgage. A zero rate degenerates to straight-line repayment. Zero or
// negative loan amounts and zero-month terms yield no payment rather than
// dividing by zero.
func annualMortgagePayment(amount, rate float64, durationYears int) float64 {
	if amount <= 0 || durationYears <= 0 {
		return 0
	}
	months := float64(durationYears * 12)
	if rate == 0 {
		return amount / months * 12
	}
	monthlyRate := rate / 12
	monthly := amount * monthlyRate / (1 - math.Pow(1+monthlyRate, -months))
	return monthly * 12
}
