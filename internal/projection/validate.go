package projection

import "fmt"

// The validators report every violated bound as a field-level error rather
// than stopping at the first one, and they never reject a parameter set by
// panicking or erroring out. An empty result means the parameters are
// within bounds. Validation is deliberately independent of the projectors:
// out-of-range parameters are still projectable, the caller decides whether
// to chart the result.

type errorList []FieldError

func (l *errorList) add(field, message string) {
	*l = append(*l, FieldError{Field: field, Message: message})
}

func (l *errorList) nonNegative(field string, v float64) {
	if v < 0 {
		l.add(field, "must be zero or greater")
	}
}

// Growth rates may be negative but a loss of more than 100% per year is
// meaningless.
func (l *errorList) growthRate(field string, v float64) {
	if v < -1 {
		l.add(field, "cannot be less than -1 (a -100% annual change)")
	}
}

func (l *errorList) rate(field string, v float64) {
	if v < 0 || v > 1 {
		l.add(field, "must be between 0 and 1")
	}
}

func (l *errorList) positiveYears(field string, v int) {
	if v <= 0 {
		l.add(field, "must be a positive number of years")
	}
}

func (l *errorList) horizon(field string, v int) {
	if v <= 0 {
		l.add(field, "must be a positive number of years")
	} else if v > MaxHorizon {
		l.add(field, fmt.Sprintf("cannot exceed %d years", MaxHorizon))
	}
}

// ValidateSecurity checks a security parameter record against its bounds.
func ValidateSecurity(p SecurityParams) []FieldError {
	var errs errorList
	errs.nonNegative("initial_investment", p.InitialInvestment)
	errs.growthRate("annual_return", p.AnnualReturn)
	errs.horizon("time_horizon", p.TimeHorizon)
	errs.rate("expense_ratio", p.ExpenseRatio)
	errs.nonNegative("one_time_fee", p.OneTimeFee)
	if p.OneTimeFee > p.InitialInvestment {
		errs.add("one_time_fee", "cannot exceed initial_investment")
	}
	errs.rate("dividend_yield", p.DividendYield)
	return errs
}

// ValidateRentalProperty checks a rental property parameter record against
// its bounds, including the cross-field bound down_payment <= purchase_price.
func ValidateRentalProperty(p RentalPropertyParams) []FieldError {
	var errs errorList
	errs.nonNegative("purchase_price", p.PurchasePrice)
	errs.nonNegative("down_payment", p.DownPayment)
	if p.DownPayment > p.PurchasePrice {
		errs.add("down_payment", "cannot exceed purchase_price")
	}
	errs.rate("mortgage_rate", p.MortgageRate)
	errs.positiveYears("mortgage_duration", p.MortgageDuration)
	errs.nonNegative("monthly_rental_income", p.MonthlyRentalIncome)
	errs.growthRate("annual_appreciation", p.AnnualAppreciation)
	errs.horizon("time_horizon", p.TimeHorizon)
	errs.rate("maintenance_cost_percent", p.MaintenanceCostPercent)
	errs.nonNegative("insurance_cost", p.InsuranceCost)
	errs.rate("property_tax_rate", p.PropertyTaxRate)
	errs.rate("vacancy_rate", p.VacancyRate)
	errs.rate("selling_cost_percent", p.SellingCostPercent)
	return errs
}

// ValidatePreciousMetal checks a precious metal parameter record against
// its bounds.
func ValidatePreciousMetal(p PreciousMetalParams) []FieldError {
	var errs errorList
	errs.nonNegative("initial_investment", p.InitialInvestment)
	errs.growthRate("annual_price_increase", p.AnnualPriceIncrease)
	errs.horizon("time_horizon", p.TimeHorizon)
	errs.rate("transaction_fee_percent", p.TransactionFeePercent)
	return errs
}

// ValidateFixedIncome checks a fixed income parameter record against its
// bounds.
func ValidateFixedIncome(p FixedIncomeParams) []FieldError {
	var errs errorList
	errs.nonNegative("principal", p.Principal)
	errs.growthRate("annual_yield", p.AnnualYield)
	errs.positiveYears("maturity_years", p.MaturityYears)
	if p.CompoundingMethod != CompoundingSimple && p.CompoundingMethod != CompoundingAnnual {
		errs.add("compounding_method", `must be "simple" or "annual"`)
	}
	errs.horizon("time_horizon", p.TimeHorizon)
	return errs
}
