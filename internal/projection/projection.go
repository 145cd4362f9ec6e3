// Package projection implements the deterministic projection engine behind
// the comparison chart: four independent value-over-time models (securities,
// leveraged rental property, precious metals, fixed income) plus their
// parameter validators.
//
// Every projector is a pure function: it never mutates its input, holds no
// state between calls, and is safe to call concurrently. Each returns a
// slice of length years+1 where index 0 is the value at investment time and
// index t is the end-of-year-t liquidation value, in the same currency unit
// as the input principal. Rate fields are decimals, not percentages
// (0.07 means 7%).
//
// Projectors compute with whatever numbers they are given, including
// out-of-range ones; callers that care about economic sanity must check the
// corresponding Validate function first.
package projection

// AssetKind identifies one of the four supported investment models.
type AssetKind string

const (
	KindSecurity       AssetKind = "security"
	KindRentalProperty AssetKind = "rental_property"
	KindPreciousMetal  AssetKind = "precious_metal"
	KindFixedIncome    AssetKind = "fixed_income"
)

// Valid reports whether k is one of the supported asset kinds.
func (k AssetKind) Valid() bool {
	switch k {
	case KindSecurity, KindRentalProperty, KindPreciousMetal, KindFixedIncome:
		return true
	}
	return false
}

// CompoundingMethod selects how fixed-income interest accrues.
type CompoundingMethod string

const (
	CompoundingSimple CompoundingMethod = "simple"
	CompoundingAnnual CompoundingMethod = "annual"
)

// MaxHorizon is the largest projection horizon accepted by the validators.
// Projections are O(years); the cap keeps chart payloads bounded.
const MaxHorizon = 100

// FieldError describes a single violated parameter bound. Field matches the
// parameter record's JSON field name so callers can route the message to the
// right input control.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SecurityParams describes a tradable security position (stock, ETF, fund).
type SecurityParams struct {
	Name              string  `json:"name"`
	InitialInvestment float64 `json:"initial_investment"`
	AnnualReturn      float64 `json:"annual_return"`
	TimeHorizon       int     `json:"time_horizon"`
	ExpenseRatio      float64 `json:"expense_ratio"`
	OneTimeFee        float64 `json:"one_time_fee"`
	DividendYield     float64 `json:"dividend_yield"`
	ReinvestDividends bool    `json:"reinvest_dividends"`
}

// RentalPropertyParams describes a mortgage-financed rental property.
// Rental income and insurance are fixed dollar amounts, not percentages of
// the property value.
type RentalPropertyParams struct {
	Name                   string  `json:"name"`
	PurchasePrice          float64 `json:"purchase_price"`
	DownPayment            float64 `json:"down_payment"`
	MortgageRate           float64 `json:"mortgage_rate"`
	MortgageDuration       int     `json:"mortgage_duration"`
	MonthlyRentalIncome    float64 `json:"monthly_rental_income"`
	AnnualAppreciation     float64 `json:"annual_appreciation"`
	TimeHorizon            int     `json:"time_horizon"`
	MaintenanceCostPercent float64 `json:"maintenance_cost_percent"`
	InsuranceCost          float64 `json:"insurance_cost"`
	PropertyTaxRate        float64 `json:"property_tax_rate"`
	VacancyRate            float64 `json:"vacancy_rate"`
	SellingCostPercent     float64 `json:"selling_cost_percent"`
}

// PreciousMetalParams describes a precious metal holding (gold, silver, ...).
type PreciousMetalParams struct {
	Name                  string  `json:"name"`
	InitialInvestment     float64 `json:"initial_investment"`
	AnnualPriceIncrease   float64 `json:"annual_price_increase"`
	TimeHorizon           int     `json:"time_horizon"`
	TransactionFeePercent float64 `json:"transaction_fee_percent"`
}

// FixedIncomeParams describes a fixed-income instrument (bond, CD, deposit).
type FixedIncomeParams struct {
	Name               string            `json:"name"`
	Principal          float64           `json:"principal"`
	AnnualYield        float64           `json:"annual_yield"`
	MaturityYears      int               `json:"maturity_years"`
	CompoundingMethod  CompoundingMethod `json:"compounding_method"`
	ReinvestAtMaturity bool              `json:"reinvest_at_maturity"`
	TimeHorizon        int               `json:"time_horizon"`
}
