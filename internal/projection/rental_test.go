package projection

import (
	"math"
	"testing"
)

func TestProjectRentalProperty(t *testing.T) {
	t.Run("year_zero_is_down_payment", func(t *testing.T) {
		p := RentalPropertyParams{PurchasePrice: 300000, DownPayment: 60000, MortgageDuration: 30}
		values := ProjectRentalProperty(p, 10)
		assertLength(t, values, 10)
		if values[0] != 60000 {
			t.Errorf("expected values[0] = 60000, got %v", values[0])
		}
	})

	t.Run("zero_rate_mortgage_shifts_cash_to_equity", func(t *testing.T) {
		// With no appreciation, rent, or costs, every mortgage dollar paid
		// moves from the cash-flow track into equity: total value holds at
		// the down payment for the entire horizon, including past payoff.
		p := RentalPropertyParams{
			PurchasePrice:    120000,
			DownPayment:      20000,
			MortgageRate:     0,
			MortgageDuration: 10,
			TimeHorizon:      15,
		}
		values := ProjectRentalProperty(p, 15)
		for i, v := range values {
			if !approx(v, 20000) {
				t.Errorf("year %d: expected constant 20000, got %v", i, v)
			}
		}
	})

	t.Run("series_is_constant_after_payoff", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:    250000,
			DownPayment:      50000,
			MortgageRate:     0.05,
			MortgageDuration: 15,
		}
		values := ProjectRentalProperty(p, 20)
		for i := 16; i <= 20; i++ {
			if !approx(values[i], values[15]) {
				t.Errorf("year %d: expected %v after payoff, got %v", i, values[15], values[i])
			}
		}
	})

	t.Run("first_year_loss_equals_interest_accrued", func(t *testing.T) {
		// With no appreciation, rent, or costs, the principal portion of the
		// payment converts cash into equity one-for-one, so the net change
		// in year 1 is exactly the interest on the loan.
		p := RentalPropertyParams{
			PurchasePrice:    200000,
			DownPayment:      40000,
			MortgageRate:     0.04,
			MortgageDuration: 10,
		}
		values := ProjectRentalProperty(p, 1)
		want := 40000 - 160000*0.04
		if !approx(values[1], want) {
			t.Errorf("expected %v after one year, got %v", want, values[1])
		}
	})

	t.Run("appreciation_compounds_property_value", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:      100000,
			DownPayment:        100000, // no mortgage
			AnnualAppreciation: 0.03,
		}
		values := ProjectRentalProperty(p, 5)
		for i := 1; i <= 5; i++ {
			want := 100000 * math.Pow(1.03, float64(i))
			if !approx(values[i], want) {
				t.Errorf("year %d: expected %v, got %v", i, want, values[i])
			}
		}
	})

	t.Run("selling_cost_strictly_decreases_every_year", func(t *testing.T) {
		base := RentalPropertyParams{
			PurchasePrice:       200000,
			DownPayment:         50000,
			MortgageRate:        0.05,
			MortgageDuration:    20,
			MonthlyRentalIncome: 1500,
			AnnualAppreciation:  0.02,
		}
		costly := base
		costly.SellingCostPercent = 0.06

		cheap := ProjectRentalProperty(base, 10)
		expensive := ProjectRentalProperty(costly, 10)

		if cheap[0] != expensive[0] {
			t.Errorf("selling cost must not affect year 0: %v vs %v", cheap[0], expensive[0])
		}
		for i := 1; i <= 10; i++ {
			if expensive[i] >= cheap[i] {
				t.Errorf("year %d: expected selling cost to reduce value, got %v >= %v", i, expensive[i], cheap[i])
			}
		}
	})

	t.Run("vacancy_reduces_effective_rent", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:       100000,
			DownPayment:         100000,
			MonthlyRentalIncome: 1000,
			VacancyRate:         0.1,
		}
		values := ProjectRentalProperty(p, 1)
		// 12000 gross rent at 10% vacancy nets 10800 cash on top of equity.
		if !approx(values[1], 110800) {
			t.Errorf("expected 110800, got %v", values[1])
		}
	})

	t.Run("expenses_scale_with_property_value", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:          100000,
			DownPayment:            100000,
			MaintenanceCostPercent: 0.01,
			PropertyTaxRate:        0.02,
			InsuranceCost:          500,
		}
		values := ProjectRentalProperty(p, 1)
		// Equity 100000 minus 3000 value-based expenses minus 500 insurance.
		if !approx(values[1], 96500) {
			t.Errorf("expected 96500, got %v", values[1])
		}
	})

	t.Run("no_mortgage_when_fully_paid_in_cash", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:    150000,
			DownPayment:      150000,
			MortgageRate:     0.07,
			MortgageDuration: 30,
		}
		values := ProjectRentalProperty(p, 3)
		for i, v := range values {
			if !approx(v, 150000) {
				t.Errorf("year %d: expected 150000 with no loan, got %v", i, v)
			}
		}
	})

	t.Run("no_nan_or_inf_on_degenerate_input", func(t *testing.T) {
		p := RentalPropertyParams{
			PurchasePrice:    100000,
			DownPayment:      20000,
			MortgageRate:     0.05,
			MortgageDuration: 0, // invalid, but must not divide by zero
		}
		values := ProjectRentalProperty(p, 5)
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("year %d: expected finite value, got %v", i, v)
			}
		}
	})
}

func TestAnnualMortgagePayment(t *testing.T) {
	t.Run("level_payment_formula", func(t *testing.T) {
		// 200k over 30 years at 6%: classic 1199.10/month.
		got := annualMortgagePayment(200000, 0.06, 30)
		if math.Abs(got/12-1199.10) > 0.01 {
			t.Errorf("expected about 1199.10/month, got %v", got/12)
		}
	})

	t.Run("zero_rate_is_straight_line", func(t *testing.T) {
		if got := annualMortgagePayment(120000, 0, 10); !approx(got, 12000) {
			t.Errorf("expected 12000, got %v", got)
		}
	})

	t.Run("no_loan_no_payment", func(t *testing.T) {
		if got := annualMortgagePayment(0, 0.05, 30); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
		if got := annualMortgagePayment(-5000, 0.05, 30); got != 0 {
			t.Errorf("expected 0 for negative amount, got %v", got)
		}
	})
}
