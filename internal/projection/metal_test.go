package projection

import (
	"math"
	"testing"
)

func TestProjectPreciousMetal(t *testing.T) {
	t.Run("compounds_price_and_charges_fee_on_sale", func(t *testing.T) {
		p := PreciousMetalParams{
			InitialInvestment:     10000,
			AnnualPriceIncrease:   0.04,
			TransactionFeePercent: 0.02,
		}
		values := ProjectPreciousMetal(p, 5)
		assertLength(t, values, 5)
		for i := 1; i <= 5; i++ {
			want := 10000 * math.Pow(1.04, float64(i)) * 0.98
			if !approx(values[i], want) {
				t.Errorf("year %d: expected %v, got %v", i, want, values[i])
			}
		}
	})

	t.Run("fee_never_affects_year_zero", func(t *testing.T) {
		p := PreciousMetalParams{InitialInvestment: 10000, TransactionFeePercent: 0.1}
		values := ProjectPreciousMetal(p, 3)
		if values[0] != 10000 {
			t.Errorf("expected values[0] = 10000, got %v", values[0])
		}
		// Flat price: every later year still pays the exit fee.
		for i := 1; i <= 3; i++ {
			if !approx(values[i], 9000) {
				t.Errorf("year %d: expected 9000, got %v", i, values[i])
			}
		}
	})

	t.Run("negative_price_change_decays", func(t *testing.T) {
		p := PreciousMetalParams{InitialInvestment: 1000, AnnualPriceIncrease: -0.5}
		values := ProjectPreciousMetal(p, 2)
		assertSeries(t, values, []float64{1000, 500, 250})
	})

	t.Run("zero_years_returns_single_element", func(t *testing.T) {
		p := PreciousMetalParams{InitialInvestment: 750}
		values := ProjectPreciousMetal(p, 0)
		if len(values) != 1 || values[0] != 750 {
			t.Errorf("expected [750], got %v", values)
		}
	})
}
