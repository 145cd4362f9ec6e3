package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthcast/internal/errors"
	"wealthcast/internal/projection"
	"wealthcast/internal/services"
)

// --- mock projection service ---

type mockProjectionService struct {
	previewFn         func(kind projection.AssetKind, params json.RawMessage) (*services.Series, error)
	projectScenarioFn func(userID, scenarioID uint) (*services.Comparison, error)
	projectSharedFn   func(shareToken string) (*services.Comparison, error)
}

func (m *mockProjectionService) Preview(kind projection.AssetKind, params json.RawMessage) (*services.Series, error) {
	if m.previewFn != nil {
		return m.previewFn(kind, params)
	}
	return &services.Series{}, nil
}

func (m *mockProjectionService) ProjectScenario(userID, scenarioID uint) (*services.Comparison, error) {
	if m.projectScenarioFn != nil {
		return m.projectScenarioFn(userID, scenarioID)
	}
	return &services.Comparison{}, nil
}

func (m *mockProjectionService) ProjectShared(shareToken string) (*services.Comparison, error) {
	if m.projectSharedFn != nil {
		return m.projectSharedFn(shareToken)
	}
	return &services.Comparison{}, nil
}

var _ services.ProjectionServicer = (*mockProjectionService)(nil)

func setupProjectionRouter(handler *ProjectionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/projections/security", handler.PreviewSecurity)
	r.POST("/projections/rental-property", handler.PreviewRentalProperty)
	r.POST("/projections/precious-metal", handler.PreviewPreciousMetal)
	r.POST("/projections/fixed-income", handler.PreviewFixedIncome)
	r.GET("/shared/:token", handler.ProjectShared)
	r.GET("/scenarios/:id/projection", injectUserID(1), handler.ProjectScenario)
	return r
}

func TestProjectionHandler_Preview(t *testing.T) {
	t.Run("returns 200 with series", func(t *testing.T) {
		svc := &mockProjectionService{
			previewFn: func(kind projection.AssetKind, _ json.RawMessage) (*services.Series, error) {
				return &services.Series{
					Label:      "VTI",
					Kind:       kind,
					Values:     []float64{10000, 10700},
					FinalValue: 10700,
				}, nil
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "POST", "/projections/security",
			`{"name":"VTI","initial_investment":10000,"annual_return":0.07,"time_horizon":1}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		series := result["series"].(map[string]interface{})
		if series["kind"] != "security" {
			t.Errorf("expected kind security, got %v", series["kind"])
		}
		values := series["values"].([]interface{})
		if len(values) != 2 {
			t.Errorf("expected 2 values, got %d", len(values))
		}
	})

	t.Run("routes each path to its kind", func(t *testing.T) {
		var gotKinds []projection.AssetKind
		svc := &mockProjectionService{
			previewFn: func(kind projection.AssetKind, _ json.RawMessage) (*services.Series, error) {
				gotKinds = append(gotKinds, kind)
				return &services.Series{Kind: kind, Values: []float64{0}}, nil
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		for _, path := range []string{
			"/projections/security",
			"/projections/rental-property",
			"/projections/precious-metal",
			"/projections/fixed-income",
		} {
			rec := doRequest(r, "POST", path, `{}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, rec.Code)
			}
		}

		want := []projection.AssetKind{
			projection.KindSecurity,
			projection.KindRentalProperty,
			projection.KindPreciousMetal,
			projection.KindFixedIncome,
		}
		for i, kind := range want {
			if gotKinds[i] != kind {
				t.Errorf("request %d: expected kind %s, got %s", i, kind, gotKinds[i])
			}
		}
	})

	t.Run("returns 422 on invalid parameters", func(t *testing.T) {
		svc := &mockProjectionService{
			previewFn: func(_ projection.AssetKind, _ json.RawMessage) (*services.Series, error) {
				return nil, apperrors.WithFields(apperrors.ErrInvalidParameters, []projection.FieldError{
					{Field: "time_horizon", Message: "must be at least 1"},
				})
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "POST", "/projections/security", `{"time_horizon":0}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PARAMETERS")
	})
}

func TestProjectionHandler_ProjectScenario(t *testing.T) {
	t.Run("returns 200 with comparison", func(t *testing.T) {
		svc := &mockProjectionService{
			projectScenarioFn: func(userID, scenarioID uint) (*services.Comparison, error) {
				return &services.Comparison{
					ScenarioID: scenarioID,
					Name:       "Mine",
					Series: []services.Series{
						{Label: "Stocks", Kind: projection.KindSecurity, Values: []float64{1, 2}},
					},
				}, nil
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "GET", "/scenarios/3/projection", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		comparison := result["comparison"].(map[string]interface{})
		series := comparison["series"].([]interface{})
		if len(series) != 1 {
			t.Errorf("expected 1 series, got %d", len(series))
		}
	})

	t.Run("returns 404 when scenario missing", func(t *testing.T) {
		svc := &mockProjectionService{
			projectScenarioFn: func(_, _ uint) (*services.Comparison, error) {
				return nil, apperrors.ErrScenarioNotFound
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "GET", "/scenarios/99/projection", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestProjectionHandler_ProjectShared(t *testing.T) {
	t.Run("returns 200 without auth", func(t *testing.T) {
		var gotToken string
		svc := &mockProjectionService{
			projectSharedFn: func(token string) (*services.Comparison, error) {
				gotToken = token
				return &services.Comparison{Name: "Shared"}, nil
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "GET", "/shared/some-token", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotToken != "some-token" {
			t.Errorf("expected token some-token, got %s", gotToken)
		}
	})

	t.Run("returns 404 on unknown token", func(t *testing.T) {
		svc := &mockProjectionService{
			projectSharedFn: func(_ string) (*services.Comparison, error) {
				return nil, apperrors.ErrSharedLinkNotFound
			},
		}
		handler := NewProjectionHandler(svc)
		r := setupProjectionRouter(handler)

		rec := doRequest(r, "GET", "/shared/bogus", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SHARED_LINK_NOT_FOUND")
	})
}
