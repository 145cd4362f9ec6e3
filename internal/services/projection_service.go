package services

import (
	"encoding/json"

	apperrors "wealthcast/internal/errors"
	"wealthcast/internal/models"
	"wealthcast/internal/projection"
)

// projectionService composes the pure projection engine: it decodes an
// asset's parameter payload, validates it, and runs the projector for the
// asset's kind. It owns no storage; scenario access goes through the
// scenario service so ownership checks live in one place.
type projectionService struct {
	scenarioService ScenarioServicer
}

// NewProjectionService creates a new ProjectionServicer.
func NewProjectionService(scenarioService ScenarioServicer) ProjectionServicer {
	return &projectionService{scenarioService: scenarioService}
}

// assetModel is a decoded parameter payload bound to its kind's validator
// and projector.
type assetModel struct {
	name     string
	validate func() []projection.FieldError
	project  func() []float64
}

// decodeAsset unmarshals raw parameters for the given kind. The returned
// normalized payload is the canonical re-encoding of the record (every
// field present, unknown fields dropped); it is what gets persisted.
func decodeAsset(kind projection.AssetKind, raw json.RawMessage) (*assetModel, json.RawMessage, error) {
	malformed := func(err error) error {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "malformed parameters: "+err.Error())
	}

	switch kind {
	case projection.KindSecurity:
		var p projection.SecurityParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, nil, malformed(err)
		}
		normalized, _ := json.Marshal(p)
		return &assetModel{
			name:     p.Name,
			validate: func() []projection.FieldError { return projection.ValidateSecurity(p) },
			project:  func() []float64 { return projection.ProjectSecurity(p, p.TimeHorizon) },
		}, normalized, nil

	case projection.KindRentalProperty:
		var p projection.RentalPropertyParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, nil, malformed(err)
		}
		normalized, _ := json.Marshal(p)
		return &assetModel{
			name:     p.Name,
			validate: func() []projection.FieldError { return projection.ValidateRentalProperty(p) },
			project:  func() []float64 { return projection.ProjectRentalProperty(p, p.TimeHorizon) },
		}, normalized, nil

	case projection.KindPreciousMetal:
		var p projection.PreciousMetalParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, nil, malformed(err)
		}
		normalized, _ := json.Marshal(p)
		return &assetModel{
			name:     p.Name,
			validate: func() []projection.FieldError { return projection.ValidatePreciousMetal(p) },
			project:  func() []float64 { return projection.ProjectPreciousMetal(p, p.TimeHorizon) },
		}, normalized, nil

	case projection.KindFixedIncome:
		var p projection.FixedIncomeParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, nil, malformed(err)
		}
		normalized, _ := json.Marshal(p)
		return &assetModel{
			name:     p.Name,
			validate: func() []projection.FieldError { return projection.ValidateFixedIncome(p) },
			project:  func() []float64 { return projection.ProjectFixedIncome(p, p.TimeHorizon) },
		}, normalized, nil

	default:
		return nil, nil, apperrors.ErrInvalidAssetKind
	}
}

// checkAssetParams decodes and validates a parameter payload, returning
// the normalized encoding to persist. Validation failures carry the full
// field-error list.
func checkAssetParams(kind projection.AssetKind, raw json.RawMessage) (json.RawMessage, error) {
	model, normalized, err := decodeAsset(kind, raw)
	if err != nil {
		return nil, err
	}
	if fieldErrs := model.validate(); len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidParameters, fieldErrs)
	}
	return normalized, nil
}

// paramName extracts the display name embedded in a parameter payload.
func paramName(kind projection.AssetKind, raw json.RawMessage) string {
	model, _, err := decodeAsset(kind, raw)
	if err != nil {
		return string(kind)
	}
	if model.name == "" {
		return string(kind)
	}
	return model.name
}

// Preview validates an ad-hoc parameter payload and projects its series
// without persisting anything.
func (s *projectionService) Preview(kind projection.AssetKind, params json.RawMessage) (*Series, error) {
	model, _, err := decodeAsset(kind, params)
	if err != nil {
		return nil, err
	}
	if fieldErrs := model.validate(); len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidParameters, fieldErrs)
	}
	return seriesFor(kind, model), nil
}

// ProjectScenario projects every asset in a user's scenario, ordered by
// asset position. Stored parameters were validated at write time; if an
// asset no longer decodes it is reported rather than silently skipped.
func (s *projectionService) ProjectScenario(userID, scenarioID uint) (*Comparison, error) {
	scenario, err := s.scenarioService.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return nil, err
	}
	return projectAssets(scenario)
}

// ProjectShared projects a scenario published under a share token.
func (s *projectionService) ProjectShared(shareToken string) (*Comparison, error) {
	scenario, err := s.scenarioService.GetScenarioByShareToken(shareToken)
	if err != nil {
		return nil, err
	}
	return projectAssets(scenario)
}

func projectAssets(scenario *models.Scenario) (*Comparison, error) {
	comparison := &Comparison{
		ScenarioID: scenario.ID,
		Name:       scenario.Name,
		Series:     make([]Series, 0, len(scenario.Assets)),
	}

	for i := range scenario.Assets {
		asset := &scenario.Assets[i]
		model, _, err := decodeAsset(asset.Kind, asset.Params)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		series := seriesFor(asset.Kind, model)
		if asset.Label != "" {
			series.Label = asset.Label
		}
		comparison.Series = append(comparison.Series, *series)
	}
	return comparison, nil
}

func seriesFor(kind projection.AssetKind, model *assetModel) *Series {
	values := model.project()
	label := model.name
	if label == "" {
		label = string(kind)
	}
	return &Series{
		Label:      label,
		Kind:       kind,
		Values:     values,
		FinalValue: values[len(values)-1],
	}
}
