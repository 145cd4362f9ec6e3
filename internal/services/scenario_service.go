package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	apperrors "wealthcast/internal/errors"
	"wealthcast/internal/models"
	"wealthcast/internal/pagination"
	"wealthcast/internal/projection"
	"wealthcast/internal/uuid"
)

// scenarioService handles comparison-scenario business logic.
type scenarioService struct {
	db *gorm.DB
}

// NewScenarioService creates a new ScenarioServicer.
func NewScenarioService(db *gorm.DB) ScenarioServicer {
	return &scenarioService{db: db}
}

// CreateScenario creates an empty comparison scenario for the user.
func (s *scenarioService) CreateScenario(userID uint, name, description string) (*models.Scenario, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	scenario := &models.Scenario{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.db.Create(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return scenario, nil
}

// GetUserScenarios returns a paginated list of the user's scenarios.
func (s *scenarioService) GetUserScenarios(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Scenario{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var scenarios []models.Scenario
	if err := s.db.Preload("Assets", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).Where("user_id = ?", userID).
		Order("updated_at DESC").
		Scopes(pagination.Paginate(page)).Find(&scenarios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(scenarios, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetScenarioByID returns a scenario with its assets if the user owns it.
func (s *scenarioService) GetScenarioByID(userID, scenarioID uint) (*models.Scenario, error) {
	var scenario models.Scenario
	err := s.db.Preload("Assets", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).Where("id = ? AND user_id = ?", scenarioID, userID).First(&scenario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScenarioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &scenario, nil
}

// UpdateScenario updates a scenario's name and/or description.
func (s *scenarioService) UpdateScenario(userID, scenarioID uint, name, description string) (*models.Scenario, error) {
	scenario, err := s.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) > 0 {
		if err := s.db.Model(scenario).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return scenario, nil
}

// DeleteScenario soft-deletes a scenario and its assets.
func (s *scenarioService) DeleteScenario(userID, scenarioID uint) error {
	scenario, err := s.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Where("scenario_id = ?", scenario.ID).Delete(&models.ScenarioAsset{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Delete(scenario).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}

// AddAsset appends an asset model to a scenario. The parameter payload is
// validated by the projection engine; invalid payloads are rejected with
// the full field-error list.
func (s *scenarioService) AddAsset(userID, scenarioID uint, kind projection.AssetKind, label string, params json.RawMessage) (*models.ScenarioAsset, error) {
	scenario, err := s.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return nil, err
	}

	normalized, err := checkAssetParams(kind, params)
	if err != nil {
		return nil, err
	}

	asset := &models.ScenarioAsset{
		ScenarioID: scenario.ID,
		Kind:       kind,
		Label:      label,
		Position:   len(scenario.Assets),
		Params:     normalized,
	}
	if asset.Label == "" {
		asset.Label = paramName(kind, normalized)
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// UpdateAsset replaces an asset's label and/or parameters. The kind of an
// existing asset never changes; remove and re-add to switch models.
func (s *scenarioService) UpdateAsset(userID, scenarioID, assetID uint, label string, params json.RawMessage) (*models.ScenarioAsset, error) {
	if _, err := s.GetScenarioByID(userID, scenarioID); err != nil {
		return nil, err
	}

	var asset models.ScenarioAsset
	if err := s.db.Where("id = ? AND scenario_id = ?", assetID, scenarioID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScenarioAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{}
	if label != "" {
		updates["label"] = label
		asset.Label = label
	}
	if params != nil {
		normalized, err := checkAssetParams(asset.Kind, params)
		if err != nil {
			return nil, err
		}
		updates["params"] = string(normalized)
		asset.Params = normalized
	}
	if len(updates) > 0 {
		if err := s.db.Model(&asset).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &asset, nil
}

// RemoveAsset deletes an asset from a scenario.
func (s *scenarioService) RemoveAsset(userID, scenarioID, assetID uint) error {
	if _, err := s.GetScenarioByID(userID, scenarioID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND scenario_id = ?", assetID, scenarioID).Delete(&models.ScenarioAsset{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrScenarioAssetNotFound
	}
	return nil
}

// ShareScenario publishes a scenario under a fresh share token, or returns
// the existing token if one is already set. Tokens are UUIDv7: unguessable
// and generated without any shared counter.
func (s *scenarioService) ShareScenario(userID, scenarioID uint) (*models.Scenario, error) {
	scenario, err := s.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return nil, err
	}

	if scenario.ShareToken != "" {
		return scenario, nil
	}

	token := uuid.New()
	if err := s.db.Model(scenario).Update("share_token", token).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	scenario.ShareToken = token
	return scenario, nil
}

// RevokeShare removes a scenario's share token, invalidating existing links.
func (s *scenarioService) RevokeShare(userID, scenarioID uint) error {
	scenario, err := s.GetScenarioByID(userID, scenarioID)
	if err != nil {
		return err
	}

	if err := s.db.Model(scenario).Update("share_token", "").Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetScenarioByShareToken returns a shared scenario with its assets.
func (s *scenarioService) GetScenarioByShareToken(token string) (*models.Scenario, error) {
	if token == "" || !uuid.IsValid(token) {
		return nil, apperrors.ErrSharedLinkNotFound
	}

	var scenario models.Scenario
	err := s.db.Preload("Assets", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).Where("share_token = ?", token).First(&scenario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSharedLinkNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &scenario, nil
}
