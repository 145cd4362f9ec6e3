package services

import (
	"encoding/json"

	"wealthcast/internal/models"
	"wealthcast/internal/pagination"
	"wealthcast/internal/projection"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// ScenarioServicer defines the contract for scenario-related business logic.
// Asset parameter payloads are validated by the projection engine before
// they are persisted.
type ScenarioServicer interface {
	CreateScenario(userID uint, name, description string) (*models.Scenario, error)
	GetUserScenarios(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error)
	GetScenarioByID(userID, scenarioID uint) (*models.Scenario, error)
	UpdateScenario(userID, scenarioID uint, name, description string) (*models.Scenario, error)
	DeleteScenario(userID, scenarioID uint) error

	AddAsset(userID, scenarioID uint, kind projection.AssetKind, label string, params json.RawMessage) (*models.ScenarioAsset, error)
	UpdateAsset(userID, scenarioID, assetID uint, label string, params json.RawMessage) (*models.ScenarioAsset, error)
	RemoveAsset(userID, scenarioID, assetID uint) error

	ShareScenario(userID, scenarioID uint) (*models.Scenario, error)
	RevokeShare(userID, scenarioID uint) error
	GetScenarioByShareToken(token string) (*models.Scenario, error)
}

// Series is one charted line: the projected liquidation value of a single
// asset at the end of each year, index 0 being the value at investment time.
type Series struct {
	Label      string               `json:"label"`
	Kind       projection.AssetKind `json:"kind"`
	Values     []float64            `json:"values"`
	FinalValue float64              `json:"final_value"`
}

// Comparison aggregates the projected series of every asset in a scenario,
// ordered by asset position.
type Comparison struct {
	ScenarioID uint     `json:"scenario_id"`
	Name       string   `json:"name"`
	Series     []Series `json:"series"`
}

// ProjectionServicer is the composition layer over the projection engine:
// it selects the projector for an asset kind, validates parameters first,
// and aggregates series for charting.
type ProjectionServicer interface {
	Preview(kind projection.AssetKind, params json.RawMessage) (*Series, error)
	ProjectScenario(userID, scenarioID uint) (*Comparison, error)
	ProjectShared(shareToken string) (*Comparison, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
