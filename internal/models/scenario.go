package models

import (
	"encoding/json"

	"wealthcast/internal/projection"
)

// Scenario is a user-saved comparison: a named set of asset models whose
// projected series are charted side by side. A non-empty ShareToken makes
// the scenario's projections readable without authentication.
type Scenario struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	ShareToken  string          `gorm:"size:36;index" json:"share_token,omitempty"`
	Assets      []ScenarioAsset `gorm:"foreignKey:ScenarioID" json:"assets,omitempty"`
}

// ScenarioAsset is one asset model inside a scenario. Params holds the
// engine parameter record for the given kind, stored as JSON; it is
// validated by the projection engine before it is written.
type ScenarioAsset struct {
	Base
	ScenarioID uint                 `gorm:"not null;index" json:"scenario_id"`
	Kind       projection.AssetKind `gorm:"not null" json:"kind"`
	Label      string               `gorm:"not null" json:"label"`
	Position   int                  `gorm:"not null;default:0" json:"position"`
	Params     json.RawMessage      `gorm:"type:text;not null" json:"params"`
}
