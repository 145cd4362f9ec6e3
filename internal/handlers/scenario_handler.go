package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthcast/internal/errors"
	"wealthcast/internal/pagination"
	"wealthcast/internal/projection"
	"wealthcast/internal/services"
)

// ScenarioHandler handles comparison-scenario requests.
type ScenarioHandler struct {
	scenarioService services.ScenarioServicer
	auditService    services.AuditServicer
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(scenarioService services.ScenarioServicer, auditService services.AuditServicer) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService, auditService: auditService}
}

// CreateScenarioRequest represents the request payload for creating a scenario.
type CreateScenarioRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateScenarioRequest represents the request payload for updating a scenario.
type UpdateScenarioRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// AddAssetRequest represents the request payload for adding an asset model.
type AddAssetRequest struct {
	Kind   projection.AssetKind `json:"kind" binding:"required,asset_kind"`
	Label  string               `json:"label" binding:"max=100"`
	Params json.RawMessage      `json:"params" binding:"required"`
}

// UpdateAssetRequest represents the request payload for updating an asset model.
type UpdateAssetRequest struct {
	Label  string          `json:"label" binding:"omitempty,min=1,max=100"`
	Params json.RawMessage `json:"params"`
}

// CreateScenario handles the creation of a new comparison scenario
// @Summary     Create a scenario
// @Description Create a new empty comparison scenario
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateScenarioRequest true "Scenario details"
// @Success     201 {object} models.Scenario "Scenario created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.CreateScenario(userID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SCENARIO", "scenario", scenario.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"scenario": scenario})
}

// GetUserScenarios returns the authenticated user's scenarios
// @Summary     List scenarios
// @Description Get a paginated list of the user's comparison scenarios
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Scenario] "Scenarios"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [get]
func (h *ScenarioHandler) GetUserScenarios(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.scenarioService.GetUserScenarios(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScenarioByID returns a single scenario with its assets
// @Summary     Get a scenario
// @Description Get a scenario and its asset models by ID
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Success     200 {object} models.Scenario "Scenario"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenarioByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenario, err := h.scenarioService.GetScenarioByID(userID, scenarioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// UpdateScenario updates a scenario's name or description
// @Summary     Update a scenario
// @Description Update a scenario's name and/or description
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Param       request body UpdateScenarioRequest true "Fields to update"
// @Success     200 {object} models.Scenario "Scenario updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(userID, scenarioID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// DeleteScenario deletes a scenario and its assets
// @Summary     Delete a scenario
// @Description Delete a scenario and all its asset models
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Success     204 "Scenario deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.DeleteScenario(userID, scenarioID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SCENARIO", "scenario", scenarioID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// AddAsset adds an asset model to a scenario
// @Summary     Add an asset
// @Description Add an asset model to a scenario; parameters are validated by the projection engine
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Param       request body AddAssetRequest true "Asset model"
// @Success     201 {object} models.ScenarioAsset "Asset added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /scenarios/{id}/assets [post]
func (h *ScenarioHandler) AddAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.scenarioService.AddAsset(userID, scenarioID, req.Kind, req.Label, req.Params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_SCENARIO_ASSET", "scenario_asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "label": asset.Label})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// UpdateAsset updates an asset model's label or parameters
// @Summary     Update an asset
// @Description Update an asset model's label and/or parameters
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Param       assetID path int true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} models.ScenarioAsset "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /scenarios/{id}/assets/{assetID} [put]
func (h *ScenarioHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.scenarioService.UpdateAsset(userID, scenarioID, assetID, req.Label, req.Params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// RemoveAsset removes an asset model from a scenario
// @Summary     Remove an asset
// @Description Remove an asset model from a scenario
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Param       assetID path int true "Asset ID"
// @Success     204 "Asset removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id}/assets/{assetID} [delete]
func (h *ScenarioHandler) RemoveAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.RemoveAsset(userID, scenarioID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ShareScenario publishes a scenario under a share token
// @Summary     Share a scenario
// @Description Publish a scenario under an unguessable share token
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Success     200 {object} models.Scenario "Scenario with share token"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id}/share [post]
func (h *ScenarioHandler) ShareScenario(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenario, err := h.scenarioService.ShareScenario(userID, scenarioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SHARE_SCENARIO", "scenario", scenarioID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"scenario":    scenario,
		"share_token": scenario.ShareToken,
	})
}

// RevokeShare removes a scenario's share token
// @Summary     Revoke sharing
// @Description Remove a scenario's share token, invalidating existing links
// @Tags        scenarios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Success     204 "Sharing revoked"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id}/share [delete]
func (h *ScenarioHandler) RevokeShare(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenarioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.RevokeShare(userID, scenarioID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REVOKE_SCENARIO_SHARE", "scenario", scenarioID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
