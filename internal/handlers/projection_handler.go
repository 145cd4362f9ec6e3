package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthcast/internal/errors"
	"wealthcast/internal/projection"
	"wealthcast/internal/services"
)

// ProjectionHandler handles projection requests: stateless parameter
// previews and full scenario comparisons.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// preview validates the posted parameter record and returns its projected
// series without persisting anything.
func (h *ProjectionHandler) preview(c *gin.Context, kind projection.AssetKind) {
	body, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "unreadable request body"))
		return
	}

	series, err := h.projectionService.Preview(kind, body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// PreviewSecurity projects a security parameter record
// @Summary     Preview a security projection
// @Description Validate security parameters and return the projected yearly series
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       request body projection.SecurityParams true "Security parameters"
// @Success     200 {object} services.Series "Projected series"
// @Failure     400 {object} ErrorResponse "Malformed input"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /projections/security [post]
func (h *ProjectionHandler) PreviewSecurity(c *gin.Context) {
	h.preview(c, projection.KindSecurity)
}

// PreviewRentalProperty projects a rental property parameter record
// @Summary     Preview a rental property projection
// @Description Validate rental property parameters and return the projected yearly series
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       request body projection.RentalPropertyParams true "Rental property parameters"
// @Success     200 {object} services.Series "Projected series"
// @Failure     400 {object} ErrorResponse "Malformed input"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /projections/rental-property [post]
func (h *ProjectionHandler) PreviewRentalProperty(c *gin.Context) {
	h.preview(c, projection.KindRentalProperty)
}

// PreviewPreciousMetal projects a precious metal parameter record
// @Summary     Preview a precious metal projection
// @Description Validate precious metal parameters and return the projected yearly series
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       request body projection.PreciousMetalParams true "Precious metal parameters"
// @Success     200 {object} services.Series "Projected series"
// @Failure     400 {object} ErrorResponse "Malformed input"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /projections/precious-metal [post]
func (h *ProjectionHandler) PreviewPreciousMetal(c *gin.Context) {
	h.preview(c, projection.KindPreciousMetal)
}

// PreviewFixedIncome projects a fixed income parameter record
// @Summary     Preview a fixed income projection
// @Description Validate fixed income parameters and return the projected yearly series
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       request body projection.FixedIncomeParams true "Fixed income parameters"
// @Success     200 {object} services.Series "Projected series"
// @Failure     400 {object} ErrorResponse "Malformed input"
// @Failure     422 {object} ErrorResponse "Parameters out of bounds"
// @Router      /projections/fixed-income [post]
func (h *ProjectionHandler) PreviewFixedIncome(c *gin.Context) {
	h.preview(c, projection.KindFixedIncome)
}

// ProjectScenario returns the projected series of every asset in a scenario
// @Summary     Project a scenario
// @Description Project every asset model in the user's scenario for charting
// @Tags        projections
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Scenario ID"
// @Success     200 {object} services.Comparison "Projected comparison"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /scenarios/{id}/projection [get]
func (h *ProjectionHandler) ProjectScenario(c *gin.Context) {
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

	comparison, err := h.projectionService.ProjectScenario(userID, scenarioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

// ProjectShared returns the projected comparison for a shared scenario
// @Summary     Project a shared scenario
// @Description Project a scenario published under a share token, no authentication required
// @Tags        projections
// @Produce     json
// @Param       token path string true "Share token"
// @Success     200 {object} services.Comparison "Projected comparison"
// @Failure     404 {object} ErrorResponse "Unknown share token"
// @Router      /shared/{token} [get]
func (h *ProjectionHandler) ProjectShared(c *gin.Context) {
	comparison, err := h.projectionService.ProjectShared(c.Param("token"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}
