package api

import (
	"net/http"

	reqdto "agenda-espacos/internal/handler/dto/request"
	"agenda-espacos/internal/handler/middleware"
	"agenda-espacos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	spaceQueries        queries.SpaceQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewSpaceHandler(spaceQueries queries.SpaceQueries, availabilityQueries queries.AvailabilityQueries) *SpaceHandler {
	return &SpaceHandler{
		spaceQueries:        spaceQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List spaces
// @Description List academic spaces available for reservation
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SpaceView
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /spaces [get]
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	views, err := h.spaceQueries.ListSpaces(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		abortWithBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Space availability
// @Description Slot grid for one space and date with occupancy flags
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param date query string true "Date (YYYY-MM-DD or DD/MM/YYYY)"
// @Param exclude query string false "Reservation being edited, ignored for occupancy"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /spaces/{id}/availability [get]
func (h *SpaceHandler) Availability(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid space ID format",
		})
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is required",
		})
		return
	}

	date, err := query.ParsedDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.availabilityQueries.SpaceDay(c.Request.Context(), middleware.GetToken(c), spaceID, date, query.ExcludeID())
	if err != nil {
		abortWithBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
