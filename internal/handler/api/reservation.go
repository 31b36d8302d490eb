package api

import (
	"net/http"
	"reflect"

	reqdto "agenda-espacos/internal/handler/dto/request"
	resdto "agenda-espacos/internal/handler/dto/response"
	"agenda-espacos/internal/handler/middleware"
	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/jwt"
	"agenda-espacos/internal/pkg/sched"
	"agenda-espacos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationQueries  queries.ReservationQueries
	availabilityQueries queries.AvailabilityQueries
	ticks               *sched.Source
	clk                 clock.Clock
	streamCfg           config.StreamConfig
}

func NewReservationHandler(
	reservationQueries queries.ReservationQueries,
	availabilityQueries queries.AvailabilityQueries,
	ticks *sched.Source,
	clk clock.Clock,
	cfg config.Config,
) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries:  reservationQueries,
		availabilityQueries: availabilityQueries,
		ticks:               ticks,
		clk:                 clk,
		streamCfg:           cfg.Stream,
	}
}

// @Summary List reservations
// @Description List reservations with derived statuses, sorted for display
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param professor_id query string false "Filter by professor"
// @Param space_id query string false "Filter by space"
// @Param date query string false "Filter by date (YYYY-MM-DD or DD/MM/YYYY)"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}
	filter = scopeFilter(c, filter)

	views, err := h.reservationQueries.List(c.Request.Context(), middleware.GetToken(c), filter)
	if err != nil {
		abortWithBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Validate a booking selection
// @Description Check a requested window against current occupancy before submission
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateSelectionRequest true "Selection to check"
// @Success 200 {object} queries.ValidationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/validate [post]
func (h *ReservationHandler) ValidateSelection(c *gin.Context) {
	var req reqdto.ValidateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	view, err := h.availabilityQueries.ValidateSelection(c.Request.Context(), middleware.GetToken(c), params)
	if err != nil {
		abortWithBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Live reservations stream
// @Description Server-sent events with statuses re-derived as the clock moves
// @Tags reservations
// @Produce text/event-stream
// @Security BearerAuth
// @Param professor_id query string false "Filter by professor"
// @Param space_id query string false "Filter by space"
// @Param date query string false "Filter by date"
// @Success 200 {object} resdto.StreamEvent
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/stream [get]
func (h *ReservationHandler) StreamReservations(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}
	filter = scopeFilter(c, filter)

	token := middleware.GetToken(c)
	rows, err := h.reservationQueries.Fetch(c.Request.Context(), token, filter)
	if err != nil {
		abortWithBackendError(c, err)
		return
	}

	rederive, cancelRederive := h.ticks.Subscribe(h.streamCfg.RederiveEvery)
	defer cancelRederive()
	refetch, cancelRefetch := h.ticks.Subscribe(h.streamCfg.RefetchEvery)
	defer cancelRefetch()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	now := h.clk.Now()
	lastViews := queries.ViewsAt(rows, now)
	c.SSEvent("reservations", resdto.NewStreamEvent(now, lastViews))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case now, ok := <-refetch:
			if !ok {
				return
			}
			// A failed refetch keeps the last good snapshot; statuses
			// still move with the clock.
			if fresh, err := h.reservationQueries.Fetch(ctx, token, filter); err == nil {
				rows = fresh
			}
			lastViews = queries.ViewsAt(rows, now)
			c.SSEvent("reservations", resdto.NewStreamEvent(now, lastViews))
			c.Writer.Flush()

		case now, ok := <-rederive:
			if !ok {
				return
			}
			views := queries.ViewsAt(rows, now)
			if reflect.DeepEqual(views, lastViews) {
				continue
			}
			lastViews = views
			c.SSEvent("reservations", resdto.NewStreamEvent(now, views))
			c.Writer.Flush()
		}
	}
}

// scopeFilter applies the caller's role defaults: professors see their
// own reservations unless they asked for a narrower or wider scope
// explicitly, admins and unidentified callers default to everything.
func scopeFilter(c *gin.Context, filter queries.ReservationFilter) queries.ReservationFilter {
	if filter.ProfessorID != nil {
		return filter
	}
	role, ok := middleware.GetUserRole(c)
	if !ok || role != jwt.RoleProfessor {
		return filter
	}
	if userID, ok := middleware.GetUserID(c); ok {
		id := userID
		filter.ProfessorID = &id
	}
	return filter
}
