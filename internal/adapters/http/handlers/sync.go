package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotegen/internal/adapters/notify"
	"github.com/jsamuelsen/quotegen/internal/app"
)

// SyncHandler serves manual reconciliation and the notification feed.
type SyncHandler struct {
	sync   *app.SyncService
	quotes *app.QuoteService
	feed   *notify.Feed
}

// NewSyncHandler creates a sync handler. feed may be nil, in which case
// /notifications always answers with an empty list.
func NewSyncHandler(sync *app.SyncService, quotes *app.QuoteService, feed *notify.Feed) *SyncHandler {
	return &SyncHandler{
		sync:   sync,
		quotes: quotes,
		feed:   feed,
	}
}

// Sync handles POST /api/v1/sync. It waits for a run already in flight.
// An unreachable remote is not an error: the report says "degraded".
//
// @Summary Reconcile with the remote source
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	report, err := h.sync.Sync(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncResponse(report))
}

// Push handles POST /api/v1/sync/push.
func (h *SyncHandler) Push(c *gin.Context) {
	report, err := h.quotes.PushLocal(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPushResponse(report))
}

// Notifications handles GET /api/v1/notifications, newest first.
func (h *SyncHandler) Notifications(c *gin.Context) {
	var req dto.NotificationsRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	if h.feed == nil {
		c.JSON(http.StatusOK, []dto.NotificationResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(h.feed.Recent(req.Limit)))
}

// RegisterSyncRoutes registers sync and notification routes on rg.
func (h *SyncHandler) RegisterSyncRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync", h.Sync)
	rg.POST("/sync/push", h.Push)
	rg.GET("/notifications", h.Notifications)
}
