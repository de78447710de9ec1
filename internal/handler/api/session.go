package api

import (
	"errors"
	"io"
	"net/http"

	"movecar/internal/domain/session"
	reqdto "movecar/internal/handler/dto/request"
	resdto "movecar/internal/handler/dto/response"
	"movecar/internal/handler/httperr"
	"movecar/internal/pkg/config"
	"movecar/internal/pkg/errs"
	"movecar/internal/usecase/commands"
	"movecar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds     commands.SessionCommands
	q        queries.SessionQueries
	settings config.Settings
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, settings config.Settings) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, settings: settings}
}

// @Summary Send move-car notification
// @Description Open (or overwrite) the user's session and push to the owner's channels
// @Tags session
// @Accept json
// @Produce json
// @Param u query string false "User key"
// @Param request body reqdto.NotifyRequest true "Notify request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/notify [post]
func (h *SessionHandler) Notify(c *gin.Context) {
	user := session.NewUserKey(c.Query("u"))

	var req reqdto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	loc, ok := bindLocation(c, req.Location)
	if !ok {
		return
	}

	err := h.cmds.Notify(c.Request.Context(), user, commands.NotifyInput{
		Message:      req.Message,
		Location:     loc,
		SessionToken: req.SessionID,
	}, requestOrigin(c))
	if err != nil {
		abortNotifyError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Requester location
// @Description Owner-side read of the requester's last known position
// @Tags session
// @Produce json
// @Param u query string false "User key"
// @Success 200 {object} resdto.LocationView
// @Failure 503 {object} httperr.Response
// @Router /api/get-location [get]
func (h *SessionHandler) GetLocation(c *gin.Context) {
	user := session.NewUserKey(c.Query("u"))

	loc, err := h.q.RequesterLocation(c.Request.Context(), user)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable")
		return
	}
	if loc == nil {
		// absence is not an error; owner page probes this blindly
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlacedLocation(loc))
}

// @Summary Owner confirm
// @Description Transition the session to confirmed, optionally attaching the owner's location
// @Tags session
// @Accept json
// @Produce json
// @Param u query string false "User key"
// @Param request body reqdto.OwnerConfirmRequest false "Confirm request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/owner-confirm [post]
func (h *SessionHandler) OwnerConfirm(c *gin.Context) {
	user := session.NewUserKey(c.Query("u"))

	var req reqdto.OwnerConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	loc, ok := bindLocation(c, req.Location)
	if !ok {
		return
	}

	if err := h.cmds.Confirm(c.Request.Context(), user, loc); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable")
		return
	}
	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Poll session status
// @Description Requester-side poll; a token mismatch reads as no session
// @Tags session
// @Produce json
// @Param u query string false "User key"
// @Param s query string false "Session token"
// @Success 200 {object} resdto.StatusResponse
// @Failure 503 {object} httperr.Response
// @Router /api/check-status [get]
func (h *SessionHandler) CheckStatus(c *gin.Context) {
	user := session.NewUserKey(c.Query("u"))

	snap, err := h.q.CheckStatus(c.Request.Context(), user, c.Query("s"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Owner display profile
// @Description Car title and optional phone number for the UI, per-user overrides applied
// @Tags session
// @Produce json
// @Param u query string false "User key"
// @Success 200 {object} resdto.ProfileResponse
// @Router /api/profile [get]
func (h *SessionHandler) Profile(c *gin.Context) {
	user := session.NewUserKey(c.Query("u"))
	c.JSON(http.StatusOK, resdto.ProfileResponse{
		CarTitle:    h.settings.CarTitle(user.String()),
		PhoneNumber: h.settings.PhoneNumber(user.String()),
	})
}

func bindLocation(c *gin.Context, dto *reqdto.LocationDTO) (*session.Location, bool) {
	if dto == nil {
		return nil, true
	}
	loc, err := session.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location")
		return nil, false
	}
	return &loc, true
}

func abortNotifyError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRateLimited):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "发送频率过快，请一分钟后再试")
	case errs.Is(err, errs.ErrMessageTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Message too long")
	case errs.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Notify failed")
	}
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
