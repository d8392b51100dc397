package approval

import (
	"encoding/json"
	"net/http"

	approvalerrors "leavebot/internal/approval/errors"
	"leavebot/internal/shared/apperror"
	"leavebot/internal/shared/contextutil"
	"leavebot/internal/shared/response"
	"leavebot/internal/slack"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("slack request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Commands handles the slash command that opens the request form.
func (h *Handler) Commands(c *gin.Context) {
	var cmd slack.SlashCommand
	if err := c.ShouldBind(&cmd); err != nil {
		h.logger.Warn("slash command binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	h.logger.Debug("slash command received",
		zap.String("command", cmd.Command),
		zap.String("user", cmd.UserName),
	)

	if err := h.service.OpenRequestModal(c.Request.Context(), cmd.TriggerID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Slack closes the command round trip on a bare 200.
	c.Status(http.StatusOK)
}

// Interactions handles the interactivity endpoint: form submissions and
// approve/deny button presses arrive here, demuxed by payload type.
func (h *Handler) Interactions(c *gin.Context) {
	raw := c.PostForm("payload")
	if raw == "" {
		h.writeServiceError(c, approvalerrors.ErrMissingPayload)
		return
	}

	var payload slack.InteractionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		h.logger.Warn("interaction payload decode failed", zap.Error(err))
		h.writeServiceError(c, approvalerrors.ErrMissingPayload)
		return
	}

	switch payload.Type {
	case slack.InteractionViewSubmission:
		h.handleViewSubmission(c, payload)
	case slack.InteractionBlockActions:
		h.handleBlockActions(c, payload)
	default:
		h.logger.Debug("ignoring interaction", zap.String("type", payload.Type))
		c.Status(http.StatusOK)
	}
}

func (h *Handler) handleViewSubmission(c *gin.Context, payload slack.InteractionPayload) {
	if payload.View == nil || payload.View.CallbackID != slack.RequestModalCallbackID {
		c.Status(http.StatusOK)
		return
	}

	sub := Submission{
		Requester: identityFrom(payload.User),
		State:     payload.View.State.FormState(),
	}

	fieldErrors, err := h.service.HandleSubmission(c.Request.Context(), sub)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusOK, slack.NewViewErrorsResponse(fieldErrors))
		return
	}

	// Bare 200 closes the modal.
	c.Status(http.StatusOK)
}

func (h *Handler) handleBlockActions(c *gin.Context, payload slack.InteractionPayload) {
	if len(payload.Actions) == 0 || payload.Message == nil {
		c.Status(http.StatusOK)
		return
	}

	slackAction := payload.Actions[0]
	if slackAction.ActionID != ActionApprove && slackAction.ActionID != ActionDeny {
		c.Status(http.StatusOK)
		return
	}

	action := DecisionAction{
		ActionID:  slackAction.ActionID,
		Value:     slackAction.Value,
		ActionTS:  slackAction.ActionTS,
		MessageTS: payload.Message.TS,
		Approver:  identityFrom(payload.User),
	}

	if err := h.service.HandleDecision(c.Request.Context(), action); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func identityFrom(u slack.User) Identity {
	return Identity{ID: u.ID, Name: u.Name, Handle: u.Username}
}
