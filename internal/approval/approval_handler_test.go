package approval_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"leavebot/internal/approval"
	"leavebot/internal/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeApprovalService struct {
	openRequestModalFn func(ctx context.Context, triggerID string) error
	handleSubmissionFn func(ctx context.Context, sub approval.Submission) (map[string]string, error)
	handleDecisionFn   func(ctx context.Context, action approval.DecisionAction) error
}

func (f *fakeApprovalService) OpenRequestModal(ctx context.Context, triggerID string) error {
	if f.openRequestModalFn == nil {
		return nil
	}
	return f.openRequestModalFn(ctx, triggerID)
}

func (f *fakeApprovalService) HandleSubmission(ctx context.Context, sub approval.Submission) (map[string]string, error) {
	if f.handleSubmissionFn == nil {
		return nil, nil
	}
	return f.handleSubmissionFn(ctx, sub)
}

func (f *fakeApprovalService) HandleDecision(ctx context.Context, action approval.DecisionAction) error {
	if f.handleDecisionFn == nil {
		return nil
	}
	return f.handleDecisionFn(ctx, action)
}

func setupHandlerTest(t *testing.T) (*fakeApprovalService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &fakeApprovalService{}
	handler := approval.NewHandler(svc)

	r := gin.New()
	r.POST("/slack/commands", handler.Commands)
	r.POST("/slack/interactions", handler.Interactions)
	return svc, r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommands(t *testing.T) {
	t.Run("opens the modal with the trigger id", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		var gotTrigger string
		svc.openRequestModalFn = func(ctx context.Context, triggerID string) error {
			gotTrigger = triggerID
			return nil
		}

		w := postForm(r, "/slack/commands", url.Values{
			"command":    {"/leave"},
			"trigger_id": {"trigger-123"},
			"user_id":    {"U111"},
			"user_name":  {"jdoe"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "trigger-123", gotTrigger)
	})

	t.Run("missing trigger id fails binding", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		called := false
		svc.openRequestModalFn = func(ctx context.Context, triggerID string) error {
			called = true
			return nil
		}

		w := postForm(r, "/slack/commands", url.Values{"command": {"/leave"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func interactionForm(t *testing.T, payload map[string]any) url.Values {
	t.Helper()
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	return url.Values{"payload": {string(raw)}}
}

func TestInteractions(t *testing.T) {
	t.Run("missing payload is rejected", func(t *testing.T) {
		_, r := setupHandlerTest(t)

		w := postForm(r, "/slack/interactions", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("view submission reaches the service with the form state", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		var gotSub approval.Submission
		svc.handleSubmissionFn = func(ctx context.Context, sub approval.Submission) (map[string]string, error) {
			gotSub = sub
			return nil, nil
		}

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type": "view_submission",
			"user": map[string]string{"id": "U111", "username": "jdoe", "name": "Jane Doe"},
			"view": map[string]any{
				"callback_id": "leave-request-modal",
				"state": map[string]any{
					"values": map[string]any{
						"leave_category": map[string]any{
							"leave_category": map[string]any{
								"type":            "static_select",
								"selected_option": map[string]string{"value": "full-day"},
							},
						},
						"leave_start": map[string]any{
							"leave_start": map[string]string{"type": "datepicker", "selected_date": "2024-01-10"},
						},
					},
				},
			},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "jdoe", gotSub.Requester.Handle)
		assert.Equal(t, "full-day", gotSub.State[request.FieldCategory].SelectedOptionValue)
		assert.Equal(t, "2024-01-10", gotSub.State[request.FieldStart].SelectedDate)
	})

	t.Run("field errors are returned as a response action", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		svc.handleSubmissionFn = func(ctx context.Context, sub approval.Submission) (map[string]string, error) {
			return map[string]string{
				request.FieldStart:    "start date must not be in the past",
				request.FieldCategory: "",
				request.FieldEnd:      "",
				request.FieldReason:   "",
			}, nil
		}

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type": "view_submission",
			"user": map[string]string{"id": "U111", "username": "jdoe"},
			"view": map[string]any{
				"callback_id": "leave-request-modal",
				"state":       map[string]any{"values": map[string]any{}},
			},
		}))

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			ResponseAction string            `json:"response_action"`
			Errors         map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "errors", body.ResponseAction)
		assert.Equal(t, map[string]string{
			request.FieldStart: "start date must not be in the past",
		}, body.Errors)
	})

	t.Run("unrelated view submission is acked without service call", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		called := false
		svc.handleSubmissionFn = func(ctx context.Context, sub approval.Submission) (map[string]string, error) {
			called = true
			return nil, nil
		}

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type": "view_submission",
			"view": map[string]any{"callback_id": "something-else"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
	})

	t.Run("block action reaches the service as a decision", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		var gotAction approval.DecisionAction
		svc.handleDecisionFn = func(ctx context.Context, action approval.DecisionAction) error {
			gotAction = action
			return nil
		}

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type": "block_actions",
			"user": map[string]string{"id": "U999", "username": "mpower", "name": "Max Power"},
			"actions": []map[string]string{{
				"action_id": "approve-leave",
				"value":     `{"requester_handle":"jdoe"}`,
				"action_ts": "1704938400.000200",
			}},
			"message": map[string]any{"ts": "1704930000.000100"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, approval.ActionApprove, gotAction.ActionID)
		assert.Equal(t, "1704930000.000100", gotAction.MessageTS)
		assert.Equal(t, "1704938400.000200", gotAction.ActionTS)
		assert.Equal(t, "Max Power (mpower)", gotAction.Approver.Display())
	})

	t.Run("unknown action id is acked without service call", func(t *testing.T) {
		svc, r := setupHandlerTest(t)
		called := false
		svc.handleDecisionFn = func(ctx context.Context, action approval.DecisionAction) error {
			called = true
			return nil
		}

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type":    "block_actions",
			"user":    map[string]string{"id": "U999"},
			"actions": []map[string]string{{"action_id": "open-link"}},
			"message": map[string]any{"ts": "1704930000.000100"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
	})

	t.Run("unknown interaction type is acked", func(t *testing.T) {
		_, r := setupHandlerTest(t)

		w := postForm(r, "/slack/interactions", interactionForm(t, map[string]any{
			"type": "shortcut",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
