package approval

import (
	"context"
	"fmt"
	"strconv"
	"time"

	approvalerrors "leavebot/internal/approval/errors"
	"leavebot/internal/calendar"
	"leavebot/internal/events"
	"leavebot/internal/ledger"
	"leavebot/internal/request"
	"leavebot/internal/shared/apperror"
	"leavebot/internal/shared/translate"
	"leavebot/internal/slack"

	"go.uber.org/zap"
)

// ChatClient is the slice of the chat platform the approval flow uses.
//
//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type ChatClient interface {
	PostMessage(ctx context.Context, channel, text string, blocks []slack.Block) (string, error)
	OpenView(ctx context.Context, triggerID string, view slack.ModalView) error
}

type Service interface {
	// OpenRequestModal shows the leave-request form.
	OpenRequestModal(ctx context.Context, triggerID string) error
	// HandleSubmission validates a submitted form. A non-nil map carries
	// per-field errors to surface on the open modal; nil means the request
	// was forwarded to the approver.
	HandleSubmission(ctx context.Context, sub Submission) (map[string]string, error)
	// HandleDecision applies an approve/deny button press. Collaborator
	// failures are logged, never retried, and never surfaced to the
	// approver.
	HandleDecision(ctx context.Context, action DecisionAction) error
}

// ServiceConfig carries the deployment identifiers the flow needs.
type ServiceConfig struct {
	ApproverChannel string
	TimeZone        string
	Now             func() time.Time
}

type service struct {
	chat         ChatClient
	ledgerRepo   ledger.Repository
	calendarRepo calendar.Repository
	guard        DecisionGuard
	publisher    EventPublisher
	cfg          ServiceConfig
	logger       *zap.Logger
}

func NewService(
	chat ChatClient,
	ledgerRepo ledger.Repository,
	calendarRepo calendar.Repository,
	guard DecisionGuard,
	publisher EventPublisher,
	cfg ServiceConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		chat:         chat,
		ledgerRepo:   ledgerRepo,
		calendarRepo: calendarRepo,
		guard:        guard,
		publisher:    publisher,
		cfg:          cfg,
		logger:       l,
	}
}

func (s *service) OpenRequestModal(ctx context.Context, triggerID string) error {
	if err := s.chat.OpenView(ctx, triggerID, slack.RequestModal(s.cfg.Now())); err != nil {
		s.logger.Error("open request modal failed", zap.Error(err))
		return apperror.Wrap(err,
			approvalerrors.ErrModalOpenFailed.Code,
			approvalerrors.ErrModalOpenFailed.Message,
			approvalerrors.ErrModalOpenFailed.HTTPStatus,
		)
	}
	return nil
}

func (s *service) HandleSubmission(ctx context.Context, sub Submission) (map[string]string, error) {
	req := request.ParseSubmission(sub.Requester.Handle, sub.State)
	s.logger.Debug("leave submission received",
		zap.String("requester", sub.Requester.Handle),
		zap.String("category", string(req.Category)),
	)

	rows, err := s.ledgerRepo.Rows(ctx)
	if err != nil {
		s.logger.Error("read balance ledger failed", zap.Error(err))
		return nil, apperror.Wrap(err,
			approvalerrors.ErrLedgerUnavailable.Code,
			approvalerrors.ErrLedgerUnavailable.Message,
			approvalerrors.ErrLedgerUnavailable.HTTPStatus,
		)
	}

	balance, err := ledger.BalanceFor(rows, sub.Requester.Handle)
	if err != nil {
		// An unknown or duplicated handle validates against a zero
		// balance; the request is rejected rather than dropped.
		s.logger.Warn("balance lookup failed, validating against zero",
			zap.String("requester", sub.Requester.Handle),
			zap.Error(err),
		)
		balance = 0
	}

	result := request.Validate(req, balance, s.cfg.Now())
	if !result.Valid() {
		s.logger.Info("leave submission rejected",
			zap.String("requester", sub.Requester.Handle),
			zap.Bool("start_in_past", result.StartInPast),
			zap.Bool("insufficient_balance", result.InsufficientBalance),
			zap.Bool("negative_length", result.NegativeLength),
			zap.Bool("missing_other_reason", result.MissingOtherReason),
		)
		return result.FieldErrors(), nil
	}

	prompt := BuildPrompt(req, sub.Requester)
	if _, err := s.chat.PostMessage(ctx, s.cfg.ApproverChannel, prompt.Text, prompt.Blocks); err != nil {
		s.logger.Error("post approval prompt failed", zap.Error(err))
		return nil, apperror.Wrap(err,
			approvalerrors.ErrPromptDeliveryFailed.Code,
			approvalerrors.ErrPromptDeliveryFailed.Message,
			approvalerrors.ErrPromptDeliveryFailed.HTTPStatus,
		)
	}

	s.logger.Info("leave request forwarded to approver",
		zap.String("requester", sub.Requester.Handle),
		zap.Float64("length", result.Length),
	)
	return nil, nil
}

func (s *service) HandleDecision(ctx context.Context, action DecisionAction) error {
	first, err := s.guard.Acquire(ctx, action.MessageTS)
	if err != nil {
		// Fail open: losing dedupe is better than losing the decision.
		s.logger.Warn("decision guard unavailable", zap.Error(err))
		first = true
	}
	if !first {
		s.logger.Info("duplicate decision delivery ignored",
			zap.String("message_ts", action.MessageTS),
		)
		return nil
	}

	rec := ResolveDecision(action)
	length := request.LeaveLength(rec.Category, rec.StartDate, rec.EndDate)
	s.logger.Info("leave decision received",
		zap.String("approver", rec.ApproverIdentity),
		zap.String("decision", string(rec.Decision)),
		zap.String("requester", rec.RequesterHandle),
		zap.Float64("length", length),
	)

	// From here every collaborator failure is logged and skipped: a
	// partial record beats losing the approval entirely.
	if _, err := s.chat.PostMessage(ctx, rec.RequesterID, notificationText(rec, length), nil); err != nil {
		s.logger.Error("notify requester failed",
			zap.String("requester_id", rec.RequesterID),
			zap.Error(err),
		)
	}

	if err := s.ledgerRepo.AppendResult(ctx, resultRow(rec)); err != nil {
		s.logger.Error("append result row failed", zap.Error(err))
	}

	if rec.Decision == DecisionApproved {
		s.applyApproval(ctx, rec, length)
	}

	if err := s.publisher.PublishLeaveDecided(ctx, events.LeaveDecidedEvent{
		EventType:       "leave.decided",
		RequesterHandle: rec.RequesterHandle,
		Decision:        string(rec.Decision),
		Category:        string(rec.Category),
		StartDate:       rec.StartDate.Format(request.DateFormat),
		EndDate:         rec.EndDate.Format(request.DateFormat),
		Length:          length,
		OccurredAt:      s.cfg.Now(),
	}); err != nil {
		s.logger.Error("publish leave decided failed", zap.Error(err))
	}

	return nil
}

// applyApproval performs the approved-only side effects: balance update,
// then calendar event. A failed balance write also skips the calendar so
// the two stores cannot drift further apart.
func (s *service) applyApproval(ctx context.Context, rec ApprovalRecord, length float64) {
	rows, err := s.ledgerRepo.Rows(ctx)
	if err != nil {
		s.logger.Error("read balance ledger for update failed", zap.Error(err))
		return
	}

	coord, newBalance, err := ledger.Locate(rows, rec.RequesterHandle, length)
	if err != nil {
		s.logger.Error("locate ledger row failed",
			zap.String("requester", rec.RequesterHandle),
			zap.Error(err),
		)
		return
	}

	if err := s.ledgerRepo.UpdateBalance(ctx, coord, newBalance); err != nil {
		s.logger.Error("update balance failed",
			zap.String("cell", coord.Ref()),
			zap.Error(err),
		)
		return
	}

	event := calendar.BuildEvent(calendar.Entry{
		Requester:     rec.RequesterDisplay,
		CategoryLabel: translate.Translate(string(rec.Category)),
		Reason:        rec.Reason,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
	}, s.cfg.TimeZone)
	if err := s.calendarRepo.Insert(ctx, event); err != nil {
		s.logger.Error("insert calendar event failed", zap.Error(err))
	}
}

// resultRow orders the decided request per the result sheet's columns:
// approver, decision, decided-at, requester, type, start, end, reason.
func resultRow(rec ApprovalRecord) []string {
	return []string{
		rec.ApproverIdentity,
		rec.Decision.Label(),
		rec.DecidedAt.Format(request.DateFormat),
		rec.RequesterDisplay,
		translate.Translate(string(rec.Category)),
		rec.StartDate.Format(request.DateFormat),
		rec.EndDate.Format(request.DateFormat),
		rec.Reason,
	}
}

func notificationText(rec ApprovalRecord, length float64) string {
	verdict := "was approved"
	if rec.Decision != DecisionApproved {
		verdict = "was denied"
	}
	return fmt.Sprintf("%s ~ %s %s (%s days): your leave request %s",
		rec.StartDate.Format(request.DateFormat),
		rec.EndDate.Format(request.DateFormat),
		translate.Translate(string(rec.Category)),
		formatLength(length),
		verdict,
	)
}

func formatLength(length float64) string {
	return strconv.FormatFloat(length, 'f', -1, 64)
}
