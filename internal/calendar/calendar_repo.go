package calendar

import (
	"context"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, event Event) error
}

type googleRepository struct {
	svc        *gcal.Service
	calendarID string
	logger     *zap.Logger
}

func NewGoogleRepository(svc *gcal.Service, calendarID string, logger ...*zap.Logger) Repository {
	l := zap.L().Named("calendar.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.repo")
	}
	return &googleRepository{svc: svc, calendarID: calendarID, logger: l}
}

func (r *googleRepository) Insert(ctx context.Context, event Event) error {
	payload := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			Date:     event.Start.Date,
			TimeZone: event.Start.TimeZone,
		},
		End: &gcal.EventDateTime{
			Date:     event.End.Date,
			TimeZone: event.End.TimeZone,
		},
	}

	_, err := r.svc.Events.Insert(r.calendarID, payload).Context(ctx).Do()
	if err != nil {
		r.logger.Error("insert calendar event failed",
			zap.String("summary", event.Summary),
			zap.Error(err),
		)
		return err
	}

	r.logger.Info("calendar event created",
		zap.String("summary", event.Summary),
		zap.String("start", event.Start.Date),
		zap.String("end", event.End.Date),
	)
	return nil
}
