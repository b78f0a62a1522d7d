package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

type expirerStub struct {
	calledWith time.Time
	calls      int
	count      int64
	err        error
}

func (s *expirerStub) DeactivateExpiredSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	s.calls++
	s.calledWith = now
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("expected a deadline on the job context")
	}
	return s.count, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExpireSubscriptions_UsesClock(t *testing.T) {
	repo := &expirerStub{count: 3}
	jobs := NewJobs(repo, discardLogger(), time.Second)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return fixed }

	jobs.ExpireSubscriptions()

	if repo.calls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.calls)
	}
	if !repo.calledWith.Equal(fixed) {
		t.Fatalf("expected job to use %v, got %v", fixed, repo.calledWith)
	}
}

func TestExpireSubscriptions_SurvivesRepositoryError(t *testing.T) {
	repo := &expirerStub{err: errors.New("db down")}
	jobs := NewJobs(repo, discardLogger(), 0)

	jobs.ExpireSubscriptions()

	if repo.calls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.calls)
	}
}

func TestSchedulerStart_RejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(NewJobs(&expirerStub{}, discardLogger(), 0), discardLogger(), "not a schedule")
	if err := s.Start(); err == nil {
		t.Fatal("expected invalid cron expression to be rejected")
	}
}

func TestSchedulerStart_AcceptsDescriptor(t *testing.T) {
	s := NewScheduler(NewJobs(&expirerStub{}, discardLogger(), 0), discardLogger(), "@hourly")
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-s.Stop().Done()
}
