//go:build e2e

package notify_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DispatcherSuite struct {
	e2e.SharedSuite
}

func (s *DispatcherSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDispatcherSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DispatcherSuite))
}

type inbox struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (i *inbox) Send(_ context.Context, msg notify.Message) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sent = append(i.sent, msg)
	return nil
}

func (s *DispatcherSuite) insertJob(status string, touched time.Time) uuid.UUID {
	t := s.T()
	t.Helper()

	payload, err := json.Marshal(shared.NotificationEvent{SubjectID: uuid.New(), Status: "booked"})
	require.NoError(t, err)

	var id uuid.UUID
	err = s.DB.QueryRow(context.Background(), `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, attempts, status, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $4)
		RETURNING id`,
		shared.NotificationKindEmail, shared.TopicBookingCreated, payload, touched, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *DispatcherSuite) jobState(id uuid.UUID) (string, int32) {
	var (
		status   string
		attempts int32
	)
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, attempts FROM notification_jobs WHERE id = $1", id).Scan(&status, &attempts)
	require.NoError(s.T(), err)
	return status, attempts
}

func (s *DispatcherSuite) TestRunOnce() {
	ctx := context.Background()

	s.Run("job abandoned by a crashed worker is delivered again", func() {
		now := time.Now()
		lease := s.Config.Notify.LeaseDuration()
		abandoned := s.insertJob("running", now.Add(-2*lease))
		inFlight := s.insertJob("running", now.Add(-lease/4))

		box := &inbox{}
		d := notify.NewDispatcher(s.DB, sqlstore.New(), box, clock.NewRealClock(), s.Config)

		sent, err := d.RunOnce(ctx)
		s.Require().NoError(err)
		s.Equal(1, sent)
		s.Require().Len(box.sent, 1)
		s.Equal(s.Config.Notify.OpsEmail, box.sent[0].To)

		status, attempts := s.jobState(abandoned)
		s.Equal("sent", status)
		s.Equal(int32(2), attempts)

		status, attempts = s.jobState(inFlight)
		s.Equal("running", status, "a worker still inside its lease keeps the job")
		s.Equal(int32(1), attempts)
	})

	s.Run("queued jobs are claimed once", func() {
		due := s.insertJob("queued", time.Now().Add(-time.Minute))

		box := &inbox{}
		d := notify.NewDispatcher(s.DB, sqlstore.New(), box, clock.NewRealClock(), s.Config)

		sent, err := d.RunOnce(ctx)
		s.Require().NoError(err)
		s.Equal(1, sent)

		sent, err = d.RunOnce(ctx)
		s.Require().NoError(err)
		s.Zero(sent)

		status, _ := s.jobState(due)
		s.Equal("sent", status)
	})
}
