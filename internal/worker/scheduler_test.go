package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	domainmocks "github.com/avc/topup-storefront/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_Run(t *testing.T) {
	job := domainmocks.NewReconcileServiceMock(t)
	scheduler := NewScheduler(job, 10*time.Millisecond, zap.NewNop())

	calls := make(chan struct{}, 10)
	job.EXPECT().RunScheduled(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		if len(calls) == 1 {
			return errors.New("provider down")
		}
		return nil
	}).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("scheduled job was not triggered")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_Disabled(t *testing.T) {
	job := domainmocks.NewReconcileServiceMock(t)
	scheduler := NewScheduler(job, 0, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.NoError(t, scheduler.Run(ctx))
	job.AssertNotCalled(t, "RunScheduled", mock.Anything)
}
