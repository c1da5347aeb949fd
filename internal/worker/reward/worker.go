package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
)

// Worker periodically rewards the viewers present in live channels. Sweeps are skipped while the
// gateway is down because presence is unknown then.
type Worker struct {
	rewarder Rewarder
	gateway  Gateway
	interval time.Duration
}

func New(rewarder Rewarder, gateway Gateway, interval time.Duration) *Worker {
	return &Worker{
		rewarder: rewarder,
		gateway:  gateway,
		interval: interval,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("RewardWorker")

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(w.interval).WaitForSchedule().Do(w.sweep, ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule reward sweep: %w", err)
	}

	scheduler.StartAsync()
	logger.Info(fmt.Sprintf("reward sweep scheduled every %s", w.interval))

	<-ctx.Done()

	scheduler.Stop()
	logger.Info("reward sweep stopped")
	return nil
}

func (w *Worker) sweep(ctx context.Context) {
	if ctx.Err() != nil || !w.gateway.Connected() {
		return
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	if err := w.rewarder.RewardPresent(ctx); err != nil {
		logger.Error(fmt.Sprintf("failed to reward present viewers: %v", err))
	}
}
