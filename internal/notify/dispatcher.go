package notify

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// sendTimeout bounds a single delivery attempt.
const sendTimeout = 5 * time.Second

// Dispatcher sends notifications in the background so callers never wait on delivery.
// Delivery failures are logged and otherwise ignored.
type Dispatcher struct {
	notifier Notifier
	logger   *zap.Logger
	wg       conc.WaitGroup
}

// NewDispatcher creates a Dispatcher delivering through notifier.
func NewDispatcher(notifier Notifier, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger.Named("notify_dispatcher"),
	}
}

// Dispatch schedules delivery of a notification and returns immediately.
func (d *Dispatcher) Dispatch(n *Notification) {
	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := d.notifier.Notify(ctx, n); err != nil {
			d.logger.Warn("Failed to deliver notification",
				zap.Error(err),
				zap.String("id", n.ID),
				zap.String("kind", n.Kind.String()),
				zap.Uint64("recipientID", n.RecipientID))
		}
	})
}

// Wait blocks until every scheduled delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
