package events

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Skotchmaster/catalog_admin/internal/logging"
)

const publishTimeout = 5 * time.Second

// Emitter publishes best effort: a failed publish is logged and counted but
// never reported to the caller.
type Emitter struct {
	pub      Publisher
	failures *prometheus.CounterVec
	now      func() time.Time
}

func NewEmitter(pub Publisher, failures *prometheus.CounterVec) *Emitter {
	return &Emitter{pub: pub, failures: failures, now: time.Now}
}

func (e *Emitter) Emit(ctx context.Context, topic, typ, id, name string) {
	if e == nil || e.pub == nil {
		return
	}

	ev := Event{Type: typ, ID: id, Name: name, At: e.now().UTC()}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.pub.PublishEvent(pubCtx, topic, id, ev); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "topic", topic, "type", typ, "id", id, "error", err)
		if e.failures != nil {
			e.failures.WithLabelValues(topic).Inc()
		}
	}
}
