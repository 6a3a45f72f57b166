package detector

import (
	"context"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

const (
	maxTrackedContexts = 100_000
	trackedContextTTL  = 24 * time.Hour
)

type subscriber struct {
	contextID string
	ch        chan domain.Event
}

// hub fans events out to subscribers. Slow subscribers lose events rather
// than stalling the pipeline.
type hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscriber
	next   uint64
	buffer int
}

func newHub(buffer int) *hub {
	return &hub{
		subs:   make(map[uint64]*subscriber),
		buffer: buffer,
	}
}

func (h *hub) subscribe(contextID string) (<-chan domain.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	sub := &subscriber{contextID: contextID, ch: make(chan domain.Event, h.buffer)}
	h.subs[id] = sub

	var once sync.Once

	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(sub.ch)
		})
	}
}

func (h *hub) publish(ctx context.Context, e domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if sub.contextID != "" && sub.contextID != e.ContextID {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			logger.Debug(ctx, "dropping event for slow subscriber", zap.String("type", string(e.Type)))
		}
	}
}

// tracker remembers the URL each display context is currently showing.
type tracker struct {
	latest *expirable.LRU[string, string]
}

func newTracker() *tracker {
	return &tracker{latest: expirable.NewLRU[string, string](maxTrackedContexts, nil, trackedContextTTL)}
}

func (t *tracker) navigate(contextID, url string) {
	if contextID == "" {
		return
	}
	t.latest.Add(contextID, url)
}

// current reports whether contextID still shows url. Contexts never seen by
// this process are assumed current, which is the case for merges scheduled
// by another instance.
func (t *tracker) current(contextID, url string) bool {
	latest, ok := t.latest.Get(contextID)

	return !ok || latest == url
}
