package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"StockCast/internal/domain/models"
	"StockCast/pkg/logger"
)

// Controller owns one session's view-state and its latest snapshot. Each
// Apply supersedes any in-flight recomputation: the previous context is
// cancelled and only the newest submission may commit, so a slow stale
// result can never overwrite a fresher one.
type Controller struct {
	charts *ChartService
	log    *logger.Logger

	seq atomic.Uint64

	mu      sync.Mutex
	cancel  context.CancelFunc
	state   models.ViewState
	current models.Snapshot

	updates chan models.Snapshot
}

func NewController(charts *ChartService, log *logger.Logger) *Controller {
	return &Controller{
		charts:  charts,
		log:     log,
		updates: make(chan models.Snapshot, 16),
	}
}

// Apply submits a new view-state and starts recomputation in the background.
// Returns the sequence number assigned to this submission.
func (c *Controller) Apply(state models.ViewState) uint64 {
	seq := c.seq.Add(1)
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.state = state
	c.mu.Unlock()

	go c.recompute(ctx, seq, state)
	return seq
}

func (c *Controller) recompute(ctx context.Context, seq uint64, state models.ViewState) {
	snap := c.charts.Resolve(ctx, state)
	if ctx.Err() != nil {
		c.log.Debug("superseded recomputation discarded",
			logger.Uint64("seq", seq),
			logger.String("symbol", state.Instrument),
		)
		return
	}
	snap.Seq = seq

	c.mu.Lock()
	if seq != c.seq.Load() {
		c.mu.Unlock()
		return
	}
	c.current = snap
	c.mu.Unlock()

	c.publish(snap)
}

// publish never blocks; when the consumer lags, the oldest queued snapshot
// is dropped in favor of the new one.
func (c *Controller) publish(snap models.Snapshot) {
	for {
		select {
		case c.updates <- snap:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

// Snapshot returns the latest committed snapshot.
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// State returns the most recently applied view-state, which may be ahead of
// the state carried by the latest committed snapshot.
func (c *Controller) State() models.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Updates is the stream of committed snapshots, in commit order.
func (c *Controller) Updates() <-chan models.Snapshot {
	return c.updates
}

// Close cancels any in-flight recomputation. The controller must not be
// used after Close.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
