package repository

import (
	"sync"
	"time"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

const (
	// DefaultCountdownSeconds is the initial acceptance-countdown value
	DefaultCountdownSeconds = 120

	// DefaultTickInterval is the wall-clock decrement cadence
	DefaultTickInterval = time.Second

	// subscriberBuffer must hold a full countdown of snapshots so slow
	// consumers never miss the zero emit
	subscriberBuffer = 256
)

// StatusStore holds the active request identity and owns the countdown timer
// lifecycle. It is a single shared instance; every mutation emits a snapshot
// to subscribers. Only one countdown ever runs: starting a new timer cancels
// the previous one.
type StatusStore struct {
	mu sync.Mutex

	requestID     string
	userID        string
	isActive      bool
	timeRemaining int

	initial int
	tick    time.Duration

	// timer generation; a running ticker goroutine exits once its
	// generation is stale
	gen  int
	stop chan struct{}

	subs   map[int]chan models.CountdownState
	nextID int
}

// NewStatusStore creates the store from application config
func NewStatusStore(cfg *models.Config) *StatusStore {
	seconds := cfg.Countdown.Seconds
	if seconds <= 0 {
		seconds = DefaultCountdownSeconds
	}

	tick := time.Duration(cfg.Countdown.TickInterval) * time.Millisecond
	if tick <= 0 {
		tick = DefaultTickInterval
	}

	return &StatusStore{
		timeRemaining: seconds,
		initial:       seconds,
		tick:          tick,
		subs:          make(map[int]chan models.CountdownState),
	}
}

// SetRequestID sets the active request id. No validation is performed.
func (s *StatusStore) SetRequestID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestID = id
	s.emitLocked()
}

// SetUserID sets the requesting user id. No validation is performed.
func (s *StatusStore) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
	s.emitLocked()
}

// SetActive marks whether a countdown is logically running
func (s *StatusStore) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isActive = active
	s.emitLocked()
}

// StartTimer cancels any existing countdown, resets the value and begins
// decrementing once per tick interval. When the value reaches zero the timer
// stops itself, clears the active flag and resets the value; the
// transition-to-cancelled decision is left to the lifecycle coordinator,
// which observes the zero snapshot.
func (s *StatusStore) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.timeRemaining = s.initial
	s.emitLocked()

	s.gen++
	gen := s.gen
	stop := make(chan struct{})
	s.stop = stop

	go s.run(gen, stop)
}

func (s *StatusStore) run(gen int, stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.gen != gen {
				// A newer timer owns the countdown now
				s.mu.Unlock()
				return
			}

			s.timeRemaining--
			if s.timeRemaining <= 0 {
				s.timeRemaining = 0
				s.emitLocked()

				// Expired: stop and return to the idle value
				s.stop = nil
				s.gen++
				s.isActive = false
				s.timeRemaining = s.initial
				s.emitLocked()
				s.mu.Unlock()
				return
			}
			s.emitLocked()
			s.mu.Unlock()
		}
	}
}

// ResetTimer resets the countdown value without stopping the tick or
// touching the active flag
func (s *StatusStore) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeRemaining = s.initial
	s.emitLocked()
}

// Reset stops any running countdown and clears all fields to their initial
// values. Safe to call with no active timer.
func (s *StatusStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.requestID = ""
	s.userID = ""
	s.isActive = false
	s.timeRemaining = s.initial
	s.emitLocked()
}

// Snapshot returns the current state
func (s *StatusStore) Snapshot() models.CountdownState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a snapshot listener. The returned cancel function
// removes the listener and closes its channel.
func (s *StatusStore) Subscribe() (<-chan models.CountdownState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan models.CountdownState, subscriberBuffer)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (s *StatusStore) stopTimerLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.gen++
}

func (s *StatusStore) snapshotLocked() models.CountdownState {
	return models.CountdownState{
		RequestID:     s.requestID,
		UserID:        s.userID,
		IsActive:      s.isActive,
		TimeRemaining: s.timeRemaining,
	}
}

func (s *StatusStore) emitLocked() {
	snapshot := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			logger.Warn("Dropping countdown snapshot for slow subscriber",
				logger.Int("time_remaining", snapshot.TimeRemaining))
		}
	}
}

// Interface guard
var _ requests.StatusStore = (*StatusStore)(nil)
