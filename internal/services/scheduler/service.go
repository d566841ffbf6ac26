package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/models"
	overrideRepo "github.com/evanyans/focus/internal/repositories/override"
	scheduleRepo "github.com/evanyans/focus/internal/repositories/schedule"
	"github.com/evanyans/focus/internal/services/notification"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/settings"
)

// service implements the Service interface
type service struct {
	scheduleRepo scheduleRepo.Repository
	overrideRepo overrideRepo.Repository
	restriction  restriction.Service
	settings     settings.Service
	notifier     notification.Service
	clock        clock.Clock
	uuidGen      uuid.UUID
	pollInterval time.Duration

	// mu serializes evaluation and guards the aggregate state
	mu                sync.Mutex
	state             State
	wasOverrideActive bool

	subMu       sync.Mutex
	subscribers []chan State

	runMu  sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

// New creates a new scheduler service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScheduleRepo == nil {
		return nil, ErrNilScheduleRepo
	}

	if cfg.OverrideRepo == nil {
		return nil, ErrNilOverrideRepo
	}

	if cfg.Restriction == nil {
		return nil, ErrNilRestriction
	}

	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notification.NewLog()
	}

	return &service{
		scheduleRepo: cfg.ScheduleRepo,
		overrideRepo: cfg.OverrideRepo,
		restriction:  cfg.Restriction,
		settings:     cfg.Settings,
		notifier:     notifier,
		clock:        cfg.Clock,
		uuidGen:      cfg.UUIDGenerator,
		pollInterval: pollInterval,
	}, nil
}

// Evaluate runs one reconciliation pass: fetch the override and schedule
// state, derive the blocking decision, drive the restriction applier, and
// republish the aggregate state. Store fetch failures are absorbed; the
// previous state stands until the next tick.
func (s *service) Evaluate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	prev := s.state

	currentOverride, err := s.fetchActiveOverride(ctx, now)
	if err != nil {
		log.Printf("failed to fetch override sessions: %v", err)
		return
	}

	// An override that was in effect last tick told the applier to remove
	// blocking; once it lapses, blocking has to be re-applied rather than
	// left in whatever state the previous tick produced.
	overrideJustExpired := s.wasOverrideActive && currentOverride == nil
	if overrideJustExpired {
		log.Println("override expired, re-checking schedules")
	}

	listOut, err := s.scheduleRepo.ListEnabledSchedules(ctx, &scheduleRepo.ListEnabledSchedulesInput{})
	if err != nil {
		log.Printf("failed to fetch schedules: %v", err)
		return
	}
	schedules := listOut.Schedules

	// First-created schedule wins ties; the repository returns creation order
	var active *models.Schedule
	for _, sched := range schedules {
		if sched.IsActiveAt(now) {
			active = sched
			break
		}
	}

	if active != nil {
		if currentOverride != nil {
			// Schedule calls for blocking but the override suppresses it.
			// IsBlockingActive stays true: it reports what the rules alone
			// would do, not what is enforced.
			log.Printf("schedule active but overridden: %s", active.Name)
			if err := s.restriction.RemoveBlocking(ctx); err != nil {
				log.Printf("failed to remove blocking: %v", err)
			}
		} else {
			if overrideJustExpired {
				log.Printf("re-applying blocking after override: %s", active.Name)
			} else {
				log.Printf("blocking active: %s", active.Name)
			}
			s.applyBlocking(ctx)
		}
	} else {
		log.Println("no active schedule")
		if err := s.restriction.RemoveBlocking(ctx); err != nil {
			log.Printf("failed to remove blocking: %v", err)
		}
	}

	next := State{
		IsBlockingActive: active != nil,
		ActiveSchedule:   active,
		ActiveOverride:   currentOverride,
		IsOverrideActive: currentOverride != nil,
		NextTransition:   nextTransition(schedules, now),
	}

	s.wasOverrideActive = currentOverride != nil
	s.state = next

	if !statesEqual(prev, next) {
		s.notifyTransition(ctx, prev, next)
		s.publish(next)
	}
}

// State returns a snapshot of the current aggregate arbitration state
func (s *service) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	return &state
}

// AddSchedule creates a schedule, persists it, and re-evaluates
func (s *service) AddSchedule(ctx context.Context, input *AddScheduleInput) (*AddScheduleOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyName
	}

	if len(input.DaysOfWeek) == 0 {
		return nil, ErrNoDaysOfWeek
	}

	schedule := &models.Schedule{
		ID:         s.uuidGen.NewUUID(),
		Name:       input.Name,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		DaysOfWeek: input.DaysOfWeek,
		Enabled:    input.Enabled,
		CreatedAt:  s.clock.Now(),
	}

	err := s.scheduleRepo.SaveSchedule(ctx, &scheduleRepo.SaveScheduleInput{
		Schedule: schedule,
	})
	if err != nil {
		log.Printf("failed to save schedule: %v", err)
		return nil, err
	}

	log.Printf("schedule saved: %s", schedule.Name)
	s.Evaluate(ctx)

	return &AddScheduleOutput{
		Schedule: schedule,
	}, nil
}

// DeleteSchedule removes a schedule and re-evaluates
func (s *service) DeleteSchedule(ctx context.Context, input *DeleteScheduleInput) error {
	err := s.scheduleRepo.DeleteSchedule(ctx, &scheduleRepo.DeleteScheduleInput{
		ScheduleID: input.ScheduleID,
	})
	if err != nil {
		log.Printf("failed to delete schedule: %v", err)
		return err
	}

	log.Printf("schedule deleted: %s", input.ScheduleID)
	s.Evaluate(ctx)

	return nil
}

// ToggleSchedule flips a schedule's enabled flag and re-evaluates
func (s *service) ToggleSchedule(ctx context.Context, input *ToggleScheduleInput) error {
	schedule, err := s.scheduleRepo.GetSchedule(ctx, &scheduleRepo.GetScheduleInput{
		ScheduleID: input.ScheduleID,
	})
	if err != nil {
		return err
	}

	schedule.Enabled = !schedule.Enabled

	err = s.scheduleRepo.SaveSchedule(ctx, &scheduleRepo.SaveScheduleInput{
		Schedule: schedule,
	})
	if err != nil {
		log.Printf("failed to toggle schedule: %v", err)
		return err
	}

	log.Printf("schedule toggled: %s enabled=%t", schedule.Name, schedule.Enabled)
	s.Evaluate(ctx)

	return nil
}

// Start begins periodic evaluation, running an immediate pass first
func (s *service) Start(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.done != nil {
		return
	}

	s.done = make(chan struct{})
	s.ticker = time.NewTicker(s.pollInterval)

	s.Evaluate(ctx)

	go s.run(ctx, s.ticker, s.done)
}

// Stop halts periodic evaluation. Each tick is self-contained, so there is
// no outstanding work to wait for.
func (s *service) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.done == nil {
		return
	}

	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// Subscribe registers for aggregate state change notifications. Slow
// consumers miss intermediate states rather than stalling evaluation.
func (s *service) Subscribe() <-chan State {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	ch := make(chan State, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *service) run(ctx context.Context, ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evaluate(ctx)
		}
	}
}

// fetchActiveOverride returns the most recently started override session
// that is still active, or nil when none is
func (s *service) fetchActiveOverride(ctx context.Context, now time.Time) (*models.OverrideSession, error) {
	listOut, err := s.overrideRepo.ListSessions(ctx, &overrideRepo.ListSessionsInput{})
	if err != nil {
		return nil, err
	}

	for _, session := range listOut.Sessions {
		if session.IsActive(now) {
			return session, nil
		}
	}
	return nil, nil
}

func (s *service) applyBlocking(ctx context.Context) {
	selection, err := s.settings.GetSelection(ctx)
	if err != nil {
		log.Printf("failed to get app selection: %v", err)
		return
	}

	err = s.restriction.ApplyBlocking(ctx, &restriction.ApplyBlockingInput{
		Selection: selection,
	})
	if err != nil {
		log.Printf("failed to apply blocking: %v", err)
	}
}

// notifyTransition informs the user when enforcement starts or ends.
// Delivery is fire-and-forget.
func (s *service) notifyTransition(ctx context.Context, prev, next State) {
	if !prev.IsBlockingActive && next.IsBlockingActive {
		err := s.notifier.Notify(ctx, &notification.NotifyInput{
			Title: "Blocking started",
			Body:  next.ActiveSchedule.Name + " is now active",
		})
		if err != nil {
			log.Printf("failed to send notification: %v", err)
		}
	}

	if prev.IsBlockingActive && !next.IsBlockingActive {
		err := s.notifier.Notify(ctx, &notification.NotifyInput{
			Title: "Blocking ended",
			Body:  "No schedule is active",
		})
		if err != nil {
			log.Printf("failed to send notification: %v", err)
		}
	}
}

func (s *service) publish(state State) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

// nextTransition returns the earliest schedule boundary (start or end)
// strictly after now among schedules that apply today. The look-ahead stays
// within the current calendar day.
func nextTransition(schedules []*models.Schedule, now time.Time) *time.Time {
	weekday := models.Weekday(now)

	var next *time.Time
	for _, sched := range schedules {
		if !sched.AppliesOn(weekday) {
			continue
		}

		start, end := sched.BoundariesOn(now)
		for _, boundary := range []time.Time{start, end} {
			if !boundary.After(now) {
				continue
			}
			if next == nil || boundary.Before(*next) {
				b := boundary
				next = &b
			}
		}
	}
	return next
}

func statesEqual(a, b State) bool {
	if a.IsBlockingActive != b.IsBlockingActive || a.IsOverrideActive != b.IsOverrideActive {
		return false
	}
	if !sameScheduleID(a.ActiveSchedule, b.ActiveSchedule) {
		return false
	}
	if !sameSessionID(a.ActiveOverride, b.ActiveOverride) {
		return false
	}
	return sameInstant(a.NextTransition, b.NextTransition)
}

func sameScheduleID(a, b *models.Schedule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func sameSessionID(a, b *models.OverrideSession) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
