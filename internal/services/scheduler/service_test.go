package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/evanyans/focus/internal/common/clock/mocks"
	uuidMocks "github.com/evanyans/focus/internal/common/uuid/mocks"
	"github.com/evanyans/focus/internal/models"
	overrideRepo "github.com/evanyans/focus/internal/repositories/override"
	overrideMocks "github.com/evanyans/focus/internal/repositories/override/mocks"
	scheduleRepo "github.com/evanyans/focus/internal/repositories/schedule"
	scheduleMocks "github.com/evanyans/focus/internal/repositories/schedule/mocks"
	notificationMocks "github.com/evanyans/focus/internal/services/notification/mocks"
	"github.com/evanyans/focus/internal/services/restriction"
	restrictionMocks "github.com/evanyans/focus/internal/services/restriction/mocks"
	settingsMocks "github.com/evanyans/focus/internal/services/settings/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockScheduleRepo *scheduleMocks.MockRepository
	mockOverrideRepo *overrideMocks.MockRepository
	mockRestriction  *restrictionMocks.MockService
	mockSettings     *settingsMocks.MockService
	mockNotifier     *notificationMocks.MockService
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	svc              Service
	ctx              context.Context

	// Test data
	wednesday10   time.Time
	testSelection *models.AppSelection
	workHours     *models.Schedule
	sleep         *models.Schedule
}

func (s *SchedulerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduleRepo = scheduleMocks.NewMockRepository(s.mockCtrl)
	s.mockOverrideRepo = overrideMocks.NewMockRepository(s.mockCtrl)
	s.mockRestriction = restrictionMocks.NewMockService(s.mockCtrl)
	s.mockSettings = settingsMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notificationMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// 2026-01-07 is a Wednesday
	s.wednesday10 = time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	s.testSelection = &models.AppSelection{
		AppIDs: []string{"com.example.social"},
	}

	s.workHours = &models.Schedule{
		ID:        "schedule-work",
		Name:      "Work Hours",
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		DaysOfWeek: []int{
			models.WeekdayMonday,
			models.WeekdayTuesday,
			models.WeekdayWednesday,
			models.WeekdayThursday,
			models.WeekdayFriday,
		},
		Enabled:   true,
		CreatedAt: s.wednesday10.Add(-48 * time.Hour),
	}

	s.sleep = &models.Schedule{
		ID:        "schedule-sleep",
		Name:      "Sleep",
		StartTime: time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 7, 0, 0, 0, time.UTC),
		DaysOfWeek: []int{
			models.WeekdaySunday,
			models.WeekdayMonday,
			models.WeekdayTuesday,
			models.WeekdayWednesday,
			models.WeekdayThursday,
			models.WeekdayFriday,
			models.WeekdaySaturday,
		},
		Enabled:   true,
		CreatedAt: s.wednesday10.Add(-24 * time.Hour),
	}

	svc, err := New(&Config{
		ScheduleRepo:  s.mockScheduleRepo,
		OverrideRepo:  s.mockOverrideRepo,
		Restriction:   s.mockRestriction,
		Settings:      s.mockSettings,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SchedulerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerServiceTestSuite))
}

func (s *SchedulerServiceTestSuite) expectOverrides(sessions ...*models.OverrideSession) {
	s.mockOverrideRepo.EXPECT().
		ListSessions(s.ctx, &overrideRepo.ListSessionsInput{}).
		Return(&overrideRepo.ListSessionsOutput{Sessions: sessions}, nil)
}

func (s *SchedulerServiceTestSuite) expectSchedules(schedules ...*models.Schedule) {
	s.mockScheduleRepo.EXPECT().
		ListEnabledSchedules(s.ctx, &scheduleRepo.ListEnabledSchedulesInput{}).
		Return(&scheduleRepo.ListEnabledSchedulesOutput{Schedules: schedules}, nil)
}

func (s *SchedulerServiceTestSuite) expectApply() {
	s.mockSettings.EXPECT().GetSelection(s.ctx).Return(s.testSelection, nil)
	s.mockRestriction.EXPECT().
		ApplyBlocking(s.ctx, &restriction.ApplyBlockingInput{Selection: s.testSelection}).
		Return(nil)
}

func (s *SchedulerServiceTestSuite) overrideEnding(end time.Time) *models.OverrideSession {
	return &models.OverrideSession{
		ID:            "override-1",
		StartTime:     end.Add(-5 * time.Minute),
		EndTime:       end,
		ChallengeType: "math",
		WasUsed:       true,
	}
}

func (s *SchedulerServiceTestSuite) TestEvaluateAppliesBlockingWhenScheduleActive() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()
	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.True(state.IsBlockingActive)
	s.False(state.IsOverrideActive)
	s.Require().NotNil(state.ActiveSchedule)
	s.Equal("schedule-work", state.ActiveSchedule.ID)
	s.Nil(state.ActiveOverride)

	// Next boundary today is the 17:00 end of Work Hours
	s.Require().NotNil(state.NextTransition)
	expected := time.Date(2026, 1, 7, 17, 0, 0, 0, time.UTC)
	s.True(state.NextTransition.Equal(expected))
}

func (s *SchedulerServiceTestSuite) TestEvaluateSuppressesBlockingDuringOverride() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()
	s.expectOverrides(s.overrideEnding(s.wednesday10.Add(3 * time.Minute)))
	s.expectSchedules(s.workHours)

	// Override in effect: the applier is told to remove blocking even though
	// the schedule says block
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.True(state.IsBlockingActive)
	s.True(state.IsOverrideActive)
	s.Require().NotNil(state.ActiveOverride)
	s.Equal("override-1", state.ActiveOverride.ID)
}

func (s *SchedulerServiceTestSuite) TestEvaluateReappliesBlockingAfterOverrideExpiry() {
	expired := s.overrideEnding(s.wednesday10.Add(3 * time.Minute))

	// First tick at 10:00: override active, blocking removed
	s.mockClock.EXPECT().Now().Return(s.wednesday10)
	s.expectOverrides(expired)
	s.expectSchedules(s.workHours)
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	// Second tick at 10:05: the override has lapsed, blocking must be
	// re-applied rather than left removed
	s.mockClock.EXPECT().Now().Return(s.wednesday10.Add(5 * time.Minute))
	s.expectOverrides(expired)
	s.expectSchedules(s.workHours)
	s.expectApply()

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.True(state.IsBlockingActive)
	s.False(state.IsOverrideActive)
	s.Nil(state.ActiveOverride)
}

func (s *SchedulerServiceTestSuite) TestEvaluateRemovesBlockingOutsideSchedule() {
	evening := time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(evening).AnyTimes()
	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.False(state.IsBlockingActive)
	s.Nil(state.ActiveSchedule)

	// Both Work Hours boundaries are behind us; nothing left today
	s.Nil(state.NextTransition)
}

func (s *SchedulerServiceTestSuite) TestEvaluateMidnightCrossingScheduleActiveLate() {
	lateNight := time.Date(2026, 1, 7, 23, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(lateNight).AnyTimes()
	s.expectOverrides()
	s.expectSchedules(s.sleep)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.True(state.IsBlockingActive)
	s.Require().NotNil(state.ActiveSchedule)
	s.Equal("schedule-sleep", state.ActiveSchedule.ID)
}

func (s *SchedulerServiceTestSuite) TestEvaluateFirstCreatedScheduleWinsTie() {
	// Both schedules cover Wednesday 23:30; Work Hours does not, Sleep does.
	// Use two overlapping all-day schedules to exercise the tie-break.
	first := &models.Schedule{
		ID:         "schedule-first",
		Name:       "First",
		StartTime:  time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:    time.Date(0, 1, 1, 23, 59, 0, 0, time.UTC),
		DaysOfWeek: []int{models.WeekdayWednesday},
		Enabled:    true,
		CreatedAt:  s.wednesday10.Add(-72 * time.Hour),
	}
	second := &models.Schedule{
		ID:         "schedule-second",
		Name:       "Second",
		StartTime:  time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:    time.Date(0, 1, 1, 23, 59, 0, 0, time.UTC),
		DaysOfWeek: []int{models.WeekdayWednesday},
		Enabled:    true,
		CreatedAt:  s.wednesday10.Add(-24 * time.Hour),
	}

	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()
	s.expectOverrides()
	s.expectSchedules(first, second)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.Require().NotNil(state.ActiveSchedule)
	s.Equal("schedule-first", state.ActiveSchedule.ID)
}

func (s *SchedulerServiceTestSuite) TestEvaluateIsIdempotent() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()

	// Two evaluations with the same store state and time: the applier is
	// driven both times, but the notifier fires only on the transition
	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)
	firstState := s.svc.State()

	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.expectApply()

	s.svc.Evaluate(s.ctx)
	secondState := s.svc.State()

	s.Equal(firstState, secondState)
}

func (s *SchedulerServiceTestSuite) TestEvaluateKeepsStateOnFetchFailure() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()

	// Establish blocking
	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)
	s.svc.Evaluate(s.ctx)

	// A failing fetch leaves the previous aggregate state untouched and
	// drives no applier calls this tick
	s.mockOverrideRepo.EXPECT().
		ListSessions(s.ctx, &overrideRepo.ListSessionsInput{}).
		Return(nil, errors.New("connection refused"))

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.True(state.IsBlockingActive)
	s.Require().NotNil(state.ActiveSchedule)
	s.Equal("schedule-work", state.ActiveSchedule.ID)
}

func (s *SchedulerServiceTestSuite) TestEvaluateNextTransitionBeforeWindowOpens() {
	morning := time.Date(2026, 1, 7, 8, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(morning).AnyTimes()
	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil).AnyTimes()

	s.svc.Evaluate(s.ctx)

	state := s.svc.State()
	s.False(state.IsBlockingActive)
	s.Require().NotNil(state.NextTransition)
	expected := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	s.True(state.NextTransition.Equal(expected))
}

func (s *SchedulerServiceTestSuite) TestAddScheduleSavesAndReevaluates() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("schedule-new")

	var saved *models.Schedule
	s.mockScheduleRepo.EXPECT().
		SaveSchedule(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *scheduleRepo.SaveScheduleInput) error {
			saved = input.Schedule
			return nil
		})

	// The re-evaluation that follows the mutation
	s.expectOverrides()
	s.expectSchedules()
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)

	out, err := s.svc.AddSchedule(s.ctx, &AddScheduleInput{
		Name:       "Evening",
		StartTime:  time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		EndTime:    time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC),
		DaysOfWeek: []int{models.WeekdayMonday},
		Enabled:    true,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)

	s.Require().NotNil(saved)
	s.Equal("schedule-new", saved.ID)
	s.Equal("Evening", saved.Name)
	s.True(saved.Enabled)
	s.Equal(s.wednesday10, saved.CreatedAt)
	s.Equal(out.Schedule, saved)
}

func (s *SchedulerServiceTestSuite) TestAddScheduleRejectsEmptyName() {
	_, err := s.svc.AddSchedule(s.ctx, &AddScheduleInput{
		Name:       "",
		DaysOfWeek: []int{models.WeekdayMonday},
	})
	s.Require().ErrorIs(err, ErrEmptyName)
}

func (s *SchedulerServiceTestSuite) TestAddScheduleRejectsEmptyDays() {
	_, err := s.svc.AddSchedule(s.ctx, &AddScheduleInput{
		Name:       "Evening",
		DaysOfWeek: []int{},
	})
	s.Require().ErrorIs(err, ErrNoDaysOfWeek)
}

func (s *SchedulerServiceTestSuite) TestToggleScheduleFlipsEnabledAndReevaluates() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()

	stored := *s.workHours
	s.mockScheduleRepo.EXPECT().
		GetSchedule(s.ctx, &scheduleRepo.GetScheduleInput{ScheduleID: "schedule-work"}).
		Return(&stored, nil)

	var saved *models.Schedule
	s.mockScheduleRepo.EXPECT().
		SaveSchedule(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *scheduleRepo.SaveScheduleInput) error {
			saved = input.Schedule
			return nil
		})

	// Re-evaluation after the toggle: the schedule is now disabled
	s.expectOverrides()
	s.expectSchedules()
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)

	err := s.svc.ToggleSchedule(s.ctx, &ToggleScheduleInput{ScheduleID: "schedule-work"})
	s.Require().NoError(err)

	s.Require().NotNil(saved)
	s.False(saved.Enabled)
}

func (s *SchedulerServiceTestSuite) TestToggleScheduleNotFound() {
	s.mockScheduleRepo.EXPECT().
		GetSchedule(s.ctx, &scheduleRepo.GetScheduleInput{ScheduleID: "missing"}).
		Return(nil, scheduleRepo.ErrScheduleNotFound)

	err := s.svc.ToggleSchedule(s.ctx, &ToggleScheduleInput{ScheduleID: "missing"})
	s.Require().ErrorIs(err, scheduleRepo.ErrScheduleNotFound)
}

func (s *SchedulerServiceTestSuite) TestDeleteScheduleReevaluates() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()

	s.mockScheduleRepo.EXPECT().
		DeleteSchedule(s.ctx, &scheduleRepo.DeleteScheduleInput{ScheduleID: "schedule-work"}).
		Return(nil)

	s.expectOverrides()
	s.expectSchedules()
	s.mockRestriction.EXPECT().RemoveBlocking(s.ctx).Return(nil)

	err := s.svc.DeleteSchedule(s.ctx, &DeleteScheduleInput{ScheduleID: "schedule-work"})
	s.Require().NoError(err)
}

func (s *SchedulerServiceTestSuite) TestSubscribeReceivesStateChanges() {
	s.mockClock.EXPECT().Now().Return(s.wednesday10).AnyTimes()

	ch := s.svc.Subscribe()

	s.expectOverrides()
	s.expectSchedules(s.workHours)
	s.expectApply()
	s.mockNotifier.EXPECT().Notify(s.ctx, gomock.Any()).Return(nil)

	s.svc.Evaluate(s.ctx)

	select {
	case state := <-ch:
		s.True(state.IsBlockingActive)
	default:
		s.Fail("expected a published state change")
	}
}
