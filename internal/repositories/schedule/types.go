package schedule

import "github.com/evanyans/focus/internal/models"

type SaveScheduleInput struct {
	Schedule *models.Schedule
}

type GetScheduleInput struct {
	ScheduleID string
}

type DeleteScheduleInput struct {
	ScheduleID string
}

type ListSchedulesInput struct {
}

type ListSchedulesOutput struct {
	Schedules []*models.Schedule
}

type ListEnabledSchedulesInput struct {
}

type ListEnabledSchedulesOutput struct {
	Schedules []*models.Schedule
}
