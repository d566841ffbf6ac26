package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/models"
	"github.com/evanyans/focus/internal/repositories/override"
	"github.com/evanyans/focus/internal/repositories/schedule"
	"github.com/evanyans/focus/internal/repositories/usage"
	"github.com/evanyans/focus/internal/rng"
	"github.com/evanyans/focus/internal/services/challenge"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/settings"
	"github.com/evanyans/focus/internal/services/streak"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// focusctl is the user-facing side of the daemon: it runs the math challenge
// that earns a temporary override, reports the current focus streak, and
// inspects schedules and usage history.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: focusctl <override [app-name] | streak | schedules | add | toggle | delete | stats | config | reset>")
		os.Exit(2)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	overrideRepo, err := override.NewRedis(&override.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create override repository: %v", err)
	}

	switch os.Args[1] {
	case "override":
		appName := ""
		if len(os.Args) > 2 {
			appName = os.Args[2]
		}
		runChallenge(redisClient, overrideRepo, appName)
	case "streak":
		printStreak(overrideRepo)
	case "schedules":
		printSchedules(redisClient)
	case "add":
		addSchedule(redisClient, os.Args[2:])
	case "toggle":
		toggleSchedule(redisClient, os.Args[2:])
	case "delete":
		deleteSchedule(redisClient, os.Args[2:])
	case "stats":
		printStats(redisClient)
	case "config":
		runConfig(redisClient, os.Args[2:])
	case "reset":
		resetSessions(overrideRepo)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		os.Exit(2)
	}
}

func runChallenge(redisClient *redis.Client, overrideRepo override.Repository, appName string) {
	usageRepo, err := usage.NewRedis(&usage.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create usage repository: %v", err)
	}

	settingsSvc, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	// Enforcement belongs to the daemon; this process only records the grant,
	// which the daemon's next evaluation picks up
	challengeSvc, err := challenge.New(&challenge.Config{
		OverrideRepo:  overrideRepo,
		UsageRepo:     usageRepo,
		Restriction:   restriction.New(nil),
		Settings:      settingsSvc,
		Random:        rng.New(&rng.Config{}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}

	ctx := context.Background()

	generated, err := challengeSvc.Generate(ctx, &challenge.GenerateInput{})
	if err != nil {
		log.Fatalf("Failed to generate challenge: %v", err)
	}

	fmt.Printf("Solve to unlock: %d x %d = ", generated.Problem.A, generated.Problem.B)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		log.Fatal("No answer given")
	}

	answer, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		log.Fatalf("Invalid answer: %v", err)
	}

	out, err := challengeSvc.Complete(ctx, &challenge.CompleteInput{
		Problem: generated.Problem,
		Answer:  answer,
		AppName: appName,
	})
	if err != nil {
		log.Fatalf("Challenge failed: %v", err)
	}

	fmt.Printf("Override granted until %s\n", out.Session.EndTime.Local().Format("15:04:05"))
}

func printStreak(overrideRepo override.Repository) {
	ctx := context.Background()

	sessions, err := overrideRepo.ListSessions(ctx, &override.ListSessionsInput{})
	if err != nil {
		log.Fatalf("Failed to list override sessions: %v", err)
	}

	now := time.Now()
	days := streak.Calculate(sessions.Sessions, now)

	fmt.Printf("Current streak: %d days\n", days)
	fmt.Println(streak.Message(days))
	if streak.UsedOverrideToday(sessions.Sessions, now) {
		fmt.Println("An override was used today.")
	}
}

func printSchedules(redisClient *redis.Client) {
	scheduleRepo := newScheduleRepo(redisClient)

	out, err := scheduleRepo.ListSchedules(context.Background(), &schedule.ListSchedulesInput{})
	if err != nil {
		log.Fatalf("Failed to list schedules: %v", err)
	}

	if len(out.Schedules) == 0 {
		fmt.Println("No schedules configured.")
		return
	}

	for _, sched := range out.Schedules {
		status := "enabled"
		if !sched.Enabled {
			status = "disabled"
		}
		fmt.Printf("%s  %s  %s  [%s]  %s\n", sched.ID, sched.Name, sched.TimeRange(), sched.DaysString(), status)
	}
}

// addSchedule creates a schedule from "name HH:MM HH:MM days" arguments, where
// days is a comma-separated list like "Mon,Tue,Wed". The daemon notices new
// schedules on its next evaluation.
func addSchedule(redisClient *redis.Client, args []string) {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: focusctl add <name> <start HH:MM> <end HH:MM> <days>")
		os.Exit(2)
	}

	start, err := time.Parse("15:04", args[1])
	if err != nil {
		log.Fatalf("Invalid start time: %v", err)
	}

	end, err := time.Parse("15:04", args[2])
	if err != nil {
		log.Fatalf("Invalid end time: %v", err)
	}

	days, err := parseDays(args[3])
	if err != nil {
		log.Fatal(err)
	}

	scheduleRepo := newScheduleRepo(redisClient)

	sched := &models.Schedule{
		ID:         uuid.New().NewUUID(),
		Name:       args[0],
		StartTime:  start,
		EndTime:    end,
		DaysOfWeek: days,
		Enabled:    true,
		CreatedAt:  time.Now(),
	}

	err = scheduleRepo.SaveSchedule(context.Background(), &schedule.SaveScheduleInput{
		Schedule: sched,
	})
	if err != nil {
		log.Fatalf("Failed to save schedule: %v", err)
	}

	fmt.Printf("Created schedule %s (%s %s [%s])\n", sched.ID, sched.Name, sched.TimeRange(), sched.DaysString())
}

func toggleSchedule(redisClient *redis.Client, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: focusctl toggle <schedule-id>")
		os.Exit(2)
	}

	scheduleRepo := newScheduleRepo(redisClient)
	ctx := context.Background()

	sched, err := scheduleRepo.GetSchedule(ctx, &schedule.GetScheduleInput{
		ScheduleID: args[0],
	})
	if err != nil {
		log.Fatalf("Failed to get schedule: %v", err)
	}

	sched.Enabled = !sched.Enabled

	err = scheduleRepo.SaveSchedule(ctx, &schedule.SaveScheduleInput{
		Schedule: sched,
	})
	if err != nil {
		log.Fatalf("Failed to save schedule: %v", err)
	}

	fmt.Printf("Schedule %s enabled=%t\n", sched.Name, sched.Enabled)
}

func deleteSchedule(redisClient *redis.Client, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: focusctl delete <schedule-id>")
		os.Exit(2)
	}

	scheduleRepo := newScheduleRepo(redisClient)

	err := scheduleRepo.DeleteSchedule(context.Background(), &schedule.DeleteScheduleInput{
		ScheduleID: args[0],
	})
	if err != nil {
		log.Fatalf("Failed to delete schedule: %v", err)
	}

	fmt.Println("Schedule deleted.")
}

func newScheduleRepo(redisClient *redis.Client) schedule.Repository {
	repo, err := schedule.NewRedis(&schedule.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create schedule repository: %v", err)
	}
	return repo
}

func parseDays(value string) ([]int, error) {
	byName := map[string]int{
		"sun": models.WeekdaySunday,
		"mon": models.WeekdayMonday,
		"tue": models.WeekdayTuesday,
		"wed": models.WeekdayWednesday,
		"thu": models.WeekdayThursday,
		"fri": models.WeekdayFriday,
		"sat": models.WeekdaySaturday,
	}

	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		day, ok := byName[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown day: %s", part)
		}
		days = append(days, day)
	}
	return days, nil
}

func printStats(redisClient *redis.Client) {
	usageRepo, err := usage.NewRedis(&usage.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create usage repository: %v", err)
	}

	ctx := context.Background()
	now := time.Now()

	today, err := usageRepo.ListAttemptsToday(ctx, &usage.ListAttemptsTodayInput{
		Now: now,
	})
	if err != nil {
		log.Fatalf("Failed to list usage attempts: %v", err)
	}
	fmt.Printf("Today: %d attempts\n", len(today.Attempts))

	out, err := usageRepo.ListAttemptsSince(ctx, &usage.ListAttemptsSinceInput{
		Since: now.AddDate(0, 0, -7),
	})
	if err != nil {
		log.Fatalf("Failed to list usage attempts: %v", err)
	}

	blocked := 0
	overridden := 0
	for _, attempt := range out.Attempts {
		if attempt.WasBlocked {
			blocked++
		} else {
			overridden++
		}
	}

	fmt.Printf("Last 7 days: %d attempts blocked, %d let through by override\n", blocked, overridden)
	for _, attempt := range out.Attempts {
		outcome := "blocked"
		if !attempt.WasBlocked {
			outcome = "override (" + attempt.OverrideMethod + ")"
		}
		fmt.Printf("%s  %s  %s\n", attempt.Timestamp.Local().Format("Jan 02 15:04"), attempt.AppName, outcome)
	}
}

// runConfig with no arguments prints the stored durations; with a key and a
// value (Go duration syntax, e.g. "10m") it updates one.
func runConfig(redisClient *redis.Client, args []string) {
	settingsSvc, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	ctx := context.Background()

	if len(args) == 0 {
		overrideDuration, err := settingsSvc.GetOverrideDuration(ctx)
		if err != nil {
			log.Fatalf("Failed to get override duration: %v", err)
		}
		focusDuration, err := settingsSvc.GetFocusDuration(ctx)
		if err != nil {
			log.Fatalf("Failed to get focus duration: %v", err)
		}
		fmt.Printf("override-duration  %s\n", overrideDuration)
		fmt.Printf("focus-duration     %s\n", focusDuration)
		return
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: focusctl config [<override-duration|focus-duration> <duration>]")
		os.Exit(2)
	}

	duration, err := time.ParseDuration(args[1])
	if err != nil {
		log.Fatalf("Invalid duration: %v", err)
	}

	switch args[0] {
	case "override-duration":
		err = settingsSvc.SetOverrideDuration(ctx, &settings.SetOverrideDurationInput{
			Duration: duration,
		})
	case "focus-duration":
		err = settingsSvc.SetFocusDuration(ctx, &settings.SetFocusDurationInput{
			Duration: duration,
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown config key: %s\n", args[0])
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to update setting: %v", err)
	}

	fmt.Printf("%s set to %s\n", args[0], duration)
}

func resetSessions(overrideRepo override.Repository) {
	err := overrideRepo.DeleteAllSessions(context.Background(), &override.DeleteAllSessionsInput{})
	if err != nil {
		log.Fatalf("Failed to delete override sessions: %v", err)
	}
	fmt.Println("Override history cleared.")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
