package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/repositories/override"
	"github.com/evanyans/focus/internal/repositories/schedule"
	"github.com/evanyans/focus/internal/services/notification"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/scheduler"
	"github.com/evanyans/focus/internal/services/settings"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	scheduleRepo, err := schedule.NewRedis(&schedule.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create schedule repository: %v", err)
	}

	overrideRepo, err := override.NewRedis(&override.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create override repository: %v", err)
	}

	// Initialize settings service
	settingsSvc, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	hasApps, err := settingsSvc.HasSelectedApps(ctx)
	if err != nil {
		log.Fatalf("Failed to read app selection: %v", err)
	}
	if !hasApps {
		log.Println("no apps selected; blocking will have nothing to enforce")
	}

	// Initialize the restriction shield; authority is an environment decision
	// here, where the mobile platform would prompt the user for it
	restrictionSvc := restriction.New(&restriction.Config{
		Authorized: getEnv("RESTRICTION_AUTHORIZED", "true") == "true",
	})

	// Post notifications to Discord when configured, otherwise log them
	var notifier notification.Service
	discordToken := getEnv("DISCORD_TOKEN", "")
	discordChannelID := getEnv("DISCORD_CHANNEL_ID", "")
	if discordToken != "" && discordChannelID != "" {
		notifier, err = notification.NewDiscord(&notification.DiscordConfig{
			Token:     discordToken,
			ChannelID: discordChannelID,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord notifier: %v", err)
		}
	} else {
		notifier = notification.NewLog()
	}

	// Initialize scheduler service
	schedulerSvc, err := scheduler.New(&scheduler.Config{
		ScheduleRepo:  scheduleRepo,
		OverrideRepo:  overrideRepo,
		Restriction:   restrictionSvc,
		Settings:      settingsSvc,
		Notifier:      notifier,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler service: %v", err)
	}

	// Log arbitration changes as they happen
	go func() {
		for state := range schedulerSvc.Subscribe() {
			log.Printf("state changed: blocking=%v override=%v", state.IsBlockingActive, state.IsOverrideActive)
		}
	}()

	// Start the evaluation loop
	schedulerSvc.Start(context.Background())

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	schedulerSvc.Stop()

	log.Println("Scheduler has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
