package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordConfig holds the configuration for the Discord notification sink
type DiscordConfig struct {
	// Discord bot token
	Token string

	// ChannelID is the channel notifications are posted to
	ChannelID string
}

// discordService implements the Service interface by posting to a Discord
// channel. Useful for getting blocking notifications off-device.
type discordService struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscord creates a Discord-backed notification service
func NewDiscord(cfg *DiscordConfig) (*discordService, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	// Create a new Discord session; plain REST sends need no gateway connection
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &discordService{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// Notify posts the notification to the configured channel
func (s *discordService) Notify(ctx context.Context, input *NotifyInput) error {
	if input == nil {
		return nil
	}

	content := fmt.Sprintf("**%s**\n%s", input.Title, input.Body)
	_, err := s.session.ChannelMessageSend(s.channelID, content)
	if err != nil {
		return fmt.Errorf("failed to send Discord notification: %w", err)
	}

	return nil
}
