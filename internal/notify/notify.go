package notify

import (
	"context"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Notifier reports outcomes and failures to a human. Sends must never be
// fatal to the run; callers log a returned error and move on.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// DiscordRelay posts messages to the ponyboy relay, which forwards them as
// Discord DMs.
type DiscordRelay struct {
	client  *resty.Client
	baseURL string
	userID  int64
}

type relayRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

func NewDiscordRelay(client *resty.Client, baseURL string, userID int64) *DiscordRelay {
	return &DiscordRelay{
		client:  client,
		baseURL: baseURL,
		userID:  userID,
	}
}

// FromEnv builds the relay from PONYBOY_BASE_URL and NOTIFY_DISCORD_USER.
// When either is missing or malformed the returned notifier only logs, so a
// half-configured job still runs.
func FromEnv(client *resty.Client) Notifier {
	baseURL := os.Getenv("PONYBOY_BASE_URL")
	rawUser := os.Getenv("NOTIFY_DISCORD_USER")
	if baseURL == "" || rawUser == "" {
		log.Warn("Missing required environment variables for Discord notification")
		return &LogOnly{}
	}
	userID, err := strconv.ParseInt(rawUser, 10, 64)
	if err != nil {
		log.WithError(err).Warn("NOTIFY_DISCORD_USER is not numeric")
		return &LogOnly{}
	}
	return NewDiscordRelay(client, baseURL, userID)
}

func (d *DiscordRelay) Send(ctx context.Context, message string) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayRequest{UserID: d.userID, Message: message}).
		Post(d.baseURL + "/send_discord_message")
	if err != nil {
		log.WithError(err).Error("Failure sending Discord message")
		return err
	}
	if !resp.IsSuccess() {
		log.WithField("status", resp.StatusCode()).Errorf("Failure sending Discord message: %s", resp.String())
		return fmt.Errorf("discord relay returned status %d", resp.StatusCode())
	}
	return nil
}

// LogOnly drops messages into the log. Used when the relay is unconfigured.
type LogOnly struct{}

func (l *LogOnly) Send(_ context.Context, message string) error {
	log.WithField("message", message).Info("Notification (relay not configured)")
	return nil
}
