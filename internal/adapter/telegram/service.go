package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// NotificationService delivers operator alerts through the Telegram Bot
// API. An unset token or chat id disables it silently so the runtime
// works without any messaging setup.
type NotificationService struct {
	botToken   string
	chatID     string
	enabled    bool
	location   *time.Location
	httpClient *http.Client
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewNotificationService creates a new Telegram notification service
func NewNotificationService(botToken, chatID string) *NotificationService {
	enabled := botToken != "" && chatID != ""

	tz := os.Getenv("TZ")
	if tz == "" {
		tz = "UTC"
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		location = time.UTC
	}

	return &NotificationService{
		botToken: botToken,
		chatID:   chatID,
		enabled:  enabled,
		location: location,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendTradeAlert reports a newly observed trade
func (s *NotificationService) SendTradeAlert(trade domain.TradeRecord) error {
	if !s.enabled {
		return nil // Silently skip if Telegram is not configured
	}

	sideEmoji := "🟢"
	if trade.Action == domain.ActionSell {
		sideEmoji = "🔴"
	}

	message := fmt.Sprintf(
		"⚡ *TRADE EXECUTED*\n\n"+
			"%s *%s %s*\n"+
			"━━━━━━━━━━━━━━━━━\n"+
			"💵 Price: `$%.2f`\n"+
			"📦 Quantity: `%d`\n"+
			"🕒 Time: `%s`\n\n"+
			"💡 *Reasoning:*\n%s",
		sideEmoji,
		trade.Action,
		trade.Symbol,
		trade.Price,
		trade.Qty,
		trade.Timestamp.In(s.location).Format("2006-01-02 15:04:05"),
		trade.AIReason,
	)

	return s.sendMessage(message)
}

// SendGuardAlert reports that the drawdown guard paused the session
func (s *NotificationService) SendGuardAlert(trendPercent float64, status domain.SessionStatus) error {
	if !s.enabled {
		return nil
	}

	message := fmt.Sprintf(
		"🛡️ *DRAWDOWN GUARD TRIGGERED*\n\n"+
			"📉 Equity trend: `%.2f%%`\n"+
			"⏸️ Session status: `%s`\n"+
			"🕒 Time: `%s`\n\n"+
			"The session was paused automatically. Review the portfolio and resume when ready.",
		trendPercent,
		status,
		time.Now().In(s.location).Format("2006-01-02 15:04:05"),
	)

	return s.sendMessage(message)
}

// SendDigest delivers the end-of-day session summary
func (s *NotificationService) SendDigest(digest domain.DailyDigest) error {
	if !s.enabled {
		return nil
	}

	equity := "n/a"
	if digest.TotalEquity != nil {
		equity = fmt.Sprintf("$%.2f", *digest.TotalEquity)
	}
	trend := "n/a"
	if digest.TrendPercent != nil {
		trend = fmt.Sprintf("%+.2f%%", *digest.TrendPercent)
	}
	progress := "n/a"
	if digest.TotalDays > 0 {
		progress = fmt.Sprintf("Day %d of %d", digest.Day, digest.TotalDays)
	}

	message := fmt.Sprintf(
		"📊 *DAILY SESSION DIGEST*\n\n"+
			"📌 Status: `%s`\n"+
			"💰 Total equity: `%s`\n"+
			"📈 Trend: `%s`\n"+
			"📅 Progress: `%s`\n"+
			"🧾 Trades archived (24h): `%d`\n"+
			"🕒 Generated: `%s`",
		digest.Status,
		equity,
		trend,
		progress,
		digest.TradesArchived,
		digest.GeneratedAt.In(s.location).Format("2006-01-02 15:04"),
	)

	return s.sendMessage(message)
}

// sendMessage sends a message to Telegram using the Bot API
func (s *NotificationService) sendMessage(text string) error {
	if !s.enabled {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	resp, err := s.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
