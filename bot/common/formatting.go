package common

import (
	"fmt"
	"html"
	"time"

	"luckycasino/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FormatAmount formats a euro amount the way the casino displays it
func FormatAmount(amount int64) string {
	return fmt.Sprintf("%d€", amount)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// EscapeHTML escapes user-controlled text before it goes into HTML markup
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// MentionHTML renders a clickable mention of the player
func MentionHTML(p models.Player) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, p.ID, EscapeHTML(p.DisplayName()))
}

// PlayerFromUser converts a Telegram user into a Player
func PlayerFromUser(u *tgbotapi.User) models.Player {
	if u == nil {
		return models.Player{}
	}
	return models.Player{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.UserName,
	}
}
