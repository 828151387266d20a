package commandimpl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/api"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *CommandImpl) reply(chatID int64, text string) int {
	id, err := c.Telegram.SendMessage(chatID, text)
	if err != nil {
		c.Logger.Error("Failed to reply", "chat_id", chatID, "error", err)
	}
	return id
}

func (c *CommandImpl) replyError(chatID int64, err error) {
	c.reply(chatID, userMessage(err))
}

// userMessage turns an error into something worth showing in the chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotLoggedIn):
		return "🔒 You need to /login first."
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return "❌ That username is already taken."
	case errors.Is(err, apperrors.ErrForbidden):
		return "❌ You can only change your own files."
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "⚠️ " + err.Error()
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("❌ The server refused: %s", apiErr.Message)
	}
	return fmt.Sprintf("❌ Something went wrong: %v", err)
}

func parseID(arg string) (int, error) {
	arg = strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an id", apperrors.ErrInvalidInput, arg)
	}
	return id, nil
}

// splitTitle splits "<title> | <description>".
func splitTitle(s string) (string, string) {
	title, description, _ := strings.Cut(s, "|")
	return strings.TrimSpace(title), strings.TrimSpace(description)
}
