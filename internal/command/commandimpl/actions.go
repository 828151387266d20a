package commandimpl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/domain"
)

const (
	callbackDelete = "delete"
	answerYes      = "yes"
	answerNo       = "no"
)

func (c *CommandImpl) handleLike(ctx context.Context, chatID int64, args string, like bool) error {
	fileID, err := parseID(args)
	if err != nil {
		return err
	}

	var state card.LikeState
	if like {
		state, err = c.Cards.Like(ctx, fileID)
	} else {
		state, err = c.Cards.Unlike(ctx, fileID)
	}
	if err != nil {
		return err
	}

	verb := "Liked"
	if !like {
		verb = "Unliked"
	}
	c.reply(chatID, fmt.Sprintf("%s #%d. It has %d like(s) now.", verb, fileID, state.Likes))
	return nil
}

func (c *CommandImpl) handleAddComment(ctx context.Context, chatID int64, args string) error {
	idArg, text, _ := strings.Cut(strings.TrimSpace(args), " ")
	if idArg == "" || strings.TrimSpace(text) == "" {
		c.reply(chatID, "Usage: /comment <id> <text>")
		return nil
	}
	fileID, err := parseID(idArg)
	if err != nil {
		return err
	}

	res, err := c.Cards.AddComment(ctx, fileID, text)
	if err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("💬 Comment [%d] added to #%d.", res.CommentID, fileID))
	return nil
}

func (c *CommandImpl) handleDeleteComment(ctx context.Context, chatID int64, args string) error {
	commentID, err := parseID(args)
	if err != nil {
		return err
	}
	if _, err := c.Cards.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("Comment [%d] deleted.", commentID))
	return nil
}

func (c *CommandImpl) handleEdit(ctx context.Context, chatID int64, args string) error {
	idArg, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	title, description := splitTitle(rest)
	if idArg == "" || (title == "" && description == "") {
		c.reply(chatID, "Usage: /edit <id> <title> | <description>")
		return nil
	}
	fileID, err := parseID(idArg)
	if err != nil {
		return err
	}

	if _, err := c.Uploads.Modify(ctx, fileID, domain.MediaUpdate{Title: title, Description: description}); err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("✏️ #%d updated.", fileID))
	return nil
}

// handleDelete asks for confirmation; the callback does the work.
func (c *CommandImpl) handleDelete(ctx context.Context, chatID int64, args string) error {
	fileID, err := parseID(args)
	if err != nil {
		return err
	}
	if _, err := c.Session.RequireUser(); err != nil {
		return err
	}

	_, err = c.Telegram.SendConfirmation(chatID,
		fmt.Sprintf("Delete #%d? This cannot be undone.", fileID),
		callbackData(callbackDelete, answerYes, fileID),
		callbackData(callbackDelete, answerNo, fileID),
	)
	return err
}

func callbackData(action, answer string, id int) string {
	return action + ":" + answer + ":" + strconv.Itoa(id)
}

func parseCallbackData(data string) (action, answer string, id int, ok bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return "", "", 0, false
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, false
	}
	return parts[0], parts[1], id, true
}

func (c *CommandImpl) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil {
		return
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if !c.isOwner(query.From) {
		c.answer(query.ID, "Sorry, this bot is private.")
		return
	}

	action, answer, id, ok := parseCallbackData(query.Data)
	if !ok || action != callbackDelete {
		c.Logger.Warn("Unknown callback data", "data", query.Data)
		c.answer(query.ID, "")
		return
	}
	c.answer(query.ID, "")

	if answer != answerYes {
		c.edit(chatID, messageID, fmt.Sprintf("Kept #%d.", id))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if _, err := c.Cards.Delete(ctx, id); err != nil {
		c.Logger.Error("Failed to delete file", "file_id", id, "error", err)
		c.edit(chatID, messageID, userMessage(err))
		return
	}
	c.edit(chatID, messageID, fmt.Sprintf("🗑 #%d deleted.", id))
}

func (c *CommandImpl) answer(callbackID, text string) {
	if err := c.Telegram.AnswerCallback(callbackID, text); err != nil {
		c.Logger.Warn("Failed to answer callback", "error", err)
	}
}

func (c *CommandImpl) edit(chatID int64, messageID int, text string) {
	if err := c.Telegram.EditMessageText(chatID, messageID, text); err != nil {
		c.Logger.Warn("Failed to edit message", "chat_id", chatID, "error", err)
	}
}
