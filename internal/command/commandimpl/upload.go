package commandimpl

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/media-share-bot/internal/domain"
)

const avatarCaption = "#avatar"

// handleUpload posts a photo or document sent to the bot. The caption is
// "<title> | <description>", or "#avatar" for a new avatar.
func (c *CommandImpl) handleUpload(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	if _, err := c.Session.RequireUser(); err != nil {
		return err
	}

	fileID, filename := attachment(msg)
	caption := strings.TrimSpace(msg.Caption)
	isAvatar := strings.EqualFold(caption, avatarCaption)

	title, description := splitTitle(caption)
	if !isAvatar && title == "" {
		c.reply(chatID, `Add a caption: "<title> | <description>", or "#avatar" for a new avatar.`)
		return nil
	}

	progressID := c.reply(chatID, "⏳ Uploading...")

	data, err := c.Telegram.DownloadFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to download attachment: %w", err)
	}

	up := domain.Upload{
		Title:       title,
		Description: description,
		Filename:    filename,
		Data:        data,
	}

	var res *domain.MutationResult
	if isAvatar {
		up.Title, up.Description = "", ""
		res, err = c.Uploads.SetAvatar(ctx, up)
	} else {
		res, err = c.Uploads.Upload(ctx, up)
	}
	if err != nil {
		if progressID != 0 {
			c.edit(chatID, progressID, userMessage(err))
			return nil
		}
		return err
	}

	text := fmt.Sprintf("✅ Uploaded as #%d.", res.FileID)
	if isAvatar {
		text = "✅ Avatar updated."
	}
	if progressID != 0 {
		c.edit(chatID, progressID, text)
	} else {
		c.reply(chatID, text)
	}
	return nil
}

// attachment picks the largest photo size, or the document.
func attachment(msg *tgbotapi.Message) (fileID, filename string) {
	if msg.Document != nil {
		name := msg.Document.FileName
		if name == "" {
			name = msg.Document.FileUniqueID
		}
		return msg.Document.FileID, name
	}
	photo := msg.Photo[len(msg.Photo)-1]
	return photo.FileID, photo.FileUniqueID + ".jpg"
}
