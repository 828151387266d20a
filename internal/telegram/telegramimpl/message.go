package telegramimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/media-share-bot/pkg/formatter"
	"github.com/orgball2608/media-share-bot/pkg/logger"
)

const (
	maxCaptionLength = 1024
	maxMessageLength = 4096
	downloadTimeout  = 30 * time.Second
)

func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}

// SendMessage sends a message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, formatter.Truncate(text, maxMessageLength))
	msg.DisableWebPagePreview = true
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Debug("Message sent",
		"chatID", chatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}

// SendPhotoByURL lets Telegram fetch the picture itself.
func (tg *TelegramImpl) SendPhotoByURL(chatID int64, url, caption string) (int, error) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
	photo.Caption = formatter.Truncate(caption, maxCaptionLength)

	sentMsg, err := tg.TgBot.Send(photo)
	if err != nil {
		tg.Logger.Error("Error sending photo",
			"chatID", chatID,
			"url", url,
			"error", err)
		return 0, fmt.Errorf("failed to send photo: %w", err)
	}
	return sentMsg.MessageID, nil
}

func (tg *TelegramImpl) SendConfirmation(chatID int64, text, yesData, noData string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", yesData),
			tgbotapi.NewInlineKeyboardButtonData("No", noData),
		),
	)

	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending confirmation",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send confirmation: %w", err)
	}
	return sentMsg.MessageID, nil
}

// EditMessageText replaces the text of a message; any inline keyboard is dropped.
func (tg *TelegramImpl) EditMessageText(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, formatter.Truncate(text, maxMessageLength))
	if _, err := tg.TgBot.Send(edit); err != nil {
		tg.Logger.Error("Error editing message",
			"chatID", chatID,
			"messageID", messageID,
			"error", err)
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

func (tg *TelegramImpl) AnswerCallback(callbackID, text string) error {
	if _, err := tg.TgBot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		tg.Logger.Error("Error answering callback", "callbackID", callbackID, "error", err)
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

// DownloadFile fetches a file a user sent to the bot.
func (tg *TelegramImpl) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := tg.TgBot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer safeClose(resp.Body, tg.Logger)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download file %s: %s", fileID, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", fileID)
	}
	return data, nil
}

// SendMessageToOwner sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToOwner(text string) error {
	_, err := tg.SendMessage(tg.Config.Telegram.User, text)
	return err
}

func (tg *TelegramImpl) SendPhotoToOwnerByURL(url, caption string) error {
	_, err := tg.SendPhotoByURL(tg.Config.Telegram.User, url, caption)
	return err
}

// safeClose safely closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, logger logger.Logger) {
	if err := closer.Close(); err != nil {
		logger.Error("Error closing response body", "error", err)
	}
}
