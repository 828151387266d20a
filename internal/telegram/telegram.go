package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendPhotoByURL(chatID int64, url, caption string) (int, error)
	// SendConfirmation sends text with Yes/No inline buttons carrying the
	// given callback data.
	SendConfirmation(chatID int64, text, yesData, noData string) (int, error)
	EditMessageText(chatID int64, messageID int, text string) error
	AnswerCallback(callbackID, text string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)

	SendMessageToOwner(text string) error
	SendPhotoToOwnerByURL(url, caption string) error
}
