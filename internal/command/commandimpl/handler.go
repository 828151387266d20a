package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = `👋 Welcome to the media share bot!

ACCOUNT:
/login <username> <password> - Log in.
/register <username> <password> <email> [full name] - Create an account.
/checkusername <username> - Check whether a username is free.
/logout - Log out.
/me - Show your profile.
/profile <username|email|password|fullname> <value> - Change your profile.

BROWSING:
/feed - Newest uploads.
/myfiles - Your own uploads.
/likes - Files you like.
/show <id> - Show a file with its likes and comments.
/comments <id> - List the comments of a file.

ACTIONS:
/like <id>, /unlike <id> - Like or unlike a file.
/comment <id> <text> - Comment on a file.
/uncomment <comment id> - Delete one of your comments.
/edit <id> <title> | <description> - Change a file you own.
/delete <id> - Delete a file you own.

UPLOADING:
Send a photo or a file with the caption "<title> | <description>".
Send a picture with the caption "#avatar" to change your avatar.

Type /help at any time to see this guide.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()
				c.handleUpdate(ctx, u)
			}(update)
		}
	}
}

func (c *CommandImpl) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		c.handleCallback(ctx, update.CallbackQuery)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	if !c.isOwner(msg.From) {
		c.Logger.Warn("Ignoring message from a stranger", "chat_id", chatID)
		c.reply(chatID, "Sorry, this bot is private.")
		return
	}
	if !c.Limiter.Allow(chatID) {
		c.reply(chatID, "⏳ Too many requests, please slow down.")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	switch {
	case msg.IsCommand():
		// Arguments may hold a password, so only the command is logged.
		c.Logger.Info("Command received", "chat_id", chatID, "command", msg.Command())
		if err := c.processCommand(ctx, update); err != nil {
			c.Logger.Error("Error processing command",
				"command", msg.Command(),
				"error", err)
			c.replyError(chatID, err)
		}
	case len(msg.Photo) > 0 || msg.Document != nil:
		if err := c.handleUpload(ctx, msg); err != nil {
			c.Logger.Error("Error processing upload", "error", err)
			c.replyError(chatID, err)
		}
	default:
		c.reply(chatID, "Type /help to see what I can do.")
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	command := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID

	switch command {
	case "start", "help":
		c.reply(chatID, helpMessage)
		return nil
	case "login":
		return c.handleLogin(ctx, chatID, args)
	case "register":
		return c.handleRegister(ctx, chatID, args)
	case "checkusername":
		return c.handleCheckUsername(ctx, chatID, args)
	case "logout":
		return c.handleLogout(ctx, chatID)
	case "me":
		return c.handleMe(ctx, chatID)
	case "profile":
		return c.handleProfile(ctx, chatID, args)
	case "feed":
		return c.handleFeed(ctx, chatID, false)
	case "myfiles":
		return c.handleFeed(ctx, chatID, true)
	case "likes":
		return c.handleLikes(ctx, chatID)
	case "show":
		return c.handleShow(ctx, chatID, args)
	case "like":
		return c.handleLike(ctx, chatID, args, true)
	case "unlike":
		return c.handleLike(ctx, chatID, args, false)
	case "comments":
		return c.handleComments(ctx, chatID, args)
	case "comment":
		return c.handleAddComment(ctx, chatID, args)
	case "uncomment":
		return c.handleDeleteComment(ctx, chatID, args)
	case "edit":
		return c.handleEdit(ctx, chatID, args)
	case "delete":
		return c.handleDelete(ctx, chatID, args)
	default:
		c.reply(chatID, "Unknown command. Type /help to see the list of available commands.")
		return nil
	}
}

// isOwner reports whether the sender is the configured owner. An unset
// owner admits nobody.
func (c *CommandImpl) isOwner(from *tgbotapi.User) bool {
	owner := c.Config.Telegram.User
	return owner != 0 && from != nil && from.ID == owner
}
