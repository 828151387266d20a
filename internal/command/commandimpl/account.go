package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/pkg/formatter"
)

func (c *CommandImpl) handleLogin(ctx context.Context, chatID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		c.reply(chatID, "Usage: /login <username> <password>")
		return nil
	}

	user, err := c.Session.Login(ctx, domain.Credentials{Username: fields[0], Password: fields[1]})
	if err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("✅ Welcome, %s!", user.Username))
	return nil
}

func (c *CommandImpl) handleRegister(ctx context.Context, chatID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		c.reply(chatID, "Usage: /register <username> <password> <email> [full name]")
		return nil
	}

	res, err := c.Accounts.Register(ctx, domain.NewUser{
		Username: fields[0],
		Password: fields[1],
		Email:    fields[2],
		FullName: strings.Join(fields[3:], " "),
	})
	if err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("✅ %s. You can /login now.", strings.TrimSuffix(res.Message, ".")))
	return nil
}

func (c *CommandImpl) handleCheckUsername(ctx context.Context, chatID int64, args string) error {
	username := strings.TrimSpace(args)
	if username == "" {
		c.reply(chatID, "Usage: /checkusername <username>")
		return nil
	}

	available, err := c.Accounts.CheckUsername(ctx, username)
	if err != nil {
		return err
	}
	if available {
		c.reply(chatID, fmt.Sprintf("✅ %s is available.", username))
	} else {
		c.reply(chatID, fmt.Sprintf("❌ %s is already taken.", username))
	}
	return nil
}

func (c *CommandImpl) handleLogout(ctx context.Context, chatID int64) error {
	if !c.Session.IsLoggedIn() {
		c.reply(chatID, "You are not logged in.")
		return nil
	}
	if err := c.Session.Logout(ctx); err != nil {
		return err
	}
	c.reply(chatID, "👋 Logged out.")
	return nil
}

func (c *CommandImpl) handleMe(ctx context.Context, chatID int64) error {
	user, err := c.Session.RequireUser()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s (#%d)\n", user.Username, user.UserID)
	if user.FullName != "" {
		fmt.Fprintf(&b, "Name: %s\n", user.FullName)
	}
	if user.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", user.Email)
	}
	if joined := formatter.FormatTime(user.TimeCreated, c.location); joined != "" {
		fmt.Fprintf(&b, "Joined: %s\n", joined)
	}

	if avatar := c.Cards.Avatar(ctx, user.UserID); avatar != "" {
		if _, err := c.Telegram.SendPhotoByURL(chatID, avatar, b.String()); err == nil {
			return nil
		}
		c.Logger.Warn("Failed to send avatar, sending text", "user_id", user.UserID)
	}
	c.reply(chatID, b.String())
	return nil
}

func (c *CommandImpl) handleProfile(ctx context.Context, chatID int64, args string) error {
	field, value, _ := strings.Cut(strings.TrimSpace(args), " ")
	value = strings.TrimSpace(value)
	if field == "" || value == "" {
		c.reply(chatID, "Usage: /profile <username|email|password|fullname> <value>")
		return nil
	}

	var update domain.UserUpdate
	switch strings.ToLower(field) {
	case "username":
		update.Username = value
	case "email":
		update.Email = value
	case "password":
		update.Password = value
	case "fullname", "full_name", "name":
		update.FullName = value
	default:
		c.reply(chatID, fmt.Sprintf("Unknown profile field %q.", field))
		return nil
	}

	user, err := c.Accounts.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	c.reply(chatID, fmt.Sprintf("✅ Profile of %s updated.", user.Username))
	return nil
}
