package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/pkg/formatter"
)

const maxListed = 30

func (c *CommandImpl) handleFeed(ctx context.Context, chatID int64, myFilesOnly bool) error {
	f := c.Feeds.Home
	header := "🖼 Newest uploads"
	if myFilesOnly {
		if _, err := c.Session.RequireUser(); err != nil {
			return err
		}
		f = c.Feeds.Mine
		header = "🗂 Your uploads"
	}

	items, err := f.Get(ctx)
	if err != nil {
		return err
	}
	c.reply(chatID, c.mediaList(header, items))
	return nil
}

func (c *CommandImpl) handleLikes(ctx context.Context, chatID int64) error {
	items, err := c.Cards.Favourites(ctx)
	if err != nil {
		return err
	}
	c.reply(chatID, c.mediaList("❤️ Files you like", items))
	return nil
}

func (c *CommandImpl) mediaList(header string, items []domain.Media) string {
	if len(items) == 0 {
		return header + ": nothing here yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s):\n", header, formatter.FormatNumber(len(items)))
	for i, m := range items {
		if i == maxListed {
			fmt.Fprintf(&b, "…and %d more.\n", len(items)-maxListed)
			break
		}
		fmt.Fprintf(&b, "#%d %s", m.FileID, formatter.Truncate(m.Title, 60))
		if added := formatter.FormatTime(m.TimeAdded, c.location); added != "" {
			fmt.Fprintf(&b, " · %s", added)
		}
		b.WriteString("\n")
	}
	b.WriteString("Use /show <id> to open one.")
	return b.String()
}

func (c *CommandImpl) handleShow(ctx context.Context, chatID int64, args string) error {
	fileID, err := parseID(args)
	if err != nil {
		return err
	}

	cd, err := c.Cards.Show(ctx, fileID)
	if err != nil {
		return err
	}

	caption := c.cardCaption(cd)
	if url := c.Cards.FileURL(cd.Media.Preview()); url != "" {
		if _, err := c.Telegram.SendPhotoByURL(chatID, url, caption); err == nil {
			return nil
		}
		c.Logger.Warn("Failed to send preview, sending text", "file_id", fileID)
		caption += "\n" + c.Cards.FileURL(cd.Media.Filename)
	}
	c.reply(chatID, caption)
	return nil
}

func (c *CommandImpl) cardCaption(cd *card.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", cd.Media.FileID, cd.Media.Title)
	if cd.Media.Description != "" {
		b.WriteString(formatter.Truncate(cd.Media.Description, 500))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "By %s", cd.Owner.Username)
	if added := formatter.FormatTime(cd.Media.TimeAdded, c.location); added != "" {
		fmt.Fprintf(&b, " · %s", added)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "❤️ %s", formatter.FormatNumber(len(cd.Likes)))
	if cd.UserLikesIt {
		b.WriteString(" (you like this)")
	}
	fmt.Fprintf(&b, " · 💬 %s", formatter.FormatNumber(len(cd.Comments)))
	if cd.IsOwner {
		b.WriteString("\nYours: /edit or /delete it.")
	}
	return b.String()
}

func (c *CommandImpl) handleComments(ctx context.Context, chatID int64, args string) error {
	fileID, err := parseID(args)
	if err != nil {
		return err
	}

	comments, err := c.Cards.Comments(ctx, fileID)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		c.reply(chatID, fmt.Sprintf("No comments on #%d yet.", fileID))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💬 Comments on #%d:\n", fileID)
	for _, cm := range comments {
		fmt.Fprintf(&b, "[%d] user #%d", cm.CommentID, cm.UserID)
		if added := formatter.FormatTime(cm.TimeAdded, c.location); added != "" {
			fmt.Fprintf(&b, " · %s", added)
		}
		fmt.Fprintf(&b, "\n%s\n", cm.Comment)
	}
	c.reply(chatID, b.String())
	return nil
}
