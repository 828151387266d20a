package token

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/media-share-bot/internal/repositories"
	"github.com/orgball2608/media-share-bot/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("TokenRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Get(ctx context.Context, key string) (string, error) {
	query, args, err := repositories.SqBuilder.
		Select("token").
		From("auth_tokens").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", repositories.ErrBadQuery
	}

	var token string
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&token); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return token, nil
}

func (p *Pgx) Save(ctx context.Context, key, token string) error {
	query, args, err := repositories.SqBuilder.
		Insert("auth_tokens").
		Columns("key", "token", "updated_at").
		Values(key, token, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET token = EXCLUDED.token, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return err
	}
	p.logger.Debug("Token saved", "key", key)
	return nil
}

// Delete is a no-op for a missing key.
func (p *Pgx) Delete(ctx context.Context, key string) error {
	query, args, err := repositories.SqBuilder.
		Delete("auth_tokens").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}
