package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

// SqBuilder builds Postgres statements ($1 placeholders).
var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// UniqueViolation is the Postgres SQLSTATE for a duplicate key.
const UniqueViolation = "23505"
