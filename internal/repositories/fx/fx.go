package fx

import (
	"github.com/orgball2608/media-share-bot/internal/repositories/seenmedia"
	"github.com/orgball2608/media-share-bot/internal/repositories/token"
	"go.uber.org/fx"
)

var Module = fx.Options(
	token.Module,
	seenmedia.Module,
)
