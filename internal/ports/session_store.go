package ports

import (
	"context"

	"github.com/bnema/awards-vote-cli/internal/domain"
)

type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
