package ports

import (
	"context"

	"github.com/bnema/awards-vote-cli/internal/domain"
)

// Roster lists the participants running in the awards.
type Roster interface {
	Participants(ctx context.Context) ([]domain.Participant, error)
}
