package ports

import (
	"context"

	"github.com/bnema/awards-vote-cli/internal/domain"
)

// NominationsAPI is the remote vote-counting service.
//
// Vote returns nil on success, domain.ErrAlreadyVoted on a duplicate,
// *domain.VoteRejectedError for other statuses and an error wrapping
// domain.ErrVoteUnreachable when the request never completed.
type NominationsAPI interface {
	List(ctx context.Context) ([]domain.Nomination, error)
	Vote(ctx context.Context, voter domain.Session, id domain.NominationID) error
}
