package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
)

// Contest serves the participants section and the registration form.
type Contest struct {
	api      ports.NominationsAPI
	roster   ports.Roster
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewContest(api ports.NominationsAPI, roster ports.Roster, notifier ports.Notifier, logger *slog.Logger) *Contest {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Contest{api: api, roster: roster, notifier: notifier, logger: resolveLogger(logger)}
}

// Participants returns the roster ranked by votes.
func (c *Contest) Participants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := c.roster.Participants(ctx)
	if err != nil {
		c.logger.Warn("load participants", "error", err)
		return nil, fmt.Errorf("load participants: %w", err)
	}
	return domain.RankParticipants(participants), nil
}

// Register validates an application against the current nominations and
// confirms it to the user. Nothing is sent to the vote service.
func (c *Contest) Register(ctx context.Context, reg domain.Registration) (domain.Nomination, error) {
	nominations, err := c.api.List(ctx)
	if err != nil {
		c.logger.Warn("load nominations for registration", "error", err)
		c.notifier.Error(MessageTryLater)
		return domain.Nomination{}, fmt.Errorf("load nominations: %w", err)
	}

	nomination, err := reg.Validate(nominations)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistration) {
			c.notifier.Warn(MessageApplicationBad)
		}
		return domain.Nomination{}, err
	}

	c.logger.Info("registration accepted", "nomination", nomination.ID)
	c.notifier.Success(MessageApplicationSent)
	return nomination, nil
}
