package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
)

type VoteOutcome string

const (
	VoteAccepted    VoteOutcome = "accepted"
	VoteDuplicate   VoteOutcome = "duplicate"
	VoteRejected    VoteOutcome = "rejected"
	VoteUnreachable VoteOutcome = "unreachable"
)

type VoteResult struct {
	Nomination domain.NominationID
	Outcome    VoteOutcome
	Message    string
}

// Snapshot is a copy of the page state safe to hand to renderers.
type Snapshot struct {
	State       domain.PageState
	Session     *domain.Session
	Nominations []domain.Nomination
	Shares      []domain.Share
	TotalVotes  int64
}

// Page holds the voting page: the remembered session, the nomination list
// and the vote interaction. The list is only ever replaced by a successful
// fetch.
type Page struct {
	api      ports.NominationsAPI
	sessions ports.SessionStore
	notifier ports.Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	state       domain.PageState
	session     domain.Session
	nominations []domain.Nomination
}

func NewPage(api ports.NominationsAPI, sessions ports.SessionStore, notifier ports.Notifier, logger *slog.Logger) *Page {
	if notifier == nil {
		notifier = discardNotifier{}
	}

	return &Page{
		api:         api,
		sessions:    sessions,
		notifier:    notifier,
		logger:      resolveLogger(logger),
		state:       domain.StateAnonymous,
		nominations: []domain.Nomination{},
	}
}

// Init restores the remembered session, then loads the nominations.
func (p *Page) Init(ctx context.Context) {
	p.RestoreSession(ctx)
	p.LoadNominations(ctx)
}

// RestoreSession reports whether a usable session was found. Absent or
// malformed records leave the page anonymous without surfacing an error.
func (p *Page) RestoreSession(ctx context.Context) bool {
	session, err := p.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			p.logger.Debug("ignoring persisted session", "error", err)
		}
		return false
	}
	if !session.Valid() {
		p.logger.Debug("ignoring persisted session", "error", domain.ErrMalformedSession)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Busy() {
		p.logger.Debug("session restore skipped", "error", domain.ErrVoteInProgress)
		return false
	}
	next, err := p.state.Transition(domain.StateReady)
	if err != nil {
		p.logger.Debug("session restore skipped", "error", err)
		return false
	}
	p.state = next
	p.session = session
	p.logger.Debug("session restored", "voter_id", int64(session.ID))

	return true
}

// LoadNominations is a best-effort refresh: on failure the previous list is
// kept and the error is only logged.
func (p *Page) LoadNominations(ctx context.Context) {
	nominations, err := p.api.List(ctx)
	if err != nil {
		p.mu.Lock()
		kept := len(p.nominations)
		p.mu.Unlock()
		p.logger.Warn("refresh nominations failed, keeping previous list", "error", err, "kept", kept)
		return
	}
	if nominations == nil {
		nominations = []domain.Nomination{}
	}

	p.mu.Lock()
	p.nominations = nominations
	p.mu.Unlock()

	p.logger.Debug("nominations loaded", "count", len(nominations))
}

// Vote submits a vote for id on behalf of the current session. Without a
// session nothing is sent, the page moves to StateRedirecting and
// domain.ErrAuthRequired is returned so the caller can start the login flow.
func (p *Page) Vote(ctx context.Context, id domain.NominationID) (VoteResult, error) {
	p.mu.Lock()
	if !p.state.Authenticated() {
		if p.state == domain.StateAnonymous {
			p.state = domain.StateRedirecting
		}
		p.mu.Unlock()
		return VoteResult{}, domain.ErrAuthRequired
	}
	if p.state.Busy() {
		p.mu.Unlock()
		return VoteResult{}, domain.ErrVoteInProgress
	}
	p.state = domain.StateSubmitting
	voter := p.session
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.state == domain.StateSubmitting {
			p.state = domain.StateReady
		}
		p.mu.Unlock()
	}()

	result := p.classify(id, p.api.Vote(ctx, voter, id))

	switch result.Outcome {
	case VoteAccepted:
		p.notifier.Success(result.Message)
		p.LoadNominations(ctx)
	case VoteDuplicate:
		p.notifier.Warn(result.Message)
	default:
		p.notifier.Error(result.Message)
	}

	return result, nil
}

func (p *Page) classify(id domain.NominationID, err error) VoteResult {
	result := VoteResult{Nomination: id}

	var rejected *domain.VoteRejectedError
	switch {
	case err == nil:
		result.Outcome = VoteAccepted
		result.Message = MessageVoteAccepted
	case errors.Is(err, domain.ErrAlreadyVoted):
		result.Outcome = VoteDuplicate
		result.Message = MessageAlreadyVoted
	case errors.As(err, &rejected):
		result.Outcome = VoteRejected
		result.Message = MessageVoteFailed
		if rejected.Message != "" {
			result.Message = rejected.Message
		}
		p.logger.Warn("vote rejected", "nomination_id", int64(id), "status", rejected.Status)
	default:
		result.Outcome = VoteUnreachable
		result.Message = MessageTryLater
		p.logger.Warn("vote request failed", "nomination_id", int64(id), "error", err)
	}

	return result
}

// BeginLogin marks that the login flow is being shown. An authenticated
// page stays authenticated until CompleteLogin replaces the session.
func (p *Page) BeginLogin() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case domain.StateSubmitting:
		return domain.ErrVoteInProgress
	case domain.StateAnonymous:
		p.state = domain.StateRedirecting
	}

	return nil
}

// CancelLogin returns a page that was redirecting to the anonymous state.
func (p *Page) CancelLogin() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == domain.StateRedirecting {
		p.state = domain.StateAnonymous
	}
}

// CompleteLogin persists a session produced by the provider callback.
func (p *Page) CompleteLogin(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return fmt.Errorf("%w: voter id and token are required", domain.ErrMalformedSession)
	}

	p.mu.Lock()
	if p.state.Busy() {
		p.mu.Unlock()
		return domain.ErrVoteInProgress
	}
	p.mu.Unlock()

	if err := p.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = session
	// A vote that started during Save keeps the page busy; it returns to
	// Ready when it finishes.
	if !p.state.Busy() {
		p.state = domain.StateReady
	}

	return nil
}

// Logout forgets the session both on disk and in memory. The page is
// anonymous before the record is cleared, so no vote can start meanwhile.
// If clearing fails the previous session comes back.
func (p *Page) Logout(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Busy() {
		p.mu.Unlock()
		return domain.ErrVoteInProgress
	}
	previousState, previousSession := p.state, p.session
	p.state = domain.StateAnonymous
	p.session = domain.Session{}
	p.mu.Unlock()

	if err := p.sessions.Clear(ctx); err != nil {
		p.mu.Lock()
		if p.state == domain.StateAnonymous {
			p.state, p.session = previousState, previousSession
		}
		p.mu.Unlock()
		return fmt.Errorf("clear session: %w", err)
	}

	p.notifier.Success(MessageLoggedOut)
	return nil
}

func (p *Page) State() domain.PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page) Session() (domain.Session, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, p.state.Authenticated()
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	nominations := make([]domain.Nomination, len(p.nominations))
	copy(nominations, p.nominations)

	snapshot := Snapshot{
		State:       p.state,
		Nominations: nominations,
		Shares:      domain.Tally(nominations),
		TotalVotes:  domain.TotalVotes(nominations),
	}
	if p.state.Authenticated() {
		session := p.session
		snapshot.Session = &session
	}

	return snapshot
}
