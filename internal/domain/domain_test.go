package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyScenarioTwoNominations(t *testing.T) {
	t.Parallel()

	shares := Tally([]Nomination{{ID: 1, Votes: 10}, {ID: 2, Votes: 30}})

	require.Len(t, shares, 2)
	assert.Equal(t, 25, shares[0].Percent)
	assert.Equal(t, 75, shares[1].Percent)
	assert.Equal(t, int64(40), TotalVotes([]Nomination{{ID: 1, Votes: 10}, {ID: 2, Votes: 30}}))
}

func TestTallyEmptyListHasZeroTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), TotalVotes(nil))
	assert.Empty(t, Tally(nil))
}

func TestTallyZeroVotesRendersZeroPercent(t *testing.T) {
	t.Parallel()

	shares := Tally([]Nomination{{ID: 1}, {ID: 2}, {ID: 3}})
	for _, share := range shares {
		assert.Equal(t, 0, share.Percent)
	}
}

func TestPercentageRoundsIndependently(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		votes int64
		total int64
		want  int
	}{
		{name: "third rounds down", votes: 1, total: 3, want: 33},
		{name: "two thirds rounds up", votes: 2, total: 3, want: 67},
		{name: "half rounds away from zero", votes: 1, total: 200, want: 1},
		{name: "all votes", votes: 7, total: 7, want: 100},
		{name: "zero total", votes: 0, total: 0, want: 0},
		{name: "negative votes", votes: -3, total: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.votes, tt.total))
		})
	}
}

func TestTallyThreeWaySplitNeedNotSumToHundred(t *testing.T) {
	t.Parallel()

	shares := Tally([]Nomination{{ID: 1, Votes: 1}, {ID: 2, Votes: 1}, {ID: 3, Votes: 1}})
	sum := 0
	for _, share := range shares {
		assert.Equal(t, 33, share.Percent)
		sum += share.Percent
	}
	assert.Equal(t, 99, sum)
}

func TestRankedOrdersByVotesAndKeepsTies(t *testing.T) {
	t.Parallel()

	ranked := Ranked(Tally([]Nomination{
		{ID: 1, Votes: 5},
		{ID: 2, Votes: 9},
		{ID: 3, Votes: 5},
	}))

	ids := make([]NominationID, 0, len(ranked))
	for _, share := range ranked {
		ids = append(ids, share.Nomination.ID)
	}
	assert.Equal(t, []NominationID{2, 1, 3}, ids)
}

func TestSessionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Session{ID: 7, Token: "tok"}.Valid())
	assert.False(t, Session{ID: 0, Token: "tok"}.Valid())
	assert.False(t, Session{ID: 7, Token: "  "}.Valid())
	assert.Equal(t, "Voter", Session{}.DisplayName())
}

func TestNominationDisplayTitleFallsBackToSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Best Stream", Nomination{Title: "Best Stream", Slug: "best-stream"}.DisplayTitle())
	assert.Equal(t, "best-stream", Nomination{Slug: "best-stream"}.DisplayTitle())
	assert.Equal(t, "Untitled nomination", Nomination{}.DisplayTitle())
}

func TestPageStateTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from PageState
		to   PageState
		ok   bool
	}{
		{name: "anonymous to redirecting", from: StateAnonymous, to: StateRedirecting, ok: true},
		{name: "anonymous cannot submit", from: StateAnonymous, to: StateSubmitting, ok: false},
		{name: "redirecting cannot submit", from: StateRedirecting, to: StateSubmitting, ok: false},
		{name: "ready to submitting", from: StateReady, to: StateSubmitting, ok: true},
		{name: "submitting back to ready", from: StateSubmitting, to: StateReady, ok: true},
		{name: "submitting cannot logout", from: StateSubmitting, to: StateAnonymous, ok: false},
		{name: "ready to anonymous", from: StateReady, to: StateAnonymous, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.from.Transition(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, next)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, next)
		})
	}
}

func TestPageStateFlags(t *testing.T) {
	t.Parallel()

	assert.False(t, StateAnonymous.Authenticated())
	assert.False(t, StateRedirecting.Busy())
	assert.True(t, StateSubmitting.Authenticated())
	assert.True(t, StateSubmitting.Busy())
	assert.Equal(t, "state(9)", PageState(9).String())
}

func TestVoteRejectedErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "vote rejected: status 500", (&VoteRejectedError{Status: 500}).Error())
	assert.Equal(t, "vote rejected: status 403: voting closed", (&VoteRejectedError{Status: 403, Message: "voting closed"}).Error())
}
