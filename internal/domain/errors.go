package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSecretNotFound    = errors.New("secret not found")
	ErrAuthRequired      = errors.New("login required to vote")
	ErrVoteInProgress    = errors.New("a vote is already being submitted")
	ErrAlreadyVoted      = errors.New("already voted for this nomination")
	ErrVoteUnreachable   = errors.New("vote service unreachable")
	ErrInvalidTransition = errors.New("invalid page state transition")
	ErrMalformedSession  = errors.New("malformed session record")
)

// VoteRejectedError is any non-success, non-conflict answer from the vote service.
type VoteRejectedError struct {
	Status  int
	Message string
}

func (e *VoteRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vote rejected: status %d", e.Status)
	}
	return fmt.Sprintf("vote rejected: status %d: %s", e.Status, e.Message)
}
