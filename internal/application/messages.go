package application

import "github.com/bnema/awards-vote-cli/internal/ports"

const (
	MessageVoteAccepted = "Your vote has been counted!"
	MessageAlreadyVoted = "You have already voted for this nomination."
	MessageVoteFailed   = "Could not record your vote."
	MessageTryLater     = "Something went wrong, please try again later."
	MessageLoggedOut    = "You have been logged out."

	MessageApplicationSent = "Application submitted! We will contact you soon."
	MessageApplicationBad  = "Please check the registration form."
)

type discardNotifier struct{}

var _ ports.Notifier = discardNotifier{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Warn(string)    {}
func (discardNotifier) Error(string)   {}
