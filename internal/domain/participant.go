package domain

import (
	"cmp"
	"slices"
	"strings"
)

// PodiumSize is how many leading participants get a TOP badge.
const PodiumSize = 3

type Participant struct {
	ID       int64
	Name     string
	Category string
	Avatar   string
	Votes    int64
	// Nomination is the slug of the nomination the participant runs in.
	Nomination string
}

// RankParticipants orders by votes, highest first. Ties keep roster order.
func RankParticipants(participants []Participant) []Participant {
	ranked := slices.Clone(participants)
	slices.SortStableFunc(ranked, func(a, b Participant) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
	return ranked
}

// Podium returns the 1-based TOP place of the participant at index i in a
// ranked list, or zero when it is off the podium.
func Podium(i int) int {
	if i < 0 || i >= PodiumSize {
		return 0
	}
	return i + 1
}

func (p Participant) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return "Anonymous participant"
}
