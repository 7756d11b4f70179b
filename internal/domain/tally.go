package domain

import (
	"math"
	"sort"
)

type Share struct {
	Nomination Nomination
	Percent    int
}

func TotalVotes(nominations []Nomination) int64 {
	var total int64
	for _, nomination := range nominations {
		if nomination.Votes > 0 {
			total += nomination.Votes
		}
	}
	return total
}

// Percentage rounds each share independently, so a tally may not sum to 100.
func Percentage(votes, total int64) int {
	if total <= 0 || votes <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(votes) / float64(total)))
}

func Tally(nominations []Nomination) []Share {
	total := TotalVotes(nominations)
	shares := make([]Share, 0, len(nominations))
	for _, nomination := range nominations {
		shares = append(shares, Share{
			Nomination: nomination,
			Percent:    Percentage(nomination.Votes, total),
		})
	}
	return shares
}

// Ranked orders shares by votes, highest first, keeping service order on ties.
func Ranked(shares []Share) []Share {
	ranked := make([]Share, len(shares))
	copy(ranked, shares)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Nomination.Votes > ranked[j].Nomination.Votes
	})
	return ranked
}
