package domain

import "strings"

type NominationID int64

type Nomination struct {
	ID          NominationID
	Slug        string
	Title       string
	Description string
	Icon        string
	Color       string
	Votes       int64
}

// DisplayTitle falls back to the slug when the service omits a title.
func (n Nomination) DisplayTitle() string {
	if title := strings.TrimSpace(n.Title); title != "" {
		return title
	}
	if slug := strings.TrimSpace(n.Slug); slug != "" {
		return slug
	}
	return "Untitled nomination"
}

func FindNomination(nominations []Nomination, id NominationID) (Nomination, bool) {
	for _, nomination := range nominations {
		if nomination.ID == id {
			return nomination, true
		}
	}
	return Nomination{}, false
}
