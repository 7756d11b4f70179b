package domain

import "strings"

type VoterID int64

type Session struct {
	ID     VoterID
	Name   string
	Avatar string
	// Token is the provider credential. It is never verified client-side.
	Token string
}

func (s Session) Valid() bool {
	return s.ID > 0 && strings.TrimSpace(s.Token) != ""
}

func (s Session) DisplayName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "Voter"
}
