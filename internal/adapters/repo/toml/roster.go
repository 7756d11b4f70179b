package toml

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed roster.toml
var defaultRoster []byte

type rosterSchema struct {
	Version      int                 `toml:"version"`
	Participants []participantSchema `toml:"participant"`
}

type participantSchema struct {
	ID         int64  `toml:"id"`
	Name       string `toml:"name"`
	Category   string `toml:"category"`
	Avatar     string `toml:"avatar,omitempty"`
	Votes      int64  `toml:"votes"`
	Nomination string `toml:"nomination"`
}

// RosterRepository reads the participants roster from a TOML file. An empty
// path serves the roster shipped with the binary.
type RosterRepository struct {
	path string
}

var _ ports.Roster = (*RosterRepository)(nil)

func NewRosterRepository(path string) (*RosterRepository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return &RosterRepository{}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve roster path: %w", err)
	}
	return &RosterRepository{path: filepath.Clean(absPath)}, nil
}

func (r *RosterRepository) Participants(ctx context.Context) ([]domain.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultRoster
	if r.path != "" {
		var err error
		data, err = os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}
	}

	var file rosterSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if file.Version > currentSchemaVersion {
		return nil, fmt.Errorf("unsupported roster schema version %d (current %d)", file.Version, currentSchemaVersion)
	}

	participants := make([]domain.Participant, 0, len(file.Participants))
	seen := make(map[int64]struct{}, len(file.Participants))
	for i, p := range file.Participants {
		if p.ID <= 0 {
			return nil, fmt.Errorf("roster participant %d: id must be positive", i+1)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("roster participant %d: duplicate id %d", i+1, p.ID)
		}
		if p.Votes < 0 {
			return nil, fmt.Errorf("roster participant %d: negative votes", i+1)
		}
		seen[p.ID] = struct{}{}
		participants = append(participants, domain.Participant{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Avatar:     p.Avatar,
			Votes:      p.Votes,
			Nomination: p.Nomination,
		})
	}

	return participants, nil
}
