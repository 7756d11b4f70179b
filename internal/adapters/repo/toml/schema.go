package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Voter   *voterSchema `toml:"voter,omitempty"`
}

type voterSchema struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Avatar   string `toml:"avatar,omitempty"`
	TokenRef string `toml:"token_ref"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
