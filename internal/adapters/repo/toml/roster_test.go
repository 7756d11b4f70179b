package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRepositoryServesBuiltInRoster(t *testing.T) {
	t.Parallel()

	repo, err := NewRosterRepository("")
	require.NoError(t, err)

	participants, err := repo.Participants(context.Background())

	require.NoError(t, err)
	require.Len(t, participants, 6)
	assert.Equal(t, "Anna Svetlova", participants[0].Name)
	assert.Equal(t, "music", participants[0].Nomination)
	assert.Equal(t, int64(198), participants[5].Votes)
}

func TestRosterRepositoryReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1

[[participant]]
id = 10
name = "Ada"
category = "Innovation"
votes = 3
nomination = "innovation"
`), 0o600))

	repo, err := NewRosterRepository(path)
	require.NoError(t, err)

	participants, err := repo.Participants(context.Background())

	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, int64(10), participants[0].ID)
	assert.Equal(t, int64(3), participants[0].Votes)
}

func TestRosterRepositoryRejectsBadRosters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "missing id", content: "[[participant]]\nname = \"Ada\"\n", wantErr: "id must be positive"},
		{name: "duplicate id", content: "[[participant]]\nid = 1\n[[participant]]\nid = 1\n", wantErr: "duplicate id 1"},
		{name: "negative votes", content: "[[participant]]\nid = 1\nvotes = -2\n", wantErr: "negative votes"},
		{name: "future schema", content: "version = 9\n", wantErr: "unsupported roster schema version 9"},
		{name: "not toml", content: "[[participant", wantErr: "decode roster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			repo, err := NewRosterRepository(path)
			require.NoError(t, err)

			_, err = repo.Participants(context.Background())

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRosterRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo, err := NewRosterRepository(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	_, err = repo.Participants(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
}
