package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	filestore "github.com/bnema/awards-vote-cli/internal/adapters/secrets/file"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SessionRepository, string, *filestore.Store) {
	t.Helper()

	dir := t.TempDir()
	secrets := filestore.NewStore(filepath.Join(dir, "secrets"))
	repo, err := NewSessionRepository(filepath.Join(dir, "session.toml"), secrets)
	require.NoError(t, err)

	return repo, dir, secrets
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _, secrets := newTestRepository(t)
	session := domain.Session{ID: 42, Name: "Ada Lovelace", Avatar: "https://cdn.example.com/a.jpg", Token: "vk1.a.token"}

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, got)

	token, err := secrets.Get(context.Background(), TokenRef(42))
	require.NoError(t, err)
	assert.Equal(t, "vk1.a.token", token)
}

func TestSessionRepositoryRecordDoesNotContainToken(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Session{ID: 42, Name: "Ada", Token: "vk1.a.token"}))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "vk1.a.token")
	assert.Contains(t, string(data), "awards/voter/42/token")

	info, err := os.Stat(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())
}

func TestSessionRepositoryLoadMissingRecord(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTestRepository(t)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryLoadMalformedRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "not toml", content: "{{{ nope", wantErr: domain.ErrMalformedSession},
		{name: "future version", content: "version = 9\n", wantErr: domain.ErrMalformedSession},
		{name: "no voter table", content: "version = 1\n", wantErr: domain.ErrSessionNotFound},
		{name: "missing id", content: "version = 1\n[voter]\nname = 'x'\ntoken_ref = 'awards/voter/1/token'\n", wantErr: domain.ErrMalformedSession},
		{name: "missing token ref", content: "version = 1\n[voter]\nid = 7\n", wantErr: domain.ErrMalformedSession},
		{name: "token secret absent", content: "version = 1\n[voter]\nid = 7\ntoken_ref = 'awards/voter/7/token'\n", wantErr: domain.ErrSecretNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, _ := newTestRepository(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(tt.content), 0o600))

			_, err := repo.Load(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionRepositoryClearRemovesRecordAndToken(t *testing.T) {
	t.Parallel()

	repo, _, secrets := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Session{ID: 42, Name: "Ada", Token: "vk1.a.token"}))

	require.NoError(t, repo.Clear(context.Background()))

	_, err := os.Stat(repo.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = secrets.Get(context.Background(), TokenRef(42))
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryClearWithoutRecordIsNoop(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTestRepository(t)
	require.NoError(t, repo.Clear(context.Background()))
}

func TestSessionRepositoryClearRemovesMalformedRecord(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTestRepository(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("garbage = = ="), 0o600))

	require.NoError(t, repo.Clear(context.Background()))

	_, err := os.Stat(repo.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSessionRepositorySaveRejectsInvalidSession(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTestRepository(t)

	err := repo.Save(context.Background(), domain.Session{ID: 42})
	require.ErrorIs(t, err, domain.ErrMalformedSession)
}

func TestSessionRepositorySaveForNewVoterDeletesPreviousToken(t *testing.T) {
	t.Parallel()

	repo, _, secrets := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Session{ID: 1, Name: "First", Token: "t1"}))
	require.NoError(t, repo.Save(context.Background(), domain.Session{ID: 2, Name: "Second", Token: "t2"}))

	_, err := secrets.Get(context.Background(), TokenRef(1))
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.VoterID(2), got.ID)
}

func TestSessionRepositorySaveRollsBackTokenWhenRecordWriteFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a dir"), 0o600))

	secrets := mocks.NewSecretStore(t)
	secrets.On("Put", mock.Anything, TokenRef(42), "tok").Return(nil).Once()
	secrets.On("Delete", mock.Anything, TokenRef(42)).Return(nil).Once()

	repo, err := NewSessionRepository(filepath.Join(blocker, "session.toml"), secrets)
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Session{ID: 42, Token: "tok"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "save session record")
}

func TestNewSessionRepositoryValidatesArguments(t *testing.T) {
	t.Parallel()

	_, err := NewSessionRepository("", filestore.NewStore(t.TempDir()))
	require.Error(t, err)

	_, err = NewSessionRepository(filepath.Join(t.TempDir(), "s.toml"), nil)
	require.Error(t, err)
}
