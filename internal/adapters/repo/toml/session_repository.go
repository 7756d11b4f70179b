package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	tempFilePattern = ".session-*.toml.tmp"
)

// SessionRepository persists the remembered session as a TOML record. The
// credential token lives in the secret store and the record keeps its key.
type SessionRepository struct {
	path    string
	secrets ports.SecretStore
	mu      *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(path string, secrets ports.SecretStore) (*SessionRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session path is empty")
	}
	if secrets == nil {
		return nil, errors.New("secret store is nil")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &SessionRepository{path: absPath, secrets: secrets, mu: lockForPath(absPath)}, nil
}

func (r *SessionRepository) Path() string {
	return r.path
}

func (r *SessionRepository) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Session{}, err
	}
	if file.Voter == nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	voter := *file.Voter
	if voter.ID <= 0 || strings.TrimSpace(voter.TokenRef) == "" {
		return domain.Session{}, fmt.Errorf("%w: voter id and token_ref are required", domain.ErrMalformedSession)
	}

	token, err := r.secrets.Get(ctx, voter.TokenRef)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session token: %w", err)
	}

	session := domain.Session{
		ID:     domain.VoterID(voter.ID),
		Name:   voter.Name,
		Avatar: voter.Avatar,
		Token:  strings.TrimSpace(token),
	}
	if !session.Valid() {
		return domain.Session{}, fmt.Errorf("%w: empty credential token", domain.ErrMalformedSession)
	}

	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !session.Valid() {
		return fmt.Errorf("%w: voter id and token are required", domain.ErrMalformedSession)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Only used to clean up a previous voter's token.
	previous, _ := r.readSchema()

	tokenRef := TokenRef(session.ID)
	if err := r.secrets.Put(ctx, tokenRef, session.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	file := fileSchema{
		Version: currentSchemaVersion,
		Voter: &voterSchema{
			ID:       int64(session.ID),
			Name:     session.Name,
			Avatar:   session.Avatar,
			TokenRef: tokenRef,
		},
	}
	if err := r.writeSchema(file); err != nil {
		if rollbackErr := r.secrets.Delete(ctx, tokenRef); rollbackErr != nil {
			return fmt.Errorf("save session record and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save session record: %w", err)
	}

	if previous.Voter != nil && previous.Voter.TokenRef != "" && previous.Voter.TokenRef != tokenRef {
		if err := r.secrets.Delete(ctx, previous.Voter.TokenRef); err != nil {
			return fmt.Errorf("delete previous session token: %w", err)
		}
	}

	return nil
}

// Clear removes the record and its token. A missing record is not an error.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, readErr := r.readSchema()

	var errs []error
	if readErr == nil && file.Voter != nil && strings.TrimSpace(file.Voter.TokenRef) != "" {
		if err := r.secrets.Delete(ctx, file.Voter.TokenRef); err != nil {
			errs = append(errs, fmt.Errorf("delete session token: %w", err))
		}
	}

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, fmt.Errorf("remove session record: %w", err))
	}

	return errors.Join(errs...)
}

func TokenRef(id domain.VoterID) string {
	return fmt.Sprintf("awards/voter/%d/token", id)
}

func (r *SessionRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, domain.ErrSessionNotFound
		}
		return fileSchema{}, fmt.Errorf("read session record: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %v", domain.ErrMalformedSession, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %v", domain.ErrMalformedSession, err)
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *SessionRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false
	return nil
}
