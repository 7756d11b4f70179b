// Package mocks holds testify mocks for the ports interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

var (
	_ ports.SecretStore    = (*SecretStore)(nil)
	_ ports.SessionStore   = (*SessionStore)(nil)
	_ ports.NominationsAPI = (*NominationsAPI)(nil)
	_ ports.Notifier       = (*Notifier)(nil)
	_ ports.Navigator      = (*Navigator)(nil)
	_ ports.Roster         = (*Roster)(nil)
)

type SecretStore struct {
	mock.Mock
}

func NewSecretStore(t *testing.T) *SecretStore {
	m := &SecretStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SecretStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *SecretStore) Put(ctx context.Context, key string, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *SecretStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type SessionStore struct {
	mock.Mock
}

func NewSessionStore(t *testing.T) *SessionStore {
	m := &SessionStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionStore) Load(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *SessionStore) Save(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type NominationsAPI struct {
	mock.Mock
}

func NewNominationsAPI(t *testing.T) *NominationsAPI {
	m := &NominationsAPI{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NominationsAPI) List(ctx context.Context) ([]domain.Nomination, error) {
	args := m.Called(ctx)
	nominations, _ := args.Get(0).([]domain.Nomination)
	return nominations, args.Error(1)
}

func (m *NominationsAPI) Vote(ctx context.Context, voter domain.Session, id domain.NominationID) error {
	return m.Called(ctx, voter, id).Error(0)
}

type Notifier struct {
	mock.Mock
}

func NewNotifier(t *testing.T) *Notifier {
	m := &Notifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) Success(message string) { m.Called(message) }
func (m *Notifier) Warn(message string)    { m.Called(message) }
func (m *Notifier) Error(message string)   { m.Called(message) }

type Navigator struct {
	mock.Mock
}

func NewNavigator(t *testing.T) *Navigator {
	m := &Navigator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Navigator) Open(url string) error {
	return m.Called(url).Error(0)
}

type Roster struct {
	mock.Mock
}

func NewRoster(t *testing.T) *Roster {
	m := &Roster{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Roster) Participants(ctx context.Context) ([]domain.Participant, error) {
	args := m.Called(ctx)
	participants, _ := args.Get(0).([]domain.Participant)
	return participants, args.Error(1)
}
