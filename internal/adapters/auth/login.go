package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/awards-vote-cli/internal/domain"
)

var ErrClientIDMissing = errors.New("oauth client id is not configured (set AWARDS_OAUTH_CLIENT_ID)")

type LoginConfig struct {
	AuthorizeURL string
	TokenURL     string
	APIURL       string
	ClientID     string
	ClientSecret string
	APIVersion   string
	Display      string
	ListenAddr   string
	Timeout      time.Duration
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

// LoginAttempt is one pass through the provider login: the callback server
// is listening and URL is ready to be shown to the user.
type LoginAttempt struct {
	URL         string
	redirectURI string
	cfg         LoginConfig
	server      *CallbackServer
}

func StartLogin(cfg LoginConfig) (*LoginAttempt, error) {
	if cfg.ClientID == "" {
		return nil, ErrClientIDMissing
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}

	state := NewState()
	server, err := StartCallbackServer(cfg.ListenAddr, state)
	if err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}

	redirectURI := server.Origin() + "/"
	authURL, err := BuildAuthorizationURL(AuthorizationRequest{
		AuthURL:     cfg.AuthorizeURL,
		ClientID:    cfg.ClientID,
		RedirectURI: redirectURI,
		Display:     cfg.Display,
		Version:     cfg.APIVersion,
		State:       state,
	})
	if err != nil {
		_ = server.Close()
		return nil, fmt.Errorf("build authorization url: %w", err)
	}

	cfg.Logger.Debug("login started", "redirect_uri", redirectURI)

	return &LoginAttempt{URL: authURL, redirectURI: redirectURI, cfg: cfg, server: server}, nil
}

// Wait blocks until the provider redirects back, then trades the code for a
// session. A failed profile lookup still yields a usable session.
func (a *LoginAttempt) Wait(ctx context.Context) (domain.Session, error) {
	code, err := a.server.WaitForCode(a.cfg.Timeout)
	if err != nil {
		return domain.Session{}, fmt.Errorf("wait for login callback: %w", err)
	}

	grant, err := ExchangeCode(ctx, a.cfg.HTTPClient, TokenExchangeRequest{
		TokenURL:     a.cfg.TokenURL,
		ClientID:     a.cfg.ClientID,
		ClientSecret: a.cfg.ClientSecret,
		RedirectURI:  a.redirectURI,
		Code:         code,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	session := domain.Session{ID: domain.VoterID(grant.UserID), Token: grant.AccessToken}

	profile, err := FetchProfile(ctx, a.cfg.HTTPClient, ProfileRequest{
		APIURL:      a.cfg.APIURL,
		AccessToken: grant.AccessToken,
		UserID:      grant.UserID,
		Version:     a.cfg.APIVersion,
	})
	if err != nil {
		a.cfg.Logger.Warn("fetch profile failed, continuing without name", "error", err)
		return session, nil
	}

	session.Name = profile.FullName()
	session.Avatar = profile.Photo
	return session, nil
}

func (a *LoginAttempt) Close() error {
	return a.server.Close()
}
