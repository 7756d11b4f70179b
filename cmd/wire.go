package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	apiadapter "github.com/bnema/awards-vote-cli/internal/adapters/api"
	authadapter "github.com/bnema/awards-vote-cli/internal/adapters/auth"
	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	tomlrepo "github.com/bnema/awards-vote-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/awards-vote-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/awards-vote-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/awards-vote-cli/internal/adapters/secrets/pass"
	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/bnema/awards-vote-cli/internal/config"
	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/pkg/browser"
	"github.com/spf13/viper"
)

// openInBrowser is replaced in tests to play the browser's part of the login.
var openInBrowser = browser.OpenURL

type app struct {
	cfg           config.Config
	logger        *slog.Logger
	sessions      ports.SessionStore
	nominations   ports.NominationsAPI
	roster        ports.Roster
	httpClient    *http.Client
	boardRenderer func(application.Snapshot, leaderboard.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	secretStore, err := newSecretStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	sessions, err := tomlrepo.NewSessionRepository(cfg.Session.Path, secretStore)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	httpClient := http.DefaultClient
	client, err := apiadapter.NewClient(cfg.APIBaseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("wire nominations client: %w", err)
	}

	roster, err := tomlrepo.NewRosterRepository(cfg.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("wire participants roster: %w", err)
	}

	return &app{
		cfg:           cfg,
		logger:        logger,
		sessions:      sessions,
		nominations:   client,
		roster:        roster,
		httpClient:    httpClient,
		boardRenderer: leaderboard.Render,
	}, nil
}

func newSecretStore(cfg config.Session) (ports.SecretStore, error) {
	switch cfg.SecretsBackend {
	case config.SecretsFile:
		return filestore.NewStore(cfg.SecretsPath), nil
	case config.SecretsPass:
		return passstore.NewStore(), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.SecretsPath)
	}
}

func (a *app) newPage(notifier ports.Notifier) *application.Page {
	return application.NewPage(a.nominations, a.sessions, notifier, a.logger)
}

func (a *app) newContest(notifier ports.Notifier) *application.Contest {
	return application.NewContest(a.nominations, a.roster, notifier, a.logger)
}

func (a *app) newNavigator(out io.Writer) ports.Navigator {
	return authadapter.NewNavigator(out, openInBrowser)
}

func (a *app) loginConfig() authadapter.LoginConfig {
	return authadapter.LoginConfig{
		AuthorizeURL: a.cfg.OAuth.AuthorizeURL,
		TokenURL:     a.cfg.OAuth.TokenURL,
		APIURL:       a.cfg.OAuth.APIURL,
		ClientID:     a.cfg.OAuth.ClientID,
		ClientSecret: a.cfg.OAuth.ClientSecret,
		APIVersion:   a.cfg.OAuth.APIVersion,
		Display:      a.cfg.OAuth.Display,
		ListenAddr:   a.cfg.OAuth.ListenAddr,
		Timeout:      a.cfg.OAuth.Timeout,
		HTTPClient:   a.httpClient,
		Logger:       a.logger,
	}
}
