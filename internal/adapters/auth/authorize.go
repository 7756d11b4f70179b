package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	ResponseTypeCode = "code"
	DefaultDisplay   = "page"
)

type AuthorizationRequest struct {
	AuthURL     string
	ClientID    string
	RedirectURI string
	Display     string
	// Scopes may be empty; the scope parameter is still sent.
	Scopes  []string
	Version string
	State   string
}

func NewState() string {
	return uuid.NewString()
}

// BuildAuthorizationURL returns the provider login page for the code flow.
func BuildAuthorizationURL(req AuthorizationRequest) (string, error) {
	if req.AuthURL == "" {
		return "", errors.New("auth url is required")
	}
	if req.ClientID == "" {
		return "", errors.New("client id is required")
	}
	if req.RedirectURI == "" {
		return "", errors.New("redirect uri is required")
	}
	if req.Version == "" {
		return "", errors.New("api version is required")
	}

	parsed, err := url.Parse(req.AuthURL)
	if err != nil {
		return "", fmt.Errorf("parse auth url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("auth url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("auth url host is required")
	}

	display := req.Display
	if display == "" {
		display = DefaultDisplay
	}

	q := parsed.Query()
	q.Set("client_id", req.ClientID)
	q.Set("display", display)
	q.Set("redirect_uri", req.RedirectURI)
	q.Set("scope", strings.Join(req.Scopes, ","))
	q.Set("response_type", ResponseTypeCode)
	q.Set("v", req.Version)
	if req.State != "" {
		q.Set("state", req.State)
	}
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}
