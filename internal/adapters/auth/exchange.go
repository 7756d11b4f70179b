package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxOAuthResponseBytes = 1 << 20

type TokenExchangeRequest struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Code         string
}

type AccessGrant struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      int64  `json:"user_id"`
}

type ProfileRequest struct {
	APIURL      string
	AccessToken string
	UserID      int64
	Version     string
}

type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo_100"`
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

type profileResponse struct {
	Response []Profile `json:"response"`
	Error    *apiError `json:"error"`
}

// ExchangeCode trades the callback code for an access grant.
func ExchangeCode(ctx context.Context, client *http.Client, req TokenExchangeRequest) (AccessGrant, error) {
	if req.TokenURL == "" {
		return AccessGrant{}, errors.New("token url is required")
	}
	if req.ClientID == "" {
		return AccessGrant{}, errors.New("client id is required")
	}
	if req.RedirectURI == "" {
		return AccessGrant{}, errors.New("redirect uri is required")
	}
	if req.Code == "" {
		return AccessGrant{}, errors.New("authorization code is required")
	}

	endpoint, err := url.Parse(req.TokenURL)
	if err != nil {
		return AccessGrant{}, fmt.Errorf("parse token url: %w", err)
	}
	q := endpoint.Query()
	q.Set("client_id", req.ClientID)
	if req.ClientSecret != "" {
		q.Set("client_secret", req.ClientSecret)
	}
	q.Set("redirect_uri", req.RedirectURI)
	q.Set("code", req.Code)
	endpoint.RawQuery = q.Encode()

	body, status, err := getJSON(ctx, client, endpoint.String())
	if err != nil {
		return AccessGrant{}, fmt.Errorf("exchange code: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return AccessGrant{}, fmt.Errorf("exchange code: %s", formatOAuthError(status, body))
	}

	var grant AccessGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return AccessGrant{}, fmt.Errorf("decode token response: %w", err)
	}
	if grant.AccessToken == "" || grant.UserID <= 0 {
		return AccessGrant{}, errors.New("token response missing access_token or user_id")
	}

	return grant, nil
}

// FetchProfile loads the display name and avatar of the signed-in user.
func FetchProfile(ctx context.Context, client *http.Client, req ProfileRequest) (Profile, error) {
	if req.APIURL == "" {
		return Profile{}, errors.New("api url is required")
	}
	if req.AccessToken == "" {
		return Profile{}, errors.New("access token is required")
	}

	endpoint, err := url.Parse(strings.TrimRight(req.APIURL, "/") + "/users.get")
	if err != nil {
		return Profile{}, fmt.Errorf("parse api url: %w", err)
	}
	q := endpoint.Query()
	if req.UserID > 0 {
		q.Set("user_ids", strconv.FormatInt(req.UserID, 10))
	}
	q.Set("fields", "photo_100")
	q.Set("access_token", req.AccessToken)
	q.Set("v", req.Version)
	endpoint.RawQuery = q.Encode()

	body, status, err := getJSON(ctx, client, endpoint.String())
	if err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return Profile{}, fmt.Errorf("fetch profile: status %d", status)
	}

	var payload profileResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Profile{}, fmt.Errorf("decode profile response: %w", err)
	}
	if payload.Error != nil {
		return Profile{}, fmt.Errorf("fetch profile: api error %d: %s", payload.Error.Code, payload.Error.Message)
	}
	if len(payload.Response) == 0 {
		return Profile{}, errors.New("profile response is empty")
	}

	return payload.Response[0], nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string) ([]byte, int, error) {
	if client == nil {
		client = http.DefaultClient
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return nil, 0, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxOAuthResponseBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	return body, response.StatusCode, nil
}

func formatOAuthError(status int, body []byte) string {
	var oauthErr oauthErrorResponse
	if err := json.Unmarshal(body, &oauthErr); err != nil || oauthErr.Error == "" {
		return fmt.Sprintf("status %d", status)
	}
	if oauthErr.ErrorDescription != "" {
		return oauthErr.Error + ": " + oauthErr.ErrorDescription
	}
	return oauthErr.Error
}
