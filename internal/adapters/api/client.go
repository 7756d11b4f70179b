package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	NominationsPath  = "nominations"
	VoterIDHeader    = "X-User-Id"
	RequestIDHeader  = "X-Request-Id"
	maxResponseBytes = 1 << 20
	userAgent        = "awards-cli"
)

// Client talks to the remote nominations endpoint. It sets no timeout of its
// own; callers bound requests through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	newID      func() string
}

var _ ports.NominationsAPI = (*Client)(nil)

type nominationRecord struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Votes       int64  `json:"votes"`
}

type listResponse struct {
	Nominations []nominationRecord `json:"nominations"`
}

type voteRequest struct {
	NominationID int64 `json:"nomination_id"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		httpClient: httpClient,
		newID:      uuid.NewString,
	}, nil
}

func (c *Client) Endpoint() string {
	return c.baseURL + "/" + NominationsPath
}

func (c *Client) List(ctx context.Context) ([]domain.Nomination, error) {
	request, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload listResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode nominations: %w", err)
	}

	nominations := make([]domain.Nomination, 0, len(payload.Nominations))
	for _, record := range payload.Nominations {
		nominations = append(nominations, domain.Nomination{
			ID:          domain.NominationID(record.ID),
			Slug:        record.Slug,
			Title:       record.Title,
			Description: record.Description,
			Icon:        record.Icon,
			Color:       record.Color,
			Votes:       record.Votes,
		})
	}

	return nominations, nil
}

func (c *Client) Vote(ctx context.Context, voter domain.Session, id domain.NominationID) error {
	payload, err := json.Marshal(voteRequest{NominationID: int64(id)})
	if err != nil {
		return fmt.Errorf("encode vote: %w", err)
	}

	request, err := c.newRequest(ctx, http.MethodPost, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(VoterIDHeader, strconv.FormatInt(int64(voter.ID), 10))
	if token := strings.TrimSpace(voter.Token); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrVoteUnreachable, err)
	}
	defer func() { _ = response.Body.Close() }()

	body, readErr := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))

	switch {
	case response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices:
		return nil
	case response.StatusCode == http.StatusConflict:
		return domain.ErrAlreadyVoted
	}

	rejected := &domain.VoteRejectedError{Status: response.StatusCode}
	if readErr == nil {
		rejected.Message = errorMessage(body)
	}
	return rejected
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.Endpoint(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set(RequestIDHeader, c.newID())

	return request, nil
}

func errorMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if message := strings.TrimSpace(payload.Message); message != "" {
		return message
	}
	return strings.TrimSpace(payload.Error)
}
