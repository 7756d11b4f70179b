package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/api/", server.Client())
	require.NoError(t, err)
	return client
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "ftp scheme", baseURL: "ftp://votes.example.com", wantErr: "http or https"},
		{name: "no host", baseURL: "https://", wantErr: "host is required"},
		{name: "empty", baseURL: "", wantErr: "http or https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL, nil)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClientListDecodesNominations(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/nominations", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		_, _ = fmt.Fprint(w, `{"nominations":[{"id":1,"slug":"best-clip","title":"Best Clip","description":"The clip of the year","icon":"🎬","color":"#ff8800","votes":10},{"id":2,"slug":"best-stream","title":"Best Stream","votes":30}]}`)
	})

	nominations, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, nominations, 2)
	assert.Equal(t, domain.Nomination{
		ID:          1,
		Slug:        "best-clip",
		Title:       "Best Clip",
		Description: "The clip of the year",
		Icon:        "🎬",
		Color:       "#ff8800",
		Votes:       10,
	}, nominations[0])
	assert.Equal(t, int64(30), nominations[1].Votes)
}

func TestClientListMissingFieldYieldsEmptyList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"status":"ok"}`)
	})

	nominations, err := client.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, nominations)
	assert.Empty(t, nominations)
}

func TestClientListReturnsErrorOnFailureStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 503")
}

func TestClientListReturnsErrorOnBadJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html>`)
	})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode nominations")
}

func TestClientVoteSendsVoterHeaderAndBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/nominations", r.URL.Path)
		assert.Equal(t, "42", r.Header.Get(VoterIDHeader))
		assert.Equal(t, "Bearer vk1.a.token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"nomination_id": float64(2)}, body)
		w.WriteHeader(http.StatusOK)
	})

	err := client.Vote(context.Background(), domain.Session{ID: 42, Token: "vk1.a.token"}, 2)
	require.NoError(t, err)
}

func TestClientVoteBodyAcceptedByVotingBackend(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["nomination_id"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"error":"Missing nomination_id"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"success":true}`)
	})

	err := client.Vote(context.Background(), domain.Session{ID: 7, Token: "t"}, 2)
	require.NoError(t, err)
}

func TestClientVoteMapsStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantStatus  int
		wantMessage string
	}{
		{name: "created counts as success", status: http.StatusCreated},
		{name: "conflict is duplicate", status: http.StatusConflict, body: `{"message":"dup"}`, wantErr: domain.ErrAlreadyVoted},
		{name: "server message", status: http.StatusForbidden, body: `{"message":"Voting is closed"}`, wantStatus: 403, wantMessage: "Voting is closed"},
		{name: "error field fallback", status: http.StatusBadRequest, body: `{"error":"unknown nomination"}`, wantStatus: 400, wantMessage: "unknown nomination"},
		{name: "no message", status: http.StatusInternalServerError, body: `oops`, wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			})

			err := client.Vote(context.Background(), domain.Session{ID: 1, Token: "t"}, 5)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus != 0:
				var rejected *domain.VoteRejectedError
				require.True(t, errors.As(err, &rejected))
				assert.Equal(t, tt.wantStatus, rejected.Status)
				assert.Equal(t, tt.wantMessage, rejected.Message)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestClientVoteReportsUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(baseURL, nil)
	require.NoError(t, err)

	err = client.Vote(context.Background(), domain.Session{ID: 1, Token: "t"}, 5)
	require.ErrorIs(t, err, domain.ErrVoteUnreachable)
}
