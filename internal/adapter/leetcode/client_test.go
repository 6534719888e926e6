package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
)

const companyTagBody = `{
  "data": {
    "companyTag": {
      "name": "Google",
      "questions": [
        {"title": "Two Sum", "titleSlug": "two-sum", "difficulty": "Easy"},
        {"title": "LRU Cache", "titleSlug": "lru-cache", "difficulty": "Medium"},
        {"title": "Median of Two Sorted Arrays", "titleSlug": "median-of-two-sorted-arrays", "difficulty": "Hard"}
      ]
    }
  }
}`

func newMockedClient(t *testing.T, opts Options) (*Client, *httpmock.MockTransport) {
	t.Helper()

	if opts.SessionToken == "" {
		opts.SessionToken = "session-token"
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second
	}

	client, err := New(opts, nil)
	require.NoError(t, err)

	mock := httpmock.NewMockTransport()
	client.httpClient.Transport = mock
	return client, mock
}

func TestGetCompanyProblemsSendsAuthenticatedQuery(t *testing.T) {
	t.Parallel()

	client, mock := newMockedClient(t, Options{CSRFToken: "csrf"})

	var captured *http.Request
	var payload struct {
		OperationName string            `json:"operationName"`
		Query         string            `json:"query"`
		Variables     map[string]string `json:"variables"`
	}
	mock.RegisterResponder(http.MethodPost, DefaultEndpoint, func(req *http.Request) (*http.Response, error) {
		captured = req
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		return httpmock.NewStringResponse(http.StatusOK, companyTagBody), nil
	})

	problems, err := client.GetCompanyProblems(context.Background(), "google")
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "graphql-rust/0.10.0", captured.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "csrf", captured.Header.Get("x-csrftoken"))

	session, err := captured.Cookie("LEETCODE_SESSION")
	require.NoError(t, err)
	assert.Equal(t, "session-token", session.Value)
	csrf, err := captured.Cookie("csrftoken")
	require.NoError(t, err)
	assert.Equal(t, "csrf", csrf.Value)

	assert.Equal(t, "getCompanyTag", payload.OperationName)
	assert.Contains(t, payload.Query, "companyTag(slug: $slug)")
	assert.Equal(t, map[string]string{"slug": "google"}, payload.Variables)

	assert.Equal(t, []model.Problem{
		{Title: "Two Sum", Slug: "two-sum", Difficulty: "Easy"},
		{Title: "LRU Cache", Slug: "lru-cache", Difficulty: "Medium"},
		{Title: "Median of Two Sorted Arrays", Slug: "median-of-two-sorted-arrays", Difficulty: "Hard"},
	}, problems)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestGetCompanyProblemsUsesConfiguredEndpoint(t *testing.T) {
	t.Parallel()

	endpoint := "https://catalog.internal.example/graphql"
	client, mock := newMockedClient(t, Options{Endpoint: endpoint})
	mock.RegisterResponder(http.MethodPost, endpoint, func(req *http.Request) (*http.Response, error) {
		if _, err := req.Cookie("LEETCODE_SESSION"); err != nil {
			return httpmock.NewStringResponse(http.StatusUnauthorized, "no session"), nil
		}
		return httpmock.NewStringResponse(http.StatusOK, companyTagBody), nil
	})

	problems, err := client.GetCompanyProblems(context.Background(), "google")
	require.NoError(t, err)
	assert.Len(t, problems, 3)
}

func TestGetCompanyProblemsTransportFailure(t *testing.T) {
	t.Parallel()

	client, mock := newMockedClient(t, Options{})
	mock.RegisterResponder(http.MethodPost, DefaultEndpoint, httpmock.NewErrorResponder(errors.New("connection reset")))

	_, err := client.GetCompanyProblems(context.Background(), "google")
	require.ErrorIs(t, err, apperr.ErrNetwork)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestGetCompanyProblemsUnexpectedStatus(t *testing.T) {
	t.Parallel()

	client, mock := newMockedClient(t, Options{})
	mock.RegisterResponder(http.MethodPost, DefaultEndpoint, httpmock.NewStringResponder(http.StatusForbidden, "forbidden"))

	_, err := client.GetCompanyProblems(context.Background(), "google")
	require.ErrorIs(t, err, apperr.ErrNetwork)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestGetCompanyProblemsSchemaFailures(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		body    string
		message string
	}{
		"invalid json":      {`{"data":`, "invalid json"},
		"null data":         {`{"data": null, "errors": [{"message": "not authenticated"}]}`, "missing response data (not authenticated)"},
		"absent data":       {`{}`, "missing response data"},
		"null company tag":  {`{"data": {"companyTag": null}}`, "missing companyTag"},
		"null questions":    {`{"data": {"companyTag": {"questions": null}}}`, "missing companyTag.questions"},
		"null question":     {`{"data": {"companyTag": {"questions": [{"titleSlug": "two-sum", "difficulty": "Easy"}, null]}}}`, "question 1 is null"},
		"missing slug":      {`{"data": {"companyTag": {"questions": [{"difficulty": "Easy"}]}}}`, "question 0 has no titleSlug"},
		"null difficulty":   {`{"data": {"companyTag": {"questions": [{"titleSlug": "two-sum", "difficulty": null}]}}}`, "question 0 (two-sum) has no difficulty"},
		"numeric slug type": {`{"data": {"companyTag": {"questions": [{"titleSlug": 1, "difficulty": "Easy"}]}}}`, "question 0 has no titleSlug"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, mock := newMockedClient(t, Options{})
			mock.RegisterResponder(http.MethodPost, DefaultEndpoint, httpmock.NewStringResponder(http.StatusOK, tc.body))

			problems, err := client.GetCompanyProblems(context.Background(), "google")
			require.ErrorIs(t, err, apperr.ErrSchema)
			assert.Nil(t, problems)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestGetCompanyProblemsEmptyList(t *testing.T) {
	t.Parallel()

	client, mock := newMockedClient(t, Options{})
	mock.RegisterResponder(http.MethodPost, DefaultEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{"data": {"companyTag": {"name": "Nobody", "questions": []}}}`))

	problems, err := client.GetCompanyProblems(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestNewRejectsInvalidEndpoint(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Endpoint: "not a url", SessionToken: "token"}, nil)
	require.ErrorIs(t, err, apperr.ErrConfiguration)
}
