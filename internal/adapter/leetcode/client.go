package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/net/publicsuffix"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

const (
	// DefaultEndpoint is the public LeetCode GraphQL endpoint.
	DefaultEndpoint = "https://leetcode.com/graphql"

	userAgent     = "graphql-rust/0.10.0"
	sessionCookie = "LEETCODE_SESSION"
	csrfCookie    = "csrftoken"
	csrfHeader    = "x-csrftoken"

	companyTagOperation = "getCompanyTag"
	companyTagQuery     = `query getCompanyTag($slug: String!) { companyTag(slug: $slug) { name questions { title titleSlug difficulty } } }`

	maxResponseBytes = 8 << 20
)

// Client implements ProblemProvider against the LeetCode GraphQL API.
type Client struct {
	endpoint   string
	csrfToken  string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ProblemProvider = (*Client)(nil)

// Options configures a Client.
type Options struct {
	Endpoint     string
	SessionToken string
	CSRFToken    string
	Timeout      time.Duration
}

// New creates a LeetCode client whose cookie jar carries the session token for the endpoint host.
func New(opts Options, logger ports.Logger) (*Client, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, apperr.Configuration(fmt.Sprintf("invalid graphql endpoint %q", endpoint), err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	cookies := []*http.Cookie{{Name: sessionCookie, Value: opts.SessionToken}}
	if opts.CSRFToken != "" {
		cookies = append(cookies, &http.Cookie{Name: csrfCookie, Value: opts.CSRFToken})
	}
	jar.SetCookies(u, cookies)

	return &Client{
		endpoint:   endpoint,
		csrfToken:  opts.CSRFToken,
		httpClient: &http.Client{Timeout: opts.Timeout, Jar: jar},
		logger:     logger,
	}, nil
}

// GetCompanyProblems returns every problem listed under the company tag, in service order.
// Any null or incomplete record fails the whole call.
func (c *Client) GetCompanyProblems(ctx context.Context, tag string) ([]model.Problem, error) {
	payload := map[string]any{
		"operationName": companyTagOperation,
		"query":         companyTagQuery,
		"variables":     map[string]string{"slug": tag},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://leetcode.com")
	if c.csrfToken != "" {
		req.Header.Set(csrfHeader, c.csrfToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Network("perform request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperr.Network(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperr.Network("read response", err)
	}

	problems, err := parseCompanyTag(data)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Info(ctx, "fetched company problems", "company", tag, "count", len(problems))
	}
	return problems, nil
}

func parseCompanyTag(data []byte) ([]model.Problem, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperr.Schema("decode response: invalid json", nil)
	}

	root := gjson.ParseBytes(data)

	payload := root.Get("data")
	if isNull(payload) {
		return nil, apperr.Schema("missing response data"+graphQLErrors(root), nil)
	}

	tag := payload.Get("companyTag")
	if isNull(tag) {
		return nil, apperr.Schema("missing companyTag"+graphQLErrors(root), nil)
	}

	questions := tag.Get("questions")
	if !questions.IsArray() {
		return nil, apperr.Schema("missing companyTag.questions", nil)
	}

	items := questions.Array()
	problems := make([]model.Problem, 0, len(items))
	for i, q := range items {
		if isNull(q) {
			return nil, apperr.Schema(fmt.Sprintf("question %d is null", i), nil)
		}

		slug := q.Get("titleSlug")
		if slug.Type != gjson.String || slug.Str == "" {
			return nil, apperr.Schema(fmt.Sprintf("question %d has no titleSlug", i), nil)
		}

		difficulty := q.Get("difficulty")
		if difficulty.Type != gjson.String {
			return nil, apperr.Schema(fmt.Sprintf("question %d (%s) has no difficulty", i, slug.Str), nil)
		}

		problems = append(problems, model.Problem{
			Title:      q.Get("title").String(),
			Slug:       slug.Str,
			Difficulty: difficulty.Str,
		})
	}

	return problems, nil
}

func isNull(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

func graphQLErrors(root gjson.Result) string {
	messages := root.Get("errors.#.message").Array()
	if len(messages) == 0 {
		return ""
	}
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, m.String())
	}
	return " (" + strings.Join(parts, "; ") + ")"
}
