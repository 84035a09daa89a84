package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is a typed wrapper over the REST API. It performs no caching
// and no retries; every failure surfaces once as a *RequestError.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    http.DefaultClient,
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session this client authenticates with.
func (c *Client) Session() *Session { return c.session }

func (c *Client) do(method, path string, body io.Reader, contentType string, authed bool) ([]byte, error) {
	var token string
	if authed {
		t, ok := c.session.Token()
		if !ok {
			return nil, ErrNotAuthenticated
		}
		token = t
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, &RequestError{Detail: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Detail: "connection error"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Detail: "connection error"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) doJSON(method, path string, payload interface{}, authed bool, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &RequestError{Detail: err.Error()}
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	data, err := c.do(method, path, body, contentType, authed)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(normalizeIDKeys(data), out); err != nil {
		return &RequestError{Detail: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

// Login exchanges credentials for a bearer token and installs it in
// the session.
func (c *Client) Login(email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	data, err := c.do(http.MethodPost, "/api/admin/token",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", false)
	if err != nil {
		return err
	}

	var result struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return &RequestError{Detail: fmt.Sprintf("malformed response: %v", err)}
	}
	if result.AccessToken == "" {
		return &RequestError{Detail: "login response missing access_token"}
	}
	return c.session.Create(result.AccessToken)
}

// Logout invalidates the session. The token is stateless server-side,
// so this is purely local.
func (c *Client) Logout() error {
	return c.session.Invalidate()
}

// Me returns the authenticated admin's profile.
func (c *Client) Me() (*Profile, error) {
	var profile Profile
	if err := c.doJSON(http.MethodGet, "/api/admin/me", nil, true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListPortfolio returns all portfolio items.
func (c *Client) ListPortfolio() ([]Portfolio, error) {
	var items []Portfolio
	if err := c.doJSON(http.MethodGet, "/api/portfolio", nil, false, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePortfolio creates a portfolio item from a draft.
func (c *Client) CreatePortfolio(draft PortfolioDraft) (*Portfolio, error) {
	var item Portfolio
	if err := c.doJSON(http.MethodPost, "/api/portfolio", draft, true, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdatePortfolio updates the portfolio item with the given id.
func (c *Client) UpdatePortfolio(id string, draft PortfolioDraft) (*Portfolio, error) {
	var item Portfolio
	if err := c.doJSON(http.MethodPut, "/api/portfolio/"+url.PathEscape(id), draft, true, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeletePortfolio deletes the portfolio item with the given id.
func (c *Client) DeletePortfolio(id string) error {
	return c.doJSON(http.MethodDelete, "/api/portfolio/"+url.PathEscape(id), nil, true, nil)
}

// ListBlogPosts returns published posts; the public view.
func (c *Client) ListBlogPosts() ([]BlogPost, error) {
	var posts []BlogPost
	if err := c.doJSON(http.MethodGet, "/api/blog?publishedOnly=true", nil, false, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAllBlogPosts returns every post including unpublished drafts.
// Requires a token; fails before any network call without one.
func (c *Client) ListAllBlogPosts() ([]BlogPost, error) {
	var posts []BlogPost
	if err := c.doJSON(http.MethodGet, "/api/blog/all", nil, true, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// BlogPostCount returns the number of published posts.
func (c *Client) BlogPostCount() (int64, error) {
	var result struct {
		Count int64 `json:"count"`
	}
	if err := c.doJSON(http.MethodGet, "/api/blog/count", nil, false, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// GetBlogPost fetches a single published post.
func (c *Client) GetBlogPost(id string) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(http.MethodGet, "/api/blog/"+url.PathEscape(id), nil, false, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateBlogPost creates a blog post from a draft.
func (c *Client) CreateBlogPost(draft BlogPostDraft) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(http.MethodPost, "/api/blog", draft, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateBlogPost updates the blog post with the given id.
func (c *Client) UpdateBlogPost(id string, draft BlogPostDraft) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(http.MethodPut, "/api/blog/"+url.PathEscape(id), draft, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBlogPost deletes the blog post with the given id.
func (c *Client) DeleteBlogPost(id string) error {
	return c.doJSON(http.MethodDelete, "/api/blog/"+url.PathEscape(id), nil, true, nil)
}

// GetHero fetches the hero settings, creating server-side defaults on
// first access.
func (c *Client) GetHero() (*Hero, error) {
	var hero Hero
	if err := c.doJSON(http.MethodGet, "/api/settings/hero", nil, false, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpdateHero updates the hero settings singleton.
func (c *Client) UpdateHero(draft HeroDraft) (*Hero, error) {
	var hero Hero
	if err := c.doJSON(http.MethodPut, "/api/settings/hero", draft, true, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// Subscribe signs an email up for the newsletter.
func (c *Client) Subscribe(email, source string) (string, error) {
	payload := map[string]string{"email": email}
	if source != "" {
		payload["source"] = source
	}
	var result struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(http.MethodPost, "/api/subscribe", payload, false, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(name, email, message string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "message": message}
	var result struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(http.MethodPost, "/api/contactme", payload, false, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}
