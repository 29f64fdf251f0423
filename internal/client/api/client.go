// Package api is the HTTP client for the file explorer server. It mirrors
// the server's JSON surface and carries the session token on every request
// once the user has logged in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

// Entry mirrors one directory child as returned by the listing endpoint.
// Size and Extension are nil for folders.
type Entry struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      *int64    `json:"size"`
	Modified  time.Time `json:"modified"`
	Extension *string   `json:"extension"`
}

// Listing is the response of the directory listing endpoint.
type Listing struct {
	Path  string  `json:"path"`
	Files []Entry `json:"files"`
}

// CodeFile is the response of the code read endpoint.
type CodeFile struct {
	Content   string `json:"content"`
	Extension string `json:"extension"`
	Name      string `json:"name"`
}

// FileInfo is the response of the per-type metadata endpoints.
type FileInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension"`
	IsImage   bool      `json:"isImage"`
	Type      string    `json:"type"`
}

// Status is the response of the auth status endpoint.
type Status struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

type errorPayload struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the current session token ("" when logged out).
func (c *Client) Token() string {
	return c.token
}

// endpoint builds a request URL with each path segment escaped.
func (c *Client) endpoint(parts ...string) (string, error) {
	return url.JoinPath(c.baseURL, parts...)
}

// treePath splits a relative tree path into segments for endpoint, so
// names with spaces or unicode survive URL encoding.
func treePath(rel string) []string {
	return strings.Split(strings.Trim(rel, "/"), "/")
}

// do performs one request and decodes the JSON body into out (when out is
// non-nil). Error responses are mapped back onto the shared sentinels by
// status code, wrapped with the server-supplied message.
func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.asError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) asError(resp *http.Response) error {
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, common.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, common.ErrAccessDenied)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, common.ErrNotFound)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
	}
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	target, err := c.endpoint("api", "auth", "register")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, target,
		map[string]string{"username": username, "password": password}, nil)
}

// Login authenticates and stores the session token for later requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	target, err := c.endpoint("api", "auth", "login")
	if err != nil {
		return err
	}

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	if err := c.do(ctx, http.MethodPost, target,
		map[string]string{"username": username, "password": password}, &resp); err != nil {
		return err
	}

	c.token = resp.Token
	return nil
}

// Logout drops the local token and tells the server to clear its cookie.
// The token itself stays valid until expiry; the server keeps no session
// state to revoke.
func (c *Client) Logout(ctx context.Context) error {
	target, err := c.endpoint("api", "auth", "logout")
	if err != nil {
		return err
	}
	err = c.do(ctx, http.MethodPost, target, nil, nil)
	c.token = ""
	return err
}

// Status reports whether the current token authenticates, and as whom.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	target, err := c.endpoint("api", "auth", "status")
	if err != nil {
		return nil, err
	}
	var s Status
	if err := c.do(ctx, http.MethodGet, target, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FileTypes fetches the category -> extension table, so the client
// dispatches file activation exactly the way the server classifies.
func (c *Client) FileTypes(ctx context.Context) (map[string][]string, error) {
	target, err := c.endpoint("api", "config", "file-types")
	if err != nil {
		return nil, err
	}
	var table map[string][]string
	if err := c.do(ctx, http.MethodGet, target, nil, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// List fetches the directory listing at rel.
func (c *Client) List(ctx context.Context, rel string) (*Listing, error) {
	target, err := c.endpoint("api", "files")
	if err != nil {
		return nil, err
	}
	target += "?path=" + url.QueryEscape(rel)

	var l Listing
	if err := c.do(ctx, http.MethodGet, target, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ReadCode fetches the text content of the file at rel.
func (c *Client) ReadCode(ctx context.Context, rel string) (*CodeFile, error) {
	target, err := c.endpoint(append([]string{"api", "code", "read"}, treePath(rel)...)...)
	if err != nil {
		return nil, err
	}
	var f CodeFile
	if err := c.do(ctx, http.MethodGet, target, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// SaveCode overwrites the file at rel with content. Requires a login.
func (c *Client) SaveCode(ctx context.Context, rel, content string) error {
	target, err := c.endpoint(append([]string{"api", "code", "save"}, treePath(rel)...)...)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, target, map[string]string{"content": content}, nil)
}

// Info fetches metadata from one of the per-type endpoints; kind is
// "image", "pdf", or "office".
func (c *Client) Info(ctx context.Context, kind, rel string) (*FileInfo, error) {
	target, err := c.endpoint(append([]string{"api", kind, "info"}, treePath(rel)...)...)
	if err != nil {
		return nil, err
	}
	var info FileInfo
	if err := c.do(ctx, http.MethodGet, target, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Download streams the raw bytes of the file at rel into w and returns the
// number of bytes copied.
func (c *Client) Download(ctx context.Context, rel string, w io.Writer) (int64, error) {
	target, err := c.endpoint(append([]string{"api", "file"}, treePath(rel)...)...)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, c.asError(resp)
	}

	return io.Copy(w, resp.Body)
}
