// Package client is the Go SDK for the pricelist backend. It wraps
// every endpoint behind a single request path that normalizes both
// transport failures and application-level failures into the shared
// returncode envelope, so callers never branch on raw HTTP errors.
package client

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
	"time"
)

// Application-level return codes, mirroring the wire contract.
const (
	CodeOK             = "200"
	CodeSessionInvalid = "300"
	CodeSessionExpired = "301"
	// CodeUnavailable is synthesized client-side when the request never
	// completed; no server status can collide with it.
	CodeUnavailable = "405"
)

// Sentinel errors returned by wrapper operations. When one of these is
// returned the corresponding broadcast has already been published, so
// callers may ignore the error entirely and rely on their subscription.
var (
	// ErrUnavailable: the request never reached the server.
	ErrUnavailable = errors.New("backend unreachable")
	// ErrBackend: the server answered with a failure envelope.
	ErrBackend = errors.New("backend error")
	// ErrSessionInvalid: the stored credential was rejected.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrSessionExpired: the stored credential has expired.
	ErrSessionExpired = errors.New("session expired")
)

// Envelope is embedded in every endpoint result.
type Envelope struct {
	Returncode string `json:"returncode"`
	Message    string `json:"message,omitempty"`
}

func (e *Envelope) env() *Envelope { return e }

// OK reports whether the envelope carries the success code.
func (e *Envelope) OK() bool { return e.Returncode == CodeOK }

// result is satisfied by every endpoint result via the embedded Envelope.
type result interface{ env() *Envelope }

// User is the profile slice the backend shares with clients.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Language is one entry of the supported-language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Terms is the legal terms content, one string per section.
type Terms struct {
	Introduction         string `json:"introduction"`
	Services             string `json:"services"`
	UserResponsibilities string `json:"user_responsibilities"`
	Payments             string `json:"payments"`
	Liability            string `json:"liability"`
	Termination          string `json:"termination"`
	Changes              string `json:"changes"`
	Contact              string `json:"contact"`
}

// PriceItem mirrors a stored price-list row. Numeric fields are nil
// when the row has no value for them.
type PriceItem struct {
	ID             string   `json:"id"`
	ArticleNo      string   `json:"articleNo"`
	ProductService string   `json:"productService"`
	InPrice        *float64 `json:"inPrice"`
	Price          *float64 `json:"price"`
	Unit           *string  `json:"unit"`
	InStock        *int64   `json:"inStock"`
	Description    *string  `json:"description"`
}

// PriceItemInput carries the writable fields of a price item.
type PriceItemInput struct {
	ArticleNo      string   `json:"articleNo"`
	ProductService string   `json:"productService"`
	InPrice        *float64 `json:"inPrice"`
	Price          *float64 `json:"price"`
	Unit           *string  `json:"unit"`
	InStock        *int64   `json:"inStock"`
	Description    *string  `json:"description"`
}

// Per-endpoint result types. Each embeds the envelope, so a failed
// call still carries the normalized returncode and message.

type LoginResult struct {
	Envelope
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type TranslationResult struct {
	Envelope
	CurrentLanguage string            `json:"currentLanguage"`
	Translations    map[string]string `json:"translations"`
}

type LanguagesResult struct {
	Envelope
	Languages []Language `json:"languages"`
}

type TermsResult struct {
	Envelope
	Terms Terms `json:"terms"`
}

type PricelistResult struct {
	Envelope
	Data []PriceItem `json:"data"`
}

type ItemResult struct {
	Envelope
	Data PriceItem `json:"data"`
}

type DeleteResult struct {
	Envelope
}

// Options configures a Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:3000".
	BaseURL string
	// HTTPClient defaults to a client with a 15s timeout.
	HTTPClient *http.Client
	// Broadcaster receives failure events; required.
	Broadcaster *Broadcaster
	// Token supplies the bearer token for authenticated calls. An empty
	// return means "not logged in". May be nil for anonymous-only use.
	Token func() string
	// Language supplies the accept-language code. May be nil.
	Language func() string
}

// Client is the single choke point for all backend calls.
type Client struct {
	baseURL     string
	http        *http.Client
	broadcaster *Broadcaster
	token       func() string
	language    func() string
	translate   func(string) string
}

// New builds a Client from opts. Panics when Broadcaster is nil since
// the failure contract cannot be honored without one.
func New(opts Options) *Client {
	if opts.Broadcaster == nil {
		panic("client: Options.Broadcaster is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	language := opts.Language
	if language == nil {
		language = func() string { return "" }
	}
	return &Client{
		baseURL:     opts.BaseURL,
		http:        httpClient,
		broadcaster: opts.Broadcaster,
		token:       token,
		language:    language,
		translate:   func(key string) string { return key },
	}
}

// SetTranslator installs the lookup used to localize client-synthesized
// messages (transport failures have no server message to carry). The
// default returns the key unchanged.
func (c *Client) SetTranslator(fn func(string) string) {
	if fn != nil {
		c.translate = fn
	}
}

// Login authenticates against POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	out := &LoginResult{}
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/login", body, false, out)
	return out, err
}

// ChangeLanguage resolves the translation table for lang.
func (c *Client) ChangeLanguage(ctx context.Context, lang string) (*TranslationResult, error) {
	out := &TranslationResult{}
	err := c.do(ctx, http.MethodPost, "/translation/change", map[string]string{"lang": lang}, false, out)
	return out, err
}

// SupportedLanguages fetches the language catalog.
func (c *Client) SupportedLanguages(ctx context.Context) (*LanguagesResult, error) {
	out := &LanguagesResult{}
	err := c.do(ctx, http.MethodGet, "/translation/support", nil, false, out)
	return out, err
}

// FetchTerms fetches the legal terms for the active language.
func (c *Client) FetchTerms(ctx context.Context) (*TermsResult, error) {
	out := &TermsResult{}
	err := c.do(ctx, http.MethodGet, "/terms", nil, false, out)
	return out, err
}

// Pricelist lists price items, optionally filtered by search text.
func (c *Client) Pricelist(ctx context.Context, search string) (*PricelistResult, error) {
	path := "/pricelist"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	out := &PricelistResult{}
	err := c.do(ctx, http.MethodGet, path, nil, true, out)
	return out, err
}

// CreateItem creates a price item.
func (c *Client) CreateItem(ctx context.Context, input PriceItemInput) (*ItemResult, error) {
	out := &ItemResult{}
	err := c.do(ctx, http.MethodPost, "/pricelist", input, true, out)
	return out, err
}

// UpdateItem replaces the price item with the given id.
func (c *Client) UpdateItem(ctx context.Context, id string, input PriceItemInput) (*ItemResult, error) {
	out := &ItemResult{}
	err := c.do(ctx, http.MethodPut, "/pricelist/"+url.PathEscape(id), input, true, out)
	return out, err
}

// DeleteItem deletes the price item with the given id.
func (c *Client) DeleteItem(ctx context.Context, id string) (*DeleteResult, error) {
	out := &DeleteResult{}
	err := c.do(ctx, http.MethodDelete, "/pricelist/"+url.PathEscape(id), nil, true, out)
	return out, err
}

// do performs one normalized request. Exactly one of the following
// happens per call: out holds a success envelope and the error is nil,
// or one backend-error broadcast fired and a sentinel error is
// returned, or one session-error broadcast fired and a sentinel error
// is returned. Never more than one broadcast, never a raw transport
// error.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out result) error {
	env := out.env()

	var token string
	if authed {
		token = c.token()
		if token == "" {
			// A missing credential must never turn into a silent
			// unauthenticated round trip.
			env.Returncode = CodeSessionInvalid
			env.Message = c.translate("login.error_session")
			c.broadcaster.PublishSessionError(SessionError{Kind: SessionInvalid, Message: env.Message})
			return ErrSessionInvalid
		}
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang := c.language(); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		env.Returncode = CodeUnavailable
		env.Message = c.translate("error.network")
		c.broadcaster.PublishBackendError(BackendError{Returncode: CodeUnavailable, Message: env.Message})
		return ErrUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		// Decode failures fall through to the status-code path below.
		_ = json.Unmarshal(raw, out)
	}

	// Session failures win over everything else, including the HTTP
	// status they arrived with.
	switch env.Returncode {
	case CodeSessionInvalid:
		msg := c.messageOr(env, "login.error_session")
		c.broadcaster.PublishSessionError(SessionError{Kind: SessionInvalid, Message: msg})
		return ErrSessionInvalid
	case CodeSessionExpired:
		msg := c.messageOr(env, "login.error_expired")
		c.broadcaster.PublishSessionError(SessionError{Kind: SessionExpired, Message: msg})
		return ErrSessionExpired
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.OK() {
		if env.Returncode == "" || env.Returncode == CodeOK {
			env.Returncode = strconv.Itoa(resp.StatusCode)
		}
		msg := c.messageOr(env, "login.error_server")
		c.broadcaster.PublishBackendError(BackendError{Returncode: env.Returncode, Message: msg})
		return ErrBackend
	}

	return nil
}

// messageOr localizes the envelope message, falling back to a generic
// key when the server sent none.
func (c *Client) messageOr(env *Envelope, fallbackKey string) string {
	if env.Message == "" {
		env.Message = fallbackKey
	}
	return c.translate(env.Message)
}
