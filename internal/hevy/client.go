package hevy

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

	"hevy-insights/internal/workout"
)

// DefaultBaseURL is the unofficial Hevy API endpoint.
const DefaultBaseURL = "https://api.hevyapp.com"

// DefaultAPIKey is the static key the mobile clients send; it is the
// same for every user of the free API.
const DefaultAPIKey = "klean_kanteen_insulated"

// Client is a Hevy API client. It is safe for concurrent use once the
// auth token is set.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	authToken  string
}

// NewClient creates a client against the given base URL (empty means
// DefaultBaseURL) with an optional previously stored auth token.
func NewClient(baseURL, apiKey, authToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		authToken:  authToken,
	}
}

// SetAuthToken installs the token used on subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// Login exchanges credentials for an auth token and installs it on the
// client. Invalid credentials return ErrUnauthorized.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (*Session, error) {
	body := map[string]any{
		"emailOrUsername": emailOrUsername,
		"password":        password,
		"useAuth2_0":      true,
	}

	var resp struct {
		AuthToken string `json:"auth_token"`
		UserID    string `json:"user_id"`
	}
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return nil, err
	}

	c.authToken = resp.AuthToken

	session := &Session{AuthToken: resp.AuthToken, UserID: resp.UserID}
	if isEmail(emailOrUsername) {
		session.Email = emailOrUsername
	} else {
		session.Username = emailOrUsername
	}
	return session, nil
}

// ValidateToken reports whether the client's auth token is still
// accepted by the API.
func (c *Client) ValidateToken(ctx context.Context) (bool, error) {
	if c.authToken == "" {
		return false, nil
	}

	body := map[string]any{"authToken": c.authToken}
	err := c.post(ctx, "/validate_auth_token", body, nil)
	if err == nil {
		return true, nil
	}
	if isUnauthorized(err) {
		return false, nil
	}
	return false, err
}

// GetAccount fetches the authenticated user's account info.
func (c *Client) GetAccount(ctx context.Context) (workout.Account, error) {
	var resp struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.get(ctx, "/user/account", nil, &resp); err != nil {
		return workout.Account{}, err
	}
	return workout.Account{Username: resp.Username, Email: resp.Email}, nil
}

// GetWorkouts fetches one page of workouts at the given offset. The
// page size is fixed by the API; callers advance the offset by the
// number of records per page. An empty slice marks the end.
func (c *Client) GetWorkouts(ctx context.Context, username string, offset int) ([]workout.Record, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	if username != "" {
		params.Set("username", username)
	}

	var resp struct {
		Workouts []Workout `json:"workouts"`
	}
	if err := c.get(ctx, "/user_workouts_paged", params, &resp); err != nil {
		return nil, err
	}

	records := make([]workout.Record, 0, len(resp.Workouts))
	for _, w := range resp.Workouts {
		records = append(records, w.ToRecord())
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("auth-token", c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: invalid or expired auth token", ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w %d: %s", ErrAPI, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", workout.ErrMalformed)
	}
	return nil
}

func isEmail(s string) bool {
	for _, r := range s {
		if r == '@' {
			return true
		}
	}
	return false
}

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
