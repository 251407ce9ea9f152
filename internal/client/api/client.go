// Package api is the REST client for the FitLife Tracker server. Every call
// decodes the {success, message, data} envelope and turns failures back into
// the shared error taxonomy, so callers can react to an auth rejection the
// same way on both sides of the wire.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/dto"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	exdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/domain"
	favdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	tipsdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/tips/domain"
)

const requestTimeout = 10 * time.Second

// TokenSource supplies the current bearer token; empty means anonymous.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func New(baseURL string, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		token:   token,
	}
}

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Kind    string          `json:"kind"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request and decodes the envelope. A failure envelope is
// returned as an *AppError carrying the server's kind, so errors.Is checks
// against the shared sentinels keep working on the client.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return &apperrors.AppError{Kind: kindFor(env.Kind, resp.StatusCode), Msg: env.Message}
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// kindFor trusts the kind the server sent and falls back to the status code
// for responses outside the envelope contract, like the router's 404.
func kindFor(kind string, status int) apperrors.Kind {
	if kind != "" {
		return apperrors.Kind(kind)
	}
	switch status {
	case http.StatusUnauthorized:
		return apperrors.KindAuth
	case http.StatusNotFound:
		return apperrors.KindNotFound
	case http.StatusBadRequest:
		return apperrors.KindValidation
	default:
		return apperrors.KindInternal
	}
}

// IsAuthError reports whether err is the server rejecting our credentials or
// token, which is the signal to drop the cached session.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	return apperrors.FromError(err).Kind == apperrors.KindAuth
}

func (c *Client) Register(ctx context.Context, in dto.RegisterInput) (*dto.AuthOutput, error) {
	var out dto.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, in dto.LoginInput) (*dto.AuthOutput, error) {
	var out dto.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*dto.UserOutput, error) {
	var out struct {
		User dto.UserOutput `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Verify asks the server whether the current token is still good and returns
// the user ID it resolves to.
func (c *Client) Verify(ctx context.Context) (string, error) {
	var out struct {
		UserID string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify", nil, &out); err != nil {
		return "", err
	}
	return out.UserID, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in dto.UpdateProfileInput) (*dto.UserOutput, error) {
	var out struct {
		User dto.UserOutput `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, in dto.ChangePasswordInput) error {
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", in, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", dto.ForgotPasswordInput{Email: email}, nil)
}

func (c *Client) Favourites(ctx context.Context) ([]favdomain.Favourite, error) {
	var out []favdomain.Favourite
	if err := c.do(ctx, http.MethodGet, "/api/favourites/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavourite returns the updated list, as the server does.
func (c *Client) AddFavourite(ctx context.Context, fav favdomain.Favourite) ([]favdomain.Favourite, error) {
	var out []favdomain.Favourite
	if err := c.do(ctx, http.MethodPost, "/api/favourites/", fav, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RemoveFavourite(ctx context.Context, exerciseName string) ([]favdomain.Favourite, error) {
	var out []favdomain.Favourite
	path := "/api/favourites/" + url.PathEscape(exerciseName)
	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClearFavourites(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/favourites/", nil, nil)
}

func (c *Client) Exercises(ctx context.Context, q exdomain.Query) ([]exdomain.Exercise, error) {
	params := url.Values{}
	if q.Muscle != "" {
		params.Set("muscle", q.Muscle)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	path := "/api/exercises/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []exdomain.Exercise
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Exercise(ctx context.Context, id string) (*exdomain.Exercise, error) {
	var out exdomain.Exercise
	if err := c.do(ctx, http.MethodGet, "/api/exercises/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExerciseFilters(ctx context.Context) (*exdomain.Filters, error) {
	var out exdomain.Filters
	if err := c.do(ctx, http.MethodGet, "/api/exercises/filters", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Tips(ctx context.Context, q tipsdomain.Query) ([]tipsdomain.Tip, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Random > 0 {
		params.Set("random", fmt.Sprintf("%d", q.Random))
	}

	path := "/api/tips/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []tipsdomain.Tip
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TipCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/tips/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
