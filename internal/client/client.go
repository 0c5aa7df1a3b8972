// Package client is a typed HTTP client for the MedQuest API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lshigami/MedQuest/internal/dto"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("medquest: %d %s", e.StatusCode, e.Message)
}

// Client keeps the bearer token from the last successful Register or Login.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: r}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx).SetError(&dto.ErrorResponse{})
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do sends req and turns transport failures and {error} bodies into errors.
func do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if body, ok := resp.Error().(*dto.ErrorResponse); ok && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}
	return nil
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	req := c.request(ctx).
		SetBody(dto.LoginRequest{Email: email, Password: password}).
		SetResult(&out)
	if err := do(req, http.MethodPost, path); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := do(c.request(ctx).SetResult(&out), http.MethodGet, "/api/me"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Questions draws a quiz. Empty specialty means any; limit 0 uses the server default.
func (c *Client) Questions(ctx context.Context, specialty string, limit int) ([]dto.QuestionResponse, error) {
	var out []dto.QuestionResponse
	req := c.request(ctx).SetResult(&out)
	if specialty != "" {
		req.SetQueryParam("specialty", specialty)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if err := do(req, http.MethodGet, "/api/questions"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Specialties(ctx context.Context) ([]string, error) {
	var out []string
	if err := do(c.request(ctx).SetResult(&out), http.MethodGet, "/api/specialties"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecordAttempt(ctx context.Context, req dto.RecordAttemptRequest) (*dto.RecordAttemptResponse, error) {
	var out dto.RecordAttemptResponse
	if err := do(c.request(ctx).SetBody(req).SetResult(&out), http.MethodPost, "/api/attempts"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	var out dto.AnalyticsResponse
	if err := do(c.request(ctx).SetResult(&out), http.MethodGet, "/api/analytics"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Subscribe(ctx context.Context) error {
	return do(c.request(ctx).SetResult(&dto.SuccessResponse{}), http.MethodPost, "/api/subscribe")
}

func (c *Client) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (uint, error) {
	var out dto.IDResponse
	if err := do(c.request(ctx).SetBody(req).SetResult(&out), http.MethodPost, "/api/questions"); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id uint) error {
	path := "/api/questions/" + strconv.FormatUint(uint64(id), 10)
	return do(c.request(ctx).SetResult(&dto.SuccessResponse{}), http.MethodDelete, path)
}

func (c *Client) AllQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	var out []dto.QuestionResponse
	if err := do(c.request(ctx).SetResult(&out), http.MethodGet, "/api/admin/questions"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DraftQuestion(ctx context.Context, req dto.DraftQuestionRequest) (*dto.CreateQuestionRequest, error) {
	var out dto.CreateQuestionRequest
	if err := do(c.request(ctx).SetBody(req).SetResult(&out), http.MethodPost, "/api/admin/questions/draft"); err != nil {
		return nil, err
	}
	return &out, nil
}
