// Package dogsclient es un cliente Go de la API de perros.
package dogsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Dog es la representación JSON de un perro.
type Dog struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// DogInput es el cuerpo de create/update. Punteros nil no se envían.
type DogInput struct {
	Name   *string  `json:"name,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// APIError representa una respuesta no-2xx con el cuerpo {message, error}.
type APIError struct {
	StatusCode int
	Message    string
	Cause      string
}

func (e *APIError) Error() string {
	if e.Cause == "" {
		return fmt.Sprintf("dogs api: status=%d message=%q", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("dogs api: status=%d message=%q error=%q", e.StatusCode, e.Message, e.Cause)
}

// IsStatus indica si err es un *APIError con ese status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New crea un Client contra baseURL (p.ej. http://localhost:8080).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *Client) Hello(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/hello", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) List(ctx context.Context) ([]Dog, error) {
	var out []Dog
	if err := c.do(ctx, http.MethodGet, "/api/dogs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (Dog, error) {
	var out Dog
	err := c.do(ctx, http.MethodGet, dogPath(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, in DogInput) (Dog, error) {
	var out Dog
	err := c.do(ctx, http.MethodPost, "/api/dogs", in, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id string, in DogInput) (Dog, error) {
	var out Dog
	err := c.do(ctx, http.MethodPut, dogPath(id), in, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id string) (Dog, error) {
	var out Dog
	err := c.do(ctx, http.MethodDelete, dogPath(id), nil, &out)
	return out, err
}

// String y Float devuelven punteros para armar un DogInput.
func String(s string) *string  { return &s }
func Float(f float64) *float64 { return &f }

func dogPath(id string) string {
	return "/api/dogs/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("dogsclient: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("dogsclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("dogsclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("dogsclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("dogsclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Cause = payload.Error
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("dogsclient: unmarshal json: %w", err)
	}
	return nil
}
