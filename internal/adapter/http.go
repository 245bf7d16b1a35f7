package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/utils"
	"github.com/trackflow/trackflow-server/models"
)

const bearerPrefix = "Bearer "

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL is taken from cfg.HTTPAddress; an address without a scheme is
// treated as plain http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	if _, err := h.call(h.client.R().SetContext(ctx), http.MethodGet, "/health", &status); err != nil {
		return models.HealthStatus{}, err
	}
	return status, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User
	resp, err := h.call(h.client.R().SetContext(ctx).SetBody(credentials), http.MethodPost, "/api/user/register", &user)
	if err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	var result models.LoginResult
	_, err := h.call(h.client.R().SetContext(ctx).SetBody(credentials), http.MethodPost, "/api/user/login", &result)

	var appErr *models.Error
	if errors.As(err, &appErr) && appErr.Code == models.CodeUnauthorized {
		if raw, ok := appErr.Data.(json.RawMessage); ok && json.Unmarshal(raw, &result) == nil {
			return result, nil
		}
		return models.LoginResult{Success: false, Message: appErr.Message}, nil
	}
	if err != nil {
		return models.LoginResult{}, err
	}

	if result.Token == "" {
		return models.LoginResult{}, fmt.Errorf("login: %w", ErrMissingBearerToken)
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if _, err = h.call(req, http.MethodGet, "/api/auth/profile", &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := h.call(h.client.R().SetContext(ctx), http.MethodPost, "/api/user/getUsers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, page models.PageRequest) (models.PaginationData[models.User], error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("pageSize", strconv.Itoa(page.PageSize))

	var data models.PaginationData[models.User]
	if _, err := h.call(req, http.MethodGet, "/api/user/list", &data); err != nil {
		return models.PaginationData[models.User]{}, err
	}
	return data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// call executes req and decodes the envelope data into out.
func (h *httpServerAdapter) call(req *resty.Request, method, path string, out any) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return resp, err
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Int("code", int(*env.Code)).
		Msg("server replied")

	if err = errorFromEnvelope(env); err != nil {
		return resp, err
	}

	if out != nil && env.hasData() {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return resp, fmt.Errorf("%w: decode data of %s %s: %w", ErrUnexpectedResponse, method, path, err)
		}
	}

	return resp, nil
}

func parseBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMissingBearerToken
	}

	return strings.TrimSpace(header[len(bearerPrefix):]), nil
}
