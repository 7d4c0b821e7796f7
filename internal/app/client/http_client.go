package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"convertor/internal/app/client/config"
	"convertor/internal/domain/apierr"
	"convertor/internal/domain/conversion"
	"convertor/internal/domain/plan"
	"convertor/internal/domain/user"
)

// httpClient - unica poartă de ieșire către backend. Orice răspuns de eroare
// este normalizat în *apierr.Error (mesaj + cod opțional); fluxul de conversie
// se ramifică pe cod, deci normalizarea nu este opțională.
type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		userAgent: "ConvertorImagini-Client/1.0",
	}, nil
}

// Login autentifică utilizatorul pe backend.
func (h *httpClient) Login(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/users/login", req)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// Register creează un cont nou.
func (h *httpClient) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/users", req)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// GetPlans aduce lista planurilor disponibile.
func (h *httpClient) GetPlans(ctx context.Context) ([]plan.Plan, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/plans", nil)
	if err != nil {
		return nil, err
	}

	var plans []plan.Plan
	if err := h.parseResponse(resp, &plans); err != nil {
		return nil, err
	}

	return plans, nil
}

// UpdateUserPlan schimbă planul utilizatorului pe backend.
func (h *httpClient) UpdateUserPlan(ctx context.Context, userID, planID int) (*user.User, error) {
	req := struct {
		PlanID int `json:"planid"`
	}{
		PlanID: planID,
	}

	resp, err := h.doRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%d", userID), req)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser aduce detaliile utilizatorului, cu planul activ inclus.
func (h *httpClient) GetUser(ctx context.Context, userID int) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// GetConversionInfo aduce cota de conversii calculată de server.
func (h *httpClient) GetConversionInfo(ctx context.Context, userID int) (*conversion.Info, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/users/%d/conversions", userID), nil)
	if err != nil {
		return nil, err
	}

	var info conversion.Info
	if err := h.parseResponse(resp, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// SubmitUsage trimite o înregistrare de utilizare pentru contorizare.
func (h *httpClient) SubmitUsage(ctx context.Context, entry conversion.UsageLog) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/usage", entry)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("eroare la serializarea corpului cererii: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("eroare la crearea cererii: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("trimit cerere",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eroare la executarea cererii: %w", err)
	}

	return resp, nil
}

// parseResponse normalizează răspunsul. Pe status >= 400 extrage mesajul și
// codul din corpul {error, errorCode?}; dacă forma nu este recunoscută, cade
// pe mesajul generic de conectivitate.
func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("eroare la citirea răspunsului: %w", err)
	}

	h.log.Debug("răspuns primit",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error     string `json:"error"`
			ErrorCode string `json:"errorCode"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return &apierr.Error{
				Message: errResp.Error,
				Code:    apierr.ParseCode(errResp.ErrorCode),
				Status:  resp.StatusCode,
			}
		}
		return &apierr.Error{
			Message: apierr.GenericMessage,
			Status:  resp.StatusCode,
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("eroare la interpretarea răspunsului: %w", err)
		}
	}

	return nil
}
