package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs the REST implementation of [VaultAPI]. The
// base URL comes from adapterCfg.HTTPAddress; a scheme-less address gets
// "http://". When token is non-empty it is sent as a bearer token.
func NewHTTPVaultAdapter(adapterCfg config.Adapter, token string, logger *logger.Logger) (VaultAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.Retries)

	return &httpVaultAdapter{
		client: client,
		token:  strings.TrimSpace(token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// List implements [VaultAPI].
func (h *httpVaultAdapter) List(ctx context.Context, userID string) ([]models.VaultRecord, error) {
	var records []models.VaultRecord

	resp, err := h.request(ctx).
		SetPathParam("userId", userID).
		SetResult(&records).
		Get("/vault/{userId}")
	if err != nil {
		h.logger.Err(err).Str("func", "httpVaultAdapter.List").Msg("list request failed")
		return nil, fmt.Errorf("%w: list request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.VaultRecord{}
	}
	return records, nil
}

// Create implements [VaultAPI]. A response without a body yields the sent
// record.
func (h *httpVaultAdapter) Create(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	var saved models.VaultRecord

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&saved).
		Post("/vault")
	if err != nil {
		h.logger.Err(err).Str("func", "httpVaultAdapter.Create").Msg("create request failed")
		return models.VaultRecord{}, fmt.Errorf("%w: create request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return mergeSaved(record, saved), nil
}

// Update implements [VaultAPI].
func (h *httpVaultAdapter) Update(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	var saved models.VaultRecord

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", record.ID).
		SetBody(record).
		SetResult(&saved).
		Put("/vault/{id}")
	if err != nil {
		h.logger.Err(err).Str("func", "httpVaultAdapter.Update").Msg("update request failed")
		return models.VaultRecord{}, fmt.Errorf("%w: update request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return mergeSaved(record, saved), nil
}

// Delete implements [VaultAPI]. The API identifies the record by id only;
// ownership is enforced by the bearer token.
func (h *httpVaultAdapter) Delete(ctx context.Context, userID, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/vault/{id}")
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpVaultAdapter.Delete").
			Msg("delete request failed")
		return fmt.Errorf("%w: delete request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func mergeSaved(sent, saved models.VaultRecord) models.VaultRecord {
	if saved.ID == "" {
		return sent
	}
	return saved
}
