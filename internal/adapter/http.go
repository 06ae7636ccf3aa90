// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/utils"
	"golang.org/x/time/rate"
)

type restAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	limiter  *rate.Limiter

	apiKey    string
	apiSecret string
	authToken string
	userID    string

	logger *logger.Logger
}

// NewRESTAdapter constructs the REST implementation of [RemoteAdapter].
// It validates the endpoint from adapterCfg, configures the underlying HTTP
// client with the request timeout and paces calls to
// adapterCfg.RequestsPerSecond (a non-positive rate disables pacing).
//
// Returns an error if the endpoint is empty or cannot be parsed as a URL.
func NewRESTAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (RemoteAdapter, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint: %w", err)
	}

	limit := rate.Inf
	if adapterCfg.RequestsPerSecond > 0 {
		limit = rate.Limit(adapterCfg.RequestsPerSecond)
	}

	return &restAdapter{
		client:    utils.NewHTTPClient(adapterCfg.RequestTimeout),
		endpoint:  endpoint,
		limiter:   rate.NewLimiter(limit, 1),
		apiKey:    appCfg.APIKey,
		apiSecret: appCfg.APISecret,
		authToken: strings.TrimSpace(appCfg.AuthToken),
		userID:    appCfg.UserID,
		logger:    logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// call posts one signed API method and decodes the payload into out. A
// failed status payload is returned as *APIError.
func (r *restAdapter) call(ctx context.Context, method string, params map[string]string, out any) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s wait: %w", method, err)
	}

	form := map[string]string{
		"method":         method,
		"api_key":        r.apiKey,
		"format":         "json",
		"nojsoncallback": "1",
	}
	if r.authToken != "" {
		form["auth_token"] = r.authToken
	}
	maps.Copy(form, params)
	form["api_sig"] = utils.SignParams(r.apiSecret, form)

	resp, err := r.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(r.endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var status apiStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return fmt.Errorf("%s decode status: %w", method, err)
	}
	if status.Stat != "ok" {
		apiErr := classifyAPIError(method, int(status.Code), status.Message)
		r.logger.Debug().
			Str("func", "restAdapter.call").
			Str("method", method).
			Int("code", apiErr.Code).
			Msg(apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s decode: %w", method, err)
	}

	return nil
}

func pageParams(page, perPage int, extra map[string]string) map[string]string {
	params := map[string]string{
		"page":     fmt.Sprint(page),
		"per_page": fmt.Sprint(perPage),
	}
	maps.Copy(params, extra)
	return params
}
