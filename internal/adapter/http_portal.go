package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

type httpPortalAdapter struct {
	client   *utils.HTTPClient
	source   ConnectionSource
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the resty implementation of
// [PortalAdapter]. The base URL is not fixed at construction: every request
// resolves the current endpoint from source, and a before-request hook
// attaches credentials via [AttachAuth] and a trace id.
func NewHTTPPortalAdapter(cfg config.ClientAdapter, source ConnectionSource, logger *logger.Logger) PortalAdapter {
	a := &httpPortalAdapter{
		client:   utils.NewHTTPClient(cfg.RequestTimeout),
		source:   source,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	a.client.OnBeforeRequest(a.beforeRequest)
	return a
}

func (h *httpPortalAdapter) beforeRequest(_ *resty.Client, req *resty.Request) error {
	req.Header = AttachAuth(req.Header, h.source)

	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	if !ok {
		traceID = h.traceIDs.Generate()
	}
	req.SetHeader(TraceIDHeader, traceID)
	return nil
}

// Overview implements [PortalAdapter].
func (h *httpPortalAdapter) Overview(ctx context.Context) (models.Overview, error) {
	base, err := h.baseURL()
	if err != nil {
		return models.Overview{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(base + "/api/overview")
	if err != nil {
		h.logger.Err(err).Str("func", "httpPortalAdapter.Overview").Msg("overview request failed")
		return models.Overview{}, fmt.Errorf("%w: overview request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Overview{}, err
	}

	var overview models.Overview
	if err = json.Unmarshal(resp.Body(), &overview); err != nil {
		return models.Overview{}, fmt.Errorf("decode overview response: %w", err)
	}
	if overview.Bots == nil {
		overview.Bots = map[string]models.BotSummary{}
	}

	return overview, nil
}

// Ping implements [PortalAdapter]. It requests the portal root.
func (h *httpPortalAdapter) Ping(ctx context.Context) error {
	base, err := h.baseURL()
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(base + "/")
	if err != nil {
		return fmt.Errorf("%w: ping request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// BotDashboardURL implements [PortalAdapter].
func (h *httpPortalAdapter) BotDashboardURL(botID string) (string, error) {
	botID = strings.TrimSpace(botID)
	if botID == "" {
		return "", ErrInvalidBotID
	}

	base, err := h.baseURL()
	if err != nil {
		return "", err
	}

	return base + "/bot/" + url.PathEscape(botID) + "/", nil
}

func (h *httpPortalAdapter) baseURL() (string, error) {
	endpoint, ok := h.source.Endpoint()
	if !ok {
		return "", ErrNoEndpoint
	}
	return endpoint.BaseURL(), nil
}
