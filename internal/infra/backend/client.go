// Package backend is the HTTP client for the authoritative
// reservations API. The gateway only ever reads from it; every
// mutation stays between the frontend and the backend itself.
package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/usecase/queries"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ListReservations fetches reservations for the filter. The caller's
// bearer token is forwarded as-is; the client keeps no credential
// state of its own.
func (c *Client) ListReservations(ctx context.Context, token string, filter queries.ReservationFilter) ([]reservation.Reservation, error) {
	query := url.Values{}
	if filter.ProfessorID != nil {
		query.Set("professorId", filter.ProfessorID.String())
	}
	if filter.SpaceID != nil {
		query.Set("spaceId", filter.SpaceID.String())
	}
	if filter.Date != nil {
		query.Set("date", filter.Date.ISO())
	}

	var dtos []reservationDTO
	if err := c.getJSON(ctx, token, "/reservations", query, &dtos); err != nil {
		return nil, err
	}

	rs := make([]reservation.Reservation, len(dtos))
	for i, dto := range dtos {
		rs[i] = dto.toDomain()
	}
	return rs, nil
}

// ListSpaces fetches the academic spaces catalog.
func (c *Client) ListSpaces(ctx context.Context, token string) ([]queries.SpaceView, error) {
	var dtos []spaceDTO
	if err := c.getJSON(ctx, token, "/spaces", nil, &dtos); err != nil {
		return nil, err
	}

	spaces := make([]queries.SpaceView, len(dtos))
	for i, dto := range dtos {
		spaces[i] = dto.toView()
	}
	return spaces, nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errs.Wrap(err, "building backend request")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "path", path, "error", err)
		return errs.Mark(err, errs.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrNotFound
	default:
		c.logger.Error("backend returned unexpected status", "path", path, "status", resp.StatusCode)
		return errs.Mark(errs.New("unexpected backend status"), errs.ErrBackendUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("backend response decode failed", "path", path, "error", err)
		return errs.Mark(err, errs.ErrBackendUnavailable)
	}
	return nil
}
