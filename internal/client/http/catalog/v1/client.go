package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/you-humble/partexplorer/internal/client/converter"
	"github.com/you-humble/partexplorer/internal/metrics"
	"github.com/you-humble/partexplorer/internal/model"
	catalogv1 "github.com/you-humble/partexplorer/pkg/catalogapi/v1"
)

const maxErrorBody = 4 << 10

type client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch executes a dispatched request. Cancelling ctx aborts the call and the
// returned error wraps ctx.Err().
func (c *client) Fetch(ctx context.Context, req model.CatalogRequest) (model.CatalogPage, error) {
	const op = "catalogclient.client.Fetch"

	url := req.URL(c.baseURL)

	switch req.Endpoint {
	case model.EndpointPlate:
		var resp catalogv1.PlateSearchResponse
		if err := c.getJSON(ctx, string(req.Endpoint), url, &resp); err != nil {
			return model.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
		}
		page, err := plateToPage(resp)
		if err != nil {
			return model.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
		}
		return page, nil
	default:
		var resp catalogv1.SearchResponse
		if err := c.getJSON(ctx, string(req.Endpoint), url, &resp); err != nil {
			return model.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
		}
		if resp.Results == nil {
			return model.CatalogPage{}, fmt.Errorf("%s: %w: results field missing", op, model.ErrMalformedResponse)
		}
		return model.CatalogPage{
			Items: converter.SearchResultsToModel(*resp.Results),
			Total: resp.Total,
		}, nil
	}
}

func plateToPage(resp catalogv1.PlateSearchResponse) (model.CatalogPage, error) {
	if !resp.Success {
		return model.CatalogPage{}, fmt.Errorf("%w: %s", model.ErrNetworkFailure, describe(resp.Error, resp.Details, resp.Message))
	}
	if resp.Data == nil || resp.Data.Parts == nil || resp.Data.Parts.Results == nil {
		return model.CatalogPage{}, fmt.Errorf("%w: parts results missing", model.ErrMalformedResponse)
	}

	return model.CatalogPage{
		Items:   converter.SearchResultsToModel(*resp.Data.Parts.Results),
		Total:   resp.Data.Parts.Total,
		Vehicle: converter.CarInfoToModel(resp.Data.CarInfo),
	}, nil
}

func (c *client) Companies(ctx context.Context) ([]model.ReferenceCompany, error) {
	const op = "catalogclient.client.Companies"

	var resp catalogv1.CompaniesResponse
	if err := c.getJSON(ctx, "companies", c.baseURL+"/companies", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return converter.CompaniesToModel(resp.Companies), nil
}

func (c *client) Brands(ctx context.Context) ([]model.ReferenceBrand, error) {
	const op = "catalogclient.client.Brands"

	var resp catalogv1.BrandsResponse
	if err := c.getJSON(ctx, "brands", c.baseURL+"/brands", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return converter.BrandsToModel(resp.Brands), nil
}

func (c *client) Cities(ctx context.Context) ([]string, error) {
	const op = "catalogclient.client.Cities"

	var resp catalogv1.CitiesResponse
	if err := c.getJSON(ctx, "cities", c.baseURL+"/cities", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return converter.CitiesToModel(resp.Cities), nil
}

func (c *client) getJSON(ctx context.Context, endpoint, url string, dst any) error {
	start := time.Now()
	status := metrics.StatusOK
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		status = metrics.StatusError
		return fmt.Errorf("%w: build request: %v", model.ErrNetworkFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(ctxErr, context.Canceled) {
			status = metrics.StatusCancelled
			return ctxErr
		}
		status = metrics.StatusError
		return fmt.Errorf("%w: %v", model.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status = metrics.StatusError
		var body catalogv1.ErrorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body)
		return fmt.Errorf("%w: status %d: %s", model.ErrNetworkFailure, resp.StatusCode, describe(body.Error, body.Details, http.StatusText(resp.StatusCode)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(ctxErr, context.Canceled) {
			status = metrics.StatusCancelled
			return ctxErr
		}
		status = metrics.StatusError
		return fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}

	return nil
}

func describe(msg, details, fallback string) string {
	switch {
	case msg != "" && details != "":
		return msg + " (" + details + ")"
	case msg != "":
		return msg
	case details != "":
		return details
	case fallback != "":
		return fallback
	default:
		return "request failed"
	}
}
