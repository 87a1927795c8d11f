package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

type BinsClient interface {
	GenerateBins(ctx context.Context) (string, error)
	GetBins(ctx context.Context) ([]types.Bin, error)
}

type binsClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("waste-bin-mgmt-client")

func New(url string) BinsClient {
	return &binsClient{
		url: strings.TrimSuffix(url, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GenerateBins asks the service to replace all bins with a new generation and
// returns the confirmation message.
func (c *binsClient) GenerateBins(ctx context.Context) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "generate-bins")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	body, err := c.do(ctx, http.MethodPost, "/generate_bins")
	if err != nil {
		log.Error().Err(err).Msg("failed to generate bins")
		return "", err
	}

	result := struct {
		Message string `json:"message"`
	}{}

	err = json.Unmarshal(body, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return "", err
	}

	return result.Message, nil
}

func (c *binsClient) GetBins(ctx context.Context) ([]types.Bin, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-bins")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.do(ctx, http.MethodGet, "/bins")
	if err != nil {
		return nil, err
	}

	result := []types.Bin{}

	err = json.Unmarshal(body, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return result, nil
}

func (c *binsClient) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := struct {
			Detail string `json:"detail"`
		}{}
		if json.Unmarshal(respBody, &detail) == nil && detail.Detail != "" {
			return nil, fmt.Errorf("request failed with status code %d: %s", resp.StatusCode, detail.Detail)
		}
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	return respBody, nil
}
