package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-system/gateway-service/domain"
)

// HeaderUserName carries the caller identity to the downstream services
const HeaderUserName = "X-User-Name"

// baseClient is the shared outbound HTTP helper used by all three service
// clients. Every call gets its own deadline; a call that exceeds it is a
// remote failure, never an infinite block. No retries: each remote call is
// attempted exactly once.
type baseClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

func newBaseClient(baseURL string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) baseClient {
	return baseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		timeout: timeout,
		log:     log,
	}
}

// do performs one outbound call and returns the remote response verbatim.
// Transport-level failures are classified as ErrUpstreamTimeout or
// ErrUpstreamUnavailable; any HTTP status, success or not, comes back as a
// RemoteResponse for the caller to interpret.
func (c *baseClient) do(ctx context.Context, method, path string, query url.Values, header http.Header, body []byte) (*domain.RemoteResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.classify(method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUpstreamUnavailable, "reading response from %s: %v", endpoint, err)
	}

	return &domain.RemoteResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// getJSON performs a GET, requires a 2xx status and decodes the JSON body
// into out. A non-2xx status comes back as *domain.UpstreamError; a body
// that is not valid JSON counts as an unavailable upstream.
func (c *baseClient) getJSON(ctx context.Context, path string, query url.Values, header http.Header, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, header, nil)
	if err != nil {
		return err
	}
	if !resp.Successful() {
		return &domain.UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.ContentType,
			Body:        resp.Body,
		}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.Wrapf(domain.ErrUpstreamUnavailable, "non-JSON response from %s: %v", path, err)
	}
	return nil
}

func (c *baseClient) classify(method, endpoint string, err error) error {
	c.log.Warn("outbound call failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Error(err),
	)

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrapf(domain.ErrUpstreamTimeout, "%s %s", method, endpoint)
	}
	return errors.Wrapf(domain.ErrUpstreamUnavailable, "%s %s: %v", method, endpoint, err)
}

func identityHeader(userName string) http.Header {
	h := http.Header{}
	h.Set(HeaderUserName, userName)
	return h
}
