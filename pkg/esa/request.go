package esa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	jsonitor "github.com/json-iterator/go"
)

// requestBody is the tagged set of body kinds a call site can attach to a
// request: nil for no body, jsonBody for a JSON payload, multipartBody for
// a form upload. The kind is chosen explicitly by each call site rather
// than inferred from the payload value.
type requestBody interface {
	contentType() string
	reader() (io.Reader, error)
}

// jsonBody serializes its payload as an application/json request body.
type jsonBody struct {
	payload any
}

func (b jsonBody) contentType() string {
	return "application/json"
}

func (b jsonBody) reader() (io.Reader, error) {
	data, err := jsonitor.ConfigCompatibleWithStandardLibrary.Marshal(b.payload)
	if err != nil {
		return nil, fmt.Errorf("esa: failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// multipartBody carries a prebuilt multipart form. The form is encoded
// once up front so a rate-limit retry re-sends identical bytes, and so the
// boundary header replaces the JSON default.
type multipartBody struct {
	data     []byte
	boundary string
}

func (b *multipartBody) contentType() string {
	return "multipart/form-data; boundary=" + b.boundary
}

func (b *multipartBody) reader() (io.Reader, error) {
	return bytes.NewReader(b.data), nil
}

// request describes one exchange against the API before dispatch.
type request struct {
	method string
	path   string     // path template, may contain teamPlaceholder
	query  url.Values // encoded onto the URL, used by GET calls
	body   requestBody
	team   string // explicit team override, empty to use the session default
}

// do performs one logical API call: it resolves the effective team,
// substitutes the path placeholder, attaches authentication, executes the
// exchange, and decodes the response into out. Rate-limited exchanges are
// waited out per the server's Retry-After hint and re-issued; every other
// failure surfaces to the caller.
//
// When no team resolves, the placeholder is left in place and the exchange
// proceeds against the malformed path; supplying a team for team-scoped
// endpoints is part of the caller contract.
func (c *Client) do(ctx context.Context, req request, out any) error {
	p := req.path
	if team := c.resolveTeam(req.team); team != "" {
		p = strings.ReplaceAll(p, teamPlaceholder, team)
	}

	u := c.baseURL + apiVersion + p
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	// retry-go counts attempts, not retries; zero keeps retrying until
	// the server stops rate limiting.
	attempts := c.rateLimitRetries
	if attempts > 0 {
		attempts++
	}

	return retry.Do(
		func() error {
			return c.exchange(ctx, req.method, u, req.body, out)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.RetryIf(isRateLimited),
		retry.DelayType(func(_ uint, err error, _ *retry.Config) time.Duration {
			var rl *rateLimitError
			if errors.As(err, &rl) {
				return c.retryDelay(rl.retryAfter)
			}
			return 0
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn().Uint("attempt", n+1).Err(err).Msg("rate limited, waiting before retry")
		}),
	)
}

// exchange performs a single HTTP round trip and classifies the response.
func (c *Client) exchange(ctx context.Context, method, rawURL string, body requestBody, out any) error {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		r, err := body.reader()
		if err != nil {
			return err
		}
		bodyReader = r
		contentType = body.contentType()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return fmt.Errorf("esa: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug().Str("method", method).Str("url", rawURL).Msg("dispatching request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("esa: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return &rateLimitError{
			retryAfter: retryAfterHint(resp.Header),
			apiErr: &APIError{
				StatusCode: resp.StatusCode,
				Message:    "rate limit exceeded",
			},
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if resp.StatusCode >= 400 {
			return newAPIError(resp.StatusCode, nil)
		}
		return fmt.Errorf("esa: failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	// 204 carries no content; nothing to decode.
	if resp.StatusCode == http.StatusNoContent || out == nil || len(respBody) == 0 {
		return nil
	}

	if err := jsonitor.ConfigCompatibleWithStandardLibrary.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("esa: failed to decode response: %w", err)
	}
	return nil
}

// retryAfterHint parses the Retry-After header as integer seconds. A
// missing or unparsable header yields the default wait.
func retryAfterHint(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}
