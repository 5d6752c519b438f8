package esa

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up a local server and points a client at it. The
// API origin is not caller-configurable, so tests reach into the
// unexported field directly.
func newTestClient(t *testing.T, handler http.Handler, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-token", opts...)
	require.NoError(t, err)
	c.baseURL = srv.URL
	return c
}

// decodeSpy records whether the response decoder was ever invoked.
type decodeSpy struct {
	called bool
}

func (d *decodeSpy) UnmarshalJSON([]byte) error {
	d.called = true
	return nil
}

func TestQueryEncoding(t *testing.T) {
	t.Run("NonAbsentEntriesOnly", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"posts":[]}`))
		}))

		_, err := c.Posts(context.Background(), "acme", &PostListOptions{
			Query:   "wip:false",
			Page:    2,
			PerPage: 50,
		})
		require.NoError(t, err)
		assert.Equal(t, "page=2&per_page=50&q=wip%3Afalse", gotQuery)
	})

	t.Run("EmptyOptionsProduceNoQuery", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"posts":[]}`))
		}))

		_, err := c.Posts(context.Background(), "acme", nil)
		require.NoError(t, err)
		assert.Equal(t, "", gotQuery)
	})
}

func TestJSONBodyEncoding(t *testing.T) {
	t.Run("PostCreateWrapping", func(t *testing.T) {
		var gotBody []byte
		var gotContentType string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			gotContentType = r.Header.Get("Content-Type")
			w.Write([]byte(`{"number":1,"name":"hi!"}`))
		}))

		post, err := c.CreatePost(context.Background(), "acme", &PostCreateParams{
			Name:   "hi!",
			BodyMD: "# Getting Started",
			Tags:   []string{"api"},
			WIP:    Bool(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.JSONEq(t,
			`{"post":{"name":"hi!","body_md":"# Getting Started","tags":["api"],"wip":false}}`,
			string(gotBody))
		assert.Equal(t, 1, post.Number)
	})

	t.Run("DeleteSendsNoBody", func(t *testing.T) {
		var gotLen int64
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLen = r.ContentLength
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, c.DeletePost(context.Background(), "acme", 42))
		assert.LessOrEqual(t, gotLen, int64(0))
	})
}

func TestRateLimitRetry(t *testing.T) {
	t.Run("RetriesAfterHint", func(t *testing.T) {
		var exchanges atomic.Int32
		var waits []time.Duration
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			if exchanges.Add(1) == 1 {
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"name":"acme"}`))
		}), WithRetryDelayFunc(func(suggested time.Duration) time.Duration {
			waits = append(waits, suggested)
			return time.Millisecond
		}))

		team, err := c.Team(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, "acme", team.Name)
		assert.Equal(t, int32(2), exchanges.Load())
		require.Len(t, waits, 1)
		assert.Equal(t, time.Second, waits[0])
	})

	t.Run("MissingHintDefaultsToSixtySeconds", func(t *testing.T) {
		var exchanges atomic.Int32
		var waits []time.Duration
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exchanges.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"name":"acme"}`))
		}), WithRetryDelayFunc(func(suggested time.Duration) time.Duration {
			waits = append(waits, suggested)
			return time.Millisecond
		}))

		_, err := c.Team(context.Background(), "acme")
		require.NoError(t, err)
		require.Len(t, waits, 1)
		assert.Equal(t, 60*time.Second, waits[0])
	})

	t.Run("UnparsableHintDefaultsToSixtySeconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "soon")
		assert.Equal(t, 60*time.Second, retryAfterHint(h))
	})

	t.Run("ExhaustedBudgetSurfacesStatus", func(t *testing.T) {
		var exchanges atomic.Int32
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			exchanges.Add(1)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
		}),
			WithRateLimitRetries(2),
			WithRetryDelayFunc(func(time.Duration) time.Duration { return time.Millisecond }),
		)

		_, err := c.Team(context.Background(), "acme")
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, int32(3), exchanges.Load()) // initial attempt plus two retries
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("APIErrorWithDecodedBody", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not_found","message":"Post not found"}`))
		}))

		_, err := c.Post(context.Background(), "acme", 9999, nil)
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.Type)
		assert.Equal(t, "Post not found", apiErr.Message)
		assert.JSONEq(t, `{"error":"not_found","message":"Post not found"}`, string(apiErr.Body))
	})

	t.Run("NonJSONBodyBecomesMessage", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))

		_, err := c.Team(context.Background(), "acme")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream exploded", apiErr.Message)
	})

	t.Run("EmptyBodyGetsFallbackMessage", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := c.Team(context.Background(), "acme")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, fallbackErrorMessage, apiErr.Message)
	})

	t.Run("TransportFailureIsNotAPIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		c, err := NewClient("test-token")
		require.NoError(t, err)
		c.baseURL = srv.URL

		_, err = c.Team(context.Background(), "acme")
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("DecodeFailureOnSuccessSurfaces", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("definitely not json"))
		}))

		_, err := c.Team(context.Background(), "acme")
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestNoContentResponse(t *testing.T) {
	t.Run("DecoderNeverInvoked", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		spy := &decodeSpy{}
		err := c.do(context.Background(), request{
			method: http.MethodDelete,
			path:   "/teams/:team_name/posts/1",
			team:   "acme",
		}, spy)
		require.NoError(t, err)
		assert.False(t, spy.called)
	})
}

func TestPathTemplating(t *testing.T) {
	t.Run("OverrideBeatsSessionDefault", func(t *testing.T) {
		var gotPath string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"name":"acme"}`))
		}), WithDefaultTeam("fallback"))

		_, err := c.Team(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, "/v1/teams/acme", gotPath)
	})

	t.Run("SessionDefaultApplies", func(t *testing.T) {
		var gotPath string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"name":"fallback"}`))
		}), WithDefaultTeam("fallback"))

		_, err := c.Team(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "/v1/teams/fallback", gotPath)
	})

	t.Run("UnresolvedPlaceholderLeftInPlace", func(t *testing.T) {
		var gotPath string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"name":""}`))
		}))

		_, err := c.Team(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "/v1/teams/:team_name", gotPath)
	})
}
