package esa

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the magic-number prefix of a PNG file, enough for content
// sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestCreateEmoji(t *testing.T) {
	t.Run("MultipartForm", func(t *testing.T) {
		var gotContentType string
		var gotCode, gotOrigin string
		var gotImage []byte
		var gotImageType string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotCode = r.FormValue("emoji[code]")
			gotOrigin = r.FormValue("emoji[origin_code]")
			file, header, err := r.FormFile("emoji[image]")
			require.NoError(t, err)
			defer file.Close()
			gotImageType = header.Header.Get("Content-Type")
			gotImage, err = io.ReadAll(file)
			require.NoError(t, err)
			w.Write([]byte(`{"code":"party_parrot"}`))
		}))

		emoji, err := c.CreateEmoji(context.Background(), "acme", &EmojiCreateParams{
			Code:  "party_parrot",
			Image: pngHeader,
		})
		require.NoError(t, err)
		assert.Equal(t, "party_parrot", emoji.Code)
		assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="))
		assert.Equal(t, "party_parrot", gotCode)
		assert.Empty(t, gotOrigin)
		assert.Equal(t, "image/png", gotImageType)
		assert.Equal(t, pngHeader, gotImage)
	})

	t.Run("AliasWithoutImage", func(t *testing.T) {
		var gotCode, gotOrigin string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotCode = r.FormValue("emoji[code]")
			gotOrigin = r.FormValue("emoji[origin_code]")
			w.Write([]byte(`{"code":"conga_parrot"}`))
		}))

		_, err := c.CreateEmoji(context.Background(), "acme", &EmojiCreateParams{
			Code:       "conga_parrot",
			OriginCode: "party_parrot",
		})
		require.NoError(t, err)
		assert.Equal(t, "conga_parrot", gotCode)
		assert.Equal(t, "party_parrot", gotOrigin)
	})

	t.Run("NoTeamFailsBeforeDispatch", func(t *testing.T) {
		var exchanges atomic.Int32
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			exchanges.Add(1)
		}))

		_, err := c.CreateEmoji(context.Background(), "", &EmojiCreateParams{Code: "party_parrot"})
		require.ErrorIs(t, err, ErrNoTeam)
		assert.Equal(t, int32(0), exchanges.Load())
	})
}

func TestEmojis(t *testing.T) {
	t.Run("IncludeAll", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"emojis":[{"code":"+1"}]}`))
		}))

		resp, err := c.Emojis(context.Background(), "acme", &EmojiListOptions{IncludeAll: true})
		require.NoError(t, err)
		assert.Equal(t, "include=all", gotQuery)
		require.Len(t, resp.Emojis, 1)
		assert.Equal(t, "+1", resp.Emojis[0].Code)
	})
}
