package esa

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/h2non/filetype"
)

// EmojiListOptions controls the emoji listing. IncludeAll also returns
// the standard emojis available to the team, not just custom ones.
type EmojiListOptions struct {
	IncludeAll bool
}

func (o *EmojiListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.IncludeAll {
		v.Set("include", "all")
	}
	return v
}

// EmojiCreateParams describes a new custom emoji. Code is required.
// Image holds the raw image bytes; leave it empty when OriginCode is set
// to register an alias of an existing emoji.
type EmojiCreateParams struct {
	Code       string
	OriginCode string
	Image      []byte
}

// multipartForm encodes the params as the emoji[...] multipart form the
// API expects. The image part's filename and content type are sniffed
// from the leading bytes of the image itself.
func (p *EmojiCreateParams) multipartForm() (*multipartBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := w.WriteField("emoji[code]", p.Code); err != nil {
		return nil, fmt.Errorf("esa: failed to encode emoji form: %w", err)
	}
	if p.OriginCode != "" {
		if err := w.WriteField("emoji[origin_code]", p.OriginCode); err != nil {
			return nil, fmt.Errorf("esa: failed to encode emoji form: %w", err)
		}
	}
	if len(p.Image) > 0 {
		filename := "emoji"
		header := textproto.MIMEHeader{}
		kind, err := filetype.Match(p.Image)
		if err == nil && kind != filetype.Unknown {
			filename += "." + kind.Extension
			header.Set("Content-Type", kind.MIME.Value)
		}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="emoji[image]"; filename=%q`, filename))
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("esa: failed to encode emoji form: %w", err)
		}
		if _, err := part.Write(p.Image); err != nil {
			return nil, fmt.Errorf("esa: failed to encode emoji form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("esa: failed to encode emoji form: %w", err)
	}

	return &multipartBody{data: buf.Bytes(), boundary: w.Boundary()}, nil
}

// Emojis lists a team's emojis.
func (c *Client) Emojis(ctx context.Context, team string, opts *EmojiListOptions) (*EmojisResponse, error) {
	var out EmojisResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/emojis",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEmoji registers a custom emoji. Unlike other operations, this
// fails before any network exchange when no team resolves, because the
// multipart form must be scoped to a team up front.
func (c *Client) CreateEmoji(ctx context.Context, team string, params *EmojiCreateParams) (*Emoji, error) {
	if c.resolveTeam(team) == "" {
		return nil, ErrNoTeam
	}

	form, err := params.multipartForm()
	if err != nil {
		return nil, err
	}

	var out Emoji
	err = c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/emojis",
		body:   form,
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmoji removes a custom emoji by code.
func (c *Client) DeleteEmoji(ctx context.Context, team, code string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/emojis/" + url.PathEscape(code),
		team:   team,
	}, nil)
}
