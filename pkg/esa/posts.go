package esa

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PostListOptions filters and orders a post listing. Query accepts the
// esa search syntax, e.g. "category:docs wip:false".
type PostListOptions struct {
	Query   string
	Include string // comma-separated: "comments", "comments.stargazers", "stargazers"
	Sort    string // "updated", "created", "number", "stars", "watches", "comments", "best_match"
	Order   string // "asc" or "desc"
	Page    int
	PerPage int
}

func (o *PostListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Query != "" {
		v.Set("q", o.Query)
	}
	if o.Include != "" {
		v.Set("include", o.Include)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return v
}

// PostGetOptions expands related resources on a single post fetch.
type PostGetOptions struct {
	Include string
}

func (o *PostGetOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Include != "" {
		v.Set("include", o.Include)
	}
	return v
}

// PostCreateParams is the payload for creating a post. Name is required;
// everything else is optional and omitted when zero.
type PostCreateParams struct {
	Name           string   `json:"name"`
	BodyMD         string   `json:"body_md,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Category       string   `json:"category,omitempty"`
	WIP            *bool    `json:"wip,omitempty"`
	Message        string   `json:"message,omitempty"`
	User           string   `json:"user,omitempty"` // owners may post as another member or "esa_bot"
	TemplatePostID int      `json:"template_post_id,omitempty"`
}

// PostRevision pins the revision an update was based on so the server can
// merge concurrent edits (or report Overlapped when it cannot).
type PostRevision struct {
	BodyMD string `json:"body_md"`
	Number int    `json:"number"`
	User   string `json:"user"`
}

// PostUpdateParams is the payload for updating a post. Zero fields are
// omitted and left unchanged on the server.
type PostUpdateParams struct {
	Name             string        `json:"name,omitempty"`
	BodyMD           string        `json:"body_md,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
	Category         string        `json:"category,omitempty"`
	WIP              *bool         `json:"wip,omitempty"`
	Message          string        `json:"message,omitempty"`
	CreatedBy        string        `json:"created_by,omitempty"`
	UpdatedBy        string        `json:"updated_by,omitempty"`
	OriginalRevision *PostRevision `json:"original_revision,omitempty"`
}

// postRequest wraps post payloads in the {"post": {...}} envelope the API
// expects.
type postRequest struct {
	Post any `json:"post"`
}

// Posts lists the posts of a team.
func (c *Client) Posts(ctx context.Context, team string, opts *PostListOptions) (*PostsResponse, error) {
	var out PostsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/posts",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Post fetches a single post by number.
func (c *Client) Post(ctx context.Context, team string, number int, opts *PostGetOptions) (*Post, error) {
	var out Post
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(number),
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost creates a new post and returns it as stored by the server.
func (c *Client) CreatePost(ctx context.Context, team string, params *PostCreateParams) (*Post, error) {
	var out Post
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/posts",
		body:   jsonBody{payload: postRequest{Post: params}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies a partial update to a post.
func (c *Client) UpdatePost(ctx context.Context, team string, number int, params *PostUpdateParams) (*Post, error) {
	var out Post
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(number),
		body:   jsonBody{payload: postRequest{Post: params}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost deletes a post.
func (c *Client) DeletePost(ctx context.Context, team string, number int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(number),
		team:   team,
	}, nil)
}
