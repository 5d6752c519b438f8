package esa

import (
	"context"
	"net/http"
	"strconv"
)

// StarParams carries the optional note attached when starring a post or
// comment.
type StarParams struct {
	Body string `json:"body,omitempty"`
}

// PostStargazers lists the users who starred a post.
func (c *Client) PostStargazers(ctx context.Context, team string, postNumber int, opts *ListOptions) (*StargazersResponse, error) {
	var out StargazersResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/stargazers",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StarPost stars a post as the authenticated user. A nil params stars
// without a note.
func (c *Client) StarPost(ctx context.Context, team string, postNumber int, params *StarParams) error {
	req := request{
		method: http.MethodPost,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/star",
		team:   team,
	}
	if params != nil {
		req.body = jsonBody{payload: params}
	}
	return c.do(ctx, req, nil)
}

// UnstarPost removes the authenticated user's star from a post.
func (c *Client) UnstarPost(ctx context.Context, team string, postNumber int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/star",
		team:   team,
	}, nil)
}

// CommentStargazers lists the users who starred a comment.
func (c *Client) CommentStargazers(ctx context.Context, team string, commentID int, opts *ListOptions) (*StargazersResponse, error) {
	var out StargazersResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID) + "/stargazers",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StarComment stars a comment as the authenticated user.
func (c *Client) StarComment(ctx context.Context, team string, commentID int, params *StarParams) error {
	req := request{
		method: http.MethodPost,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID) + "/star",
		team:   team,
	}
	if params != nil {
		req.body = jsonBody{payload: params}
	}
	return c.do(ctx, req, nil)
}

// UnstarComment removes the authenticated user's star from a comment.
func (c *Client) UnstarComment(ctx context.Context, team string, commentID int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID) + "/star",
		team:   team,
	}, nil)
}
