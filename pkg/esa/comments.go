package esa

import (
	"context"
	"net/http"
	"strconv"
)

// CommentParams is the payload for creating or updating a comment.
type CommentParams struct {
	BodyMD string `json:"body_md"`
	User   string `json:"user,omitempty"` // owners may comment as another member or "esa_bot"
}

// commentRequest wraps comment payloads in the {"comment": {...}}
// envelope the API expects.
type commentRequest struct {
	Comment any `json:"comment"`
}

// PostComments lists the comments attached to a post.
func (c *Client) PostComments(ctx context.Context, team string, postNumber int, opts *ListOptions) (*CommentsResponse, error) {
	var out CommentsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/comments",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, team string, postNumber int, params *CommentParams) (*Comment, error) {
	var out Comment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/comments",
		body:   jsonBody{payload: commentRequest{Comment: params}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Comments lists all comments in a team, newest first.
func (c *Client) Comments(ctx context.Context, team string, opts *ListOptions) (*CommentsResponse, error) {
	var out CommentsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/comments",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Comment fetches a single comment by id.
func (c *Client) Comment(ctx context.Context, team string, commentID int) (*Comment, error) {
	var out Comment
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateComment edits an existing comment.
func (c *Client) UpdateComment(ctx context.Context, team string, commentID int, params *CommentParams) (*Comment, error) {
	var out Comment
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID),
		body:   jsonBody{payload: commentRequest{Comment: params}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, team string, commentID int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/comments/" + strconv.Itoa(commentID),
		team:   team,
	}, nil)
}
