package esa

import (
	"context"
	"net/http"
	"strconv"
)

// PostWatchers lists the users watching a post.
func (c *Client) PostWatchers(ctx context.Context, team string, postNumber int, opts *ListOptions) (*WatchersResponse, error) {
	var out WatchersResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/watchers",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// WatchPost subscribes the authenticated user to a post's updates.
func (c *Client) WatchPost(ctx context.Context, team string, postNumber int) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/watch",
		team:   team,
	}, nil)
}

// UnwatchPost removes the authenticated user's watch from a post.
func (c *Client) UnwatchPost(ctx context.Context, team string, postNumber int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/posts/" + strconv.Itoa(postNumber) + "/watch",
		team:   team,
	}, nil)
}
