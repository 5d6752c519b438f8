package esa

import (
	"context"
	"net/http"
)

// Tags lists the tags used in a team with their post counts.
func (c *Client) Tags(ctx context.Context, team string, opts *ListOptions) (*TagsResponse, error) {
	var out TagsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/tags",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
