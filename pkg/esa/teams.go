package esa

import (
	"context"
	"net/http"
)

// Teams lists the teams the authenticated user belongs to.
func (c *Client) Teams(ctx context.Context, opts *ListOptions) (*TeamsResponse, error) {
	var out TeamsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams",
		query:  opts.values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Team fetches a single team. An empty team falls back to the session
// default.
func (c *Client) Team(ctx context.Context, team string) (*Team, error) {
	var out Team
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name",
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamStats fetches activity statistics for a team.
func (c *Client) TeamStats(ctx context.Context, team string) (*TeamStats, error) {
	var out TeamStats
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/stats",
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
