package esa

import (
	"context"
	"net/http"
	"net/url"
)

// UserGetOptions expands related resources on the authenticated-user
// fetch.
type UserGetOptions struct {
	IncludeTeams bool
}

func (o *UserGetOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.IncludeTeams {
		v.Set("include", "teams")
	}
	return v
}

// AuthenticatedUser fetches the profile of the user the access token
// belongs to. This endpoint is not team-scoped.
func (c *Client) AuthenticatedUser(ctx context.Context, opts *UserGetOptions) (*User, error) {
	var out User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user",
		query:  opts.values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
