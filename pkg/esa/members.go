package esa

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// MemberListOptions filters and orders a team member listing.
type MemberListOptions struct {
	Sort    string // "posts_count", "joined" or "last_accessed"
	Order   string // "asc" or "desc"
	Page    int
	PerPage int
}

func (o *MemberListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
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

// Members lists the members of a team.
func (c *Client) Members(ctx context.Context, team string, opts *MemberListOptions) (*MembersResponse, error) {
	var out MembersResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/members",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMember removes a member from a team by screen name. Only team
// owners may call this.
func (c *Client) DeleteMember(ctx context.Context, team, screenName string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/members/" + url.PathEscape(screenName),
		team:   team,
	}, nil)
}
