package esa

import (
	"context"
	"net/http"
	"net/url"
)

// inviteEmails carries the addresses for an email invitation.
type inviteEmails struct {
	Emails []string `json:"emails"`
}

// inviteRequest wraps invitation payloads in the {"member": {...}}
// envelope the API expects.
type inviteRequest struct {
	Member inviteEmails `json:"member"`
}

// InvitationURL fetches the team's shareable invitation link.
func (c *Client) InvitationURL(ctx context.Context, team string) (*InvitationURL, error) {
	var out InvitationURL
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/invitation",
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegenerateInvitationURL invalidates the current shareable invitation
// link and returns a fresh one.
func (c *Client) RegenerateInvitationURL(ctx context.Context, team string) (*InvitationURL, error) {
	var out InvitationURL
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/invitation_regenerator",
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Invite sends email invitations to join the team. Only team owners may
// call this.
func (c *Client) Invite(ctx context.Context, team string, emails []string) (*InvitationsResponse, error) {
	var out InvitationsResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/invitations",
		body:   jsonBody{payload: inviteRequest{Member: inviteEmails{Emails: emails}}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Invitations lists the team's pending email invitations.
func (c *Client) Invitations(ctx context.Context, team string, opts *ListOptions) (*InvitationsResponse, error) {
	var out InvitationsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/teams/:team_name/invitations",
		query:  opts.values(),
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvitation revokes a pending email invitation by its code.
func (c *Client) DeleteInvitation(ctx context.Context, team, code string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/teams/:team_name/invitations/" + url.PathEscape(code),
		team:   team,
	}, nil)
}
