package esa

import (
	"context"
	"net/http"
)

// batchMoveRequest is the payload for moving a category subtree.
type batchMoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BatchMoveCategory moves every post under the from category to the to
// category and reports how many posts were affected.
func (c *Client) BatchMoveCategory(ctx context.Context, team, from, to string) (*BatchMoveResult, error) {
	var out BatchMoveResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/teams/:team_name/categories/batch_move",
		body:   jsonBody{payload: batchMoveRequest{From: from, To: to}},
		team:   team,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
