package esa

import (
	"net/url"
	"strconv"
)

// Bool returns a pointer to b, for optional boolean payload fields that
// must distinguish false from absent.
func Bool(b bool) *bool {
	return &b
}

// ListOptions selects a page of results. Zero values are treated as
// absent and omitted from the query string.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o *ListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return v
}
