// Package catalog exposes one method per catalog REST operation. Methods are
// thin pass-throughs: no retries, no caching, errors go back to the caller.
package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
)

// DefaultPageSize is used when a caller passes a non-positive limit
const DefaultPageSize = 20

// Requester sends a request to the catalog API and decodes the envelope data into out
type Requester interface {
	Do(ctx context.Context, req httpclient.Request, out any) error
}

// ListOptions selects a page and optional filters for list operations
type ListOptions struct {
	Page    int
	Limit   int
	Filters map[string]string
}

func (o ListOptions) query(defaultLimit int) url.Values {
	page, limit := o.Page, o.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	for k, v := range o.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// path joins a collection with escaped segments
func path(collection string, segments ...string) string {
	p := "/" + collection
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

func get[T any](ctx context.Context, r Requester, p string, q url.Values) (T, error) {
	var out T
	err := r.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: p, Query: q}, &out)
	return out, err
}

func send[T any](ctx context.Context, r Requester, method, p string, body any) (T, error) {
	var out T
	err := r.Do(ctx, httpclient.Request{Method: method, Path: p, Body: body}, &out)
	return out, err
}

func list[T any](ctx context.Context, r Requester, collection string, opts ListOptions) (*catalog.Page[T], error) {
	return listWithDefault[T](ctx, r, collection, opts, DefaultPageSize)
}

func listWithDefault[T any](ctx context.Context, r Requester, collection string, opts ListOptions, defaultLimit int) (*catalog.Page[T], error) {
	page, err := get[catalog.Page[T]](ctx, r, path(collection), opts.query(defaultLimit))
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func search[T any](ctx context.Context, r Requester, collection, term string) ([]T, error) {
	return get[[]T](ctx, r, path(collection, "search"), url.Values{"q": {term}})
}

func searchPage[T any](ctx context.Context, r Requester, collection, term string, opts ListOptions) (*catalog.Page[T], error) {
	q := opts.query(DefaultPageSize)
	q.Set("q", term)
	page, err := get[catalog.Page[T]](ctx, r, path(collection, "search"), q)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func remove(ctx context.Context, r Requester, collection, id string) error {
	return r.Do(ctx, httpclient.Request{Method: http.MethodDelete, Path: path(collection, id)}, nil)
}

func topQuery(limit int) url.Values {
	if limit < 1 {
		limit = 10
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
