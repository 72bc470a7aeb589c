package catalog

import (
	"bytes"
	"encoding/json"
)

// Page is one page of a paginated list.
//
// The backend answers list requests either with {data: [...], page, totalPages, ...}
// or with a bare array; both decode into a Page. A bare array is treated as a
// single page holding every item.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

type pageAlias[T any] struct {
	Data       []T `json:"data"`
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Pagination *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
		Pages      int `json:"pages"`
	} `json:"pagination"`
}

// UnmarshalJSON accepts the paginated object shape, a nested pagination block or
// a bare array.
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = Page[T]{Data: []T{}, Page: 1, TotalPages: 1}
		return nil
	}

	if b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*p = Page[T]{Data: items, Page: 1, Total: len(items), TotalPages: 1}
		return nil
	}

	var raw pageAlias[T]
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := Page[T]{
		Data:       raw.Data,
		Page:       raw.Page,
		Limit:      raw.Limit,
		Total:      raw.Total,
		TotalPages: raw.TotalPages,
	}
	if out.Data == nil {
		out.Data = raw.Items
	}
	if raw.Pagination != nil {
		out.Page = max(out.Page, raw.Pagination.Page)
		out.Limit = max(out.Limit, raw.Pagination.Limit)
		out.Total = max(out.Total, raw.Pagination.Total)
		out.TotalPages = max(out.TotalPages, raw.Pagination.TotalPages, raw.Pagination.Pages)
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	if out.Page < 1 {
		out.Page = 1
	}
	if out.TotalPages < 1 {
		out.TotalPages = 1
		if out.Limit > 0 && out.Total > out.Limit {
			out.TotalPages = (out.Total + out.Limit - 1) / out.Limit
		}
	}
	*p = out
	return nil
}
