package model

import (
	"bytes"
	"encoding/json"
)

// Page is the paginated response envelope of the list endpoints.
type Page[T any] struct {
	Content    []T       `json:"content"`
	TotalPages int       `json:"totalPages"`
	Pageable   *Pageable `json:"pageable,omitempty"`
	Number     *int      `json:"number,omitempty"`
	Last       bool      `json:"last"`
}

// Pageable accepts either {"pageNumber": n} or a scalar such as "INSTANCE";
// only the object form carries a page number.
type Pageable struct {
	PageNumber *int `json:"pageNumber,omitempty"`
}

func (p *Pageable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var raw struct {
		PageNumber *int `json:"pageNumber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.PageNumber = raw.PageNumber
	return nil
}

// CurrentPage is the zero-based page index: pageable.pageNumber, then number, then 0.
func (p Page[T]) CurrentPage() int {
	if p.Pageable != nil && p.Pageable.PageNumber != nil {
		return *p.Pageable.PageNumber
	}
	if p.Number != nil {
		return *p.Number
	}
	return 0
}

// DisplayPage is the one-based page number shown to users.
func (p Page[T]) DisplayPage() int {
	return p.CurrentPage() + 1
}
