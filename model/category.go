package model

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type MinimalCategory struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
