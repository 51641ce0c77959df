package model

import (
	"net/url"
	"strings"
	"time"
)

type OpeningHours struct {
	ID      uint64 `json:"id,omitempty"`
	Day     int    `json:"day"`
	OpenAt  string `json:"openAt"`
	CloseAt string `json:"closeAt"`
}

type Shop struct {
	ID                   uint64         `json:"id"`
	Name                 string         `json:"name"`
	CreatedAt            string         `json:"createdAt"`
	InVacations          bool           `json:"inVacations"`
	OpeningHours         []OpeningHours `json:"openingHours"`
	NbProducts           int64          `json:"nbProducts"`
	NbDistinctCategories int64          `json:"nbDistinctCategories"`
}

// MinimalShop is the write shape of a shop; ID is empty on create.
type MinimalShop struct {
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name"`
	InVacations  bool           `json:"inVacations"`
	OpeningHours []OpeningHours `json:"openingHours"`
}

// ToMinimal returns the write shape of s.
func (s Shop) ToMinimal() MinimalShop {
	hours := make([]OpeningHours, len(s.OpeningHours))
	copy(hours, s.OpeningHours)
	return MinimalShop{
		ID:           formatID(s.ID),
		Name:         s.Name,
		InVacations:  s.InVacations,
		OpeningHours: hours,
	}
}

type VacationFilter string

const (
	VacationAll   VacationFilter = "all"
	VacationTrue  VacationFilter = "true"
	VacationFalse VacationFilter = "false"
)

// ShopFilter holds the composable filters of the shop search bar.
type ShopFilter struct {
	InVacations   VacationFilter `json:"inVacations" validate:"omitempty,oneof=all true false"`
	CreatedAfter  *time.Time     `json:"createdAfter,omitempty"`
	CreatedBefore *time.Time     `json:"createdBefore,omitempty"`
}

const filterDateLayout = "2006-01-02"

// Fragment encodes the active filters as a query-string suffix starting with
// '&', or returns "" when no filter is active.
func (f ShopFilter) Fragment() string {
	var sb strings.Builder
	if f.InVacations == VacationTrue || f.InVacations == VacationFalse {
		sb.WriteString("&inVacations=" + string(f.InVacations))
	}
	if f.CreatedAfter != nil {
		sb.WriteString("&createdAfter=" + f.CreatedAfter.Format(filterDateLayout))
	}
	if f.CreatedBefore != nil {
		sb.WriteString("&createdBefore=" + f.CreatedBefore.Format(filterDateLayout))
	}
	return sb.String()
}

// SearchFragment prefixes the filter fragment with the url-escaped search text.
func SearchFragment(text, filters string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(text)), "+", "%20")
	return "&text=" + escaped + filters
}
