// internal/domain/project/entity.go
package project

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	StatusOngoing  = "Ongoing"
	StatusFinished = "Finished"
)

// DefaultCoordinates is the fallback project location (Dhaka).
var DefaultCoordinates = []float64{90.4125, 23.8103}

type Project struct {
	ID             int64          `json:"id" db:"id"`
	ProjectName    string         `json:"project_name" db:"project_name"`
	Company        string         `json:"company" db:"company"`
	Description    string         `json:"description" db:"description"`
	Address        Address        `json:"address" db:"address"`
	Location       Location       `json:"location"`
	Status         string         `json:"status" db:"status"`
	StartDate      time.Time      `json:"start_date" db:"start_date"`
	FinishDate     *time.Time     `json:"finish_date" db:"finish_date"`
	Images         []Image        `json:"images" db:"images"`
	Specifications Specifications `json:"specifications" db:"specifications"`
	Slug           string         `json:"slug" db:"slug"`
	Featured       bool           `json:"featured" db:"featured"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

type Address struct {
	Plot  string `json:"plot,omitempty"`
	Road  string `json:"road,omitempty"`
	Block string `json:"block,omitempty"`
	Area  string `json:"area"`
	City  string `json:"city"`
}

// Full renders the address as a single display line.
func (a Address) Full() string {
	parts := []string{}
	if a.Plot != "" {
		parts = append(parts, "Plot "+a.Plot)
	}
	if a.Road != "" {
		parts = append(parts, "Road "+a.Road)
	}
	if a.Block != "" {
		parts = append(parts, "Block "+a.Block)
	}
	if a.Area != "" {
		parts = append(parts, a.Area)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	return strings.Join(parts, ", ")
}

// Location is a GeoJSON-style point, [longitude, latitude].
type Location struct {
	Type        string          `json:"type"`
	Coordinates pq.Float64Array `json:"coordinates"`
}

type Image struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key,omitempty"`
	Caption    string `json:"caption,omitempty"`
	IsPrimary  bool   `json:"is_primary"`
}

type Specifications struct {
	Floors           string `json:"floors,omitempty"`
	AreaPerFloor     string `json:"area_per_floor,omitempty"`
	TotalArea        string `json:"total_area,omitempty"`
	ConstructionType string `json:"construction_type,omitempty"`
}

// ValidStatus reports whether s is one of the two project states.
func ValidStatus(s string) bool {
	return s == StatusOngoing || s == StatusFinished
}
