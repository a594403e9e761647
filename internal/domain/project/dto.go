// internal/domain/project/dto.go
package project

// CreateProjectInput is the normalized create payload. Multipart field
// naming (dotted or flat) is already collapsed by the boundary before this
// struct is populated.
type CreateProjectInput struct {
	ProjectName string `json:"project_name" validate:"required,min=3"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	Plot        string `json:"plot"`
	Road        string `json:"road"`
	Block       string `json:"block"`
	Area        string `json:"area" validate:"required"`
	City        string `json:"city" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=Ongoing Finished"`
	StartDate   string `json:"start_date" validate:"required,dateish"`
	FinishDate  string `json:"finish_date" validate:"omitempty,dateish"`

	Floors           string `json:"floors"`
	AreaPerFloor     string `json:"area_per_floor"`
	TotalArea        string `json:"total_area"`
	ConstructionType string `json:"construction_type"`

	Coordinates []float64 `json:"coordinates"`
	Featured    bool      `json:"featured"`
}

// UpdateProjectInput carries partial updates; nil means "leave untouched".
type UpdateProjectInput struct {
	ProjectName *string `json:"project_name" validate:"omitempty,min=3"`
	Company     *string `json:"company" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=10"`
	Plot        *string `json:"plot"`
	Road        *string `json:"road"`
	Block       *string `json:"block"`
	Area        *string `json:"area" validate:"omitempty,min=1"`
	City        *string `json:"city" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=Ongoing Finished"`
	StartDate   *string `json:"start_date" validate:"omitempty,dateish"`
	FinishDate  *string `json:"finish_date" validate:"omitempty,dateish"`

	Floors           *string `json:"floors"`
	AreaPerFloor     *string `json:"area_per_floor"`
	TotalArea        *string `json:"total_area"`
	ConstructionType *string `json:"construction_type"`

	Coordinates []float64 `json:"coordinates"`
	Featured    *bool     `json:"featured"`
}

type ListFilters struct {
	Status  string `form:"status"`
	Company string `form:"company"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
	Sort    string `form:"sort"`
}

type ListResponse struct {
	Items []Project `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}
