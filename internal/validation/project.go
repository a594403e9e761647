// internal/validation/project.go
package validation

import (
	"strings"

	"sumon-service/internal/domain/project"
)

// NormalizeProjectCreate trims every text field in place.
func NormalizeProjectCreate(in *project.CreateProjectInput) {
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)
	in.Plot = strings.TrimSpace(in.Plot)
	in.Road = strings.TrimSpace(in.Road)
	in.Block = strings.TrimSpace(in.Block)
	in.Area = strings.TrimSpace(in.Area)
	in.City = strings.TrimSpace(in.City)
	in.Status = strings.TrimSpace(in.Status)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.FinishDate = strings.TrimSpace(in.FinishDate)
	in.Floors = strings.TrimSpace(in.Floors)
	in.AreaPerFloor = strings.TrimSpace(in.AreaPerFloor)
	in.TotalArea = strings.TrimSpace(in.TotalArea)
	in.ConstructionType = strings.TrimSpace(in.ConstructionType)
}

// NormalizeProjectUpdate trims every supplied text field in place.
func NormalizeProjectUpdate(in *project.UpdateProjectInput) {
	for _, p := range []*string{
		in.ProjectName, in.Company, in.Description,
		in.Plot, in.Road, in.Block, in.Area, in.City,
		in.Status, in.StartDate, in.FinishDate,
		in.Floors, in.AreaPerFloor, in.TotalArea, in.ConstructionType,
	} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// ProjectCreate validates a full project payload.
func ProjectCreate(in *project.CreateProjectInput) Errors {
	return Check(in)
}

// ProjectUpdate validates a partial project payload; omitted fields pass.
func ProjectUpdate(in *project.UpdateProjectInput) Errors {
	return Check(in)
}
