// internal/handlers/project/form.go
package project

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/project"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/storage"
)

const maxImagesPerRequest = 10

// bindCreate reads the create payload from a multipart form or a JSON body.
// The returned cleanup closes any opened upload files.
func bindCreate(c *gin.Context) (*project.CreateProjectInput, []storage.Upload, func(), error) {
	noop := func() {}

	if !isMultipart(c) {
		var input project.CreateProjectInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, nil, noop, xerrors.Wrap(xerrors.ErrInvalidInput, "Invalid request body")
		}
		return &input, nil, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, noop, xerrors.Wrap(xerrors.ErrInvalidInput, "Invalid form data")
	}

	input := project.CreateProjectInput{
		ProjectName:      formValue(form, "projectName", "project_name"),
		Company:          formValue(form, "company"),
		Description:      formValue(form, "description"),
		Plot:             formValue(form, "address.plot", "plot"),
		Road:             formValue(form, "address.road", "road"),
		Block:            formValue(form, "address.block", "block"),
		Area:             formValue(form, "address.area", "area"),
		City:             formValue(form, "address.city", "city"),
		Status:           formValue(form, "status"),
		StartDate:        formValue(form, "startDate", "start_date"),
		FinishDate:       formValue(form, "finishDate", "finish_date"),
		Floors:           formValue(form, "specifications.floors", "floors"),
		AreaPerFloor:     formValue(form, "specifications.areaPerFloor", "area_per_floor"),
		TotalArea:        formValue(form, "specifications.totalArea", "total_area"),
		ConstructionType: formValue(form, "specifications.constructionType", "construction_type"),
		Coordinates:      formCoordinates(form),
		Featured:         parseBool(formValue(form, "featured")),
	}

	uploads, cleanup, err := openUploads(form.File["images"])
	if err != nil {
		return nil, nil, cleanup, err
	}
	return &input, uploads, cleanup, nil
}

// bindUpdate reads the partial-update payload. Multipart fields that are
// absent stay nil so the service leaves them untouched.
func bindUpdate(c *gin.Context) (*project.UpdateProjectInput, []storage.Upload, func(), error) {
	noop := func() {}

	if !isMultipart(c) {
		var input project.UpdateProjectInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, nil, noop, xerrors.Wrap(xerrors.ErrInvalidInput, "Invalid request body")
		}
		return &input, nil, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, noop, xerrors.Wrap(xerrors.ErrInvalidInput, "Invalid form data")
	}

	input := project.UpdateProjectInput{
		ProjectName:      formPtr(form, "projectName", "project_name"),
		Company:          formPtr(form, "company"),
		Description:      formPtr(form, "description"),
		Plot:             formPtr(form, "address.plot", "plot"),
		Road:             formPtr(form, "address.road", "road"),
		Block:            formPtr(form, "address.block", "block"),
		Area:             formPtr(form, "address.area", "area"),
		City:             formPtr(form, "address.city", "city"),
		Status:           formPtr(form, "status"),
		StartDate:        formPtr(form, "startDate", "start_date"),
		FinishDate:       formPtr(form, "finishDate", "finish_date"),
		Floors:           formPtr(form, "specifications.floors", "floors"),
		AreaPerFloor:     formPtr(form, "specifications.areaPerFloor", "area_per_floor"),
		TotalArea:        formPtr(form, "specifications.totalArea", "total_area"),
		ConstructionType: formPtr(form, "specifications.constructionType", "construction_type"),
		Coordinates:      formCoordinates(form),
	}
	if raw := formPtr(form, "featured"); raw != nil {
		featured := parseBool(*raw)
		input.Featured = &featured
	}

	uploads, cleanup, err := openUploads(form.File["images"])
	if err != nil {
		return nil, nil, cleanup, err
	}
	return &input, uploads, cleanup, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formValue returns the first non-empty value among the given field names,
// so both dotted and flat naming work.
func formValue(form *multipart.Form, names ...string) string {
	for _, name := range names {
		if vals, ok := form.Value[name]; ok && len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

// formPtr is formValue for partial updates: nil when none of the names are
// present at all.
func formPtr(form *multipart.Form, names ...string) *string {
	for _, name := range names {
		if vals, ok := form.Value[name]; ok && len(vals) > 0 {
			v := vals[0]
			return &v
		}
	}
	return nil
}

// formCoordinates accepts either a JSON array under location.coordinates or
// separate longitude/latitude fields.
func formCoordinates(form *multipart.Form) []float64 {
	if raw := formValue(form, "location.coordinates", "coordinates"); raw != "" {
		var coords []float64
		if err := json.Unmarshal([]byte(raw), &coords); err == nil && len(coords) == 2 {
			return coords
		}
	}

	lngRaw := formValue(form, "longitude", "lng")
	latRaw := formValue(form, "latitude", "lat")
	if lngRaw != "" && latRaw != "" {
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		if lngErr == nil && latErr == nil {
			return []float64{lng, lat}
		}
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// openUploads opens the uploaded image files for streaming to storage.
func openUploads(headers []*multipart.FileHeader) ([]storage.Upload, func(), error) {
	closers := []func(){}
	cleanup := func() {
		for _, fn := range closers {
			fn()
		}
	}

	if len(headers) > maxImagesPerRequest {
		return nil, cleanup, xerrors.Wrap(xerrors.ErrInvalidInput, "Maximum 10 images allowed")
	}

	uploads := make([]storage.Upload, 0, len(headers))
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			return nil, cleanup, xerrors.Wrap(xerrors.ErrInvalidInput, "Unable to read uploaded file")
		}
		closers = append(closers, func() { f.Close() })
		uploads = append(uploads, storage.Upload{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        f,
		})
	}
	return uploads, cleanup, nil
}
