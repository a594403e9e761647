// internal/service/project/project.go
package project

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sumon-service/internal/domain/project"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/pkg/slug"
	"sumon-service/internal/storage"
	"sumon-service/internal/validation"
)

const (
	defaultPage     = 1
	defaultLimit    = 10
	maxLimit        = 100
	featuredDefault = 4
)

// Repository is the persistence surface the project flows need.
type Repository interface {
	Create(ctx context.Context, p *project.Project) error
	FindByID(ctx context.Context, id int64) (*project.Project, error)
	FindBySlug(ctx context.Context, slug string) (*project.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filters *project.ListFilters) ([]project.Project, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectService struct {
	repo   Repository
	images storage.ImageStore
	log    *zap.Logger
}

func NewProjectService(repo Repository, images storage.ImageStore, log *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, images: images, log: log}
}

// List returns a filtered page of projects with the total count.
func (s *ProjectService) List(ctx context.Context, filters project.ListFilters) (*project.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = defaultPage
	}
	if filters.Limit < 1 {
		filters.Limit = defaultLimit
	}
	if filters.Limit > maxLimit {
		filters.Limit = maxLimit
	}
	if filters.Status != "" && !project.ValidStatus(filters.Status) {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "status must be Ongoing or Finished")
	}

	items, total, err := s.repo.List(ctx, &filters)
	if err != nil {
		return nil, err
	}
	return &project.ListResponse{
		Items: items,
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
		Pages: int(math.Ceil(float64(total) / float64(filters.Limit))),
	}, nil
}

// ListFeatured returns the most recent featured projects, newest first.
// The showcase never exceeds four entries regardless of the requested limit.
func (s *ProjectService) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	if limit < 1 || limit > featuredDefault {
		limit = featuredDefault
	}
	return s.repo.ListFeatured(ctx, limit)
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) GetBySlug(ctx context.Context, sl string) (*project.Project, error) {
	return s.repo.FindBySlug(ctx, sl)
}

// Create validates and persists a new project. Image uploads happen before
// the insert; if the insert fails every stored blob is removed again so
// nothing is left orphaned.
func (s *ProjectService) Create(ctx context.Context, in project.CreateProjectInput, uploads []storage.Upload) (*project.Project, error) {
	validation.NormalizeProjectCreate(&in)
	if errs := validation.ProjectCreate(&in); errs != nil {
		return nil, errs
	}

	startDate, err := validation.ParseDate(in.StartDate)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "Start date must be a valid date")
	}
	p := &project.Project{
		ProjectName: in.ProjectName,
		Company:     in.Company,
		Description: in.Description,
		Address: project.Address{
			Plot:  in.Plot,
			Road:  in.Road,
			Block: in.Block,
			Area:  in.Area,
			City:  in.City,
		},
		Status:    in.Status,
		StartDate: startDate,
		Featured:  in.Featured,
		Specifications: project.Specifications{
			Floors:           in.Floors,
			AreaPerFloor:     in.AreaPerFloor,
			TotalArea:        in.TotalArea,
			ConstructionType: in.ConstructionType,
		},
	}
	if in.FinishDate != "" {
		finishDate, err := validation.ParseDate(in.FinishDate)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "Finish date must be a valid date")
		}
		p.FinishDate = &finishDate
	}

	coords := in.Coordinates
	if len(coords) != 2 {
		coords = project.DefaultCoordinates
	}
	p.Location = project.Location{Type: "Point", Coordinates: coords}

	uniqueSlug, err := slug.Uniquify(slug.Derive(in.ProjectName, in.Company), func(candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive slug: %w", err)
	}
	p.Slug = uniqueSlug

	stored, err := s.storeImages(ctx, uploads, true)
	if err != nil {
		return nil, err
	}
	p.Images = stored

	if err := s.repo.Create(ctx, p); err != nil {
		s.removeImages(ctx, stored)
		return nil, err
	}
	return p, nil
}

// Update applies a partial update. New uploads are appended to the existing
// images; the slug is re-derived when the name or company changes.
func (s *ProjectService) Update(ctx context.Context, id int64, in project.UpdateProjectInput, uploads []storage.Upload) (*project.Project, error) {
	validation.NormalizeProjectUpdate(&in)
	if errs := validation.ProjectUpdate(&in); errs != nil {
		return nil, errs
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	renamed := false
	if in.ProjectName != nil && *in.ProjectName != p.ProjectName {
		p.ProjectName = *in.ProjectName
		renamed = true
	}
	if in.Company != nil && *in.Company != p.Company {
		p.Company = *in.Company
		renamed = true
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Plot != nil {
		p.Address.Plot = *in.Plot
	}
	if in.Road != nil {
		p.Address.Road = *in.Road
	}
	if in.Block != nil {
		p.Address.Block = *in.Block
	}
	if in.Area != nil {
		p.Address.Area = *in.Area
	}
	if in.City != nil {
		p.Address.City = *in.City
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		startDate, err := validation.ParseDate(*in.StartDate)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "Start date must be a valid date")
		}
		p.StartDate = startDate
	}
	if in.FinishDate != nil {
		if *in.FinishDate == "" {
			p.FinishDate = nil
		} else {
			finishDate, err := validation.ParseDate(*in.FinishDate)
			if err != nil {
				return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "Finish date must be a valid date")
			}
			p.FinishDate = &finishDate
		}
	}
	if in.Floors != nil {
		p.Specifications.Floors = *in.Floors
	}
	if in.AreaPerFloor != nil {
		p.Specifications.AreaPerFloor = *in.AreaPerFloor
	}
	if in.TotalArea != nil {
		p.Specifications.TotalArea = *in.TotalArea
	}
	if in.ConstructionType != nil {
		p.Specifications.ConstructionType = *in.ConstructionType
	}
	if len(in.Coordinates) == 2 {
		p.Location = project.Location{Type: "Point", Coordinates: in.Coordinates}
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	if renamed {
		uniqueSlug, err := slug.Uniquify(slug.Derive(p.ProjectName, p.Company), func(candidate string) (bool, error) {
			if candidate == p.Slug {
				return false, nil
			}
			return s.repo.SlugExists(ctx, candidate)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to derive slug: %w", err)
		}
		p.Slug = uniqueSlug
	}

	stored, err := s.storeImages(ctx, uploads, len(p.Images) == 0)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, stored...)

	if err := s.repo.Update(ctx, p); err != nil {
		s.removeImages(ctx, stored)
		return nil, err
	}
	return p, nil
}

// Delete removes the project row and best-effort deletes its stored images.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.removeImages(ctx, p.Images)
	return s.repo.Delete(ctx, id)
}

// storeImages uploads every file. markFirstPrimary flags the first stored
// image as primary; appending to a project that already has images must
// pass false so the existing primary stays the only one. A failure part-way
// rolls back the blobs already stored.
func (s *ProjectService) storeImages(ctx context.Context, uploads []storage.Upload, markFirstPrimary bool) ([]project.Image, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	images := make([]project.Image, 0, len(uploads))
	for i, up := range uploads {
		stored, err := s.images.Save(ctx, up)
		if err != nil {
			s.removeImages(ctx, images)
			return nil, fmt.Errorf("failed to store image %q: %w", up.Filename, err)
		}
		images = append(images, project.Image{
			URL:        stored.URL,
			StorageKey: stored.Key,
			IsPrimary:  markFirstPrimary && i == 0,
		})
	}
	return images, nil
}

func (s *ProjectService) removeImages(ctx context.Context, images []project.Image) {
	for _, img := range images {
		if img.StorageKey == "" {
			continue
		}
		if err := s.images.Delete(ctx, img.StorageKey); err != nil {
			s.log.Warn("failed to delete stored image",
				zap.String("key", img.StorageKey),
				zap.Error(err))
		}
	}
}
