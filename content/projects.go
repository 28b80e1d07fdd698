package content

import (
	"context"
	"fmt"

	"github.com/gokler/sitecms/model"
)

// ListProjects returns projects newest first, filtered by category and
// status. Anonymous callers only get published projects.
func (s *Service) ListProjects(ctx context.Context, who Caller, f model.Filter) ([]model.Project, error) {
	f = visible(who, f)
	projects, err := s.store.ListProjects(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return search(projects, f.Query, func(p model.Project) []string {
		return []string{p.Title, p.Category, p.Location, p.Client}
	}), nil
}

// ProjectCategories returns the categories used by published projects.
func (s *Service) ProjectCategories(ctx context.Context) ([]string, error) {
	cats, err := s.store.ListProjectCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list project categories: %w", err)
	}
	return cats, nil
}

// GetProject returns a project by id or slug.
func (s *Service) GetProject(ctx context.Context, who Caller, idOrSlug string) (model.Project, error) {
	p, err := s.store.GetProject(ctx, idOrSlug)
	if err != nil {
		p, err = s.store.GetProjectBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return model.Project{}, notFound(err)
	}
	if !p.Published && !who.Admin() {
		return model.Project{}, ErrNotFound
	}
	return p, nil
}

// CreateProject stores a new project built from patch.
func (s *Service) CreateProject(ctx context.Context, who Caller, patch Patch) (model.Project, error) {
	if err := who.require(); err != nil {
		return model.Project{}, err
	}
	p := model.Project{Status: model.ProjectOngoing}
	if err := patch(&p); err != nil {
		return model.Project{}, err
	}
	now := s.timestamp()
	p.ID = s.newID()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Status == "" {
		p.Status = model.ProjectOngoing
	}
	normalizeProjectLists(&p)
	if err := s.check(p); err != nil {
		return model.Project{}, err
	}
	var err error
	p.Slug, err = resolveSlug(p.Slug, p.Title, func(c string) (bool, error) {
		return s.store.ProjectSlugTaken(ctx, c, p.ID)
	})
	if err != nil {
		return model.Project{}, err
	}
	if err := s.store.InsertProject(ctx, p); err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", conflict(err))
	}
	return p, nil
}

// UpdateProject applies patch to the project with id.
func (s *Service) UpdateProject(ctx context.Context, who Caller, id string, patch Patch) (model.Project, error) {
	if err := who.require(); err != nil {
		return model.Project{}, err
	}
	cur, err := s.store.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, notFound(err)
	}
	p := cur
	// Decode lists into fresh slices so cur keeps its own backing arrays.
	p.Gallery = append(model.StringList(nil), cur.Gallery...)
	p.Features = append(model.StringList(nil), cur.Features...)
	p.Tags = append(model.StringList(nil), cur.Tags...)
	if err := patch(&p); err != nil {
		return model.Project{}, err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	normalizeProjectLists(&p)
	if err := s.check(p); err != nil {
		return model.Project{}, err
	}
	if p.Slug != cur.Slug || p.Slug == "" {
		p.Slug, err = resolveSlug(p.Slug, p.Title, func(c string) (bool, error) {
			return s.store.ProjectSlugTaken(ctx, c, p.ID)
		})
		if err != nil {
			return model.Project{}, err
		}
	}
	if err := s.store.UpdateProject(ctx, p); err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", notFound(conflict(err)))
	}
	return p, nil
}

// DeleteProject removes the project with id.
func (s *Service) DeleteProject(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteProject(ctx, id))
}

func normalizeProjectLists(p *model.Project) {
	if p.Gallery == nil {
		p.Gallery = model.StringList{}
	}
	if p.Features == nil {
		p.Features = model.StringList{}
	}
	if p.Tags == nil {
		p.Tags = model.StringList{}
	}
}
