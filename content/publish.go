package content

import (
	"context"

	"github.com/gokler/sitecms/model"
)

func togglePatch(published bool) Patch {
	return FieldsPatch(map[string]any{"published": !published})
}

// ToggleBlogPost flips the published flag of a post.
func (s *Service) ToggleBlogPost(ctx context.Context, who Caller, id string) (model.BlogPost, error) {
	if err := who.require(); err != nil {
		return model.BlogPost{}, err
	}
	cur, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		return model.BlogPost{}, notFound(err)
	}
	return s.UpdateBlogPost(ctx, who, id, togglePatch(cur.Published))
}

// ToggleProject flips the published flag of a project.
func (s *Service) ToggleProject(ctx context.Context, who Caller, id string) (model.Project, error) {
	if err := who.require(); err != nil {
		return model.Project{}, err
	}
	cur, err := s.store.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, notFound(err)
	}
	return s.UpdateProject(ctx, who, id, togglePatch(cur.Published))
}

// ToggleGalleryItem flips the published flag of a gallery item.
func (s *Service) ToggleGalleryItem(ctx context.Context, who Caller, id string) (model.GalleryItem, error) {
	if err := who.require(); err != nil {
		return model.GalleryItem{}, err
	}
	cur, err := s.store.GetGalleryItem(ctx, id)
	if err != nil {
		return model.GalleryItem{}, notFound(err)
	}
	return s.UpdateGalleryItem(ctx, who, id, togglePatch(cur.Published))
}

// ToggleTestimonial flips the published flag of a testimonial.
func (s *Service) ToggleTestimonial(ctx context.Context, who Caller, id string) (model.Testimonial, error) {
	if err := who.require(); err != nil {
		return model.Testimonial{}, err
	}
	cur, err := s.store.GetTestimonial(ctx, id)
	if err != nil {
		return model.Testimonial{}, notFound(err)
	}
	return s.UpdateTestimonial(ctx, who, id, togglePatch(cur.Published))
}
