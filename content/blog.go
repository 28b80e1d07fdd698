package content

import (
	"context"
	"fmt"

	"github.com/gokler/sitecms/model"
)

const defaultReadTime = "5 dk"

// ListBlogPosts returns posts newest first. Anonymous callers only get
// published posts whatever f says.
func (s *Service) ListBlogPosts(ctx context.Context, who Caller, f model.Filter) ([]model.BlogPost, error) {
	f = visible(who, f)
	posts, err := s.store.ListBlogPosts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return search(posts, f.Query, func(p model.BlogPost) []string {
		return []string{p.Title, p.Category, p.Excerpt, p.Author}
	}), nil
}

// GetBlogPost returns a post by id or slug. Drafts are NotFound for
// anonymous callers.
func (s *Service) GetBlogPost(ctx context.Context, who Caller, idOrSlug string) (model.BlogPost, error) {
	p, err := s.store.GetBlogPost(ctx, idOrSlug)
	if err != nil {
		p, err = s.store.GetBlogPostBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return model.BlogPost{}, notFound(err)
	}
	if !p.Published && !who.Admin() {
		return model.BlogPost{}, ErrNotFound
	}
	return p, nil
}

// CreateBlogPost stores a new post built from patch. The slug is derived
// from the title when patch does not carry one.
func (s *Service) CreateBlogPost(ctx context.Context, who Caller, patch Patch) (model.BlogPost, error) {
	if err := who.require(); err != nil {
		return model.BlogPost{}, err
	}
	p := model.BlogPost{ReadTime: defaultReadTime}
	if err := patch(&p); err != nil {
		return model.BlogPost{}, err
	}
	now := s.timestamp()
	p.ID = s.newID()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.ReadTime == "" {
		p.ReadTime = defaultReadTime
	}
	if err := s.check(p); err != nil {
		return model.BlogPost{}, err
	}
	var err error
	p.Slug, err = resolveSlug(p.Slug, p.Title, func(c string) (bool, error) {
		return s.store.BlogSlugTaken(ctx, c, p.ID)
	})
	if err != nil {
		return model.BlogPost{}, err
	}
	if err := s.store.InsertBlogPost(ctx, p); err != nil {
		return model.BlogPost{}, fmt.Errorf("create blog post: %w", conflict(err))
	}
	return p, nil
}

// UpdateBlogPost applies patch to the post with id. Fields patch does not
// mention keep their stored values.
func (s *Service) UpdateBlogPost(ctx context.Context, who Caller, id string, patch Patch) (model.BlogPost, error) {
	if err := who.require(); err != nil {
		return model.BlogPost{}, err
	}
	cur, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		return model.BlogPost{}, notFound(err)
	}
	p := cur
	if err := patch(&p); err != nil {
		return model.BlogPost{}, err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = cur.ID, cur.CreatedAt, s.timestamp()
	if err := s.check(p); err != nil {
		return model.BlogPost{}, err
	}
	if p.Slug != cur.Slug || p.Slug == "" {
		p.Slug, err = resolveSlug(p.Slug, p.Title, func(c string) (bool, error) {
			return s.store.BlogSlugTaken(ctx, c, p.ID)
		})
		if err != nil {
			return model.BlogPost{}, err
		}
	}
	if err := s.store.UpdateBlogPost(ctx, p); err != nil {
		return model.BlogPost{}, fmt.Errorf("update blog post: %w", notFound(conflict(err)))
	}
	return p, nil
}

// DeleteBlogPost removes the post with id.
func (s *Service) DeleteBlogPost(ctx context.Context, who Caller, id string) error {
	if err := who.require(); err != nil {
		return err
	}
	return notFound(s.store.DeleteBlogPost(ctx, id))
}
