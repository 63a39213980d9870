package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/apperr"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
)

// ProjectRepository is the persistence contract consumed by the store and
// service layers. The Firestore implementation below is the production one;
// tests substitute an in-memory fake.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, fields domain.Fields) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	SetBookmark(ctx context.Context, id string, bookmarked bool) error
	Delete(ctx context.Context, id string) error
}

// Repo provides Firestore persistence for projects: one document per
// project in a single named collection.
type Repo struct {
	client     *firestore.Client
	collection string
}

var _ ProjectRepository = (*Repo)(nil)

func New(client *firestore.Client, collection string) *Repo {
	return &Repo{client: client, collection: collection}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

// List returns the whole collection ordered by updatedAt descending.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	iter := r.col().OrderBy("updatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 32)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.PermissionDenied {
				return nil, apperr.Wrap(err, apperr.CodeFetch, "permission denied listing projects")
			}
			return nil, apperr.Wrap(err, apperr.CodeFetch, "list projects")
		}

		var p domain.Project
		if err := doc.DataTo(&p); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeFetch, fmt.Sprintf("decode project %s", doc.Ref.ID))
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// Get fetches a single project by document ID.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, apperr.Wrap(err, apperr.CodeNotFound, "project not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeFetch, "get project")
	}

	var p domain.Project
	if err := doc.DataTo(&p); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeFetch, "decode project")
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

// Create inserts a new project document. Both timestamps are assigned by
// the server at write time; the provider assigns the document ID.
func (r *Repo) Create(ctx context.Context, f domain.Fields) (string, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"category":   f.Category,
		"title":      f.Title,
		"subTitle":   f.SubTitle,
		"url":        f.URL,
		"techStack":  f.TechStack,
		"docs":       f.Docs,
		"note":       f.Note,
		"thumbnail":  f.Thumbnail,
		"status":     f.Status,
		"version":    f.Version,
		"createdBy":  f.CreatedBy,
		"bookmarked": false,
		"createdAt":  firestore.ServerTimestamp,
		"updatedAt":  firestore.ServerTimestamp,
	})
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeWrite, "create project")
	}
	return ref.ID, nil
}

// Update rewrites the editable fields and bumps updatedAt server-side.
// createdBy and createdAt are never touched after creation.
func (r *Repo) Update(ctx context.Context, id string, f domain.Fields) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "category", Value: f.Category},
		{Path: "title", Value: f.Title},
		{Path: "subTitle", Value: f.SubTitle},
		{Path: "url", Value: f.URL},
		{Path: "techStack", Value: f.TechStack},
		{Path: "docs", Value: f.Docs},
		{Path: "note", Value: f.Note},
		{Path: "thumbnail", Value: f.Thumbnail},
		{Path: "status", Value: f.Status},
		{Path: "version", Value: f.Version},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return apperr.Wrap(err, apperr.CodeNotFound, "project not found")
		}
		return apperr.Wrap(err, apperr.CodeWrite, "update project")
	}
	return nil
}

// SetBookmark flips the bookmark flag only. The bookmark toggle is not an
// edit, so updatedAt is deliberately left alone.
func (r *Repo) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "bookmarked", Value: bookmarked},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return apperr.Wrap(err, apperr.CodeNotFound, "project not found")
		}
		return apperr.Wrap(err, apperr.CodeWrite, "set bookmark")
	}
	return nil
}

// Delete removes the project document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return apperr.Wrap(err, apperr.CodeWrite, "delete project")
	}
	return nil
}
