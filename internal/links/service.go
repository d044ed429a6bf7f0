package links

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumedeck-backend/internal/shared/cache"
	"resumedeck-backend/internal/shared/telemetry"
)

// ResumeSource fetches resumes for the link path.
type ResumeSource interface {
	// GetResume fetches without an ownership filter (public viewers are
	// not the owner).
	GetResume(ctx context.Context, resumeID string) (ResumeRecord, error)
	// GetOwnedResume fetches with an ownership check (publish path).
	GetOwnedResume(ctx context.Context, ownerID, resumeID string) (ResumeRecord, error)
}

// OwnerSource fetches the owning user's profile.
type OwnerSource interface {
	GetOwner(ctx context.Context, userID string) (OwnerProfile, error)
}

// VersionSource fetches pinned resume versions.
type VersionSource interface {
	GetVersion(ctx context.Context, versionID string) (VersionRecord, error)
}

// DeckSource fetches the latest pitch-deck slides for a resume.
type DeckSource interface {
	LatestSlides(ctx context.Context, resumeID string) ([]Slide, error)
}

const linkCacheTTL = 30 * time.Second

// Service owns public-link business logic: publishing, toggling and the
// public page itself.
type Service struct {
	Repo     Repo
	Resumes  ResumeSource
	Owners   OwnerSource
	Versions VersionSource
	Decks    DeckSource
	Views    *ViewCounter
	Cache    cache.Cache
}

// PublishInput captures the inputs for creating a public link.
type PublishInput struct {
	ResumeID  string
	VersionID *string
	Template  string
}

// Publish creates a public link for an owned resume, optionally pinned to
// one of its versions.
func (s *Service) Publish(ctx context.Context, ownerID string, input PublishInput) (PublicLink, error) {
	resume, err := s.Resumes.GetOwnedResume(ctx, ownerID, input.ResumeID)
	if err != nil {
		return PublicLink{}, err
	}

	if input.VersionID != nil {
		version, err := s.Versions.GetVersion(ctx, *input.VersionID)
		if err != nil {
			return PublicLink{}, fmt.Errorf("%w: version not found", ErrInvalidInput)
		}
		if version.ResumeID != resume.ID {
			return PublicLink{}, fmt.Errorf("%w: version belongs to a different resume", ErrInvalidInput)
		}
	}

	slug, err := NewSlug()
	if err != nil {
		return PublicLink{}, err
	}

	template := input.Template
	if template == "" {
		template = DefaultTemplate
	}

	link := PublicLink{
		ID:        uuid.NewString(),
		Slug:      slug,
		ResumeID:  resume.ID,
		VersionID: input.VersionID,
		Template:  template,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, link); err != nil {
		return PublicLink{}, err
	}
	return link, nil
}

// List returns the links for an owned resume.
func (s *Service) List(ctx context.Context, ownerID, resumeID string) ([]PublicLink, error) {
	if _, err := s.Resumes.GetOwnedResume(ctx, ownerID, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID)
}

// SetActive toggles an owned link and drops its cache entry so the change
// takes effect immediately.
func (s *Service) SetActive(ctx context.Context, ownerID, linkID string, active bool) (PublicLink, error) {
	link, err := s.Repo.GetByID(ctx, linkID)
	if err != nil {
		return PublicLink{}, err
	}
	if _, err := s.Resumes.GetOwnedResume(ctx, ownerID, link.ResumeID); err != nil {
		return PublicLink{}, ErrNotFound
	}
	if err := s.Repo.SetActive(ctx, linkID, active); err != nil {
		return PublicLink{}, err
	}
	link.IsActive = active
	if s.Cache != nil {
		_ = s.Cache.Del(ctx, slugCacheKey(link.Slug))
	}
	return link, nil
}

// PublicPage is everything the public page handler needs to respond.
type PublicPage struct {
	Link     PublicLink
	Decision Decision
	Snapshot Snapshot
	Slides   []Slide
	IsOwner  bool
}

// ServePublic resolves a public link for a viewer. The only hard failure is
// a missing link/resume/owner (ErrNotFound); policy denial comes back as a
// normal PublicPage with Decision.Servable false, and deck failures degrade
// to no slides.
func (s *Service) ServePublic(ctx context.Context, slug, viewerID string) (PublicPage, error) {
	link, err := s.lookupLink(ctx, slug)
	if err != nil {
		return PublicPage{}, err
	}

	resume, err := s.Resumes.GetResume(ctx, link.ResumeID)
	if err != nil {
		return PublicPage{}, ErrNotFound
	}
	owner, err := s.Owners.GetOwner(ctx, resume.OwnerID)
	if err != nil {
		return PublicPage{}, ErrNotFound
	}

	// The owner flag is informational for the renderer; it never bypasses
	// the policy, so owners see the same expiry their audience would.
	isOwner := viewerID != "" && viewerID == owner.ID

	decision := Evaluate(link, owner, time.Now().UTC())
	if !decision.Servable {
		return PublicPage{Link: link, Decision: decision, IsOwner: isOwner}, nil
	}

	s.Views.Record(link)

	var version *VersionRecord
	if link.VersionID != nil {
		if v, err := s.Versions.GetVersion(ctx, *link.VersionID); err == nil {
			version = &v
		} else {
			// A dangling pin falls back to the live resume data.
			telemetry.Warn("link.version_missing", map[string]any{
				"slug":       link.Slug,
				"version_id": *link.VersionID,
			})
		}
	}

	snapshot := ResolveSnapshot(resume, version, link.Template)

	slides, err := s.Decks.LatestSlides(ctx, resume.ID)
	if err != nil {
		telemetry.Warn("link.deck_unavailable", map[string]any{
			"slug":      link.Slug,
			"resume_id": resume.ID,
			"error":     err.Error(),
		})
		slides = nil
	}

	return PublicPage{
		Link:     link,
		Decision: decision,
		Snapshot: snapshot,
		Slides:   slides,
		IsOwner:  isOwner,
	}, nil
}

func (s *Service) lookupLink(ctx context.Context, slug string) (PublicLink, error) {
	key := slugCacheKey(slug)
	if s.Cache != nil {
		var cached PublicLink
		if hit, err := s.Cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	link, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return PublicLink{}, err
	}
	if s.Cache != nil {
		_ = s.Cache.SetJSON(ctx, key, link, linkCacheTTL)
	}
	return link, nil
}

func slugCacheKey(slug string) string {
	return "link:slug:" + slug
}
