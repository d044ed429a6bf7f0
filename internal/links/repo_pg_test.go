package links

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoIncrementViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE public_links").
		WithArgs(at, "link-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementViews(context.Background(), "link-1", at); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoIncrementViewsMissingLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE public_links").
		WithArgs(sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.IncrementViews(context.Background(), "ghost", time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("IncrementViews error = %v, want ErrNotFound", err)
	}
}

func TestPGRepoGetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	versionID := "v1"

	rows := sqlmock.NewRows([]string{
		"id", "slug", "resume_id", "version_id", "template",
		"is_active", "view_count", "last_viewed_at", "created_at",
	}).AddRow("link-1", "abc123def456", "r1", versionID, "modern", true, 7, nil, created)

	mock.ExpectQuery("SELECT (.+) FROM public_links").
		WithArgs("abc123def456").
		WillReturnRows(rows)

	link, err := repo.GetBySlug(context.Background(), "abc123def456")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if link.ID != "link-1" || link.Slug != "abc123def456" || link.ViewCount != 7 {
		t.Fatalf("unexpected link: %+v", link)
	}
	if link.VersionID == nil || *link.VersionID != versionID {
		t.Fatalf("VersionID = %v, want %q", link.VersionID, versionID)
	}
	if link.LastViewedAt != nil {
		t.Fatalf("LastViewedAt = %v, want nil", link.LastViewedAt)
	}
}

func TestPGRepoGetBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM public_links").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "resume_id", "version_id", "template",
			"is_active", "view_count", "last_viewed_at", "created_at",
		}))

	_, err = repo.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetBySlug error = %v, want ErrNotFound", err)
	}
}
