package links

import (
	"strings"
	"testing"
)

func TestNewSlug(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		slug, err := NewSlug()
		if err != nil {
			t.Fatalf("NewSlug: %v", err)
		}
		if len(slug) != 12 {
			t.Fatalf("slug length = %d, want 12", len(slug))
		}
		if strings.ContainsAny(slug, "+/=") {
			t.Fatalf("slug %q contains non URL-safe characters", slug)
		}
		if seen[slug] {
			t.Fatalf("duplicate slug %q", slug)
		}
		seen[slug] = true
	}
}
