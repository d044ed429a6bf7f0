package letters

import "testing"

func TestDeckSlides(t *testing.T) {
	valid := `[{"title":"a","subtitle":"b","content":"c"},{"title":"d","subtitle":"e","content":"f"},{"title":"g","subtitle":"h","content":"i"},{"title":"j","subtitle":"k","content":"l"}]`

	tests := []struct {
		name    string
		content string
		want    int
		wantNil bool
	}{
		{"four slides", valid, 4, false},
		{"legacy free-text letter", "Dear hiring manager, ...", 0, true},
		{"empty content", "", 0, true},
		{"malformed json", `[{"title":"broken"`, 0, true},
		{"object not array", `{"title":"a"}`, 0, true},
		{"too few slides", `[{"title":"a"},{"title":"b"},{"title":"c"}]`, 0, true},
		{"too many slides", `[{},{},{},{},{}]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := CoverLetterDeck{ID: "d1", ResumeID: "r1", Content: tt.content}
			slides := deck.Slides()
			if tt.wantNil {
				if slides != nil {
					t.Fatalf("Slides() = %v, want nil", slides)
				}
				return
			}
			if len(slides) != tt.want {
				t.Fatalf("len(Slides()) = %d, want %d", len(slides), tt.want)
			}
		})
	}
}
