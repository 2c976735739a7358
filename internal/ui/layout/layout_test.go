package layout

import (
	"strings"
	"testing"

	"github.com/abhisek/safeguard/internal/nav"
)

func TestRenderHeader_ShowsAllTabsAndSOS(t *testing.T) {
	out := RenderHeader("Home", nav.SectionHome, 120)

	for _, want := range []string{"SafeGuard", "Home", "Learn", "Training", "Emergency", "SOS"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeader_CompactShowsActiveOnly(t *testing.T) {
	out := RenderHeader("Learn", nav.SectionLearn, 80)

	if !strings.Contains(out, "Learn") {
		t.Error("expected active tab in compact header")
	}
	if strings.Contains(out, "Training") {
		t.Error("expected inactive tabs hidden in compact header")
	}
	if !strings.Contains(out, "SOS") {
		t.Error("SOS badge must always be visible")
	}
}

func TestRenderHeader_NoSectionShowsTitle(t *testing.T) {
	out := RenderHeader("Not Found", nav.SectionNone, 120)
	if !strings.Contains(out, "Not Found") {
		t.Error("expected title when no section is active")
	}
	if strings.Contains(out, "Training") {
		t.Error("expected no tabs when no section is active")
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}
