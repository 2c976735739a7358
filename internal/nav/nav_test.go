package nav

import "testing"

func TestNextPrevWrap(t *testing.T) {
	tests := []struct {
		from       Section
		next, prev Section
	}{
		{SectionHome, SectionLearn, SectionEmergency},
		{SectionLearn, SectionTraining, SectionHome},
		{SectionEmergency, SectionHome, SectionTraining},
		{SectionNone, SectionHome, SectionHome},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.next {
			t.Errorf("%q.Next() = %q, want %q", tt.from, got, tt.next)
		}
		if got := tt.from.Prev(); got != tt.prev {
			t.Errorf("%q.Prev() = %q, want %q", tt.from, got, tt.prev)
		}
	}
}

func TestLabels(t *testing.T) {
	for _, s := range All {
		if s.Label() == "" {
			t.Errorf("section %q has no label", s)
		}
	}
	if SectionNone.Label() != "" {
		t.Error("SectionNone should have an empty label")
	}
}

func TestGoto(t *testing.T) {
	msg := Goto(SectionTraining)()
	got, ok := msg.(GotoMsg)
	if !ok {
		t.Fatalf("expected GotoMsg, got %T", msg)
	}
	if got.Section != SectionTraining {
		t.Errorf("expected training, got %q", got.Section)
	}
}
