// Package nav defines the top-level sections shown in the navigation bar.
package nav

import tea "charm.land/bubbletea/v2"

// Section is a top-level area of the app.
type Section string

const (
	SectionNone      Section = ""
	SectionHome      Section = "home"
	SectionLearn     Section = "learn"
	SectionTraining  Section = "training"
	SectionEmergency Section = "emergency"
)

// All lists the sections in navigation bar order.
var All = []Section{SectionHome, SectionLearn, SectionTraining, SectionEmergency}

// Label returns the navigation bar label.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionLearn:
		return "Learn"
	case SectionTraining:
		return "Training"
	case SectionEmergency:
		return "Emergency"
	default:
		return ""
	}
}

// Next returns the section after s, wrapping around. Unknown sections map to home.
func (s Section) Next() Section {
	return s.offset(1)
}

// Prev returns the section before s, wrapping around.
func (s Section) Prev() Section {
	return s.offset(-1)
}

func (s Section) offset(d int) Section {
	for i, cand := range All {
		if cand == s {
			return All[(i+d+len(All))%len(All)]
		}
	}
	return SectionHome
}

// GotoMsg asks the app host to switch to a section, discarding the
// current screen stack.
type GotoMsg struct {
	Section Section
}

// Goto returns a command that emits GotoMsg for s.
func Goto(s Section) tea.Cmd {
	return func() tea.Msg { return GotoMsg{Section: s} }
}
