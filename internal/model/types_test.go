package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		name       string
		newWindow  bool
		newPane    int
		horizontal bool
		want       Mode
	}{
		{name: "no flags", want: Mode{Kind: CurrentPane}},
		{name: "-p 2", newPane: 2, want: Mode{Kind: NewPane, PaneCount: 2}},
		{name: "-p -H", newPane: 1, horizontal: true, want: Mode{Kind: NewPane, PaneCount: 1, Horizontal: true}},
		{name: "-w", newWindow: true, want: Mode{Kind: NewWindow}},
		{name: "-w -H without -p ignores orientation", newWindow: true, horizontal: true, want: Mode{Kind: NewWindow}},
		{name: "-w -p", newWindow: true, newPane: 1, want: Mode{Kind: NewWindow, PaneCount: 1}},
		{name: "-w -p 2 -H", newWindow: true, newPane: 2, horizontal: true, want: Mode{Kind: NewWindow, PaneCount: 2, Horizontal: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeFromFlags(tt.newWindow, tt.newPane, tt.horizontal))
		})
	}
}

func TestMode_EffectiveOutsideSession(t *testing.T) {
	modes := []Mode{
		{Kind: NewWindow},
		{Kind: NewWindow, PaneCount: 2, Horizontal: true},
		{Kind: NewPane, PaneCount: 1},
		{Kind: CurrentPane},
	}
	for _, m := range modes {
		assert.Equal(t, Mode{Kind: CurrentPane}, m.Effective(false), m.String())
		assert.Equal(t, m, m.Effective(true), m.String())
	}
}

func TestMode_Split(t *testing.T) {
	assert.False(t, Mode{Kind: NewWindow}.Split())
	assert.False(t, Mode{Kind: NewPane, PaneCount: 1}.Split())
	assert.True(t, Mode{Kind: NewPane, PaneCount: 2}.Split())
	assert.True(t, Mode{Kind: NewWindow, PaneCount: 3}.Split())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "current-pane", Mode{}.String())
	assert.Equal(t, "new-window(panes=2, horizontal)", Mode{Kind: NewWindow, PaneCount: 2, Horizontal: true}.String())
	assert.Equal(t, "new-pane(panes=1, vertical)", Mode{Kind: NewPane, PaneCount: 1}.String())
	assert.Equal(t, "ModeKind(9)", ModeKind(9).String())
}
