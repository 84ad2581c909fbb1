package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/storage"
)

func TestLatchHoldsButtons(t *testing.T) {
	l := NewLatch()
	l.Press(core.ButtonLeft)

	for i := 0; i < holdFrames; i++ {
		if !l.Frame().Has(core.ButtonLeft) {
			t.Fatalf("frame %d: left released early", i)
		}
	}
	if l.Frame().Has(core.ButtonLeft) {
		t.Error("left still held after holdFrames")
	}
}

func TestLatchOppositeDirections(t *testing.T) {
	l := NewLatch()
	l.Press(core.ButtonLeft)
	l.Press(core.ButtonRight)

	in := l.Frame()
	if in.Has(core.ButtonLeft) || !in.Has(core.ButtonRight) {
		t.Errorf("input = %+v, want right only", in)
	}
}

func TestLatchMouseOneFrame(t *testing.T) {
	l := NewLatch()
	l.Click(core.MouseLeft)

	if !l.Frame().Clicked(core.MouseLeft) {
		t.Fatal("click missing from the next frame")
	}
	if l.Frame().Clicked(core.MouseLeft) {
		t.Error("click repeated on a second frame")
	}
}

func TestKeyMapMapKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Button
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Button1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.Button1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.Button2},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		l := NewLatch()
		if !keys.MapKey(tt.msg, l) {
			t.Errorf("%q not mapped", tt.msg.String())
			continue
		}
		if in := l.Frame(); in.Gamepad != tt.want {
			t.Errorf("%q -> %v, want %v", tt.msg.String(), in.Gamepad, tt.want)
		}
	}

	if keys.MapKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, NewLatch()) {
		t.Error("unbound key should not map")
	}
}

func TestMapMouse(t *testing.T) {
	l := NewLatch()
	if MapMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, l) {
		t.Error("motion should not map")
	}
	if !MapMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, l) {
		t.Fatal("left press should map")
	}
	if !l.Frame().Clicked(core.MouseLeft) {
		t.Error("left click missing")
	}
}

func TestRenderDimensions(t *testing.T) {
	s := core.NewScreen(core.ScreenW, core.ScreenH)
	r := NewRenderer(core.PaletteGreen)

	for _, scale := range []int{1, 2} {
		out := r.Render(s, scale)
		lines := strings.Split(out, "\n")
		cols, rows := Size(s, scale)
		if len(lines) != rows {
			t.Errorf("scale %d: %d lines, want %d", scale, len(lines), rows)
		}
		if w := lipgloss.Width(lines[0]); w != cols {
			t.Errorf("scale %d: width %d, want %d", scale, w, cols)
		}
	}
}

func TestSampleKeepsBrightest(t *testing.T) {
	s := core.NewScreen(core.ScreenW, core.ScreenH)
	s.Set(3, 1, 2) // lone star in the 2x2 block at (2,0)

	if got := sample(s, 1, 0, 2); got != 2 {
		t.Errorf("downsampled = %d, want 2", got)
	}
	if got := sample(s, 3, 1, 1); got != 2 {
		t.Errorf("full res = %d, want 2", got)
	}
}

func TestAutoScale(t *testing.T) {
	if got := AutoScale(200, 90, statusRows); got != 1 {
		t.Errorf("large terminal scale = %d, want 1", got)
	}
	if got := AutoScale(120, 40, statusRows); got != 2 {
		t.Errorf("small terminal scale = %d, want 2", got)
	}
}

func TestModelTickAndQuit(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	c := console.New(core.DefaultConfig(), console.Options{Store: store})
	var m tea.Model = NewModel(c, 0)
	m.Init()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 100})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !c.State().Playing {
		t.Error("space should start the game")
	}

	view := m.View()
	if !strings.Contains(view, "SCORE 0") {
		t.Errorf("status line missing from view")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "SESSION") {
		t.Error("tab should show the session board")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestModelBlurReleasesHeldKeys(t *testing.T) {
	c := console.New(core.DefaultConfig(), console.Options{})
	var m tea.Model = NewModel(c, 0)
	m.Init()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.BlurMsg{})

	if in := m.(Model).latch.Frame(); !in.Empty() {
		t.Errorf("input after blur = %+v, want empty", in)
	}
}

func TestModelClearBoard(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{Score: 250, Wave: 3, Frames: 900}); err != nil {
		t.Fatal(err)
	}

	c := console.New(core.DefaultConfig(), console.Options{Store: store})
	var m tea.Model = NewModel(c, 0)
	m.Init()

	before := m.(Model)
	if got := before.board.Best(); got != 250 {
		t.Fatalf("best before clear = %d, want 250", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 0 {
		t.Errorf("runs after clear = %d, want 0", stats.Runs)
	}
	after := m.(Model)
	if got := after.board.Best(); got != 0 {
		t.Errorf("best after clear = %d, want 0", got)
	}
	if !strings.Contains(m.View(), "no runs yet") {
		t.Error("cleared board should show no runs")
	}
}
