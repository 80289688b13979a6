package core

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct{ name string }

func (s *fakeScreen) Title() string        { return s.name }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, nil, true
	}
	return s, nil, false
}

func TestScreenStack(t *testing.T) {
	var st ScreenStack
	if st.Top() != nil || st.Pop() != nil {
		t.Fatalf("empty stack should have no top")
	}
	a, b := &fakeScreen{name: "a"}, &fakeScreen{name: "b"}
	st.Push(a)
	st.Push(nil)
	st.Push(b)
	if st.Len() != 2 || st.Top() != b {
		t.Fatalf("len=%d top=%v", st.Len(), st.Top())
	}
	c := &fakeScreen{name: "c"}
	st.Replace(c)
	if st.Top() != c || st.Len() != 2 {
		t.Fatalf("replace did not swap top")
	}
	if st.Pop() != c || st.Top() != a {
		t.Fatalf("pop order wrong")
	}
}

func TestStatusCommands(t *testing.T) {
	if msg := StatusCmd("saved")().(StatusMsg); msg.Text != "saved" || msg.IsErr {
		t.Fatalf("StatusCmd = %+v", msg)
	}
	if msg := ErrorCmd(errors.New("boom"))().(StatusMsg); msg.Text != "boom" || !msg.IsErr {
		t.Fatalf("ErrorCmd = %+v", msg)
	}
	if msg := ErrorCmd(nil)().(StatusMsg); msg.IsErr {
		t.Fatalf("ErrorCmd(nil) = %+v", msg)
	}
}
