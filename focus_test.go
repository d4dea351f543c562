package touchui

import (
	"image"
	"testing"
)

// hookView records focus notifications into a shared log.
type hookView struct {
	View
	name string
	log  *[]string
}

func (v *hookView) Focused() { *v.log = append(*v.log, v.name+" focused") }
func (v *hookView) Blurred() { *v.log = append(*v.log, v.name+" blurred") }

func newHookView(name string, log *[]string) *hookView {
	v := &hookView{name: name, log: log}
	v.self = v
	v.frame = image.Rect(0, 0, 10, 10)
	return v
}

func TestFocusBlursPreviousBeforeFocusingNext(t *testing.T) {
	var log []string
	a := newHookView("a", &log)
	b := newHookView("b", &log)

	var f Focus
	f.Set(a)
	f.Set(b)

	want := []string{"a focused", "a blurred", "b focused"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if f.Current() != Viewer(b) {
		t.Errorf("Current = %v, want b", f.Current())
	}
}

func TestFocusSetSameIsNoop(t *testing.T) {
	var log []string
	a := newHookView("a", &log)

	var f Focus
	f.Set(a)
	f.Set(a)

	if len(log) != 1 {
		t.Errorf("log = %v, re-focusing must not notify", log)
	}
}

func TestFocusSetNilClears(t *testing.T) {
	var log []string
	a := newHookView("a", &log)

	var f Focus
	f.Set(a)
	f.Set(nil)

	if f.Current() != nil {
		t.Errorf("Current = %v, want nil", f.Current())
	}
	if log[len(log)-1] != "a blurred" {
		t.Errorf("log = %v, want blur on clear", log)
	}
	f.Set(nil) // already clear, no-op
	if len(log) != 2 {
		t.Errorf("log = %v, clearing twice must not notify again", log)
	}
}
