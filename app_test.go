package touchui

import (
	"fmt"
	"image"
	"testing"
	"time"
)

// fakeBackend replays scripted event batches, one per Poll.
type fakeBackend struct {
	batches  [][]Event
	pos      image.Point
	inited   bool
	closed   bool
	presents int
}

func (b *fakeBackend) Init(title string, size image.Point) error {
	b.inited = true
	return nil
}

func (b *fakeBackend) Poll() []Event {
	if len(b.batches) == 0 {
		return nil
	}
	batch := b.batches[0]
	b.batches = b.batches[1:]
	return batch
}

func (b *fakeBackend) MousePos() image.Point { return b.pos }

func (b *fakeBackend) Present(frame *Surface) error {
	b.presents++
	return nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

// eventView records every input callback it receives.
type eventView struct {
	View
	name string
	log  *[]string
}

func newEventView(name string, frame image.Rectangle, log *[]string) *eventView {
	v := &eventView{name: name, log: log}
	v.self = v
	v.frame = frame
	return v
}

func (v *eventView) record(f string, args ...any) {
	*v.log = append(*v.log, v.name+" "+fmt.Sprintf(f, args...))
}

func (v *eventView) MouseDown(button int, p image.Point) { v.record("down %v", p) }
func (v *eventView) MouseUp(button int, p image.Point)   { v.record("up %v", p) }
func (v *eventView) MouseDrag(p, rel image.Point)        { v.record("drag %v %v", p, rel) }
func (v *eventView) KeyDown(key Key, ch rune)            { v.record("keydown %c", ch) }
func (v *eventView) KeyUp(key Key)                       { v.record("keyup") }
func (v *eventView) Focused()                            { v.record("focused") }
func (v *eventView) Blurred()                            { v.record("blurred") }

// eventScene records scene-level motion and key routing.
type eventScene struct {
	Scene
	log *[]string
}

func (s *eventScene) MouseMotion(p image.Point) {
	*s.log = append(*s.log, fmt.Sprintf("scene motion %v", p))
}

func (s *eventScene) KeyDown(key Key, ch rune) {
	*s.log = append(*s.log, fmt.Sprintf("scene keydown %c", ch))
}

func (s *eventScene) KeyUp(key Key) {
	*s.log = append(*s.log, "scene keyup")
}

func newTestApp(t *testing.T, backend *fakeBackend) (*App, *eventScene, *[]string) {
	t.Helper()
	var log []string
	app := NewApp(backend)
	if err := app.Init("test", image.Pt(320, 240)); err != nil {
		t.Fatal(err)
	}
	scene := &eventScene{log: &log}
	app.Push(scene)
	return app, scene, &log
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log = %v, want %v", got, want)
		}
	}
}

func TestClickDownUpSameView(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)},
		{Kind: EventMouseUp, Button: Button1, Pos: image.Pt(10, 10)},
	}}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)

	app.step(0.016)

	assertLog(t, *log, "B focused", "B down (10,10)", "B up (10,10)")
	if app.Focus.Current() != Viewer(b) {
		t.Error("focus should be on the pressed view")
	}
}

func TestReleaseCrossingViewBoundary(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)},
		{Kind: EventMouseUp, Button: Button1, Pos: image.Pt(200, 200)},
	}}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	c := newEventView("C", image.Rect(150, 150, 250, 240), log)
	scene.AddChild(b)
	scene.AddChild(c)

	app.step(0.016)

	// The origin view is blurred, the release still goes to the view
	// under the cursor, in its local coordinates.
	assertLog(t, *log, "B focused", "B down (10,10)", "B blurred", "C up (50,50)")
	if app.Focus.Current() != nil {
		t.Error("focus should be cleared after a crossing release")
	}
}

func TestReleaseOverSceneAfterPress(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)},
		{Kind: EventMouseUp, Button: Button1, Pos: image.Pt(300, 230)},
	}}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)

	app.step(0.016)

	// Release over empty area hits the scene itself; the press origin is
	// blurred and never receives the up.
	assertLog(t, *log, "B focused", "B down (10,10)", "B blurred")
	if app.Focus.Current() != nil {
		t.Error("focus should be cleared")
	}
	if app.downIn != nil {
		t.Error("press tracking should be cleared after release")
	}
}

func TestDownOverEmptyAreaClearsFocus(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{
		{{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)}},
		{{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(300, 230)}},
	}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)

	app.step(0.016)
	app.step(0.016)

	assertLog(t, *log, "B focused", "B down (10,10)", "B blurred")
	if app.Focus.Current() != nil {
		t.Error("down over the scene itself should clear focus")
	}
}

func TestDragRoutedToDraggablePressTarget(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(30, 30)},
		{Kind: EventMouseMove, Pos: image.Pt(35, 32), Rel: image.Pt(5, 2)},
	}}}
	app, scene, log := newTestApp(t, backend)
	d := newEventView("D", image.Rect(20, 20, 70, 70), log)
	d.Draggable = true
	scene.AddChild(d)

	app.step(0.016)

	assertLog(t, *log, "D focused", "D down (10,10)", "D drag (15,12) (5,2)")
}

func TestMotionWithoutDragGoesToScene(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseMove, Pos: image.Pt(42, 17), Rel: image.Pt(1, 1)},
	}}}
	app, _, log := newTestApp(t, backend)

	app.step(0.016)

	assertLog(t, *log, "scene motion (42,17)")
}

func TestMotionWhilePressedOnNonDraggableGoesToScene(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(30, 30)},
		{Kind: EventMouseMove, Pos: image.Pt(35, 32), Rel: image.Pt(5, 2)},
	}}}
	app, scene, log := newTestApp(t, backend)
	v := newEventView("V", image.Rect(20, 20, 70, 70), log)
	scene.AddChild(v)

	app.step(0.016)

	assertLog(t, *log, "V focused", "V down (10,10)", "scene motion (35,32)")
}

func TestKeysRouteToFocusedViewElseScene(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{
		{{Kind: EventKeyDown, Key: 'x', Rune: 'x'}},
		{{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)}},
		{{Kind: EventKeyDown, Key: 'y', Rune: 'y'}, {Kind: EventKeyUp, Key: 'y'}},
	}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)

	app.step(0.016)
	app.step(0.016)
	app.step(0.016)

	assertLog(t, *log,
		"scene keydown x",
		"B focused", "B down (10,10)",
		"B keydown y", "B keyup")
}

func TestQuitEventStopsTickAndClosesBackend(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{{Kind: EventQuit}}}}
	app, _, _ := newTestApp(t, backend)

	if !app.step(0.016) {
		t.Fatal("step should report shutdown on quit event")
	}
	if !backend.closed {
		t.Error("backend should be closed on quit")
	}
	if backend.presents != 0 {
		t.Error("no frame should be presented after quit")
	}
}

func TestUpdateDrawPresentEachTick(t *testing.T) {
	backend := &fakeBackend{}
	app, scene, _ := newTestApp(t, backend)
	scene.Background = rgb(0x101010)

	if app.step(0.016) {
		t.Fatal("step without quit should continue")
	}
	if backend.presents != 1 {
		t.Errorf("presents = %d, want 1", backend.presents)
	}
	if c := app.window.RGBA().RGBAAt(5, 5); c != rgb(0x101010) {
		t.Errorf("window pixel = %v, want scene background", c)
	}
}

func TestPopLastSceneRequestsQuit(t *testing.T) {
	backend := &fakeBackend{}
	app, _, _ := newTestApp(t, backend)

	app.Pop()
	if !app.step(0.016) {
		t.Error("step should shut down after the last scene is popped")
	}
	if !backend.closed {
		t.Error("backend should be closed")
	}
}

func TestSlotPoppingLastSceneStopsEventBatch(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)},
		{Kind: EventMouseUp, Button: Button1, Pos: image.Pt(10, 10)},
		{Kind: EventMouseMove, Pos: image.Pt(12, 11), Rel: image.Pt(2, 1)},
	}}}
	app, scene, log := newTestApp(t, backend)
	quit := NewButton(image.Rect(0, 0, 50, 50), "quit")
	quit.OnClicked.Connect(func(args ...any) { app.Pop() })
	scene.AddChild(quit)

	if !app.step(0.016) {
		t.Fatal("step should shut down after the slot pops the last scene")
	}
	if !backend.closed {
		t.Error("backend should be closed")
	}
	// The trailing motion event has no scene left to go to.
	assertLog(t, *log)
}

func TestPopClearsFocusOfDetachedView(t *testing.T) {
	backend := &fakeBackend{}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)
	app.Focus.Set(b)
	scene.RemoveChild(b) // no longer reachable from any scene

	app.Push(&eventScene{log: log})
	app.Pop()

	if app.Focus.Current() != nil {
		t.Error("pop must clear focus even for a view detached after focusing")
	}
	if (*log)[len(*log)-1] != "B blurred" {
		t.Errorf("log = %v, want blur notification on pop", *log)
	}
}

func TestOnlyCurrentSceneReceivesInput(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{
		{Kind: EventMouseDown, Button: Button1, Pos: image.Pt(10, 10)},
	}}}
	app, scene, log := newTestApp(t, backend)
	b := newEventView("B", image.Rect(0, 0, 50, 50), log)
	scene.AddChild(b)

	top := &eventScene{log: log}
	app.Push(top)
	c := newEventView("C", image.Rect(0, 0, 50, 50), log)
	top.AddChild(c)

	app.step(0.016)

	// Only the top scene's child sees the press.
	assertLog(t, *log, "C focused", "C down (10,10)")
}

func TestStepPanicsWithEmptyStack(t *testing.T) {
	app := NewApp(&fakeBackend{})
	if err := app.Init("test", image.Pt(100, 100)); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("ticking with no scene must panic")
		}
	}()
	app.step(0.016)
}

func TestRunHonorsQuitAfterStartupGate(t *testing.T) {
	backend := &fakeBackend{batches: [][]Event{{{Kind: EventQuit}}}}
	app, _, _ := newTestApp(t, backend)

	start := time.Now()
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d := time.Since(start); d < startupGate {
		t.Errorf("run returned after %v, quit must not be honored before the %v gate", d, startupGate)
	}
	if !backend.closed {
		t.Error("backend should be closed after run")
	}
}
