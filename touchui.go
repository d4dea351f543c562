package touchui

import (
	"errors"
	"image"
	"log"
	"os"
	"os/signal"
	"time"
)

const (
	frameRate = 60

	// startupGate is the accumulated run time before quit checks are
	// honored, so a stray event during display bring-up cannot kill the
	// app immediately.
	startupGate = 500 * time.Millisecond
)

// ErrInterrupted is returned by Run when the process receives an interrupt;
// the backend has been torn down by then.
var ErrInterrupted = errors.New("touchui: interrupted")

// App holds the window and all shared UI state: the backend, the scene
// stack, focus, theme and resources. Create one with NewApp, call Init, push
// a scene and call Run.
type App struct {
	Stack     *SceneStack
	Focus     *Focus
	Theme     *Theme
	Resources *Resources
	Debug     bool // log hit-testing and event routing

	backend Backend
	window  *Surface // window-sized backing buffer
	size    image.Point
	downIn  Viewer // view that received the most recent mouse down
	inited  bool
	quit    bool
}

// NewApp returns an App driving the given backend, with a default theme and
// resources rooted in the current directory.
func NewApp(backend Backend) *App {
	return &App{
		Stack:     &SceneStack{},
		Focus:     &Focus{},
		Theme:     NewTheme(),
		Resources: NewResources("."),
		backend:   backend,
	}
}

// Init creates the display and initializes the theme. It must run once
// before any scene operation.
func (a *App) Init(title string, size image.Point) error {
	if err := a.backend.Init(title, size); err != nil {
		return err
	}
	a.size = size
	a.window = NewSurface(size)
	// Theme fonts can only load once the display exists.
	a.Theme.Init(a.Resources)
	a.inited = true
	return nil
}

// WindowSize returns the logical window size given to Init.
func (a *App) WindowSize() image.Point { return a.size }

// Push sizes s to the window, lays it out and makes it the current scene.
func (a *App) Push(s Scener) {
	if !a.inited {
		panic("touchui: Push before Init")
	}
	b := s.Base()
	b.app = a
	b.SetFrame(rect(a.size))
	b.Relayout()
	a.Stack.Push(s)
}

// Pop removes the current scene. Popping the last scene requests shutdown,
// observed at the next gated quit check.
func (a *App) Pop() Scener {
	s := a.Stack.Pop()
	a.Focus.Set(nil)
	a.downIn = nil
	if a.Stack.Len() == 0 {
		a.quit = true
	}
	return s
}

// Quit requests shutdown; Run returns after the current tick.
func (a *App) Quit() { a.quit = true }

// Run drives the application until quit: it polls the backend for device
// events at a fixed tick rate, routes them to the current scene's views,
// then updates, draws and presents the frame. It blocks the calling
// goroutine. An interrupt tears down the backend and returns ErrInterrupted.
func (a *App) Run() error {
	if !a.inited {
		panic("touchui: Run before Init")
	}
	if a.Stack.Len() == 0 {
		panic("touchui: Run with empty scene stack")
	}

	intc := make(chan os.Signal, 1)
	signal.Notify(intc, os.Interrupt)
	defer signal.Stop(intc)

	tick := time.NewTicker(time.Second / frameRate)
	defer tick.Stop()

	last := time.Now()
	var elapsed time.Duration
	for {
		select {
		case <-intc:
			// Release the display even on abrupt termination.
			a.backend.Close()
			return ErrInterrupted
		case now := <-tick.C:
			dt := now.Sub(last)
			last = now
			elapsed += dt
			if elapsed <= startupGate {
				continue
			}
			if a.step(dt.Seconds()) {
				return nil
			}
		}
	}
}

// step runs one tick: event processing, update, draw, present. It reports
// whether the app should shut down. The backend has been closed by then.
func (a *App) step(dt float64) bool {
	// A pending quit, including one from popping the last scene, wins
	// over the stack assertion: the stack is legitimately empty then.
	if a.quit {
		a.backend.Close()
		return true
	}
	if a.Stack.Len() == 0 {
		panic("touchui: tick with empty scene stack")
	}
	for _, e := range a.backend.Poll() {
		if a.dispatch(e) {
			a.backend.Close()
			return true
		}
		// A slot may quit or pop the last scene mid-batch; the
		// remaining events have no scene to go to.
		if a.quit {
			break
		}
	}
	if a.quit {
		a.backend.Close()
		return true
	}
	cur := a.Stack.Current()
	cur.Update(dt)
	cur.Draw()
	a.window.Blit(cur.Base().Surface(), image.Point{})
	if err := a.backend.Present(a.window); err != nil {
		log.Printf("touchui: present: %v", err)
	}
	return false
}

// dispatch routes one event to the current scene's views and reports whether
// it was a quit event.
func (a *App) dispatch(e Event) bool {
	cur := a.Stack.Current()
	switch e.Kind {
	case EventQuit:
		return true

	case EventMouseDown:
		hit := cur.Base().Hit(e.Pos)
		if a.Debug {
			log.Printf("touchui: hit %T at %v", hit, e.Pos)
		}
		if hit != nil && hit.Base() != cur.Base() {
			a.Focus.Set(hit)
			a.downIn = hit
			hit.MouseDown(e.Button, hit.Base().FromWindow(e.Pos))
		} else {
			a.Focus.Set(nil)
		}

	case EventMouseUp:
		hit := cur.Base().Hit(e.Pos)
		if hit != nil {
			if a.downIn != nil && !sameViewer(a.downIn, hit) {
				// The press/release pair crossed view boundaries:
				// the interaction on the origin view is cancelled,
				// the release still goes to the view under the
				// cursor.
				a.downIn.Blurred()
				a.Focus.drop()
			}
			hit.MouseUp(e.Button, hit.Base().FromWindow(e.Pos))
		}
		a.downIn = nil

	case EventMouseMove:
		if a.downIn != nil && a.downIn.Base().Draggable {
			a.downIn.MouseDrag(a.downIn.Base().FromWindow(e.Pos), e.Rel)
		} else {
			cur.MouseMotion(e.Pos)
		}

	case EventKeyDown:
		if f := a.Focus.Current(); f != nil {
			f.KeyDown(e.Key, e.Rune)
		} else {
			cur.KeyDown(e.Key, e.Rune)
		}

	case EventKeyUp:
		if f := a.Focus.Current(); f != nil {
			f.KeyUp(e.Key)
		} else {
			cur.KeyUp(e.Key)
		}
	}
	return false
}
