package touchui

// Scener is a full-screen navigational unit on the scene stack. Application
// scenes embed Scene and override the lifecycle hooks and input handlers
// they need.
type Scener interface {
	Viewer

	// Entered is called when the scene becomes current: after a push, or
	// when the scene above it is popped.
	Entered()

	// Exited is called when the scene stops being current: when it is
	// popped, or when another scene is pushed on top.
	Exited()
}

// Scene is a View spanning the whole window. Only the current scene
// participates in hit-testing, input routing, update and draw; scenes below
// the top are suspended but keep their subtree state.
type Scene struct {
	View
}

var _ Scener = &Scene{}

func (s *Scene) Entered() {}
func (s *Scene) Exited()  {}

// SceneStack is the ordered stack of scenes; the last pushed scene is
// current. The stack must be non-empty whenever the event loop runs.
type SceneStack struct {
	scenes []Scener
}

// Len returns the number of scenes on the stack.
func (st *SceneStack) Len() int { return len(st.scenes) }

// Current returns the top scene, or nil when the stack is empty.
func (st *SceneStack) Current() Scener {
	if len(st.scenes) == 0 {
		return nil
	}
	return st.scenes[len(st.scenes)-1]
}

// Push suspends the current scene (if any) and makes s current. The frame
// must already be set; App.Push sizes the scene to the window first.
func (st *SceneStack) Push(s Scener) {
	if cur := st.Current(); cur != nil {
		cur.Exited()
	}
	s.Base().self = s
	st.scenes = append(st.scenes, s)
	s.Entered()
}

// Pop removes and returns the current scene; the scene beneath, if any,
// resumes. Popping an empty stack is a programming error and panics.
func (st *SceneStack) Pop() Scener {
	if len(st.scenes) == 0 {
		panic("touchui: pop of empty scene stack")
	}
	s := st.scenes[len(st.scenes)-1]
	st.scenes = st.scenes[:len(st.scenes)-1]
	s.Exited()
	if cur := st.Current(); cur != nil {
		cur.Entered()
	}
	return s
}
