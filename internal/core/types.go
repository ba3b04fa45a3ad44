package core

// Size describes the dimensions of a world or viewport in pixels.
type Size struct {
	W int
	H int
}

// Scene is one entry of the view stack. Rendering is left to the GUI layer,
// which switches on the concrete scene type.
type Scene interface {
	Name() string
	Enter()
	Exit()
	// ChildClosed is called on the scene that becomes top after child pops.
	ChildClosed(child Scene)
	Update(dt float64) error
}

// Navigator is the push/pop surface scenes use to open or close views.
type Navigator interface {
	Push(s Scene)
	Pop()
}

// Stack is a last-in first-out scene stack.
type Stack struct {
	scenes []Scene
	quit   bool
}

// NewStack returns an empty stack.
func NewStack() *Stack { return &Stack{} }

// Push makes s the active scene.
func (st *Stack) Push(s Scene) {
	if s == nil {
		return
	}
	st.scenes = append(st.scenes, s)
	s.Enter()
}

// Pop removes the active scene. Popping the last scene requests quit.
func (st *Stack) Pop() {
	n := len(st.scenes)
	if n == 0 {
		st.quit = true
		return
	}
	top := st.scenes[n-1]
	st.scenes[n-1] = nil
	st.scenes = st.scenes[:n-1]
	top.Exit()
	if len(st.scenes) == 0 {
		st.quit = true
		return
	}
	st.scenes[len(st.scenes)-1].ChildClosed(top)
}

// Top returns the active scene or nil.
func (st *Stack) Top() Scene {
	if len(st.scenes) == 0 {
		return nil
	}
	return st.scenes[len(st.scenes)-1]
}

// Len reports the stack depth.
func (st *Stack) Len() int { return len(st.scenes) }

// Quit reports whether the stack has been emptied or Quit was requested.
func (st *Stack) Quit() bool { return st.quit }

// Update advances the active scene.
func (st *Stack) Update(dt float64) error {
	top := st.Top()
	if top == nil {
		return nil
	}
	return top.Update(dt)
}
