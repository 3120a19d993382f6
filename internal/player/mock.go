package player

import "fmt"

// Mock is a test double for an external player session.
type Mock struct {
	state    State
	position float64
	duration float64
	loadedID string
	attached bool

	seekCalls    []float64
	loadCalls    []string
	playCalls    int
	pauseCalls   int
	destroyCalls int
}

// NewMock creates an attached mock with nothing loaded.
func NewMock() *Mock {
	return &Mock{state: Unstarted, attached: true}
}

func (m *Mock) SeekTo(seconds float64, _ bool) {
	m.seekCalls = append(m.seekCalls, seconds)
	m.position = seconds
}

func (m *Mock) LoadMediaByID(id string, startSeconds int) {
	m.loadCalls = append(m.loadCalls, fmt.Sprintf("%s@%d", id, startSeconds))
	m.loadedID = id
	m.position = float64(startSeconds)
	m.state = Cued
}

func (m *Mock) Play() {
	m.playCalls++
	m.state = Playing
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.state = Paused
}

func (m *Mock) CurrentTime() float64 { return m.position }

func (m *Mock) Duration() float64 { return m.duration }

func (m *Mock) PlayerState() State { return m.state }

func (m *Mock) LoadedMediaID() string { return m.loadedID }

func (m *Mock) Attached() bool { return m.attached }

func (m *Mock) Destroy() {
	m.destroyCalls++
	m.attached = false
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPosition(sec float64) { m.position = sec }

func (m *Mock) SetDuration(sec float64) { m.duration = sec }

func (m *Mock) SetLoadedID(id string) { m.loadedID = id }

// Detach simulates the visual element being torn down externally.
func (m *Mock) Detach() { m.attached = false }

func (m *Mock) SeekCalls() []float64 { return m.seekCalls }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) DestroyCalls() int { return m.destroyCalls }

// Verify Mock implements Binding at compile time.
var _ Binding = (*Mock)(nil)
