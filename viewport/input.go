// Package viewport implements the scene viewport interaction core: the
// camera, geometric hit-testing, the transform gizmo, collider handles,
// marquee selection, and the input router that arbitrates which of them
// owns a pointer interaction.
//
// The package is event-driven and single-threaded: the host feeds it
// pointer and key events and every mutation it issues completes, with
// synchronous store notification, before the next event is handled.
package viewport

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// MouseEvent is a pointer event in client (pre-device-scale) coordinates.
type MouseEvent struct {
	X, Y   float64
	Button MouseButton
	Alt    bool
	Ctrl   bool
	Shift  bool
	Meta   bool
}

// Key identifies the keyboard keys the router cares about. The host maps
// its input backend's key codes onto these.
type Key int

const (
	KeyNone Key = iota
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyD
	KeySpace
	KeyCtrl
	KeyShift
	KeyAlt
	KeyMeta
	KeyDelete
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

// Cursor names the pointer cursor the host should show, using CSS cursor
// vocabulary.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
	CursorMove     Cursor = "move"
	CursorEWResize Cursor = "ew-resize"
	CursorNSResize Cursor = "ns-resize"
)
