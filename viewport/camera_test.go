package viewport

import (
	"testing"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		panX, panY  float64
		zoom        float64
		deviceScale float64
		clientX     float64
		clientY     float64
	}{
		{"identity_center", 0, 0, 1, 1, 400, 300},
		{"identity_corner", 0, 0, 1, 1, 0, 0},
		{"panned", 120, -45, 1, 1, 213, 87},
		{"zoomed_in", 0, 0, 4, 1, 10, 590},
		{"zoomed_out", -33, 80, 0.25, 1, 799, 1},
		{"hidpi", 50, 50, 2, 2, 160, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(800, 600)
			cam.PanX = tt.panX
			cam.PanY = tt.panY
			cam.Zoom = tt.zoom
			cam.DeviceScale = tt.deviceScale

			wx, wy := cam.ScreenToWorld(tt.clientX, tt.clientY)
			cx, cy := cam.WorldToScreen(wx, wy)
			if !approxEqual(cx, tt.clientX) || !approxEqual(cy, tt.clientY) {
				t.Errorf("round trip (%v, %v) -> (%v, %v)", tt.clientX, tt.clientY, cx, cy)
			}
		})
	}
}

func TestWheelKeepsCursorAnchored(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.PanX = 37
	cam.PanY = -12

	const cx, cy = 613, 42
	wantX, wantY := cam.ScreenToWorld(cx, cy)

	for i := 0; i < 5; i++ {
		cam.Wheel(cx, cy, 1)
	}
	gotX, gotY := cam.ScreenToWorld(cx, cy)
	if !approxEqual(gotX, wantX) || !approxEqual(gotY, wantY) {
		t.Errorf("after zoom in, cursor world point = (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}

	for i := 0; i < 9; i++ {
		cam.Wheel(cx, cy, -1)
	}
	gotX, gotY = cam.ScreenToWorld(cx, cy)
	if !approxEqual(gotX, wantX) || !approxEqual(gotY, wantY) {
		t.Errorf("after zoom out, cursor world point = (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

func TestWheelAtCenterKeepsPan(t *testing.T) {
	cam := NewCamera(800, 600)

	cam.Wheel(400, 300, 1)
	cam.Wheel(400, 300, 1)

	if !approxEqual(cam.Zoom, 1.21) {
		t.Errorf("Zoom = %v, want 1.21", cam.Zoom)
	}
	if !approxEqual(cam.PanX, 0) || !approxEqual(cam.PanY, 0) {
		t.Errorf("pan = (%v, %v), want (0, 0)", cam.PanX, cam.PanY)
	}
}

func TestWheelClampsZoom(t *testing.T) {
	cam := NewCamera(800, 600)

	for i := 0; i < 100; i++ {
		cam.Wheel(400, 300, 1)
	}
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want clamped to %v", cam.Zoom, MaxZoom)
	}

	for i := 0; i < 200; i++ {
		cam.Wheel(400, 300, -1)
	}
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want clamped to %v", cam.Zoom, MinZoom)
	}
}

func TestShouldStartDrag(t *testing.T) {
	tests := []struct {
		name      string
		ev        MouseEvent
		spaceHeld bool
		want      bool
	}{
		{"middle", MouseEvent{Button: ButtonMiddle}, false, true},
		{"alt_left", MouseEvent{Button: ButtonLeft, Alt: true}, false, true},
		{"space_left", MouseEvent{Button: ButtonLeft}, true, true},
		{"plain_left", MouseEvent{Button: ButtonLeft}, false, false},
		{"right", MouseEvent{Button: ButtonRight}, false, false},
		{"alt_middle", MouseEvent{Button: ButtonMiddle, Alt: true}, false, true},
	}

	cam := NewCamera(800, 600)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.ShouldStartDrag(tt.ev, tt.spaceHeld); got != tt.want {
				t.Errorf("ShouldStartDrag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragPansByScreenDeltaOverZoom(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Zoom = 2

	cam.StartDrag(100, 100)
	cam.Drag(130, 80)

	if !approxEqual(cam.PanX, 15) || !approxEqual(cam.PanY, -10) {
		t.Errorf("pan = (%v, %v), want (15, -10)", cam.PanX, cam.PanY)
	}

	cam.StopDrag()
	cam.Drag(200, 200)
	if !approxEqual(cam.PanX, 15) || !approxEqual(cam.PanY, -10) {
		t.Errorf("drag after stop moved the pan to (%v, %v)", cam.PanX, cam.PanY)
	}
}

func TestFocusOnCenters(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Zoom = 2.5

	cam.FocusOn(320, -64)

	cx, cy := cam.WorldToScreen(320, -64)
	if !approxEqual(cx, 400) || !approxEqual(cy, 300) {
		t.Errorf("focused point maps to (%v, %v), want viewport center", cx, cy)
	}
}

func TestGlideToReachesTarget(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.GlideTo(100, 50, 0.5)

	animating := true
	for i := 0; i < 120 && animating; i++ {
		animating = cam.Update(1.0 / 60)
	}
	if animating {
		t.Fatal("glide still animating after 2 seconds")
	}

	cx, cy := cam.WorldToScreen(100, 50)
	if !approxEqual(cx, 400) || !approxEqual(cy, 300) {
		t.Errorf("glide target maps to (%v, %v), want viewport center", cx, cy)
	}
}

func TestCameraCursor(t *testing.T) {
	cam := NewCamera(800, 600)

	if got := cam.Cursor(); got != CursorDefault {
		t.Errorf("idle cursor = %q", got)
	}
	cam.SetSpaceHeld(true)
	if got := cam.Cursor(); got != CursorGrab {
		t.Errorf("space-held cursor = %q", got)
	}
	cam.StartDrag(0, 0)
	if got := cam.Cursor(); got != CursorGrabbing {
		t.Errorf("panning cursor = %q", got)
	}
	cam.StopDrag()
	cam.SetSpaceHeld(false)
	if got := cam.Cursor(); got != CursorDefault {
		t.Errorf("reset cursor = %q", got)
	}
}
