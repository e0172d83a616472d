package viewport

import "testing"

func TestSchedulerCoalescesRequests(t *testing.T) {
	var s RenderScheduler

	if s.BeginFrame() {
		t.Error("fresh scheduler reported a redraw due")
	}

	s.RequestRender()
	s.RequestRender()
	s.RequestRender()
	if !s.BeginFrame() {
		t.Error("redraw not due after requests")
	}
	if s.BeginFrame() {
		t.Error("second frame redrew without a new request")
	}
}

func TestSchedulerContinuousMode(t *testing.T) {
	var s RenderScheduler

	s.SetContinuous(true)
	for i := 0; i < 3; i++ {
		if !s.BeginFrame() {
			t.Fatalf("frame %d: continuous mode did not redraw", i)
		}
	}

	s.SetContinuous(false)
	if s.BeginFrame() {
		t.Error("redraw due after leaving continuous mode with no requests")
	}

	s.RequestRender()
	if !s.BeginFrame() {
		t.Error("request after continuous mode was lost")
	}
}
