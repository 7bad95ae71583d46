package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionUp)

	if !f.Has(ActionUp) {
		t.Error("frame should contain the constructor action")
	}
	if f.Has(ActionEat) {
		t.Error("frame should not contain unset actions")
	}

	f.Set(ActionEat)
	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionUp) || !clone.Has(ActionEat) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionEat.String() != "Eat" {
		t.Errorf("ActionEat.String() = %q", ActionEat.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
