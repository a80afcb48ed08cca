package irpointer

import "testing"

const (
	testRemoteA     = 1
	testHostBtnLeft = 100
	testHostMenu    = 200
)

func remoteFrame(pressed ...int) *Frame {
	f := baseFrame()
	var entries []ButtonState
	for _, id := range pressed {
		entries = append(entries, ButtonState{Namespace: NamespaceRemote, ID: id, Pressed: true})
	}
	setButtons(f, entries)
	f.NValidIR = 1 // ir_visible = true by default in these tests
	return f
}

func TestButtonMapEmitsPressOnceThenNoDuplicate(t *testing.T) {
	b := NewButtonMapStage()
	b.Bind(testRemoteA, true, testHostBtnLeft)

	first := b.Process(remoteFrame(testRemoteA))
	if !pressed(first, NamespaceHostKey, testHostBtnLeft) {
		t.Fatalf("expected press edge for HostKey %d", testHostBtnLeft)
	}

	second := b.Process(remoteFrame(testRemoteA))
	for _, bs := range second.Buttons {
		if !bs.valid() {
			break
		}
		if bs.Namespace == NamespaceHostKey && bs.ID == testHostBtnLeft && !bs.Pressed {
			t.Fatalf("held button re-emitted a release edge")
		}
	}
}

func TestButtonMapEmitsReleaseWhenSourceReleased(t *testing.T) {
	b := NewButtonMapStage()
	b.Bind(testRemoteA, true, testHostBtnLeft)

	b.Process(remoteFrame(testRemoteA))
	released := b.Process(remoteFrame())

	found := false
	for _, bs := range released.Buttons {
		if !bs.valid() {
			break
		}
		if bs.Namespace == NamespaceHostKey && bs.ID == testHostBtnLeft {
			found = true
			if bs.Pressed {
				t.Fatalf("expected release edge, got press")
			}
		}
	}
	if !found {
		t.Fatalf("no release edge emitted for HostKey %d", testHostBtnLeft)
	}
}

func TestButtonMapDiffersByIRVisibility(t *testing.T) {
	b := NewButtonMapStage()
	b.Bind(testRemoteA, true, testHostBtnLeft)
	b.Bind(testRemoteA, false, testHostMenu)

	offscreen := remoteFrame(testRemoteA)
	offscreen.NValidIR = 0

	out := b.Process(offscreen)
	if pressed(out, NamespaceHostKey, testHostBtnLeft) {
		t.Fatalf("on-screen mapping fired while off-screen")
	}
	if !pressed(out, NamespaceHostKey, testHostMenu) {
		t.Fatalf("off-screen mapping did not fire")
	}
}
