package components

import "testing"

func TestCueLatchFiresOncePerCycle(t *testing.T) {
	var latch CueLatch

	if latch.TryFire() {
		t.Fatalf("unarmed latch must not fire")
	}

	latch.Arm()
	if !latch.TryFire() {
		t.Fatalf("armed latch should fire")
	}
	if latch.TryFire() {
		t.Fatalf("latch must not fire twice in one cycle")
	}

	// Re-arming after the fire is ignored until the cycle resets.
	latch.Arm()
	if latch.TryFire() {
		t.Fatalf("re-arm before disarm must not fire")
	}

	latch.Disarm()
	latch.Arm()
	if !latch.TryFire() {
		t.Fatalf("latch should fire again after disarm")
	}
}

func TestCueLatchDisarmClearsPending(t *testing.T) {
	var latch CueLatch
	latch.Arm()
	latch.Disarm()
	if latch.TryFire() {
		t.Fatalf("disarm should cancel a pending fire")
	}
}
