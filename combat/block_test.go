package combat

import (
	"testing"
	"time"
)

func TestBlockEntryForfeitsComboAndSharesRecoveryGate(t *testing.T) {
	r := newRig(t, nil)

	r.trigger(LightIntent)
	r.advance(400 * time.Millisecond)
	r.expectStep(1, ComboLight)

	r.c.PressAttack(r.now)
	r.c.UpdateBlock(true, true, r.now)
	if r.c.BlockPhase() != BlockStarting || !r.c.IsBlocking() {
		t.Fatalf("expected block startup, got %v", r.c.BlockPhase())
	}
	r.expectStep(0, ComboNone)
	if got := r.obs.resets[len(r.obs.resets)-1]; got != CauseBlock {
		t.Errorf("expected block reset, got %v", got)
	}
	if !r.anim.bools["Blocking"] {
		t.Error("expected Blocking parameter set on entry")
	}
	if out := r.trigger(LightIntent); out != OutcomeRejected {
		t.Errorf("expected attack while blocking to be rejected, got %v", out)
	}
	if _, ok := r.c.ReleaseAttack(r.now); ok {
		t.Error("the chord's attack press leaked an intent")
	}

	r.advance(100 * time.Millisecond)
	if !r.c.IsActiveBlock() {
		t.Fatalf("expected active block after startup, got %v", r.c.BlockPhase())
	}

	r.c.UpdateBlock(false, false, r.now)
	if !r.c.IsBlockRecovering() || !r.c.InRecovery() {
		t.Fatalf("expected block recovery to hold the recovery gate, phase %v", r.c.BlockPhase())
	}
	if r.anim.bools["Blocking"] {
		t.Error("expected Blocking parameter cleared on release")
	}
	if out := r.trigger(LightIntent); out != OutcomeBuffered {
		t.Fatalf("expected attack during block recovery to buffer, got %v", out)
	}

	r.advance(190 * time.Millisecond)
	r.expectStep(0, ComboNone)

	r.advance(10 * time.Millisecond)
	if r.c.BlockPhase() != BlockUnblocked {
		t.Errorf("expected unblocked after block recovery, got %v", r.c.BlockPhase())
	}
	r.expectStep(1, ComboLight)

	want := []BlockPhase{BlockStarting, BlockActive, BlockRecovery, BlockUnblocked}
	if len(r.obs.phases) != len(want) {
		t.Fatalf("expected phases %v, got %v", want, r.obs.phases)
	}
	for i := range want {
		if r.obs.phases[i] != want[i] {
			t.Errorf("phase %d: expected %v, got %v", i, want[i], r.obs.phases[i])
		}
	}
}

func TestBlockChordIgnoredWhileAttacking(t *testing.T) {
	r := newRig(t, nil)

	r.trigger(LightIntent)
	r.advance(frame)
	r.c.UpdateBlock(true, true, r.now)

	if r.c.BlockPhase() != BlockUnblocked {
		t.Errorf("expected chord ignored mid-attack, got %v", r.c.BlockPhase())
	}
	r.expectStep(1, ComboLight)
}

func TestBlockNeedsBothButtons(t *testing.T) {
	r := newRig(t, nil)

	r.c.UpdateBlock(true, false, r.now)
	if r.c.IsBlocking() {
		t.Error("block alone must not start a block")
	}
	r.c.UpdateBlock(false, true, r.now)
	if r.c.IsBlocking() {
		t.Error("attack alone must not start a block")
	}
}

func TestReleaseDuringStartupSkipsActive(t *testing.T) {
	r := newRig(t, nil)

	r.c.UpdateBlock(true, true, r.now)
	r.advance(50 * time.Millisecond)
	r.c.UpdateBlock(false, true, r.now)

	r.advance(100 * time.Millisecond)
	if r.c.IsActiveBlock() {
		t.Error("cancelled startup still activated the block")
	}
	if !r.c.IsBlockRecovering() {
		t.Errorf("expected block recovery, got %v", r.c.BlockPhase())
	}

	r.advance(100 * time.Millisecond)
	if r.c.BlockPhase() != BlockUnblocked || r.c.InRecovery() {
		t.Errorf("expected gate released, phase %v recovery %v", r.c.BlockPhase(), r.c.InRecovery())
	}
}

func TestResetDuringBlockRecoveryKeepsGate(t *testing.T) {
	r := newRig(t, nil)

	r.c.UpdateBlock(true, true, r.now)
	r.advance(100 * time.Millisecond)
	r.c.UpdateBlock(false, false, r.now)

	if !r.c.ForceReset() {
		t.Fatal("expected idle reset to apply")
	}
	if !r.c.InRecovery() {
		t.Error("reset dropped the block recovery gate")
	}
}
