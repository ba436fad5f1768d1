package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automoto/doomerang-combo/combat"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	r := NewRecorder()

	r.AttackCommitted(combat.AttackSnapshot{Step: 1})
	r.AttackCommitted(combat.AttackSnapshot{Step: 1})
	r.AttackCommitted(combat.AttackSnapshot{Step: 2, IsHeavy: true})
	r.AttackRejected(combat.HeavyIntent, combat.ReasonResources)
	r.BufferStored(combat.LightIntent)
	r.BufferDropped(combat.LightIntent, combat.DropStale)
	r.ComboReset(combat.CauseTimeout)
	r.BlockChanged(combat.BlockActive)

	if got := testutil.ToFloat64(r.attacks.WithLabelValues("light", "1")); got != 2 {
		t.Errorf("expected 2 light step 1 attacks, got %v", got)
	}
	if got := testutil.ToFloat64(r.attacks.WithLabelValues("heavy", "2")); got != 1 {
		t.Errorf("expected 1 heavy step 2 attack, got %v", got)
	}
	if got := testutil.ToFloat64(r.rejections.WithLabelValues("heavy", combat.ReasonResources.String())); got != 1 {
		t.Errorf("expected 1 resource rejection, got %v", got)
	}
	if got := testutil.ToFloat64(r.bufferEvents.WithLabelValues("dropped_" + combat.DropStale.String())); got != 1 {
		t.Errorf("expected 1 stale drop, got %v", got)
	}
	if got := testutil.ToFloat64(r.resets.WithLabelValues(combat.CauseTimeout.String())); got != 1 {
		t.Errorf("expected 1 timeout reset, got %v", got)
	}
	if got := testutil.CollectAndCount(r.blocks); got != 1 {
		t.Errorf("expected 1 block series, got %d", got)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewRecorder()
	r.ComboReset(combat.CauseEnd)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "combo_resets_total") {
		t.Errorf("expected combo_resets_total in output, got %s", body)
	}
}

func TestStartDebugServerRejectsPublicAddress(t *testing.T) {
	_, err := StartDebugServer("0.0.0.0:0", NewRecorder())
	if !errors.Is(err, ErrNotLocal) {
		t.Errorf("expected ErrNotLocal, got %v", err)
	}
}

func TestStartDebugServerOnLoopback(t *testing.T) {
	srv, err := StartDebugServer("127.0.0.1:0", NewRecorder())
	if err != nil {
		t.Fatalf("expected server to start, got %v", err)
	}
	srv.Close()
}
