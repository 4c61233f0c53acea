package scan

import "testing"

type stubPoller struct {
	fire   bool
	polled int
}

func (p *stubPoller) PollExitIntent() bool {
	p.polled++
	return p.fire
}

func TestMonitor_DisplayKeyWins(t *testing.T) {
	p := &stubPoller{}
	m := NewMonitor(p)
	if !m.ShouldExit('q') {
		t.Fatal("display exit key not honored")
	}
	if p.polled != 0 {
		t.Fatalf("pollers consulted despite display key: %d", p.polled)
	}
}

func TestMonitor_NoSourcesNoExit(t *testing.T) {
	m := NewMonitor(&stubPoller{}, &stubPoller{})
	if m.ShouldExit(-1) {
		t.Fatal("exit requested with no pending source")
	}
	if m.ShouldExit(0xFF51) {
		t.Fatal("extended key code treated as exit")
	}
}

func TestMonitor_AnyPollerTriggersExit(t *testing.T) {
	first := &stubPoller{}
	second := &stubPoller{fire: true}
	m := NewMonitor(first, second)
	if !m.ShouldExit(-1) {
		t.Fatal("pending poller intent ignored")
	}
	if first.polled != 1 {
		t.Fatalf("pollers not consulted in order: first polled %d times", first.polled)
	}
}

func TestKeyPoller_ClassifiesPendingByte(t *testing.T) {
	keys := []int{'a', 'q'}
	next := func() (int, bool) {
		if len(keys) == 0 {
			return -1, false
		}
		k := keys[0]
		keys = keys[1:]
		return k, true
	}
	p := KeyPoller(next)
	if p.PollExitIntent() {
		t.Fatal("'a' classified as exit key")
	}
	if !p.PollExitIntent() {
		t.Fatal("'q' not classified as exit key")
	}
	if p.PollExitIntent() {
		t.Fatal("exit intent reported with no pending byte")
	}
}

func TestSignalFlag_SetIsSticky(t *testing.T) {
	var f SignalFlag
	m := NewMonitor(&f)
	if m.ShouldExit(-1) {
		t.Fatal("exit before any signal")
	}
	f.Set()
	// The very next check must stop the loop regardless of key states.
	if !m.ShouldExit(-1) {
		t.Fatal("signal flag not observed")
	}
	if !m.ShouldExit('a') {
		t.Fatal("signal flag cleared after observation")
	}
}
