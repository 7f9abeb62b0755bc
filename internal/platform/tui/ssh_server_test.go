package tui

import (
	"sync"
	"testing"
)

func TestPlayerSessionsOnePerPlayer(t *testing.T) {
	p := newPlayerSessions()

	if !p.acquire("ana") {
		t.Fatal("first session should be accepted")
	}
	if p.acquire("ana") {
		t.Error("second session for the same player should be refused")
	}
	if !p.acquire("luis") {
		t.Error("another player should be accepted")
	}

	p.release("ana")
	if !p.acquire("ana") {
		t.Error("player should be accepted again after disconnecting")
	}
}

func TestPlayerSessionsConcurrentAcquire(t *testing.T) {
	p := newPlayerSessions()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.acquire("ana") {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("accepted %d concurrent sessions, want 1", accepted)
	}
}
