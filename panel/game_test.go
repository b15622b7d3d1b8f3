package panel_test

import (
	"panelpop/panel"
	"sync/atomic"
	"testing"
	"time"
)

func TestUpdateCh(t *testing.T) {
	ticker := panel.NewMockTicker()
	game := panel.NewConfigurableGame(panel.TestConfig(), nil, ticker)
	var at atomic.Int32
	doneCh := make(chan struct{})

	go func() {
		for {
			select {
			case <-game.GetUpdate():
				at.Store(at.Load() + 1)
			case <-time.After(1 * time.Second):
				t.Error("Timed out waiting for update signal")
				close(doneCh)
			case <-doneCh:
				return
			}
		}
	}()
	game.Start()
	ticker.Tick()
	time.Sleep(50 * time.Millisecond)
	if at.Load() != 1 {
		t.Errorf("Expected update count to be 1, but got %d", at.Load())
	}
	game.Action(panel.MoveRight)
	time.Sleep(50 * time.Millisecond)
	if at.Load() != 2 {
		t.Errorf("Expected update count to be 2, but got %d", at.Load())
	}
	doneCh <- struct{}{}
	game.Stop()
}

func TestStartStop(t *testing.T) {
	ticker := panel.NewMockTicker()
	game := panel.NewConfigurableGame(panel.TestConfig(), nil, ticker)
	go func() {
		for range game.GetUpdate() {
		}
	}()
	game.Start()
	time.Sleep(50 * time.Millisecond)
	if !ticker.IsReset() {
		t.Errorf("Expected ticker to be reset")
	}
	game.Stop()
	if !ticker.IsStop() {
		t.Errorf("Expected ticker to be stopped")
	}
}

func TestActionsMoveTheCursor(t *testing.T) {
	ticker := panel.NewMockTicker()
	game := panel.NewConfigurableGame(panel.TestConfig(), nil, ticker)
	updates := make(chan *panel.Snapshot, 10)
	go func() {
		for u := range game.GetUpdate() {
			updates <- u
		}
	}()
	game.Start()

	game.Action(panel.MoveRight)
	snap := <-updates
	if snap.CursorX != 3 {
		t.Errorf("wanted cursor at column 3, got %d", snap.CursorX)
	}
	game.Action(panel.MoveUp)
	snap = <-updates
	if snap.CursorY != 1 {
		t.Errorf("wanted cursor at row 1, got %d", snap.CursorY)
	}
	game.Stop()
}

func TestReceiveAttackOverChannel(t *testing.T) {
	ticker := panel.NewMockTicker()
	game := panel.NewConfigurableGame(panel.TestConfig(), nil, ticker)
	updates := make(chan *panel.Snapshot, 10)
	go func() {
		for u := range game.GetUpdate() {
			updates <- u
		}
	}()
	game.Start()

	game.ReceiveAttack(250)
	snap := <-updates
	received := false
	for _, ev := range snap.Events {
		if ev.Kind == panel.EventGarbageReceived {
			received = true
		}
	}
	if !received {
		t.Error("wanted a garbage received event in the next snapshot")
	}
	game.Stop()
}
