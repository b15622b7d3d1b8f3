package client

import (
	"fmt"
	"log/slog"
	"os"
	"panelpop/panel"
	"panelpop/proto"
	"sync"
	"testing"
	"time"

	"github.com/eiannone/keyboard"
)

type mockGame struct {
	updateCh chan *panel.Snapshot
	start    bool
	stop     bool
	action   panel.Action
	attack   int
}

func (m *mockGame) Stop()                               { m.stop = true }
func (m *mockGame) GetUpdate() <-chan *panel.Snapshot   { return m.updateCh }
func (m *mockGame) Start()                              { m.start = true; m.updateCh <- &panel.Snapshot{} }
func (m *mockGame) Action(a panel.Action)               { m.action = a; m.updateCh <- &panel.Snapshot{} }
func (m *mockGame) ReceiveAttack(score int)             { m.attack += score }
func (m *mockGame) sendGameOver()                       { m.updateCh <- &panel.Snapshot{GameOver: true} }

type mockRender struct {
	lobbyCount  int
	localCount  int
	remoteCount int
}

func (m *mockRender) remote(*proto.GameMessage) { m.remoteCount++ }
func (m *mockRender) reset()                    {}
func (m *mockRender) waiting()                  {}
func (m *mockRender) lobby()                    { m.lobbyCount++ }
func (m *mockRender) local(s *panel.Snapshot)   { m.localCount++ }

func TestClient(t *testing.T) {
	render := &mockRender{}
	game := &mockGame{updateCh: make(chan *panel.Snapshot, 10)}
	kCh := make(chan keyboard.KeyEvent)
	cl := &Client{
		game:   game,
		render: render,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})),
		kbCh:   kCh,
		state:  &state{current: lobby},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() { cl.Start(); wg.Done() }()
	time.Sleep(10 * time.Millisecond)
	wantLocalCount := 1

	// 'p' should call game.Start(), switch to playing and render the first
	// update.
	kCh <- keyboard.KeyEvent{Rune: 'p'}
	time.Sleep(10 * time.Millisecond)
	if !game.start {
		t.Errorf("wanted game.Start() to be called, got %t", game.start)
	}
	if cl.state.get() != playing {
		t.Errorf("wanted state playing after 'p' key press, got %v", cl.state.get())
	}
	if render.localCount != wantLocalCount {
		t.Errorf("wanted render.local() to be called %d times, got %d", wantLocalCount, render.localCount)
	}

	// while in game, keys should direct to game actions.
	actions := []struct {
		key    keyboard.KeyEvent
		action panel.Action
	}{
		{key: keyboard.KeyEvent{Rune: 'a'}, action: panel.MoveLeft},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, action: panel.MoveLeft},
		{key: keyboard.KeyEvent{Rune: 'd'}, action: panel.MoveRight},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, action: panel.MoveRight},
		{key: keyboard.KeyEvent{Rune: 'w'}, action: panel.MoveUp},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, action: panel.MoveUp},
		{key: keyboard.KeyEvent{Rune: 's'}, action: panel.MoveDown},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, action: panel.MoveDown},
		{key: keyboard.KeyEvent{Key: keyboard.KeySpace}, action: panel.SwapTiles},
		{key: keyboard.KeyEvent{Rune: 'f'}, action: panel.FastRise},
	}
	for _, a := range actions {
		wantLocalCount++
		t.Run(fmt.Sprintf("key %v", a.key), func(t *testing.T) {
			kCh <- a.key
			time.Sleep(10 * time.Millisecond)
			if render.localCount != wantLocalCount {
				t.Errorf("wanted render.local() to be called %d times, got %d", wantLocalCount, render.localCount)
			}
			if game.action != a.action {
				t.Errorf("wanted action %v, got %v", a.action, game.action)
			}
		})
	}

	// a game over snapshot should render and drop back to the lobby.
	wantLocalCount++
	game.sendGameOver()
	time.Sleep(10 * time.Millisecond)
	if render.localCount != wantLocalCount {
		t.Errorf("wanted render.local() to be called %d times, got %d", wantLocalCount, render.localCount)
	}
	if cl.state.get() != lobby {
		t.Errorf("wanted state lobby after game over, got %v", cl.state.get())
	}

	// 'q' should quit the game from the lobby.
	kCh <- keyboard.KeyEvent{Rune: 'q'}
	wgDone := make(chan struct{})
	go func() { wg.Wait(); close(wgDone) }()
	select {
	case <-time.After(time.Second):
		t.Errorf("timeout waiting for quit")
	case <-wgDone:
	}
}

func TestAttackScore(t *testing.T) {
	s := &panel.Snapshot{Events: []panel.Event{
		{Kind: panel.EventGarbageSent, Score: 300},
		{Kind: panel.EventTilePopped},
		{Kind: panel.EventGarbageSent, Score: 200},
	}}
	if got := attackScore(s); got != 500 {
		t.Errorf("wanted attack score 500, got %d", got)
	}
	if got := attackScore(&panel.Snapshot{}); got != 0 {
		t.Errorf("wanted attack score 0 for empty snapshot, got %d", got)
	}
}
