package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"panelpop/panel"
	"panelpop/proto"
	"sync"

	"github.com/eiannone/keyboard"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type clientState int

const (
	lobby clientState = iota
	waiting
	playing
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type panelGame interface {
	Start()
	GetUpdate() <-chan *panel.Snapshot
	Action(panel.Action)
	Stop()
	ReceiveAttack(int)
}

type renderer interface {
	local(*panel.Snapshot)
	remote(*proto.GameMessage)
	lobby()
	waiting()
	reset()
}

type Client struct {
	game    panelGame
	render  renderer
	options *Options
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent
	state   *state
}

type Options struct {
	Address string
	Name    string
	Config  *panel.Config
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	r, err := newRender(l, o.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	if o.Config == nil {
		o.Config = panel.DefaultConfig()
	}
	return &Client{
		game:    panel.NewGame(o.Config, l),
		render:  r,
		options: o,
		logger:  l,
		kbCh:    kb,
		state:   &state{current: lobby},
	}, nil
}

func (c *Client) Start() {
	c.render.reset()
	c.render.lobby()
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listenKB(&wg)
	wg.Wait()
}

func (c *Client) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	var ctx context.Context
	var cancel context.CancelFunc
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		switch c.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				go c.listenGame()
				c.state.set(playing)
			case 'o':
				ctx, cancel = context.WithCancel(context.Background())
				defer cancel()
				go c.listenOnlineGame(ctx)
				c.state.set(waiting)
			case 'q':
				return
			default:
				continue
			}
		case waiting:
			switch event.Rune {
			case 'c':
				cancel()
				c.render.reset()
				c.render.lobby()
			default:
				continue
			}
		case playing:
			var a panel.Action
			switch {
			case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
				a = panel.MoveLeft
			case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
				a = panel.MoveRight
			case event.Key == keyboard.KeyArrowUp || event.Rune == 'w':
				a = panel.MoveUp
			case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
				a = panel.MoveDown
			case event.Key == keyboard.KeySpace:
				a = panel.SwapTiles
			case event.Rune == 'f':
				a = panel.FastRise
			default:
				continue
			}
			c.game.Action(a)
		}
	}
}

func (c *Client) listenGame() {
	c.game.Start()
	c.render.reset()
	for u := range c.game.GetUpdate() {
		c.render.local(u)
		if u.GameOver {
			c.state.set(lobby)
			return
		}
	}
}

// attackScore sums the garbage this frame sent against the opponent.
func attackScore(u *panel.Snapshot) int32 {
	var total int32
	for _, ev := range u.Events {
		if ev.Kind == panel.EventGarbageSent {
			total += int32(ev.Score)
		}
	}
	return total
}

func (c *Client) listenOnlineGame(ctx context.Context) {
	defer func() {
		c.state.set(lobby)
		c.game.Stop()
	}()

	conn, err := grpc.NewClient(c.options.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		c.logger.Error("unable to create gRPC client", slog.String("error", err.Error()))
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			c.logger.Error("unable to close gRPC client", slog.String("error", err.Error()))
		}
	}()
	stream, err := proto.NewPanelServiceClient(conn).PlayPanel(ctx)
	if err != nil {
		c.logger.Error("unable to create gRPC PlayPanel stream", slog.String("error", err.Error()))
		return
	}
	defer stream.CloseSend() //nolint: errcheck

	// Set receiver channel
	rcvCh := make(chan *proto.GameMessage)
	doneCh := make(chan struct{})
	go func() {
		defer func() {
			doneCh <- struct{}{}
			close(doneCh)
			close(rcvCh)
		}()
		for {
			rcv, err := stream.Recv()
			if err != nil {
				if err == io.EOF {
					c.logger.Debug("stream.Recv() closed with EOF", slog.String("msg", err.Error()))
					return
				}
				st, ok := status.FromError(err)
				if ok && st.Code() == codes.Canceled { //nolint: gocritic
					c.logger.Debug("stream.Recv() closed with Cancel", slog.String("msg", st.Message()))
				} else if ok && st.Code() == codes.DeadlineExceeded {
					c.logger.Debug("stream.Recv() closed with DeadlineExceeded", slog.String("msg", st.Message()))
				} else {
					c.logger.Error("stream.Recv() unable to receive message", slog.String("error", err.Error()))
				}
				return
			}
			rcvCh <- rcv
		}
	}()

	// Send the hello message, wait for the match to start.
	if err := stream.Send(&proto.GameMessage{Name: c.options.Name}); err != nil {
		c.logger.Error("unable to send hello message", slog.String("error", err.Error()))
		return
	}
	c.render.waiting()
start:
	for {
		select {
		case rcv := <-rcvCh:
			if rcv.GetIsStarted() {
				c.render.remote(rcv)
				break start
			}
		case <-doneCh:
			c.logger.Debug("start for loop doneCh was closed")
			return
		}
	}

	// start game
	c.state.set(playing)
	c.render.reset()
	c.game.Start()

	for {
		select {
		case lu, ok := <-c.game.GetUpdate():
			if !ok {
				c.logger.Error("listenOnline game update channel closed unexpectedly")
				return
			}
			c.render.local(lu)
			if err := stream.Send(&proto.GameMessage{
				Name:        c.options.Name,
				IsStarted:   true,
				IsGameOver:  lu.GameOver,
				AttackScore: attackScore(lu),
				Score:       int32(lu.Score), // nolint:gosec
				Level:       int32(lu.Level), // nolint:gosec
				Board:       board2Proto(lu),
			}); err != nil {
				if err == io.EOF {
					c.logger.Debug("send() opponent closed the game with EOF", slog.String("debug", err.Error()))
					return
				}
				st, ok := status.FromError(err)
				if ok && st.Code() == codes.Canceled {
					c.logger.Debug("send() opponent closed the game with Cancel", slog.String("debug", err.Error()))
					return
				}
				c.logger.Error("send() unable to send message", slog.String("error", err.Error()))
				return
			}
			if lu.GameOver {
				c.logger.Debug("listenOnline closed through local.GameOver")
				return
			}
		case ru, ok := <-rcvCh:
			if !ok {
				c.logger.Error("listenOnline remote update channel closed unexpectedly")
				return
			}
			if s := ru.GetAttackScore(); s > 0 {
				c.game.ReceiveAttack(int(s))
			}
			c.render.remote(ru)
			if ru.GetIsGameOver() {
				c.logger.Debug("listenOnline closed through remote.GetIsGameOver()")
				return
			}
		case <-doneCh:
			c.logger.Debug("listenOnline doneCh was closed")
			return
		}
	}
}
