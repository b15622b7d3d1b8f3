package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"panelpop/proto"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// match holds the relay channels for one pair of players. chs[i] carries
// messages destined for player i.
type match struct {
	id    string
	chs   [2]chan *proto.GameMessage
	names [2]string
	ready chan struct{} // closed when both players have joined
	done  chan struct{} // closed when either player leaves
	once  sync.Once
}

func newMatch() *match {
	return &match{
		id:    uuid.New().String(),
		chs:   [2]chan *proto.GameMessage{make(chan *proto.GameMessage, 10), make(chan *proto.GameMessage, 10)},
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (m *match) close() {
	m.once.Do(func() { close(m.done) })
}

type panelServer struct {
	proto.UnimplementedPanelServiceServer
	waiting *match
	logger  *slog.Logger
	mu      sync.Mutex
}

func New(logger *slog.Logger) proto.PanelServiceServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &panelServer{logger: logger}
}

// join pairs the caller with the waiting player, or parks it as the new
// waiting player. Returns the match and the caller's slot in it.
func (s *panelServer) join(name string) (*match, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiting == nil {
		m := newMatch()
		m.names[0] = name
		s.waiting = m
		return m, 0
	}
	m := s.waiting
	s.waiting = nil
	m.names[1] = name
	close(m.ready)
	return m, 1
}

// abandon removes the match from the waitlist if it is still parked there.
func (s *panelServer) abandon(m *match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiting == m {
		s.waiting = nil
	}
}

// PlayPanel expects a hello message carrying the player's name, pairs the
// stream with another player's, and then relays game messages between the
// two until either side disconnects.
func (s *panelServer) PlayPanel(stream grpc.BidiStreamingServer[proto.GameMessage, proto.GameMessage]) error {
	hello, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("failed to receive hello message: %v", err)
	}

	m, player := s.join(hello.GetName())
	opponent := 1 - player
	s.logger.Info("player joined", "name", hello.GetName(), "match", m.id, "slot", player)

	select {
	case <-m.ready:
	case <-stream.Context().Done():
		s.abandon(m)
		return stream.Context().Err()
	}

	if err := stream.Send(&proto.GameMessage{IsStarted: true, Name: m.names[opponent]}); err != nil {
		return fmt.Errorf("failed to send start message: %v", err)
	}

	// deliver the opponent's messages to this player
	go func() {
		for {
			select {
			case msg := <-m.chs[player]:
				if err := stream.Send(msg); err != nil {
					s.logger.Error("failed to relay message", "match", m.id, "error", err)
					m.close()
					return
				}
			case <-m.done:
				return
			case <-stream.Context().Done():
				return
			}
		}
	}()
	defer m.close()

	for {
		rcv, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to receive game message: %v", err)
		}
		select {
		case m.chs[opponent] <- rcv:
		case <-m.done:
			return nil
		}
	}
}
