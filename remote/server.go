// Package remote serves the game over websocket: every tick's state goes out
// as JSON and remote key events for paddle 1 come back in.
package remote

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/net/websocket"

	"github.com/jtestard/go-pingpong/pong"
)

const (
	outboxSize = 8
	inboxSize  = 64

	closeTimeout = time.Second
)

type client struct {
	ws     *websocket.Conn
	outbox chan WsGameState
}

// Server is both a pong.Observer and a pong.EventSource.
type Server struct {
	log zerolog.Logger

	mu      deadlock.Mutex
	clients map[*client]struct{}
	last    WsGameState

	events chan pong.Event
	http   *http.Server
}

func New(log zerolog.Logger) *Server {
	s := &Server{
		log:     log,
		clients: make(map[*client]struct{}),
		last:    snapshot(*pong.NewGameState()),
		events:  make(chan pong.Event, inboxSize),
	}
	s.http = &http.Server{Handler: s}
	return s
}

// ServeHTTP upgrades the request to a websocket connection.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ws := websocket.Server{Handler: websocket.Handler(s.handleWsConnection)}
	ws.ServeHTTP(w, req)
}

// Serve accepts connections on l until Close is called.
func (s *Server) Serve(l net.Listener) error {
	s.log.Info().Str("addr", l.Addr().String()).Msg("starting websocket server")
	err := s.http.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe listens on addr and serves until Close is called.
func (s *Server) ListenAndServe(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Close stops the listener and disconnects every client.
func (s *Server) Close() error {
	err := s.http.Shutdown(context.Background())

	// Closing writes a close frame, so do it outside the lock Observe takes.
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c.ws)
	}
	s.mu.Unlock()

	for _, ws := range conns {
		// Unblocks a writer stuck on a peer that stopped reading.
		ws.SetWriteDeadline(time.Now().Add(closeTimeout))
		ws.Close()
	}

	return err
}

func (s *Server) handleWsConnection(ws *websocket.Conn) {
	c := &client{
		ws:     ws,
		outbox: make(chan WsGameState, outboxSize),
	}

	s.mu.Lock()
	c.outbox <- s.last
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	log := s.log.With().Str("remote", ws.Request().RemoteAddr).Logger()
	log.Info().Msg("client connected")

	done := make(chan struct{})
	go s.writeLoop(c, done, log)

	for {
		var data WsMessage
		if err := websocket.JSON.Receive(ws, &data); err != nil {
			log.Debug().Err(err).Msg("receive failed")
			break
		}

		ev, ok := data.toEvent()
		if !ok {
			log.Debug().Str("type", data.Type).Str("target", data.Target).Msg("ignoring message")
			continue
		}
		select {
		case s.events <- ev:
		default:
			log.Warn().Msg("event queue full, dropping input")
		}
	}

	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	close(done)
	ws.Close()

	log.Info().Msg("client disconnected")
}

func (s *Server) writeLoop(c *client, done <-chan struct{}, log zerolog.Logger) {
	for {
		select {
		case msg := <-c.outbox:
			if err := websocket.JSON.Send(c.ws, msg); err != nil {
				log.Debug().Err(err).Msg("send failed")
				c.ws.Close()
				return
			}
		case <-done:
			return
		}
	}
}

// Observe queues a snapshot of st for every client. Clients that are not
// keeping up miss the snapshot.
func (s *Server) Observe(st pong.GameState) {
	msg := snapshot(st)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = msg
	for c := range s.clients {
		select {
		case c.outbox <- msg:
		default:
		}
	}
}

// Pending drains the remote key events received so far.
func (s *Server) Pending() []pong.Event {
	var events []pong.Event
	for {
		select {
		case ev := <-s.events:
			events = append(events, ev)
		default:
			return events
		}
	}
}
