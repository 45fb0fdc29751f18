package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/host/remote"
	"github.com/vango-dev/vfiber/pkg/sched"
)

// session is one websocket connection and the engine rendering for it.
//
// The adapter and engine are only touched on the loop goroutine. The write
// pump owns writes to conn; the read loop owns reads.
type session struct {
	id      uint64
	conn    *websocket.Conn
	config  *Config
	metrics *metrics
	logger  *slog.Logger

	loop    *sched.Loop
	adapter *remote.Adapter
	engine  *fiber.Engine
	send    chan remote.Batch
}

func newSession(id uint64, conn *websocket.Conn, config *Config, m *metrics, logger *slog.Logger) *session {
	return &session{
		id:      id,
		conn:    conn,
		config:  config,
		metrics: m,
		logger:  logger,
		loop:    sched.NewLoop(config.FrameBudget, sched.WithLogger(logger)),
		adapter: remote.New(),
		send:    make(chan remote.Batch, 16),
	}
}

// serve runs the session until the client goes away, a pass fails or ctx
// is done.
func (s *session) serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []fiber.Option{
		fiber.WithLogger(s.logger),
		fiber.WithCommitHook(func(*fiber.Fiber) { s.flush(ctx) }),
		fiber.WithErrorHandler(func(err error) {
			s.logger.Error("render pass failed, closing session", "error", err)
			cancel()
		}),
	}
	if s.config.EngineMetrics != nil {
		opts = append(opts, fiber.WithMetrics(s.config.EngineMetrics))
	}
	s.engine = fiber.New(s.adapter, s.loop, opts...)

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- s.loop.Run(ctx)
		cancel()
	}()

	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		s.writePump(ctx)
	}()

	s.loop.Dispatch(func() {
		if err := s.engine.Render(s.config.Root(), s.adapter.Root()); err != nil {
			s.logger.Error("initial render failed", "error", err)
			cancel()
		}
	})

	s.readLoop(ctx)
	cancel()
	<-writeDone
	if err := <-loopErr; err != nil && err != context.Canceled {
		s.logger.Error("session loop failed", "error", err)
	}
}

// flush hands the ops of the last commit to the write pump. It runs on the
// loop goroutine.
func (s *session) flush(ctx context.Context) {
	batch, ok := s.adapter.Flush()
	if !ok {
		return
	}
	select {
	case s.send <- batch:
	case <-ctx.Done():
	}
}

func (s *session) writePump(ctx context.Context) {
	defer s.conn.Close()
	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case batch := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteJSON(batch); err != nil {
				s.logger.Error("write error", "error", err)
				return
			}
			s.metrics.batch(len(batch.Ops))
		}
	}
}

func (s *session) readLoop(ctx context.Context) {
	for {
		if s.config.ReadTimeout > 0 {
			s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		}
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var ev remote.ClientEvent
		if err := json.Unmarshal(msg, &ev); err != nil || ev.Event == "" {
			s.metrics.event("malformed")
			s.logger.Warn("ignoring client message",
				"error", errors.New(errors.CodeSessionProtocol).WithDetail(string(msg)).FormatCompact())
			continue
		}

		if !s.loop.Dispatch(func() { s.dispatch(ev) }) {
			return
		}
	}
}

// dispatch runs on the loop goroutine.
func (s *session) dispatch(ev remote.ClientEvent) {
	if err := s.adapter.Dispatch(ev); err != nil {
		s.metrics.event("ignored")
		s.logger.Warn("ignoring client event", "node", ev.Node, "event", ev.Event, "error", err)
		return
	}
	s.metrics.event("dispatched")
}
