package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const DefaultPort = 4222

var ErrNotStarted = errors.New("nats server not started")

// NatsServer is an embedded NATS server shared with the host server, plus
// the internal client connection every subscription and request goes
// through. Messages on one subscription are delivered one at a time.
type NatsServer struct {
	ns    *server.Server
	conn  atomic.Pointer[nats.Conn]
	ready chan struct{}

	startupTimeout time.Duration
	host           string
	port           int
}

func NewNatsServer(opts ...NatsServerOpt) (*NatsServer, error) {
	s := &NatsServer{
		ready:          make(chan struct{}),
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
		port:           DefaultPort,
	}

	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	s.ns = ns

	return s, nil
}

// Start runs the server until ctx is done.
func (n *NatsServer) Start(ctx context.Context) error {
	n.ns.Start()
	defer func() {
		n.ns.Shutdown()
		n.ns.WaitForShutdown()
	}()

	if !n.ns.ReadyForConnections(n.startupTimeout) {
		return fmt.Errorf("nats server not ready after %s", n.startupTimeout)
	}

	conn, err := nats.Connect(n.ns.ClientURL(), nats.Name("warpd"))
	if err != nil {
		return fmt.Errorf("creating nats client connection: %w", err)
	}
	n.conn.Store(conn)
	close(n.ready)

	slog.InfoContext(ctx, "nats server listening", "addr", n.ns.Addr())

	<-ctx.Done()

	if err := conn.Drain(); err != nil {
		slog.WarnContext(ctx, "draining nats connection", "error", err)
		conn.Close()
	}
	return nil
}

// Ready is closed once the internal client connection is established.
func (n *NatsServer) Ready() <-chan struct{} {
	return n.ready
}

// Subscribe calls handler with the payload of every message on subject.
func (n *NatsServer) Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error) {
	return n.subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
}

// Handle answers every request on subject with the handler's response.
// Messages sent without a reply subject are processed and not answered.
func (n *NatsServer) Handle(subject string, handler func(data []byte) []byte) (unsubscribe func(), err error) {
	return n.subscribe(subject, func(msg *nats.Msg) {
		resp := handler(msg.Data)
		if msg.Reply == "" {
			return
		}
		if err := msg.Respond(resp); err != nil {
			slog.Warn("responding to request", "subject", subject, "error", err)
		}
	})
}

// Publish sends data to subject without waiting for delivery.
func (n *NatsServer) Publish(subject string, data []byte) error {
	conn, err := n.client()
	if err != nil {
		return err
	}
	return conn.Publish(subject, data)
}

// Request sends data to subject and waits for a single reply or for ctx to
// end.
func (n *NatsServer) Request(ctx context.Context, subject string, data []byte) ([]byte, error) {
	conn, err := n.client()
	if err != nil {
		return nil, err
	}
	msg, err := conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, err
	}
	return msg.Data, nil
}

func (n *NatsServer) subscribe(subject string, cb nats.MsgHandler) (func(), error) {
	conn, err := n.client()
	if err != nil {
		return nil, err
	}
	sub, err := conn.Subscribe(subject, cb)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

func (n *NatsServer) client() (*nats.Conn, error) {
	conn := n.conn.Load()
	if conn == nil {
		return nil, ErrNotStarted
	}
	return conn, nil
}
