package messaging

import (
	"context"
	"errors"
	"sync"
)

var errMock = errors.New("mock failure")

// mockBus implements RequestHandler and Requester for testing
type mockBus struct {
	mu       sync.Mutex
	ready    chan struct{}
	subs     map[string]func([]byte)
	handlers map[string]func([]byte) []byte

	subErr   error
	pubErr   error
	replies  map[string][]byte
	reqErr   error
	requests map[string][]byte
	deadline bool

	published []published
}

type published struct {
	subject string
	data    string
}

func newMockBus() *mockBus {
	ready := make(chan struct{})
	close(ready)
	return &mockBus{
		ready:    ready,
		subs:     map[string]func([]byte){},
		handlers: map[string]func([]byte) []byte{},
		replies:  map[string][]byte{},
		requests: map[string][]byte{},
	}
}

func (b *mockBus) Ready() <-chan struct{} { return b.ready }

func (b *mockBus) Subscribe(subject string, handler func([]byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subErr != nil {
		return nil, b.subErr
	}
	b.subs[subject] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, subject)
	}, nil
}

func (b *mockBus) Handle(subject string, handler func([]byte) []byte) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subErr != nil {
		return nil, b.subErr
	}
	b.handlers[subject] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, subject)
	}, nil
}

func (b *mockBus) Publish(subject string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pubErr != nil {
		return b.pubErr
	}
	b.published = append(b.published, published{subject: subject, data: string(data)})
	return nil
}

func (b *mockBus) Request(ctx context.Context, subject string, data []byte) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests[subject] = data
	_, b.deadline = ctx.Deadline()
	if b.reqErr != nil {
		return nil, b.reqErr
	}
	return b.replies[subject], nil
}

func (b *mockBus) subscribed(subject string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, sub := b.subs[subject]
	_, handle := b.handlers[subject]
	return sub || handle
}

func (b *mockBus) deliver(subject string, data string) {
	b.mu.Lock()
	h := b.subs[subject]
	b.mu.Unlock()
	h([]byte(data))
}

func (b *mockBus) ask(subject string, data string) string {
	b.mu.Lock()
	h := b.handlers[subject]
	b.mu.Unlock()
	return string(h([]byte(data)))
}
