package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider. Set Err to make
// the call fail instead.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and records every
// request it sees, so tests can assert on prompts, images and schemas.
// Safe for concurrent use.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse

	// Calls holds every request in arrival order. Guard reads with
	// CallCount or take the values after the code under test returns.
	Calls []Request
}

// NewMockProvider creates a provider scripted with the given responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// AddResponse queues another scripted response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount reports how many Generate calls have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ModelID identifies the mock in logs.
func (m *MockProvider) ModelID() string { return "mock" }

// Generate records the request and pops the next scripted response. An
// exhausted script fails with ErrProviderUnavailable, which surfaces
// over-calling as a visible test failure.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}
