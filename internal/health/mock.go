package health

import (
	"context"
	"sync"
)

// MockPinger implements Pinger for testing.
type MockPinger struct {
	mu sync.Mutex

	// Results maps URLs to a sequence of results. The last result repeats
	// once the sequence is exhausted.
	Results map[string][]bool

	// Default is returned for URLs without results.
	Default bool

	// Calls records every pinged URL.
	Calls []string
}

// NewMockPinger creates a MockPinger that reports every endpoint down.
func NewMockPinger() *MockPinger {
	return &MockPinger{Results: make(map[string][]bool)}
}

// SetResults sets the result sequence for url.
func (m *MockPinger) SetResults(url string, results ...bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results[url] = results
}

func (m *MockPinger) Ping(ctx context.Context, url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, url)
	seq, ok := m.Results[url]
	if !ok || len(seq) == 0 {
		return m.Default
	}
	result := seq[0]
	if len(seq) > 1 {
		m.Results[url] = seq[1:]
	}
	return result
}

// CallCount returns how many times url was pinged.
func (m *MockPinger) CallCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == url {
			n++
		}
	}
	return n
}
