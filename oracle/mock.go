package oracle

import "context"

// MockOracle is a mock suggestion oracle for testing.
type MockOracle struct {
	Suggestions map[string]string // Map of token key to proposed translation
	Err         error             // Error to return, if any
	CallCount   int               // Number of times Suggest was called
	LastRequest *SuggestRequest   // Last request received
}

// NewMockOracle creates a new mock oracle with default suggestions.
func NewMockOracle() *MockOracle {
	return &MockOracle{
		Suggestions: map[string]string{
			"kitab": "libro",
			"ilm":   "conocimiento",
			"nur":   "luz",
			"qalb":  "corazón",
		},
	}
}

// Suggest returns mock suggestions for the requested keys. Keys without a
// configured suggestion are omitted, matching real oracle behavior.
func (m *MockOracle) Suggest(ctx context.Context, req SuggestRequest) (map[string]string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return nil, m.Err
	}

	results := make(map[string]string)
	for _, key := range req.Keys {
		if translation, ok := m.Suggestions[key]; ok {
			results[key] = translation
		}
	}
	return results, nil
}

// Reset resets the call count and last request.
func (m *MockOracle) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockOracle implements Oracle
var _ Oracle = (*MockOracle)(nil)
