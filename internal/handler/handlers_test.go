package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "chat-server-test",
			TokenDuration: time.Hour,
			CookieName:    "jwt",
		},
		Server: config.Server{HTTPAddress: "localhost:5001"},
		OAuth:  config.OAuth{FrontendURL: "http://localhost:5173"},
	}
}

// NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers_InitialisesHTTP(t *testing.T) {
	h := NewHandlers(nil, testConfig(), logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := testConfig()

	h1 := NewHandlers(nil, cfg, logger.Nop())
	h2 := NewHandlers(nil, cfg, logger.Nop())

	require.NotNil(t, h1)
	require.NotNil(t, h2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
