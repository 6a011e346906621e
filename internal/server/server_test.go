package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/handler"
	myHTTP "github.com/mlevashov/clientdesk/internal/handler/http"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
)

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_HTTP(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, &service.Services{}, logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	// shutting down a never-started server must not panic
	srv.Shutdown()
}
