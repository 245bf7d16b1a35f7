package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/service"
)

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", StatusPolicy: config.StatusPolicyAlwaysOK, MaxBodyBytes: 1024}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
