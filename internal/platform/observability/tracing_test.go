package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TracingConfig{ServiceName: "instock-api"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_WithEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TracingConfig{
		Endpoint:       "localhost:4318",
		Insecure:       true,
		ServiceName:    "instock-api",
		ServiceVersion: "test",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	// nothing was recorded, so the flush does not reach the collector
	assert.NoError(t, shutdown(context.Background()))
}
