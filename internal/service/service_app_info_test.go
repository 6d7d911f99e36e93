package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/logger"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "release version", version: "1.0.0"},
		{name: "version with build metadata", version: "v1.2.3-beta+build.42"},
		{name: "empty version", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "dev"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "dev", svc.GetAppVersion(ctx))
}
