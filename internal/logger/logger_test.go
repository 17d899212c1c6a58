package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		verbose   bool
		wantDebug bool
	}{
		{name: "dev quiet", mode: "dev", verbose: false, wantDebug: false},
		{name: "dev verbose", mode: "dev", verbose: true, wantDebug: true},
		{name: "prod quiet", mode: "prod", verbose: false, wantDebug: false},
		{name: "production verbose", mode: "production", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.mode, tt.verbose)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel))
			assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zap.WarnLevel))
		})
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("command", "square").Debug("built shape", "side", 4.0)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "built shape", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "square", fields["command"])
	assert.Equal(t, 4.0, fields["side"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded")
	l.Sync()
}
