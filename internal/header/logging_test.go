package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vvka-141/mxfmeta/internal/header"
	"github.com/vvka-141/mxfmeta/internal/logging"
)

func TestRead_LogsProgress(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.NewZapLoggerFrom(zap.New(core))

	id := ids{}
	_, err := pictureFile(id).read(header.Options{Logger: log})
	require.NoError(t, err)

	for _, snippet := range []string{
		"Header partition",
		"primer pack at offset",
		"collected 18 metadata sets",
		"Sequence: 3",
		"resolved 18 sets in dependency order",
		"links 1 of 1 sub-descriptors",
	} {
		assert.Equal(t, 1, logs.FilterMessageSnippet(snippet).Len(), "log containing %q", snippet)
	}
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
	}
}

func TestRead_QuietWithoutVerbose(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logging.NewZapLoggerFrom(zap.New(core))

	id := ids{}
	_, err := pictureFile(id).read(header.Options{Logger: log})
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
