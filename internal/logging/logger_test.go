package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_CachesPerComponent(t *testing.T) {
	a := NewLogger("test-component")
	b := NewLogger("test-component")

	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.Equal(t, "test-component", a.Data["component"])
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{})

	logger.WithField("component", "mux").WithField("pane", 2).WithField("backend", "tmux").Warn("split failed")

	assert.Equal(t, "[WARN] [mux] split failed backend=tmux pane=2\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Cleanup(func() { base.SetLevel(logrus.WarnLevel) })

	SetLevel("debug")
	assert.Equal(t, logrus.DebugLevel, base.GetLevel())

	SetLevel("nonsense")
	assert.Equal(t, logrus.WarnLevel, base.GetLevel())
}

func TestSetLevel_EnvWins(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Cleanup(func() { base.SetLevel(logrus.WarnLevel) })

	SetLevel("debug")
	assert.Equal(t, logrus.ErrorLevel, base.GetLevel())
}
