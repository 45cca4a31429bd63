package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_CollectsHTMLLogs(t *testing.T) {
	l := New()
	l.Info("[d] точка добавлена", zap.Int("n", 3))
	l.Warn("[d] дубликат")
	assert.Nil(t, l.Logs)

	l.UpdateLogs()
	require.Len(t, l.Logs, 1)
	html := l.Logs[0]
	assert.True(t, strings.HasPrefix(html, "<pre>"))
	assert.True(t, strings.HasSuffix(html, "</pre>"))
	assert.Contains(t, html, `<span style="color: green;">info</span>`)
	assert.Contains(t, html, `<span style="color: yellow;">warn</span>`)
	assert.Contains(t, html, "точка добавлена")
	assert.NotContains(t, html, "\033[")

	l.ClearLogs()
	assert.Nil(t, l.Logs)
	l.Debug("после очистки")
	l.UpdateLogs()
	require.Len(t, l.Logs, 1)
	assert.NotContains(t, l.Logs[0], "точка добавлена")
}

func TestNewConsole_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zapcore.InfoLevel)
	l.Debug("hidden")
	l.Info("visible", zap.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, `"k": "v"`)
	assert.Nil(t, l.Logs)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Debug("x")
		l.Warn("x")
		l.Error("x")
		l.ClearLogs()
	})
	assert.Nil(t, l.Logs)
	assert.NotNil(t, l.Zap())
}

func TestAnsiToHTML(t *testing.T) {
	in := "a \033[31mred\033[0m b \033[99mplain\033[0m"
	assert.Equal(t, `<pre>a <span style="color: red;">red</span> b plain</pre>`, ansiToHTML(in))
	assert.Equal(t, "<pre>no colors</pre>", ansiToHTML("no colors"))
}
