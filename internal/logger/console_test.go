package logger

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		assert.NotNil(t, logger)
		assert.Equal(t, buf, logger.writer)
		assert.Equal(t, "info", logger.logLevel)
		assert.False(t, logger.colorOutput, "buffers never get color")
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		assert.NotNil(t, logger)
		assert.Nil(t, logger.writer)

		// must not panic
		logger.LogError("discarded")
	})
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"DEBUG", "debug"},
		{"  Info ", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"", DefaultLevel},
		{"verbose", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLevel(tt.in))
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("Trace"))
	assert.True(t, IsValidLevel("error"))
	assert.False(t, IsValidLevel("fatal"))
	assert.False(t, IsValidLevel(""))
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},
		{name: "default blocks info", logLevel: "", messageLevel: "info", shouldAppear: false},
		{name: "default sees warn", logLevel: "", messageLevel: "warn", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel + " msg"

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(message)
			case "debug":
				logger.LogDebug(message)
			case "info":
				logger.LogInfo(message)
			case "warn":
				logger.LogWarn(message)
			case "error":
				logger.LogError(message)
			}

			assert.Equal(t, tt.shouldAppear, strings.Contains(buf.String(), message))
		})
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	logger.LogDebug("listing /tmp/x")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[DEBUG\] listing /tmp/x\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestFormatWithColor(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = oldNoColor }()

	logger := NewConsoleLogger(&bytes.Buffer{}, "trace")
	out := logger.formatWithColor("10:00:00", "ERROR", "boom")

	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "boom")
	assert.True(t, strings.HasPrefix(out, "[10:00:00] ["))
}

func TestDisableColor(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = oldNoColor }()

	logger := NewConsoleLogger(os.Stderr, "warn")
	require.True(t, logger.colorOutput)

	logger.DisableColor()

	assert.False(t, logger.colorOutput)
	assert.False(t, color.NoColor, "the package-wide switch is left alone")
}

func TestConsoleLoggerConcurrentWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "[INFO] line\n"))
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	logger.LogTrace("x")
	logger.LogDebug("x")
	logger.LogInfo("x")
	logger.LogWarn("x")
	logger.LogError("x")
}
