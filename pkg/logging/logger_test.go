/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Unit tests for the logging system. Covers configuration
validation, log file creation, the custom formatter, and the detector-specific
logging helpers.
*/

package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/akaylee-langid/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config writing to a per-test temp directory
func validConfig(t *testing.T) *logging.LoggerConfig {
	t.Helper()
	return &logging.LoggerConfig{
		Level:     logging.LogLevelDebug,
		Format:    logging.LogFormatText,
		OutputDir: t.TempDir(),
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	require.NoError(t, validConfig(t).Validate())

	bad := validConfig(t)
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())

	bad = validConfig(t)
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	bad = validConfig(t)
	bad.MaxSize = -1
	assert.Error(t, bad.Validate())

	bad = validConfig(t)
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = validConfig(t)
	bad.Level = "verbose"
	assert.Error(t, bad.Validate())
}

func TestLoggerWritesToFile(t *testing.T) {
	config := validConfig(t)
	logger, err := logging.NewLogger(config)
	require.NoError(t, err)

	logger.LogDetection("8d3f9c21-aaaa-bbbb-cccc-000000000000", "German", 3*time.Millisecond, nil)
	logger.LogRuleMatch("8d3f9c21-aaaa-bbbb-cccc-000000000000", "German", "distinctive-characters", nil)
	logger.LogModelLoad("de", "trigrams", 420, nil)
	logger.LogBatch("batch-1", 10, 2, 25*time.Millisecond, nil)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(config.OutputDir, "akaylee-langid_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Language detected")
	assert.Contains(t, content, "Rule short-circuit")
	assert.Contains(t, content, "Language model loaded")
	assert.Contains(t, content, "Batch detection completed")
}

func TestNewLoggerCustomFormat(t *testing.T) {
	// A logger with the custom formatter starts, exposes its logrus logger,
	// and closes cleanly
	config := validConfig(t)
	config.Format = logging.LogFormatCustom
	logger, err := logging.NewLogger(config)
	require.NoError(t, err)
	assert.NotNil(t, logger.GetLogger())
	require.NoError(t, logger.Close())
}

func TestCustomFormatter(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: true, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "Language detected",
		Data: logrus.Fields{
			"language":     "French",
			"detection_id": "0123456789abcdef",
		},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)
	line := string(out)

	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "[DETECT]")
	assert.Contains(t, line, "Language detected")
	assert.Contains(t, line, "language=French")
	// Long IDs are shortened for display
	assert.Contains(t, line, "01234567...")
	assert.True(t, strings.HasSuffix(line, "\n"))
}
