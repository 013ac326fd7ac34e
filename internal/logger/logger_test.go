package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { logrus.SetOutput(previous) })
	return buf
}

func TestWithContext_TagsUserAndRequest(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), UsernameKey, "ayse")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")
	WithContext(ctx).WithField("assembly_id", "a1").Info("assembly started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ayse", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "a1", entry["assembly_id"])
	assert.Equal(t, "assembly started", entry["msg"])
}

func TestWithContext_FallsBackToUserID(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), UserIDKey, "42")
	WithContext(ctx).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "42", entry["user"])
}

func TestWithContext_Unknown(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Info("anon")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
}

func TestSetup_InvalidLevelDefaultsToInfo(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	Setup("loud")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
