package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSync_Success(t *testing.T) {
	svc := NewService("true", "", zap.NewNop().Sugar())

	result := svc.Sync(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, "Data sync completed successfully", result.Message)
	assert.False(t, result.LastSync.IsZero())
}

func TestSync_CommandFailure(t *testing.T) {
	svc := NewService("false", "", zap.NewNop().Sugar())

	result := svc.Sync(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Sync failed")
}

func TestSync_MissingCLI(t *testing.T) {
	svc := NewService("definitely-not-a-real-binary-xyz", "", zap.NewNop().Sugar())

	result := svc.Sync(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}

func TestTail(t *testing.T) {
	assert.Equal(t, "short", tail("short"))

	long := make([]byte, outputTail+100)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, tail(string(long)), outputTail)
}
