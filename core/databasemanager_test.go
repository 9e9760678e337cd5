package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		gorm logger.LogLevel
	}{
		{in: "silent", want: LogLevelSilent, gorm: logger.Silent},
		{in: "ERROR", want: LogLevelError, gorm: logger.Error},
		{in: "warn", want: LogLevelWarn, gorm: logger.Warn},
		{in: " info ", want: LogLevelInfo, gorm: logger.Info},
		{in: "", want: LogLevelError, gorm: logger.Error},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.gorm, got.gormLevel())
		})
	}
}

func TestNewSqliteInMemory(t *testing.T) {
	dm, err := New("sqlite::memory:", 10, LogLevelSilent)
	require.NoError(t, err)
	defer dm.Close()

	var one int
	require.NoError(t, dm.DB.WithContext(context.Background()).Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
