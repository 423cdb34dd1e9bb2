package logger

import (
	"login-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	testCases := []struct {
		level        string
		debugEnabled bool
	}{
		{level: "debug", debugEnabled: true},
		{level: "info", debugEnabled: false},
		{level: "unknown", debugEnabled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tc.level}}
			internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

			log := NewZapLogger(driverConfig, internalConfig)

			assert.NotNil(t, log)
			assert.Equal(t, tc.debugEnabled, log.Core().Enabled(zap.DebugLevel))
			assert.True(t, log.Core().Enabled(zap.ErrorLevel))
		})
	}
}

func TestNewLogrusLogger(t *testing.T) {
	log := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "development"}})

	_, isText := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}
