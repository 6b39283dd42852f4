// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevelFollowsConfigure(t *testing.T) {
	check := Checking()
	t.Cleanup(func() {
		SetLogger(nil)
		_ = Configure(Config{Check: check, LogLevel: "info"})
	})

	// The package level is below the level of the installed core.
	require.NoError(t, Configure(Config{Check: check, LogLevel: "debug"}))
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))

	logger().Debug("below core")
	logger().Info("at core")
	require.Equal(t, 1, logs.Len())

	require.NoError(t, Configure(Config{Check: check, LogLevel: "error"}))
	logger().Info("below package")
	logger().With(zap.String("k", "v")).Warn("below package")
	require.Equal(t, 1, logs.Len())
	require.False(t, logger().Core().Enabled(zapcore.WarnLevel))

	logger().Error("at package")
	require.Equal(t, 2, logs.Len())
	require.Equal(t, "at package", logs.All()[1].Message)
	require.Equal(t, zapcore.ErrorLevel, zapcore.LevelOf(logger().Core()))
}
