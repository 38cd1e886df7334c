package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleHandler(t *testing.T) {
	t.Run("formats records", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(newConsoleHandler(&buf, slog.LevelInfo))

		log.Info("generated managers", "types", 2, "written", 4)
		log.Warn(`Unknown "email" in "by"`, "type", "User")
		log.Error("boom")

		assert.Equal(t, "info: generated managers types=2 written=4\n"+
			"warning: Unknown \"email\" in \"by\" type=User\n"+
			"error: boom\n", buf.String())
	})

	t.Run("filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(newConsoleHandler(&buf, slog.LevelWarn))

		log.Debug("hidden")
		log.Info("hidden")
		assert.Empty(t, buf.String())

		log = slog.New(newConsoleHandler(&buf, slog.LevelDebug))
		log.Debug("shown")
		assert.Equal(t, "debug: shown\n", buf.String())
	})

	t.Run("attrs and groups", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(newConsoleHandler(&buf, slog.LevelInfo)).
			With("type", "User").
			WithGroup("writer").
			With("target", "out")

		log.Info("written", "files", 2, slog.Group("bytes", "total", 10))
		assert.Equal(t, "info: written type=User writer.target=out writer.files=2 writer.bytes.total=10\n", buf.String())
	})
}
