package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(dir, "note.txt")
		require.NoError(t, os.WriteFile(path, []byte("Some body text."), 0644))

		src, err := loadSource(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "note.txt", src.Name)
		assert.Equal(t, "txt", src.FileType)
		assert.Equal(t, int64(15), src.Size)
		assert.Equal(t, "Some body text.", src.Text)
		assert.Empty(t, src.ImageRefs)
	})

	t.Run("image file becomes OCR candidate", func(t *testing.T) {
		path := filepath.Join(dir, "scan.PNG")
		require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0644))

		src, err := loadSource(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "scan.PNG", src.Name)
		assert.Equal(t, "png", src.FileType)
		assert.Empty(t, src.Text)
		assert.Equal(t, []string{path}, src.ImageRefs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSource(context.Background(), filepath.Join(dir, "absent.txt"))
		assert.Error(t, err)
	})
}

func TestBuildProvider_Mock(t *testing.T) {
	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "mock"},
			&cli.StringFlag{Name: "ai-host", Value: "http://localhost:11434/v1"},
			&cli.StringFlag{Name: "recognizer-model", Value: "llava:7b"},
			&cli.StringFlag{Name: "analyzer-model", Value: "qwen2.5:3b"},
		},
		Action: func(c *cli.Context) error {
			provider, err := buildProvider(c)
			require.NoError(t, err)
			require.NotNil(t, provider)

			text, err := provider.Recognizer().RecognizeText(context.Background(), "scan.png")
			require.NoError(t, err)
			assert.NotEmpty(t, text)

			return provider.Close()
		},
	}

	require.NoError(t, app.Run([]string{"test", "--mock"}))
}
