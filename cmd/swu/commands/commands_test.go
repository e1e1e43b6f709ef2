package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swu/cmd/swu/commands"
	"go.trai.ch/swu/internal/app"
	"go.trai.ch/swu/internal/build"
	"go.trai.ch/swu/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	watchFunc   func(ctx context.Context, opts app.WatchOptions) error
	restartFunc func(ctx context.Context, opts app.RestartOptions) error
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Restart(ctx context.Context, opts app.RestartOptions) error {
	if m.restartFunc != nil {
		return m.restartFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.WatchOptions
		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"watch", "http://device/", "-c", "bench.yaml", "-o", "tui", "--exit-on-done"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.WatchOptions{
			URL:        "http://device/",
			ConfigPath: "bench.yaml",
			OutputMode: "tui",
			ExitOnDone: true,
		}, captured)
	})

	t.Run("url is optional", func(t *testing.T) {
		var captured app.WatchOptions
		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"watch", "--ci"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.URL)
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"watch", "http://a/", "http://b/"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns app errors", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(context.Context, app.WatchOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"watch", "http://device/"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Restart(t *testing.T) {
	var captured app.RestartOptions
	mock := &mockApp{
		restartFunc: func(_ context.Context, opts app.RestartOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"restart", "https://device/", "--no-wait"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.RestartOptions{URL: "https://device/", NoWait: true}, captured)
}

func TestCommands_LogJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetJSON(true)

	cli := commands.New(&mockApp{}, mockLogger)
	cli.SetArgs([]string{"watch", "--log-json", "http://device/"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "swu version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "swu version "+build.Version)
}
