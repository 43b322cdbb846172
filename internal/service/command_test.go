package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrdesk/internal/logging"
	"qrdesk/internal/model"
	platformMocks "qrdesk/internal/platform/mocks"
	"qrdesk/internal/qr"
	qrMocks "qrdesk/internal/qr/mocks"
)

type fixture struct {
	home     *platformMocks.MockHomeDirResolver
	workDir  *platformMocks.MockWorkingDirResolver
	launcher *platformMocks.MockLauncher
	files    *platformMocks.MockFileWriter
}

func newFixture() *fixture {
	return &fixture{
		home:     new(platformMocks.MockHomeDirResolver),
		workDir:  new(platformMocks.MockWorkingDirResolver),
		launcher: new(platformMocks.MockLauncher),
		files:    new(platformMocks.MockFileWriter),
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		Home:     f.home,
		WorkDir:  f.workDir,
		Launcher: f.launcher,
		Files:    f.files,
		Logger:   logging.Discard(),
	}
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.home.AssertExpectations(t)
	f.workDir.AssertExpectations(t)
	f.launcher.AssertExpectations(t)
	f.files.AssertExpectations(t)
}

func TestCommandService_Greet(t *testing.T) {
	svc := NewCommandService(newFixture().deps())
	ctx := context.Background()

	assert.Equal(t, "Hello, Ada! You've been greeted from Go!", svc.Greet(ctx, "Ada"))

	for _, name := range []string{"", "Grace Hopper", "世界", "a!b", strings.Repeat("n", 512)} {
		got := svc.Greet(ctx, name)
		assert.Contains(t, got, name)
		assert.True(t, strings.HasSuffix(got, GreetingSuffix))
	}
}

func TestCommandService_GenerateQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("renders svg deterministically", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := NewMetrics(reg)
		require.NoError(t, err)

		d := newFixture().deps()
		d.Metrics = m
		svc := NewCommandService(d)

		a, err := svc.GenerateQRCode(ctx, "https://example.com")
		require.NoError(t, err)
		b, err := svc.GenerateQRCode(ctx, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Contains(t, a, "<svg")
		assert.Contains(t, a, "</svg>")
		assert.Equal(t, float64(2), testutil.ToFloat64(m.encodings.WithLabelValues("ok")))
	})

	t.Run("payload too large", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := NewMetrics(reg)
		require.NoError(t, err)

		d := newFixture().deps()
		d.Encoder = qr.NewSVGEncoder(qr.Options{MaxPayloadBytes: 8})
		d.Metrics = m
		svc := NewCommandService(d)

		out, err := svc.GenerateQRCode(ctx, "https://example.com")

		assert.Empty(t, out)
		assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)
		var encErr *qr.EncodingError
		assert.ErrorAs(t, err, &encErr)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.encodings.WithLabelValues("too_large")))
	})

	t.Run("empty payload renders a symbol", func(t *testing.T) {
		svc := NewCommandService(newFixture().deps())

		out, err := svc.GenerateQRCode(ctx, "")

		require.NoError(t, err)
		assert.Contains(t, out, `width="`)
		assert.Contains(t, out, "<path")
	})

	t.Run("capacity overflow without a configured limit", func(t *testing.T) {
		svc := NewCommandService(newFixture().deps())

		_, err := svc.GenerateQRCode(ctx, strings.Repeat("x", 4000))

		assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)
	})

	t.Run("encoder failure is returned", func(t *testing.T) {
		enc := new(qrMocks.MockEncoder)
		cause := &qr.EncodingError{Length: 3, Cause: errors.New("boom")}
		enc.On("Encode", "abc").Return("", cause)

		d := newFixture().deps()
		d.Encoder = enc
		svc := NewCommandService(d)

		_, err := svc.GenerateQRCode(ctx, "abc")

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, qr.ErrPayloadTooLarge)
		enc.AssertExpectations(t)
	})
}

func TestCommandService_GetDownloadsPath(t *testing.T) {
	ctx := context.Background()
	homeErr := errors.New("$HOME is not defined")

	tests := []struct {
		name  string
		setup func(f *fixture)
		want  string
	}{
		{
			name: "home directory",
			setup: func(f *fixture) {
				f.home.On("HomeDir").Return("/home/ada", nil)
			},
			want: filepath.Join("/home/ada", "Downloads"),
		},
		{
			name: "falls back to working directory",
			setup: func(f *fixture) {
				f.home.On("HomeDir").Return("", homeErr)
				f.workDir.On("WorkingDir").Return("/srv/app", nil)
			},
			want: "/srv/app",
		},
		{
			name: "empty home falls back to working directory",
			setup: func(f *fixture) {
				f.home.On("HomeDir").Return("", nil)
				f.workDir.On("WorkingDir").Return("/srv/app", nil)
			},
			want: "/srv/app",
		},
		{
			name: "falls back to dot",
			setup: func(f *fixture) {
				f.home.On("HomeDir").Return("", homeErr)
				f.workDir.On("WorkingDir").Return("", errors.New("getwd: no such file or directory"))
			},
			want: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)
			svc := NewCommandService(f.deps())

			got := svc.GetDownloadsPath(ctx)

			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
			f.assertExpectations(t)
		})
	}
}

func TestCommandService_GetDownloadsPath_CustomDirName(t *testing.T) {
	f := newFixture()
	f.home.On("HomeDir").Return("/home/ada", nil)
	d := f.deps()
	d.DownloadsDirName = "下载"
	svc := NewCommandService(d)

	assert.Equal(t, filepath.Join("/home/ada", "下载"), svc.GetDownloadsPath(context.Background()))
}

func TestCommandService_OpenDownloadsFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("opens home downloads", func(t *testing.T) {
		f := newFixture()
		f.home.On("HomeDir").Return("/home/ada", nil)
		f.launcher.On("Open", filepath.Join("/home/ada", "Downloads")).Return(nil)
		svc := NewCommandService(f.deps())

		assert.NoError(t, svc.OpenDownloadsFolder(ctx))
		f.assertExpectations(t)
	})

	t.Run("opens current directory without home", func(t *testing.T) {
		f := newFixture()
		f.home.On("HomeDir").Return("", errors.New("no home"))
		f.launcher.On("Open", ".").Return(nil)
		svc := NewCommandService(f.deps())

		assert.NoError(t, svc.OpenDownloadsFolder(ctx))
		f.workDir.AssertNotCalled(t, "WorkingDir")
		f.assertExpectations(t)
	})

	t.Run("launch failure", func(t *testing.T) {
		f := newFixture()
		cause := errors.New(`exec: "xdg-open": executable file not found in $PATH`)
		f.home.On("HomeDir").Return("/home/ada", nil)
		f.launcher.On("Open", mock.Anything).Return(cause)
		svc := NewCommandService(f.deps())

		err := svc.OpenDownloadsFolder(ctx)

		require.Error(t, err)
		var launchErr *LaunchFailedError
		require.ErrorAs(t, err, &launchErr)
		assert.Equal(t, filepath.Join("/home/ada", "Downloads"), launchErr.Path)
		assert.False(t, launchErr.Fallback)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), cause.Error())
		f.assertExpectations(t)
	})

	t.Run("launch failure on fallback", func(t *testing.T) {
		f := newFixture()
		f.home.On("HomeDir").Return("", errors.New("no home"))
		f.launcher.On("Open", ".").Return(errors.New("exit status 4"))
		svc := NewCommandService(f.deps())

		err := svc.OpenDownloadsFolder(ctx)

		var launchErr *LaunchFailedError
		require.ErrorAs(t, err, &launchErr)
		assert.True(t, launchErr.Fallback)
		assert.Equal(t, ".", launchErr.Path)
	})
}

func TestCommandService_ValidateURL(t *testing.T) {
	svc := NewCommandService(newFixture().deps())
	ctx := context.Background()

	tests := []struct {
		input string
		want  model.URLCheck
	}{
		{"", model.URLCheck{Valid: false, Level: model.CheckInfo}},
		{"   ", model.URLCheck{Valid: false, Level: model.CheckInfo}},
		{"bad^url", model.URLCheck{Valid: false, Level: model.CheckError, Message: msgMalformedURL}},
		{"https://exa mple.com/<script>", model.URLCheck{Valid: false, Level: model.CheckError, Message: msgMalformedURL}},
		{"example.com", model.URLCheck{Valid: true, Level: model.CheckWarning, Message: msgPreferHTTPS}},
		{"http://example.com:8080/a?b=c", model.URLCheck{Valid: true, Level: model.CheckWarning, Message: msgPreferHTTPS}},
		{"https://example.com/path?q=1&r=2#top", model.URLCheck{Valid: true, Level: model.CheckInfo, Message: msgValidURL}},
		{"HTTPS://EXAMPLE.COM", model.URLCheck{Valid: true, Level: model.CheckWarning, Message: msgPreferHTTPS}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ValidateURL(ctx, tt.input))
		})
	}
}
