package main

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess/pkg/config"
	"github.com/dmitrymomot/emailguess/pkg/logger"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	cfg, err := config.Parse[Config]()
	require.NoError(t, err)
	return &app{cfg: cfg, log: logger.Discard(), clip: &fakeClipboard{}}
}

func TestBuildChecker(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		a := newTestApp(t)
		a.cfg.Finder.Checker = "syntax"

		checks, err := a.buildChecker(context.Background(), prometheus.NewRegistry())
		require.NoError(t, err)
		defer checks.Close()

		ok, err := checks.checker.Check(context.Background(), "john.doe@corp.io")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, checks.probes)
	})

	t.Run("api with throttle and fallback", func(t *testing.T) {
		a := newTestApp(t)
		a.cfg.Finder.Checker = "API"
		a.cfg.API.Endpoint = "https://verify.example.com/check"

		checks, err := a.buildChecker(context.Background(), nil)
		require.NoError(t, err)
		checks.Close()
		assert.Len(t, checks.closers, 1)
	})

	t.Run("invalid throttle", func(t *testing.T) {
		a := newTestApp(t)
		a.cfg.Finder.Checker = "api"
		a.cfg.API.Endpoint = "https://verify.example.com/check"
		a.cfg.Throttle.Capacity = 0

		_, err := a.buildChecker(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		a := newTestApp(t)
		a.cfg.Finder.Checker = "smtp"

		_, err := a.buildChecker(context.Background(), nil)
		assert.ErrorIs(t, err, ErrUnknownChecker)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		a := newTestApp(t)
		a.cfg.Finder.Checker = "mx"
		a.cfg.Redis.ConnectionURL = "redis://127.0.0.1:1/0"
		a.cfg.Redis.RetryAttempts = 1

		_, err := a.buildChecker(context.Background(), nil)
		assert.Error(t, err)
	})
}
