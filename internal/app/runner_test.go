package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	testlog "krishak-delivery/internal/testutil"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	log := testlog.New()
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, nil, nil, log.Logger()) }()

	require.Eventually(t, func() bool { return log.Has("service-delivery listening") }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
	require.True(t, log.Has("shutting down service-delivery"))
}

func TestServe_ListenErrorIsReturned(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}

	err := serve(context.Background(), srv, nil, nil, testlog.New().Logger())
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen")
}
