// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

// startService runs svc.Serve in the background and waits for the bind.
func startService(t *testing.T, svc *HTTPServerService) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for svc.Addr() == "" {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("server did not bind")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cancel, done
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0"}

	for _, timeout := range []time.Duration{0, -5 * time.Second} {
		svc := NewHTTPServerService(srv, timeout, zerolog.Nop())
		if svc.shutdownTimeout != 10*time.Second {
			t.Errorf("timeout %v: expected default 10s, got %v", timeout, svc.shutdownTimeout)
		}
	}
	if svc := NewHTTPServerService(srv, 3*time.Second, zerolog.Nop()); svc.shutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", svc.shutdownTimeout)
	}
	if got := NewHTTPServerService(srv, 0, zerolog.Nop()).String(); got != "http-server" {
		t.Errorf("String() = %q, want http-server", got)
	}
}

func TestHTTPServerService_ServesAndShutsDown(t *testing.T) {
	svc := NewHTTPServerService(&http.Server{Addr: "127.0.0.1:0", Handler: okHandler(), ReadHeaderTimeout: time.Second}, time.Second, zerolog.Nop())
	cancel, done := startService(t, svc)

	resp, err := http.Get("http://" + svc.Addr() + "/health")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestHTTPServerService_BindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	svc := NewHTTPServerService(&http.Server{Addr: taken.Addr().String(), ReadHeaderTimeout: time.Second}, time.Second, zerolog.Nop())
	err = svc.Serve(context.Background())
	if err == nil {
		t.Fatal("expected bind error")
	}
	if svc.Addr() != "" {
		t.Errorf("Addr() = %q after failed bind", svc.Addr())
	}
}

func TestHTTPServerService_UnexpectedExit(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: okHandler(), ReadHeaderTimeout: time.Second}
	svc := NewHTTPServerService(srv, time.Second, zerolog.Nop())
	cancel, done := startService(t, svc)
	defer cancel()

	_ = srv.Close()

	select {
	case err := <-done:
		if !errors.Is(err, errServerExited) {
			t.Errorf("Serve() = %v, want errServerExited", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
}

func TestHTTPServerService_ShutdownTimeout(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
	})
	t.Cleanup(func() { close(release) })

	svc := NewHTTPServerService(&http.Server{Addr: "127.0.0.1:0", Handler: handler, ReadHeaderTimeout: time.Second}, 50*time.Millisecond, zerolog.Nop())
	cancel, done := startService(t, svc)

	go func() {
		resp, err := http.Get("http://" + svc.Addr() + "/slow")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-entered

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v, want shutdown deadline error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_WithSupervisor(t *testing.T) {
	svc := NewHTTPServerService(&http.Server{Addr: "127.0.0.1:0", Handler: okHandler(), ReadHeaderTimeout: time.Second}, time.Second, zerolog.Nop())

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for svc.Addr() == "" {
		if time.Now().After(deadline) {
			t.Fatal("server did not start under supervisor")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
