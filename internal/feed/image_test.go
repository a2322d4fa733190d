package feed

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestImageLoaderCachesBytes(t *testing.T) {
	var calls int32
	payload := []byte("\x89PNG fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	loader := NewImageLoader(WithImageClient(srv.Client()))
	for i := 0; i < 2; i++ {
		data, err := loader.Load(context.Background(), srv.URL+"/img.png")
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if !bytes.Equal(data, payload) {
			t.Fatalf("unexpected bytes %q", data)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected cached second load, got %d requests", n)
	}
}

func TestImageLoaderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	loader := NewImageLoader(WithImageClient(srv.Client()), WithImageTimeout(20*time.Millisecond))
	_, err := loader.Load(context.Background(), srv.URL+"/slow.jpg")
	var ierr *ImageError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected ImageError, got %v", err)
	}
}

func TestImageLoaderStatusFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	loader := NewImageLoader(WithImageClient(srv.Client()))
	_, err := loader.Load(context.Background(), srv.URL+"/denied.jpg")
	var ierr *ImageError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected ImageError, got %v", err)
	}
	if ierr.URL != srv.URL+"/denied.jpg" {
		t.Fatalf("unexpected url %q", ierr.URL)
	}
}
