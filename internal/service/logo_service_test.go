package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"requisicoes/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func TestLogoProvider_SeedsCacheOnce(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write(jpegHeader)
	}))
	defer srv.Close()

	store := storage.NewMemoryStore("https://storage.googleapis.com")
	p := NewLogoProvider(store, LogoConfig{Bucket: "imagem", Object: "tropical.jpg", FallbackURL: srv.URL}, srv.Client())

	data, err := p.Logo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jpegHeader, data)

	data, err = p.Logo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jpegHeader, data)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))

	ct, ok := store.ContentType("imagem", "tropical.jpg")
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", ct)
}

func TestLogoProvider_UsesCachedObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("fallback must not be fetched when the logo is cached")
	}))
	defer srv.Close()

	store := storage.NewMemoryStore("")
	require.NoError(t, store.Upload(context.Background(), "imagem", "tropical.jpg", []byte("cached"), "image/jpeg", true))
	p := NewLogoProvider(store, LogoConfig{Bucket: "imagem", Object: "tropical.jpg", FallbackURL: srv.URL}, srv.Client())

	data, err := p.Logo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))
}

func TestLogoProvider_FallbackFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := storage.NewMemoryStore("")
	p := NewLogoProvider(store, LogoConfig{Bucket: "imagem", Object: "tropical.jpg", FallbackURL: srv.URL}, srv.Client())

	_, err := p.Logo(context.Background())
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}
