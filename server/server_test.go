package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/server/mocks"
)

func TestServer_Run(t *testing.T) {
	srv := New(Params{
		Config: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
		},
		Recommender: &mocks.RecommenderMock{},
		Store:       &mocks.StoreMock{},
		Version:     "test",
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up, then shut down
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_New_Defaults(t *testing.T) {
	srv := New(Params{
		Config:      &mocks.ConfigProviderMock{},
		Recommender: &mocks.RecommenderMock{},
		Store:       &mocks.StoreMock{},
	})
	require.NotNil(t, srv)
	assert.Equal(t, 10, srv.defaultLimit)

	custom := New(Params{
		Config:       &mocks.ConfigProviderMock{},
		Recommender:  &mocks.RecommenderMock{},
		Store:        &mocks.StoreMock{},
		DefaultLimit: 25,
	})
	assert.Equal(t, 25, custom.defaultLimit)
}
