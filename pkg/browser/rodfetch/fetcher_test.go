package rodfetch_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wcagrep/pkg/browser/rodfetch"
	"wcagrep/pkg/logger"
)

func TestFetcher_CloseWithoutConnect(t *testing.T) {
	f := rodfetch.New(rodfetch.Options{})
	require.Equal(t, "headless", f.Name())
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

// TestFetcher_Fetch needs a running browser. Point WCAGREP_TEST_CONTROL_URL at
// a DevTools endpoint, e.g. one started with `docker run -p 7317:7317 ghcr.io/go-rod/rod`.
func TestFetcher_Fetch(t *testing.T) {
	controlURL := os.Getenv("WCAGREP_TEST_CONTROL_URL")
	if controlURL == "" {
		t.Skip("WCAGREP_TEST_CONTROL_URL is not set")
	}
	logger.Setup(logger.DevelopmentEnvironment)

	f := rodfetch.New(rodfetch.Options{ControlURL: controlURL, Timeout: 30 * time.Second})
	t.Cleanup(func() {
		_ = f.Close()
	})

	page, err := f.Fetch(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Contains(t, page.HTML, "<html")
	require.NotEmpty(t, page.Title)
}
