package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wcagrep/pkg/controller"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: controller.PprofPrefix, status: http.StatusOK, contains: "goroutine"},
		{path: controller.PprofPrefix + "cmdline", status: http.StatusOK},
		{path: controller.PprofPrefix + "heap?debug=1", status: http.StatusOK, contains: "heap profile"},
		{path: controller.PprofPrefix + "no-such-profile", status: http.StatusNotFound},
		{path: "/cmdline", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, rec.Code)
			if tt.contains != "" {
				require.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}
