package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkHandleReport(b *testing.B) {
	srv := buildTestServer(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/report?genre=Comedy&jointKind=kde", nil)
		rec := httptest.NewRecorder()

		srv.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
