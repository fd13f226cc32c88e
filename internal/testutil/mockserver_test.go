package testutil

import (
	"context"
	"io"
	"net/http"
	"testing"
)

func TestMockServer(t *testing.T) {
	ms := NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	defer ms.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, ms.URL+"/api/train.php?train_no=1", nil)
	AssertNil(t, err)
	resp, err := http.DefaultClient.Do(req) //nolint:gosec // URL is from httptest.Server (localhost)
	AssertNil(t, err)
	defer func() { _ = resp.Body.Close() }()

	AssertEqual(t, resp.StatusCode, http.StatusOK)

	body, err := io.ReadAll(resp.Body)
	AssertNil(t, err)
	AssertEqual(t, string(body), `{"status":"ok"}`)

	AssertEqual(t, ms.RequestCount(), 1)
	last := ms.LastRequest()
	AssertTrue(t, last != nil)
	AssertEqual(t, last.URL.Query().Get("train_no"), "1")
}

func TestStaticServer(t *testing.T) {
	ms := NewStaticServer(http.StatusTeapot, "text/plain", "short and stout")
	defer ms.Close()

	resp, err := http.Get(ms.URL) //nolint:gosec,noctx // test server
	AssertNil(t, err)
	defer func() { _ = resp.Body.Close() }()

	AssertEqual(t, resp.StatusCode, http.StatusTeapot)
	AssertEqual(t, resp.Header.Get("Content-Type"), "text/plain")
}

func TestMockServerReset(t *testing.T) {
	ms := NewStaticServer(http.StatusOK, "", "")
	defer ms.Close()

	for i := 0; i < 3; i++ {
		resp, err := http.Get(ms.URL) //nolint:gosec,noctx // test server
		AssertNil(t, err)
		_ = resp.Body.Close()
	}
	AssertEqual(t, ms.RequestCount(), 3)

	ms.Reset()
	AssertEqual(t, ms.RequestCount(), 0)
	AssertTrue(t, ms.LastRequest() == nil)
}
