package handlers

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/config"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/store"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewHandlers(st, config.DefaultConfig())
}

func writeExportFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := os.WriteFile(path, []byte("xlsx"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func downloadContext(id string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/export/download/"+id, nil)
	c.Params = gin.Params{{Key: "exportId", Value: id}}
	return c, w
}

func TestDownload_OneShotCleansUpExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers(t)

	path := writeExportFile(t)
	h.exports["abc"] = exportEntry{Path: path, Expires: time.Now().Add(time.Hour)}

	c, w := downloadContext("abc")
	h.Download(c)
	if w.Code != 200 {
		t.Fatalf("code: got %d", w.Code)
	}
	// tải xong là file và entry phải biến mất
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file must be removed, stat err = %v", err)
	}
	if _, ok := h.exports["abc"]; ok {
		t.Fatalf("export entry must be evicted")
	}

	c2, w2 := downloadContext("abc")
	h.Download(c2)
	if w2.Code != 404 {
		t.Fatalf("second download: got %d", w2.Code)
	}
}

func TestSweepExpiredExports(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers(t)

	oldPath := writeExportFile(t)
	newPath := writeExportFile(t)
	h.exports["old"] = exportEntry{Path: oldPath, Expires: time.Now().Add(-time.Minute)}
	h.exports["new"] = exportEntry{Path: newPath, Expires: time.Now().Add(time.Hour)}

	h.sweepExpiredExports()

	if _, ok := h.exports["old"]; ok {
		t.Fatalf("expired entry must be evicted")
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Fatalf("expired file must be removed, stat err = %v", err)
	}
	if _, ok := h.exports["new"]; !ok {
		t.Fatalf("live entry must survive")
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Fatalf("live file must survive: %v", err)
	}
}
