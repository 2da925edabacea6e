package uploads

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save("relatorio.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("relatorio.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if first == second {
		t.Fatalf("same upload name generated twice: %s", first)
	}
	if filepath.Ext(first) != ".pdf" {
		t.Fatalf("expected original extension to be kept, got %s", first)
	}
}

func TestSaveReturnsServingPath(t *testing.T) {
	// The backing directory is an absolute path well outside the serving
	// prefix; the stored path must still match the /uploads/{name} URL and
	// never expose the directory.
	dir := filepath.Join(t.TempDir(), "var", "data", "blobs")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	stored, err := store.Save("relatorio.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasPrefix(stored, "uploads/") {
		t.Fatalf("stored path %q does not match the serving prefix", stored)
	}
	if strings.Contains(stored, dir) {
		t.Fatalf("stored path %q leaks the backing directory", stored)
	}
	if err := store.Remove(stored); err != nil {
		t.Fatalf("remove by stored path: %v", err)
	}
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	stored, err := store.Save("doc.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Remove(stored); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.Base(stored))); !os.IsNotExist(err) {
		t.Fatal("file should be gone after Remove")
	}
	if err := store.Remove(stored); err == nil {
		t.Fatal("removing a missing file must report an error")
	}
}

func TestRemoveIgnoresDirectoryComponents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	// A traversal path must resolve inside the store, where no such file
	// exists, and must not touch the file outside it.
	if err := store.Remove("../secret.txt"); err == nil {
		t.Fatal("expected an error for a path outside the store")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the store was touched: %v", err)
	}
}

func TestHandlerServesFiles(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	stored, err := store.Save("doc.txt", strings.NewReader("conteúdo"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/"+filepath.Base(stored), nil)
	rec := httptest.NewRecorder()
	store.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "conteúdo" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
