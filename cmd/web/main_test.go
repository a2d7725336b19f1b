package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return rec.Code, string(body)
}

func TestIndexShowsSSHHost(t *testing.T) {
	mux := newMux("play.example.org", t.TempDir())
	code, body := get(t, mux, "/")
	if code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", code)
	}
	if !strings.Contains(body, "ssh -t play.example.org") {
		t.Fatalf("index does not mention the ssh host:\n%s", body)
	}
	if strings.Contains(body, "{{.SSHHost}}") {
		t.Fatal("placeholder left in index")
	}
}

func TestPlayLoadsWasm(t *testing.T) {
	mux := newMux("localhost", t.TempDir())
	code, body := get(t, mux, "/play")
	if code != http.StatusOK || !strings.Contains(body, "skyraid.wasm") {
		t.Fatalf("GET /play = %d, body:\n%s", code, body)
	}
}

func TestAssetsServedFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte("// loader"), 0o644); err != nil {
		t.Fatal(err)
	}
	mux := newMux("localhost", dir)

	code, body := get(t, mux, "/assets/wasm_exec.js")
	if code != http.StatusOK || body != "// loader" {
		t.Fatalf("GET asset = %d %q", code, body)
	}
	if code, _ := get(t, mux, "/nope"); code != http.StatusNotFound {
		t.Fatalf("GET /nope = %d, want 404", code)
	}
}
