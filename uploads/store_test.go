package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func multipartFile(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestStoreSaveEtDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fh := multipartFile(t, "images", "photo test.jpg", "fake-image-bytes")
	rel, err := store.Save(fh)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	full := filepath.Join(store.Dir(), rel)
	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("fichier non écrit: %v", err)
	}
	if string(data) != "fake-image-bytes" {
		t.Errorf("contenu = %q", data)
	}

	if err := store.Delete(rel); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Error("le fichier devrait être supprimé")
	}

	// Supprimer un fichier absent n'est pas une erreur
	if err := store.Delete(rel); err != nil {
		t.Errorf("Delete sur fichier absent: %v", err)
	}
}

func TestStoreDeleteCheminInvalide(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, p := range []string{"../evil", "/etc/passwd", ""} {
		if err := store.Delete(p); err == nil {
			t.Errorf("Delete(%q) devrait être refusé", p)
		}
	}
}
