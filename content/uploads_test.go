package content

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/gokler/sitecms/store"
)

func setupUploadService(t *testing.T) (*Service, string) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	dir := filepath.Join(t.TempDir(), "uploads")
	return New(st, WithUploadDir(dir), WithBcryptCost(bcrypt.MinCost)), dir
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSaveUploadResizesAndNames(t *testing.T) {
	svc, dir := setupUploadService(t)
	ctx := context.Background()

	up, err := svc.SaveUpload(ctx, admin, "Şantiye Fotoğrafı.png", bytes.NewReader(pngBytes(t, 2000, 100)))
	if err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}
	if up.Filename != "santiye-fotografi.jpg" {
		t.Errorf("filename = %q", up.Filename)
	}
	if up.Width != maxImageWidth || up.Height != 80 {
		t.Errorf("size = %dx%d, want %dx80", up.Width, up.Height, maxImageWidth)
	}
	if _, err := os.Stat(filepath.Join(dir, up.Filename)); err != nil {
		t.Errorf("file not written: %v", err)
	}

	second, err := svc.SaveUpload(ctx, admin, "şantiye fotoğrafı.gif", bytes.NewReader(pngBytes(t, 10, 10)))
	if err != nil {
		t.Fatalf("second SaveUpload failed: %v", err)
	}
	if second.Filename != "santiye-fotografi-2.jpg" {
		t.Errorf("second filename = %q", second.Filename)
	}

	ups, err := svc.ListUploads(ctx, admin)
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(ups) != 2 {
		t.Errorf("got %d uploads, want 2", len(ups))
	}
}

func TestSaveUploadRejectsNonImage(t *testing.T) {
	svc, _ := setupUploadService(t)
	_, err := svc.SaveUpload(context.Background(), admin, "x.png", strings.NewReader("not an image"))
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["image"] == "" {
		t.Errorf("err = %v, want validation error on image", err)
	}
}

func TestUploadsRequireAdmin(t *testing.T) {
	svc, _ := setupUploadService(t)
	ctx := context.Background()
	if _, err := svc.ListUploads(ctx, Anonymous); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("list = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.SaveUpload(ctx, Anonymous, "a.png", bytes.NewReader(pngBytes(t, 4, 4))); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("save = %v, want ErrUnauthorized", err)
	}
}

func TestDeleteUpload(t *testing.T) {
	svc, dir := setupUploadService(t)
	ctx := context.Background()
	up, err := svc.SaveUpload(ctx, admin, "a.png", bytes.NewReader(pngBytes(t, 4, 4)))
	if err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}
	if err := svc.DeleteUpload(ctx, admin, up.Filename); err != nil {
		t.Fatalf("DeleteUpload failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, up.Filename)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still present: %v", err)
	}
	if err := svc.DeleteUpload(ctx, admin, up.Filename); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteUpload(ctx, admin, "../site.db"); !errors.Is(err, ErrNotFound) {
		t.Errorf("path traversal = %v, want ErrNotFound", err)
	}
}
