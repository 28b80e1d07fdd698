package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gokler/sitecms/model"
	"github.com/gokler/sitecms/slug"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 82
	// MaxUploadSize is the largest image file accepted, in bytes.
	MaxUploadSize = 10 << 20
)

// processImage decodes src, scales it down to maxImageWidth when wider, and
// re-encodes it as JPEG.
func processImage(src io.Reader) (data []byte, width, height int, err error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxImageWidth, newH
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

// validFilename reports whether name is a plain file name inside the
// uploads directory.
func validFilename(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// uploadName picks a file name derived from originalName that is neither
// on disk nor recorded.
func (s *Service) uploadName(ctx context.Context, originalName string) (string, error) {
	base := slug.Make(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if base == "" {
		base = "gorsel"
	}
	for n := 1; ; n++ {
		candidate := base + ".jpg"
		if n > 1 {
			candidate = base + "-" + strconv.Itoa(n) + ".jpg"
		}
		if _, err := os.Stat(filepath.Join(s.uploadDir, candidate)); err == nil {
			continue
		}
		taken, err := s.store.UploadExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check upload name: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

// ListUploads returns uploaded images, newest first.
func (s *Service) ListUploads(ctx context.Context, who Caller) ([]model.Upload, error) {
	if err := who.require(); err != nil {
		return nil, err
	}
	ups, err := s.store.ListUploads(ctx)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return ups, nil
}

// SaveUpload converts the image read from src to JPEG, writes it to the
// uploads directory and records it.
func (s *Service) SaveUpload(ctx context.Context, who Caller, originalName string, src io.Reader) (model.Upload, error) {
	if err := who.require(); err != nil {
		return model.Upload{}, err
	}
	data, w, h, err := processImage(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return model.Upload{}, invalid("image", err.Error())
	}
	name, err := s.uploadName(ctx, originalName)
	if err != nil {
		return model.Upload{}, err
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return model.Upload{}, fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, name), data, 0o644); err != nil {
		return model.Upload{}, fmt.Errorf("write image: %w", err)
	}
	up := model.Upload{
		Filename:     name,
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         len(data),
		UploadedAt:   s.timestamp(),
	}
	if err := s.store.SaveUpload(ctx, up); err != nil {
		_ = os.Remove(filepath.Join(s.uploadDir, name))
		return model.Upload{}, fmt.Errorf("record upload: %w", err)
	}
	return up, nil
}

// DeleteUpload removes the file and its record.
func (s *Service) DeleteUpload(ctx context.Context, who Caller, filename string) error {
	if err := who.require(); err != nil {
		return err
	}
	if !validFilename(filename) {
		return ErrNotFound
	}
	if err := s.store.DeleteUpload(ctx, filename); err != nil {
		return notFound(err)
	}
	if err := os.Remove(filepath.Join(s.uploadDir, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
