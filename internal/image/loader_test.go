package image

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small PNG image and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "sample.png")

	img, err := NewFileLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("loaded image is %dx%d, want 4x4", bounds.Dx(), bounds.Dy())
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	dir := t.TempDir()

	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{
			name: "empty path",
			path: "",
		},
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.png"),
		},
		{
			name: "directory",
			path: dir,
		},
		{
			name: "not an image",
			path: notImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileLoader().Load(context.Background(), tt.path); err == nil {
				t.Errorf("Load(%q) expected error, got nil", tt.path)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "valid.png")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "valid image file",
			path:    imgPath,
			wantErr: false,
		},
		{
			name:    "directory",
			path:    dir,
			wantErr: false,
		},
		{
			name:    "url is accepted without fetching",
			path:    "https://example.com/wallpaper.jpg",
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.png"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "one.png")
	writeTestPNG(t, dir, "two.png")
	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("ScanDirectoryForImages() found %d files, want 2", len(files))
	}
}

func TestScanDirectoryForImagesEmpty(t *testing.T) {
	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("ScanDirectoryForImages() on empty dir expected error, got nil")
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "pick.png")

	t.Run("file returned as-is", func(t *testing.T) {
		resolved, err := ResolveImagePath(imgPath)
		if err != nil {
			t.Fatalf("ResolveImagePath() error = %v", err)
		}
		if resolved != imgPath {
			t.Errorf("ResolveImagePath() = %s, want %s", resolved, imgPath)
		}
	})

	t.Run("directory resolves to contained image", func(t *testing.T) {
		resolved, err := ResolveImagePath(dir)
		if err != nil {
			t.Fatalf("ResolveImagePath() error = %v", err)
		}
		if resolved != imgPath {
			t.Errorf("ResolveImagePath() = %s, want %s", resolved, imgPath)
		}
	})

	t.Run("url returned as-is", func(t *testing.T) {
		url := "https://example.com/a.png"
		resolved, err := ResolveImagePath(url)
		if err != nil {
			t.Fatalf("ResolveImagePath() error = %v", err)
		}
		if resolved != url {
			t.Errorf("ResolveImagePath() = %s, want %s", resolved, url)
		}
	})
}
