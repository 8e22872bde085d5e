package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func uploadVia(t *testing.T, folder, filename string, payload []byte) (string, error) {
	t.Helper()
	app := fiber.New()

	var savedPath string
	var savedErr error
	app.Post("/", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		savedPath, savedErr = SaveUploadedImage(folder, fh)
		return c.SendStatus(fiber.StatusOK)
	})

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(payload)
	mw.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if _, err := app.Test(req, -1); err != nil {
		t.Fatal(err)
	}
	return savedPath, savedErr
}

func TestSaveUploadedImagePNG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("UPLOAD_DIR", tmp)

	rel, err := uploadVia(t, "products", "photo.png", pngBytes(t, 40, 30))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(rel, "products/") {
		t.Errorf("relative path %q should start with folder", rel)
	}

	full := filepath.Join(tmp, filepath.FromSlash(rel))
	if _, err := os.Stat(full); err != nil {
		t.Errorf("original missing: %v", err)
	}

	dir, name := filepath.Split(full)
	thumb := filepath.Join(dir, "thumbnails", "thumb_"+name)
	if _, err := os.Stat(thumb); err != nil {
		t.Errorf("thumbnail missing: %v", err)
	}
}

func TestSaveUploadedImageRejectsNonImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	_, err := uploadVia(t, "products", "notes.txt", []byte("just some text, not an image"))
	if err == nil {
		t.Fatal("expected error for non-image payload")
	}
	if !strings.Contains(err.Error(), "unsupported image type") {
		t.Errorf("error = %v", err)
	}
}

func TestDeleteUploadedImage(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("UPLOAD_DIR", tmp)

	rel, err := uploadVia(t, "brands", "logo.png", pngBytes(t, 10, 10))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	DeleteUploadedImage(rel)

	full := filepath.Join(tmp, filepath.FromSlash(rel))
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Errorf("original still present after delete")
	}
	dir, name := filepath.Split(full)
	thumb := filepath.Join(dir, "thumbnails", "thumb_"+name)
	if _, err := os.Stat(thumb); !os.IsNotExist(err) {
		t.Errorf("thumbnail still present after delete")
	}

	// Deleting again must be a no-op.
	DeleteUploadedImage(rel)
	DeleteUploadedImage("")
}
