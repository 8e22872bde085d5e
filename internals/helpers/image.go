package helper

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"storeadmin_backend/internals/configs"
)

// Bounds for stored images; originals wider than maxImageWidth are scaled
// down, thumbnails are a fixed square.
const (
	maxImageWidth  = 1600
	jpegQuality    = 80
	thumbSize      = 300
	maxUploadBytes = 5 * 1024 * 1024
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var reUnsafeName = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uploadBaseDir() string {
	if v := strings.TrimSpace(os.Getenv("UPLOAD_DIR")); v != "" {
		return v
	}
	if configs.UploadDir != "" {
		return configs.UploadDir
	}
	return "uploads"
}

func sanitizeFilename(filename string) string {
	return reUnsafeName.ReplaceAllString(filename, "_")
}

func generateImageFilename(original, ext string) string {
	base := strings.TrimSuffix(sanitizeFilename(original), filepath.Ext(original))
	return fmt.Sprintf("%s-%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), base, ext)
}

// SaveUploadedImage validates the MIME type, stores the original under
// uploads/<folder>/, then re-encodes it in place and writes a thumbnail under
// uploads/<folder>/thumbnails/thumb_<name>. Processing failures are logged and
// swallowed; the upload succeeds with the unprocessed original.
func SaveUploadedImage(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadBytes {
		return "", fmt.Errorf("image exceeds %dMB limit", maxUploadBytes/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	head := buf.Bytes()
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %s", contentType)
	}

	dir := filepath.Join(uploadBaseDir(), folder)
	if err := os.MkdirAll(filepath.Join(dir, "thumbnails"), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := generateImageFilename(fh.Filename, ext)
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	if err := processImage(dst, contentType); err != nil {
		log.Printf("[WARN] image processing failed for %s: %v", dst, err)
	}

	return filepath.ToSlash(filepath.Join(folder, name)), nil
}

// processImage bounds the original's width and writes the thumbnail.
func processImage(path, contentType string) error {
	img, err := decodeImageFile(path, contentType)
	if err != nil {
		return err
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}
	if err := encodeImageFile(path, contentType, img); err != nil {
		return err
	}

	thumb := imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)
	dir, name := filepath.Split(path)
	thumbPath := filepath.Join(dir, "thumbnails", "thumb_"+name)
	return encodeImageFile(thumbPath, contentType, thumb)
}

func decodeImageFile(path, contentType string) (image.Image, error) {
	if contentType == "image/webp" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return webp.Decode(f)
	}
	return imaging.Open(path)
}

func encodeImageFile(path, contentType string, img image.Image) error {
	if contentType == "image/webp" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Quality: jpegQuality})
	}
	return imaging.Save(img, path, imaging.JPEGQuality(jpegQuality))
}

// DeleteUploadedImage removes a stored image and its thumbnail. The relative
// path is the one SaveUploadedImage returned.
func DeleteUploadedImage(relPath string) {
	if strings.TrimSpace(relPath) == "" {
		return
	}
	full := filepath.Join(uploadBaseDir(), filepath.FromSlash(relPath))
	dir, name := filepath.Split(full)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] remove image %s: %v", full, err)
	}
	thumb := filepath.Join(dir, "thumbnails", "thumb_"+name)
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] remove thumbnail %s: %v", thumb, err)
	}
}
