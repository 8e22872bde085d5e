package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readTemplate(t *testing.T, dir, slug string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "newsletters", slug+".html"))
	if err != nil {
		t.Fatalf("read %s.html: %v", slug, err)
	}
	return string(raw)
}

func TestWriteNewsletterHTML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TEMPLATE_DIR", tmp)

	if err := WriteNewsletterHTML("spring-deals", "Spring Deals", "<p>Save big</p>"); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := readTemplate(t, tmp, "spring-deals")
	if !strings.Contains(out, "<title>Spring Deals</title>") {
		t.Errorf("title missing:\n%s", out)
	}
	if !strings.Contains(out, "<p>Save big</p>") {
		t.Errorf("body was escaped or dropped:\n%s", out)
	}
}

func TestWriteNewsletterHTMLOverwrites(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TEMPLATE_DIR", tmp)

	WriteNewsletterHTML("weekly", "Weekly", "<p>first</p>")
	WriteNewsletterHTML("weekly", "Weekly", "<p>second</p>")

	out := readTemplate(t, tmp, "weekly")
	if strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("overwrite failed:\n%s", out)
	}
}

func TestRenameNewsletterHTML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TEMPLATE_DIR", tmp)

	WriteNewsletterHTML("old-slug", "Title", "<p>body</p>")
	RenameNewsletterHTML("old-slug", "new-slug", "Title", "<p>body</p>")

	if _, err := os.Stat(filepath.Join(tmp, "newsletters", "old-slug.html")); !os.IsNotExist(err) {
		t.Error("old file still present after rename")
	}
	out := readTemplate(t, tmp, "new-slug")
	if !strings.Contains(out, "<p>body</p>") {
		t.Errorf("new file wrong:\n%s", out)
	}
}

func TestRenameNewsletterHTMLSameSlugIsNoop(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TEMPLATE_DIR", tmp)

	WriteNewsletterHTML("same", "Title", "<p>body</p>")
	RenameNewsletterHTML("same", "same", "Title", "<p>changed</p>")

	out := readTemplate(t, tmp, "same")
	if !strings.Contains(out, "<p>body</p>") {
		t.Errorf("noop rename rewrote the file:\n%s", out)
	}
}

func TestRemoveNewsletterHTML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TEMPLATE_DIR", tmp)

	WriteNewsletterHTML("gone", "Title", "<p>body</p>")
	RemoveNewsletterHTML("gone")

	if _, err := os.Stat(filepath.Join(tmp, "newsletters", "gone.html")); !os.IsNotExist(err) {
		t.Error("file still present after remove")
	}

	// Removing a missing file must not panic or log fatally.
	RemoveNewsletterHTML("never-existed")
}
