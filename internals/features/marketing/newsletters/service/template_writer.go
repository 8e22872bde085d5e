package service

import (
	"html/template"
	"log"
	"os"
	"path/filepath"

	"storeadmin_backend/internals/configs"
)

var newsletterPage = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

func newsletterDir() string {
	return filepath.Join(configs.GetEnv("TEMPLATE_DIR", "templates"), "newsletters")
}

// WriteNewsletterHTML materializes the newsletter body to
// templates/newsletters/<slug>.html. Failures are logged and returned
// so the caller can decide, but by convention the request still succeeds.
func WriteNewsletterHTML(slug, title, body string) error {
	dir := newsletterDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("❌ newsletter template dir %s: %v", dir, err)
		return err
	}

	f, err := os.Create(filepath.Join(dir, slug+".html"))
	if err != nil {
		log.Printf("❌ newsletter template %s.html: %v", slug, err)
		return err
	}
	defer f.Close()

	data := struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)}

	if err := newsletterPage.Execute(f, data); err != nil {
		log.Printf("❌ newsletter template %s.html: %v", slug, err)
		return err
	}
	return nil
}

// RemoveNewsletterHTML deletes the materialized file. A missing file is
// not an error.
func RemoveNewsletterHTML(slug string) {
	path := filepath.Join(newsletterDir(), slug+".html")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("❌ remove newsletter template %s: %v", path, err)
	}
}

// RenameNewsletterHTML handles a slug change by rewriting under the new
// slug and dropping the old file.
func RenameNewsletterHTML(oldSlug, newSlug, title, body string) {
	if oldSlug == newSlug {
		return
	}
	if err := WriteNewsletterHTML(newSlug, title, body); err != nil {
		return
	}
	RemoveNewsletterHTML(oldSlug)
}
