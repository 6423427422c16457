package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Renderer parses and executes the .tmpl tree. In dev mode templates are
// reparsed on every request so edits show up without a restart.
type Renderer struct {
	templatesDir string
	devMode      bool

	mu    sync.RWMutex
	cache *template.Template
}

// NewRenderer builds a renderer rooted at templatesDir. Outside dev mode
// the template tree is parsed once, up front.
func NewRenderer(templatesDir string, devMode bool) (*Renderer, error) {
	r := &Renderer{
		templatesDir: templatesDir,
		devMode:      devMode,
	}
	if !devMode {
		t, err := r.parse()
		if err != nil {
			return nil, err
		}
		r.cache = t
	}
	return r, nil
}

func (rn *Renderer) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(rn.templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", rn.templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func (rn *Renderer) current() (*template.Template, error) {
	if rn.devMode {
		return rn.parse()
	}
	rn.mu.RLock()
	defer rn.mu.RUnlock()
	if rn.cache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return rn.cache, nil
}

// RenderPage executes the base layout with the given page data.
func (rn *Renderer) RenderPage(w http.ResponseWriter, r *http.Request, data any) {
	rn.execute(w, "base", data)
}

// RenderTemplate executes a single named template, used for htmx fragments.
func (rn *Renderer) RenderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	rn.execute(w, name, data)
}

// RenderTemplates executes multiple named templates into one response body,
// used to pair a fragment with an out-of-band badge swap.
func (rn *Renderer) RenderTemplates(w http.ResponseWriter, r *http.Request, views map[string]any, order ...string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, err := rn.current()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	for _, name := range order {
		if err := t.ExecuteTemplate(w, name, views[name]); err != nil {
			http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
			return
		}
	}
}

func (rn *Renderer) execute(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, err := rn.current()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
