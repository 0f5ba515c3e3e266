package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/content"
	"github.com/jonathan/content-binder/internal/contentbinder"
	"github.com/jonathan/content-binder/internal/logger"
	"github.com/jonathan/content-binder/internal/page"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handlePage serves HTML pages with a fresh binding pass per request and
// everything else as static files.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	if strings.HasSuffix(r.URL.Path, "/") {
		urlPath = path.Join(urlPath, "index.html")
	}

	if !isHTML(urlPath) {
		s.static.ServeHTTP(w, r)
		return
	}

	f, err := http.Dir(s.siteDir).Open(urlPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to open page", http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	ctx := r.Context()
	p := page.Open(urlPath, f)
	binder := contentbinder.New(p, s.loaderFor(urlPath),
		contentbinder.WithLogger(logger.FromRequest(r)),
		contentbinder.WithBinder(binding.New(s.binderOpts...)),
	)
	binder.RunWhenReady(ctx)
	if err := binder.Wait(ctx); err != nil {
		return
	}

	if err := p.Err(); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to parse page")
		http.Error(w, "failed to parse page", http.StatusInternalServerError)
		return
	}

	html, err := p.HTML()
	if err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(html))
	}
}

// loaderFor returns the content source for a page; by default the document
// sits next to the page.
func (s *Server) loaderFor(urlPath string) *content.Loader {
	location := s.content
	if location == "" {
		location = filepath.Join(s.siteDir, filepath.FromSlash(path.Dir(urlPath)), content.DefaultFileName)
	}
	return content.NewLoader(location, s.fetchOpts)
}

// isPageRequest reports whether the request path renders a bound page.
func isPageRequest(urlPath string) bool {
	return strings.HasSuffix(urlPath, "/") || isHTML(urlPath)
}

func isHTML(urlPath string) bool {
	ext := strings.ToLower(path.Ext(urlPath))
	return ext == ".html" || ext == ".htm"
}
