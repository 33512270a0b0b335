// Package web serves the landing page and the commands reference over HTTP.
// It renders from the same browser model as the terminal UI, so filtering and
// category rules are identical.
package web

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"commandsite/browser"
	"commandsite/catalog"
	"commandsite/faq"
	"commandsite/log"
)

const shutdownTimeout = 5 * time.Second

// ServerConfig holds what the server renders. A nil Index is served like a
// failed load: the commands page shows neither commands nor a placeholder.
type ServerConfig struct {
	Addr  string
	Index *catalog.Index
	FAQ   []faq.Entry
}

type Server struct {
	cfg   ServerConfig
	pages map[string]*template.Template
}

func NewServer(cfg ServerConfig) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Addr == "" {
		return nil, errors.New("web: missing addr")
	}

	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{"landing.html", "commands.html"} {
		tmpl, err := template.New(name).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}

	return &Server{
		cfg:   cfg,
		pages: pages,
	}, nil
}

func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleLanding)
	mux.HandleFunc("GET /commands", s.handleCommands)
	mux.HandleFunc("GET /commands.json", s.handleSource)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	return withLogging(withSecurityHeaders(mux))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.InfoLog.Printf("serving on http://%s", s.cfg.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// page carries what the layout needs on every page.
type page struct {
	Title string
	// Theme is "dark", "light" or empty to follow the browser preference.
	Theme string
	Path  string
	Query url.Values
}

type faqEntry struct {
	Question  string
	Answer    template.HTML
	Open      bool
	ToggleURL string
}

type landingModel struct {
	page
	Entries []faqEntry
}

type buttonModel struct {
	browser.Button
	URL string
}

type groupModel struct {
	Name  string
	Cards []catalog.Card
}

type commandsModel struct {
	page
	Term      string
	Category  string
	Loaded    bool
	NoResults bool
	Buttons   []buttonModel
	Groups    []groupModel
}

func newPage(r *http.Request, title string) page {
	theme := r.URL.Query().Get("theme")
	if theme != "dark" && theme != "light" {
		theme = ""
	}
	return page{
		Title: title,
		Theme: theme,
		Path:  r.URL.Path,
		Query: r.URL.Query(),
	}
}

// ThemeURL links to the current page with the theme forced to theme. The
// choice only lives in the URL, so it lasts as long as the visitor keeps
// following links.
func (p page) ThemeURL(theme string) string {
	q := cloneQuery(p.Query)
	q.Set("theme", theme)
	return p.Path + "?" + q.Encode()
}

func cloneQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	p := newPage(r, "Home")
	open := -1
	if v := r.URL.Query().Get("faq"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(s.cfg.FAQ) {
			open = n
		}
	}

	entries := make([]faqEntry, len(s.cfg.FAQ))
	for i, e := range s.cfg.FAQ {
		q := cloneQuery(p.Query)
		// At most one answer is open; following an open question's link closes it.
		if i == open {
			q.Del("faq")
		} else {
			q.Set("faq", strconv.Itoa(i))
		}
		toggle := "/"
		if enc := q.Encode(); enc != "" {
			toggle += "?" + enc
		}
		entries[i] = faqEntry{
			Question:  e.Question,
			Answer:    renderAnswer(e.Answer),
			Open:      i == open,
			ToggleURL: toggle + "#faq-" + strconv.Itoa(i),
		}
	}

	s.render(w, "landing.html", landingModel{page: p, Entries: entries})
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	p := newPage(r, "Commands")
	m := browser.New(s.cfg.Index)
	m.ApplyFilter(r.URL.Query().Get("q"))
	if category := r.URL.Query().Get("category"); category != "" {
		// A stale link to an empty or unknown category falls back to All.
		if err := m.SelectCategory(category); err != nil {
			log.WarningLog.Printf("commands page: %v", err)
		}
	}

	model := commandsModel{
		page:      p,
		Term:      m.Term(),
		Category:  m.Category(),
		Loaded:    m.Loaded(),
		NoResults: m.NoResults(),
	}
	if m.Loaded() {
		for _, b := range m.Buttons() {
			q := cloneQuery(p.Query)
			q.Set("category", b.Name)
			model.Buttons = append(model.Buttons, buttonModel{Button: b, URL: "/commands?" + q.Encode()})
		}
		for _, group := range m.VisibleCategories() {
			g := groupModel{Name: group.Name}
			for _, cmd := range group.Commands {
				g.Cards = append(g.Cards, cmd.Card)
			}
			model.Groups = append(model.Groups, g)
		}
	}

	s.render(w, "commands.html", model)
}

// handleSource serves the document the index was built from, unchanged.
func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Index == nil {
		http.Error(w, "commands unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.cfg.Index.Source)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[name].ExecuteTemplate(w, "layout", data); err != nil {
		log.ErrorLog.Printf("failed to render %s: %v", name, err)
	}
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self'; base-uri 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

var requestLog = log.NewEvery(time.Second)

// withLogging logs requests, at most one per second.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestLog.ShouldLog() {
			log.InfoLog.Printf("%s %s", r.Method, r.URL.RequestURI())
		}
		next.ServeHTTP(w, r)
	})
}
