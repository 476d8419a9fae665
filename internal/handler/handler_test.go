package handler

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fernape-Domino/Portal-Escritura/internal/config"
	"github.com/fernape-Domino/Portal-Escritura/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:    filepath.Join(t.TempDir(), "portal_test.db"),
		LogMode: false,
	}

	db, err := database.Init(cfg)
	if err != nil {
		t.Fatalf("init test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// newTestEngine builds a gin engine with minimal stand-in templates so
// handlers that render HTML can run without the real web/ directory.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	tmpl := template.Must(template.New("").Parse(`
{{define "welcome.html"}}bienvenido{{end}}
{{define "pin.html"}}{{.error}}{{end}}
{{define "home.html"}}{{range .categories}}{{.Slug}} {{end}}{{end}}
{{define "category.html"}}{{range .writings}}{{.Title}}|{{end}}{{if .editing}}EDIT:{{.editing.Title}}{{end}}{{end}}
`))
	r.SetHTMLTemplate(tmpl)
	return r
}

func postForm(t *testing.T, r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
