package handler

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/fernape-Domino/Portal-Escritura/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newExportRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	r := newTestEngine(t)
	h := NewExportHandler(db)
	r.GET("/texto/:id/descargar", h.DownloadPDF)
	r.GET("/texto/:id/descargar/html", h.DownloadHTML)
	r.GET("/categoria/:slug/exportar/csv", h.ExportCSV)
	r.GET("/categoria/:slug/exportar/xlsx", h.ExportXLSX)
	return r
}

func TestDownloadPDF(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	writing := models.Writing{
		Category: "poemas",
		Title:    "Mi Primer Poema",
		Content:  "<p>verso uno</p><p>verso dos</p>",
	}
	if err := db.Create(&writing).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	w := get(t, r, "/texto/"+strconv.Itoa(int(writing.ID))+"/descargar")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="mi_primer_poema.pdf"`) {
		t.Errorf("Content-Disposition = %q, want sanitized filename", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("body is not a PDF document")
	}
}

func TestDownloadPDF_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	if w := get(t, r, "/texto/999/descargar"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDownloadPDF_LongContentPaginates(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	// enough lines to spill past a single letter page
	content := strings.Repeat("<p>una línea más del poema interminable</p>", 120)
	writing := models.Writing{Category: "poemas", Title: "Largo", Content: content}
	if err := db.Create(&writing).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	w := get(t, r, "/texto/"+strconv.Itoa(int(writing.ID))+"/descargar")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// a paginated document carries more than one /Page object
	if strings.Count(w.Body.String(), "/Type /Page") < 3 {
		t.Error("expected a multi-page document")
	}
}

func TestDownloadHTML_ByteForByte(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	content := "<p>tal cual, con <strong>etiquetas</strong></p>"
	writing := models.Writing{Category: "escritos", Title: "Copia Exacta/2024", Content: content}
	if err := db.Create(&writing).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	w := get(t, r, "/texto/"+strconv.Itoa(int(writing.ID))+"/descargar/html")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != content {
		t.Errorf("exported HTML altered:\n got %q\nwant %q", w.Body.String(), content)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="copia_exacta_2024.html"`) {
		t.Errorf("Content-Disposition = %q, want sanitized filename", cd)
	}
}

func TestExportCSV(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	if err := db.Create(&models.Writing{
		Category: "cuentos", Title: "El Dragón", Content: "<p>había una vez</p>",
	}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	w := get(t, r, "/categoria/cuentos/exportar/csv")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "El Dragón") || !strings.Contains(body, "había una vez") {
		t.Errorf("csv missing row data: %q", body)
	}

	if w := get(t, r, "/categoria/novelas/exportar/csv"); w.Code != http.StatusNotFound {
		t.Errorf("unknown category status = %d, want 404", w.Code)
	}
}

func TestExportXLSX(t *testing.T) {
	db := setupTestDB(t)
	r := newExportRouter(t, db)

	if err := db.Create(&models.Writing{
		Category: "poemas", Title: "Hoja", Content: "<p>v</p>",
	}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	w := get(t, r, "/categoria/poemas/exportar/xlsx")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q, want xlsx mime type", ct)
	}
	// xlsx files are zip archives
	if !strings.HasPrefix(w.Body.String(), "PK") {
		t.Error("body is not an xlsx (zip) file")
	}
}
