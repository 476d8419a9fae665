package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/fernape-Domino/Portal-Escritura/internal/models"
	"github.com/fernape-Domino/Portal-Escritura/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// PDF layout: letter page, 50pt margins, 16pt bold title, 11pt body,
// 14pt line advance, body wrapped at 90 columns.
const (
	pdfMargin     = 50.0
	pdfTitleSize  = 16.0
	pdfBodySize   = 11.0
	pdfLineHeight = 14.0
	pdfWrapWidth  = 90
)

const timestampLayout = "2006-01-02T15:04:05"

// ExportHandler serves the per-writing downloads and the per-category
// list exports.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) findWriting(c *gin.Context) (*models.Writing, bool) {
	var w models.Writing
	if err := h.DB.First(&w, "id = ?", c.Param("id")).Error; err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	return &w, true
}

// DownloadPDF renders a writing as a paginated PDF attachment.
func (h *ExportHandler) DownloadPDF(c *gin.Context) {
	w, ok := h.findWriting(c)
	if !ok {
		return
	}

	title := w.Title
	if title == "" {
		title = models.DefaultTitle
	}
	lines := util.WrapLines(util.StripTags(w.Content), pdfWrapWidth)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	y := pdfMargin
	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.Text(pdfMargin, y, tr(title))
	y += 30

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, line := range lines {
		if y > pageHeight-pdfMargin {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", pdfBodySize)
			y = pdfMargin
		}
		pdf.Text(pdfMargin, y, tr(line))
		y += pdfLineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s.pdf\"", util.SafeFilename(w.Title)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// DownloadHTML serves the stored HTML byte-for-byte as an attachment.
func (h *ExportHandler) DownloadHTML(c *gin.Context) {
	w, ok := h.findWriting(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s.html\"", util.SafeFilename(w.Title)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(w.Content))
}

func (h *ExportHandler) listCategory(c *gin.Context) (string, []models.Writing, bool) {
	slug := c.Param("slug")
	if !models.ValidCategory(slug) {
		c.AbortWithStatus(http.StatusNotFound)
		return "", nil, false
	}

	var writings []models.Writing
	if err := h.DB.Where("category = ?", slug).
		Order("updated_at DESC").
		Find(&writings).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return "", nil, false
	}
	return slug, writings, true
}

// ExportCSV exports a category's writings as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	slug, writings, ok := h.listCategory(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.csv\"",
		slug, time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps pick up accented characters
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Título", "Creado", "Actualizado", "Contenido"})
	for i := range writings {
		w := &writings[i]
		writer.Write([]string{
			w.Title,
			w.CreatedAt.Format(timestampLayout),
			w.UpdatedAt.Format(timestampLayout),
			util.StripTags(w.Content),
		})
	}
}

// ExportXLSX exports a category's writings as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	slug, writings, ok := h.listCategory(c)
	if !ok {
		return
	}
	category, _ := models.CategoryBySlug(slug)

	f := excelize.NewFile()
	sheetName := category.Name
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Título", "Creado", "Actualizado", "Contenido"}
	for i, hd := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx := range writings {
		w := &writings[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), w.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), w.CreatedAt.Format(timestampLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), w.UpdatedAt.Format(timestampLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), util.StripTags(w.Content))
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 60)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.xlsx\"",
		slug, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
