package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fernape-Domino/Portal-Escritura/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WritingHandler serves the per-category list/editor page and the
// create/update/delete operations.
type WritingHandler struct {
	DB *gorm.DB
}

func NewWritingHandler(db *gorm.DB) *WritingHandler {
	return &WritingHandler{DB: db}
}

// CategoryPage renders a category: its writings newest-updated first,
// plus the row being edited when ?edit_id= points at one of them.
func (h *WritingHandler) CategoryPage(c *gin.Context) {
	slug := c.Param("slug")
	category, ok := models.CategoryBySlug(slug)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var editing *models.Writing
	if editID := c.Query("edit_id"); editID != "" {
		var w models.Writing
		// scoped by category: an id from another section is ignored
		if err := h.DB.Where("id = ? AND category = ?", editID, slug).
			First(&w).Error; err == nil {
			editing = &w
		}
	}

	var writings []models.Writing
	if err := h.DB.Where("category = ?", slug).
		Order("updated_at DESC").
		Find(&writings).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "category.html", gin.H{
		"slug":     slug,
		"category": category,
		"writings": writings,
		"editing":  editing,
	})
}

// SaveWriting creates or updates a writing depending on whether the form
// carries an id. Updates are scoped by id AND category so a forged id
// cannot touch another section's row.
func (h *WritingHandler) SaveWriting(c *gin.Context) {
	slug := c.Param("slug")
	if !models.ValidCategory(slug) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = models.DefaultTitle
	}
	// content arrives as editor HTML
	content := strings.TrimSpace(c.PostForm("content"))

	if idStr := c.PostForm("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		// only updated_at moves; a cross-category id matches nothing
		if err := h.DB.Model(&models.Writing{}).
			Where("id = ? AND category = ?", id, slug).
			Updates(map[string]interface{}{
				"title":   title,
				"content": content,
			}).Error; err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	} else {
		writing := models.Writing{
			Category: slug,
			Title:    title,
			Content:  content,
		}
		if err := h.DB.Create(&writing).Error; err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	}

	c.Redirect(http.StatusFound, "/categoria/"+slug)
}

// DeleteWriting removes a writing by id, scoped by the category supplied
// in the form body. An unknown category is a bad request; a mismatched
// one deletes nothing.
func (h *WritingHandler) DeleteWriting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	slug := c.PostForm("slug")
	if !models.ValidCategory(slug) {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.DB.
		Where("id = ? AND category = ?", id, slug).
		Delete(&models.Writing{}).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/categoria/"+slug)
}
