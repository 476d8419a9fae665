package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fernape-Domino/Portal-Escritura/internal/models"
	"github.com/fernape-Domino/Portal-Escritura/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler creates and restores whole-portal backup files.
// With an empty EncryptKey the files are stored as plain JSON.
type BackupHandler struct {
	DB         *gorm.DB
	EncryptKey string
	BackupDir  string
}

func NewBackupHandler(db *gorm.DB, encryptKey, backupDir string) *BackupHandler {
	return &BackupHandler{
		DB:         db,
		EncryptKey: encryptKey,
		BackupDir:  backupDir,
	}
}

// backupData is the payload written to a backup file.
type backupData struct {
	Created  time.Time        `json:"created"`
	Writings []models.Writing `json:"writings"`
}

// CreateBackup serializes every writing into a new backup file.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	var writings []models.Writing
	if err := h.DB.Order("created_at ASC, id ASC").Find(&writings).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudieron leer los escritos")
		return
	}

	data := backupData{
		Created:  time.Now(),
		Writings: writings,
	}
	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo serializar el respaldo")
		return
	}

	payload := raw
	if h.EncryptKey != "" {
		payload, err = util.EncryptAES(h.EncryptKey, raw)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo cifrar el respaldo")
			return
		}
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo crear el directorio de respaldos")
		return
	}

	fileName := fmt.Sprintf("backup-%s.bin", uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := os.WriteFile(filePath, payload, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo escribir el respaldo")
		return
	}

	info, _ := os.Stat(filePath)

	backup := models.Backup{
		FileName: fileName,
		FilePath: filePath,
		Size:     info.Size(),
	}
	if err := h.DB.Create(&backup).Error; err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo registrar el respaldo")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

// ListBackups lists existing backups, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	var list []models.Backup
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudieron consultar los respaldos")
		return
	}

	items := make([]gin.H, 0, len(list))
	for i := range list {
		b := &list[i]
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

func (h *BackupHandler) findBackup(c *gin.Context) (*models.Backup, bool) {
	var backup models.Backup
	if err := h.DB.First(&backup, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "el respaldo no existe")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo consultar el respaldo")
		}
		return nil, false
	}
	return &backup, true
}

// DownloadBackup streams a backup file.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	backup, ok := h.findBackup(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", backup.FileName))
	c.File(backup.FilePath)
}

// DeleteBackup removes the file, then the record.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	backup, ok := h.findBackup(c)
	if !ok {
		return
	}

	_ = os.Remove(backup.FilePath)
	if err := h.DB.Delete(backup).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo eliminar el registro")
		return
	}

	util.Success(c, util.Response{
		"message": "respaldo eliminado",
	})
}

// RestoreBackup replaces all writings with the contents of a backup file.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	backup, ok := h.findBackup(c)
	if !ok {
		return
	}

	payload, err := os.ReadFile(backup.FilePath)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo leer el archivo de respaldo")
		return
	}

	raw := payload
	if h.EncryptKey != "" {
		raw, err = util.DecryptAES(h.EncryptKey, payload)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo descifrar el respaldo")
			return
		}
	}

	var data backupData
	if err := json.Unmarshal(raw, &data); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo interpretar el respaldo")
		return
	}

	// replace everything inside one transaction; ids are reassigned
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Writing{}).Error; err != nil {
			return err
		}
		for i := range data.Writings {
			w := data.Writings[i]
			w.ID = 0
			if err := tx.Create(&w).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo restaurar el respaldo")
		return
	}

	util.Success(c, util.Response{
		"message":        "respaldo restaurado",
		"writings_count": len(data.Writings),
	})
}
