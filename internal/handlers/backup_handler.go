package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/md8-habibullah/ledger-tracker/internal/errors"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
)

// maxImportBytes caps uploaded backup files at 32 MiB.
const maxImportBytes = 32 << 20

// BackupHandler handles whole-store export and import
type BackupHandler struct {
	backup services.BackupServiceInterface
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backup services.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{backup: backup}
}

// Export streams the entire store as a downloadable JSON document
func (h *BackupHandler) Export(c echo.Context) error {
	backup, err := h.backup.Export()
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("ledger-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.JSON(http.StatusOK, backup)
}

// Import replaces store contents from an uploaded backup document
func (h *BackupHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return SendError(c, errors.ImportMalformedFile, errors.WithDetails("Could not read request body"))
	}

	summary, err := h.backup.Import(body)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrMalformedBackup), stderrors.Is(err, services.ErrEmptyBackup):
			return SendError(c, errors.ImportMalformedFile, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidBackupRecord):
			return SendError(c, errors.ImportInvalidRecord, errors.WithDetails(err.Error()))
		default:
			return SendError(c, errors.ImportTableFailed, errors.WithDetails(err.Error()))
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    summary,
		Message: "Import complete",
	})
}
