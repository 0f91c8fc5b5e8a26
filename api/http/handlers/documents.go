package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvstudio/api/http/presenter"
	"github.com/artem13815/cvstudio/pkg/document"
	"github.com/artem13815/cvstudio/pkg/profile"
)

type DocumentsHandler struct {
	docs     document.Repository
	profiles profile.UseCase
	maxBytes int64
	baseDir  string
}

func NewDocumentsHandler(docs document.Repository, profiles profile.UseCase, maxBytes int64, baseDir string) *DocumentsHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &DocumentsHandler{docs: docs, profiles: profiles, maxBytes: maxBytes, baseDir: baseDir}
}

type uploadFileResult struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Chars    int    `json:"chars"`
}

// Upload accepts one or more source files (PDF/DOCX/TXT), decodes each to
// text in upload order and feeds the accumulated corpus into the extraction
// prefill. A file that fails to decode is reported in its per-file status and
// does not abort the rest of the batch.
// @Summary Upload source documents
// @Tags    documents
// @Accept  multipart/form-data
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Param   files formData file true "source files (PDF, DOCX or TXT)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/documents [post]
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	owner := ownerID(c)
	// Ownership check up front so a bad id fails before any file work.
	if _, err := h.profiles.Get(c.Context(), owner, profileID); err != nil {
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["files"]) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "at least one file is required (pdf, docx or txt)")
	}

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}

	var combined strings.Builder
	results := make([]uploadFileResult, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		res := uploadFileResult{Filename: fh.Filename}
		text, err := h.ingestOne(c, owner, profileID, fh)
		if err != nil {
			// Decode/storage failures must not discard already accumulated text.
			res.Status = fmt.Sprintf("could not parse: %v", err)
			results = append(results, res)
			continue
		}
		res.Status = "ok"
		res.Chars = len(text)
		results = append(results, res)
		if text != "" {
			combined.WriteString(text)
			combined.WriteString("\n")
		}
	}

	rec, err := h.profiles.AttachSource(c.Context(), owner, profileID, combined.String())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile from sources")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"files":   results,
		"profile": rec,
	})
}

func (h *DocumentsHandler) ingestOne(c *fiber.Ctx, owner, profileID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
		return "", document.ErrUnsupportedFormat
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()
	data, err := readAtMost(f, h.maxBytes)
	if err != nil {
		return "", err
	}
	text, err := document.ExtractText(fh.Filename, data)
	if err != nil {
		return "", err
	}
	id := uuid.New()
	dst := filepath.Join(h.baseDir, id.String()+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	meta := document.Document{
		ID:         id,
		ProfileID:  profileID,
		OwnerID:    owner,
		Filename:   fh.Filename,
		MimeType:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		StorageURI: dst,
	}
	if err := h.docs.Create(c.Context(), meta); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("save metadata: %w", err)
	}
	return text, nil
}

// List returns documents uploaded to a profile.
// @Summary List documents
// @Tags    documents
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Security BearerAuth
// @Success 200 {array} document.Document
// @Router  /profiles/{id}/documents [get]
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	items, err := h.docs.ListByProfile(c.Context(), ownerID(c), profileID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list documents")
	}
	if items == nil {
		items = []document.Document{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Download sends the original uploaded file.
// @Summary Download document
// @Tags    documents
// @Produce application/octet-stream
// @Param   id path string true "profile ID (UUID)"
// @Param   docId path string true "document ID (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/documents/{docId}/file [get]
func (h *DocumentsHandler) Download(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, err := h.docs.GetForOwner(c.Context(), ownerID(c), docID)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "document not found")
	}
	return c.Download(meta.StorageURI, meta.Filename)
}

// Delete removes a document and its stored file.
// @Summary Delete document
// @Tags    documents
// @Param   id path string true "profile ID (UUID)"
// @Param   docId path string true "document ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/documents/{docId} [delete]
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, err := h.docs.DeleteForOwner(c.Context(), ownerID(c), docID)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "document not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete document")
	}
	_ = os.Remove(meta.StorageURI)
	return c.SendStatus(http.StatusNoContent)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
