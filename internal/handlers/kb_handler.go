package handlers

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wiralabs/client-console/internal/services"
	"github.com/wiralabs/client-console/internal/shared/utils"
)

type KBHandler struct {
	kbService *services.KBService
}

func NewKBHandler(service *services.KBService) *KBHandler {
	return &KBHandler{kbService: service}
}

// Upload types accepted at this boundary. The backend re-checks; this list
// only keeps obviously unsupported files from travelling.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".csv":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".rtf":  true,
}

func parseAccountID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("accountId"), 10, 64)
}

// GetKnowledgeBase godoc
// @Summary List a client's knowledge base
// @Description Returns deduplicated documents and processed URLs for the account
// @Tags KnowledgeBase
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} models.KnowledgeBaseListing
// @Router /kb/{accountId} [get]
func (h *KBHandler) GetKnowledgeBase(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	listing, err := h.kbService.ListAll(c.Context(), accountID)
	if err != nil {
		utils.LogError("knowledge base listing failed", err, map[string]interface{}{
			"account_id": accountID,
		})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch files and URLs",
		})
	}

	return c.JSON(listing)
}

// UploadFile godoc
// @Summary Upload a document
// @Description Accepts a multipart file and submits it for chunking and indexing
// @Tags KnowledgeBase
// @Accept multipart/form-data
// @Produce json
// @Param accountId path int true "Account ID"
// @Param file formData file true "Document (pdf, txt, csv, doc, docx, xls, xlsx, rtf)"
// @Success 200 {object} models.KnowledgeBaseListing
// @Failure 400 {object} map[string]string
// @Router /kb/{accountId}/upload [post]
func (h *KBHandler) UploadFile(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported file type: " + ext,
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read file",
		})
	}
	defer file.Close()

	if err := h.kbService.UploadFile(c.Context(), accountID, fileHeader.Filename, file); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": services.ErrorMessage(err, "Failed to upload file"),
		})
	}

	return h.relist(c, accountID)
}

// ProcessURL godoc
// @Summary Ingest a URL
// @Description Submits a URL for backend-side crawling and indexing
// @Tags KnowledgeBase
// @Accept json
// @Produce json
// @Param accountId path int true "Account ID"
// @Param data body object{url=string} true "URL to process"
// @Success 200 {object} models.KnowledgeBaseListing
// @Failure 400 {object} map[string]string
// @Router /kb/{accountId}/url [post]
func (h *KBHandler) ProcessURL(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if err := h.kbService.ProcessURL(c.Context(), accountID, req.URL); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": services.ErrorMessage(err, "Failed to process URL"),
		})
	}

	return h.relist(c, accountID)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description Removes a logical document and all its chunks
// @Tags KnowledgeBase
// @Produce json
// @Param accountId path int true "Account ID"
// @Param documentId path string true "Document ID"
// @Success 200 {object} models.KnowledgeBaseListing
// @Router /kb/{accountId}/documents/{documentId} [delete]
func (h *KBHandler) DeleteDocument(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	documentID := c.Params("documentId")
	if documentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "documentId is required",
		})
	}

	if err := h.kbService.DeleteDocument(c.Context(), accountID, documentID); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": services.ErrorMessage(err, "Failed to delete document"),
		})
	}

	return h.relist(c, accountID)
}

// DeleteURL godoc
// @Summary Delete a processed URL
// @Description Removes a processed URL, keyed by its value
// @Tags KnowledgeBase
// @Accept json
// @Produce json
// @Param accountId path int true "Account ID"
// @Param data body object{url=string} true "URL to delete"
// @Success 200 {object} models.KnowledgeBaseListing
// @Router /kb/{accountId}/urls [delete]
func (h *KBHandler) DeleteURL(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if err := h.kbService.DeleteURL(c.Context(), accountID, req.URL); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": services.ErrorMessage(err, "Failed to delete URL"),
		})
	}

	return h.relist(c, accountID)
}

// DownloadDocument godoc
// @Summary Download a document
// @Description Streams the file through the backend's secure proxy with its resolved name and MIME type
// @Tags KnowledgeBase
// @Produce octet-stream
// @Param accountId path int true "Account ID"
// @Param documentId path string true "Document ID"
// @Param file_name query string false "Stored file name used when the backend sends no content-disposition"
// @Success 200 {file} binary
// @Router /kb/{accountId}/download/{documentId} [get]
func (h *KBHandler) DownloadDocument(c *fiber.Ctx) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "accountId must be numeric",
		})
	}

	documentID := c.Params("documentId")
	if documentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "documentId is required",
		})
	}

	if h.kbService.Downloading(documentID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "download already in progress",
		})
	}

	file, err := h.kbService.Download(c.Context(), accountID, documentID, c.Query("file_name"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": services.ErrorMessage(err, "Failed to download file"),
		})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return c.Send(file.Data)
}

// relist answers a mutating request with the refreshed listing, so the
// console never renders a stale knowledge base after a successful change.
func (h *KBHandler) relist(c *fiber.Ctx, accountID int64) error {
	listing, err := h.kbService.ListAll(c.Context(), accountID)
	if err != nil {
		// The mutation itself succeeded; say so and let the caller refetch.
		return c.JSON(fiber.Map{"status": "ok"})
	}
	return c.JSON(listing)
}
