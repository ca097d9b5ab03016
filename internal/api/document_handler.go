package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
)

//go:generate mockery --name DocumentService --output ../mocks
type DocumentService interface {
	Create(ctx context.Context, principal *domain.Principal, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.DocumentResponse, error)
	List(ctx context.Context, principal *domain.Principal, query dto.ListDocumentsQuery) ([]dto.DocumentResponse, error)
	Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, principal *domain.Principal, id uint) error
	Upload(ctx context.Context, principal *domain.Principal, id uint, file dto.FileUpload) (*dto.UploadResponse, error)
	CreateWithFile(ctx context.Context, principal *domain.Principal, carID uint, req dto.CreateDocumentWithFileRequest, file dto.FileUpload) (*dto.DocumentResponse, error)
	FileURL(ctx context.Context, principal *domain.Principal, id uint) (string, error)
}

type DocumentHandler struct {
	*BaseHandler
	service DocumentService
}

func NewDocumentHandler(base *BaseHandler, service DocumentService) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, service: service}
}

// CreateDocument godoc
// @Summary Add a document to a car
// @Description The file is attached separately through the upload endpoints
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateDocumentRequest true "Document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /docs [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	document, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

// ListDocuments godoc
// @Summary List the tenant's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param car_id query int false "Car"
// @Param document_type query string false "Document type"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, at most 100" default(100)
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Router /docs [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var query dto.ListDocumentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	documents, err := h.service.List(h.RequestCtx(c), principal, query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.Error
// @Router /docs/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	document, err := h.service.Get(h.RequestCtx(c), principal, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// UpdateDocument godoc
// @Summary Update a document
// @Description Only the fields present in the body are changed. null clears a nullable field.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param body body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /docs/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	document, err := h.service.Update(h.RequestCtx(c), principal, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description The stored file, if any, is queued for removal
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.Error
// @Router /docs/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), principal, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted successfully"})
}

// UploadFile godoc
// @Summary Attach a file to a document
// @Description Stores the file, marks the document completed and queues the previous file for removal
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param file formData file true "Document file (.pdf .doc .docx .txt .jpg .jpeg .png)"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /docs/upload/{id} [post]
func (h *DocumentHandler) UploadFile(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	file, closeFile, ok := formFile(c)
	if !ok {
		return
	}
	defer closeFile()

	resp, err := h.service.Upload(h.RequestCtx(c), principal, id, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateWithFile godoc
// @Summary Create a document together with its file
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param car_id path int true "Car ID"
// @Param name formData string true "Name"
// @Param document_type formData string true "Document type"
// @Param notes formData string false "Notes"
// @Param is_required formData bool false "Required for the sale"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /docs/create-with-file/{car_id} [post]
func (h *DocumentHandler) CreateWithFile(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	carID, ok := h.pathID(c, "car_id")
	if !ok {
		return
	}

	var req dto.CreateDocumentWithFileRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	file, closeFile, ok := formFile(c)
	if !ok {
		return
	}
	defer closeFile()

	document, err := h.service.CreateWithFile(h.RequestCtx(c), principal, carID, req, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

// DownloadFile godoc
// @Summary Download a document's file
// @Description Redirects to a short-lived presigned URL
// @Tags documents
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 302
// @Failure 404 {object} dto.Error
// @Router /docs/{id}/file [get]
func (h *DocumentHandler) DownloadFile(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	url, err := h.service.FileURL(h.RequestCtx(c), principal, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// formFile opens the "file" part of a multipart request. A missing part yields an empty
// upload so the service reports it.
func formFile(c *gin.Context) (dto.FileUpload, func(), bool) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return dto.FileUpload{}, func() {}, true
		}
		bindError(c, err)
		return dto.FileUpload{}, nil, false
	}

	f, err := header.Open()
	if err != nil {
		bindError(c, err)
		return dto.FileUpload{}, nil, false
	}

	return dto.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     f,
	}, func() { _ = f.Close() }, true
}
