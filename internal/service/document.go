package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/metrics"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

var allowedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"}

//go:generate mockery --name FileStore --output ../mocks
type FileStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

//go:generate mockery --name CleanupQueue --output ../mocks
type CleanupQueue interface {
	SendFileCleanupMessage(ctx context.Context, tenantID uint, keys []string) error
}

type DocumentService struct {
	repo          repository.Repository
	files         FileStore
	cleanup       CleanupQueue
	maxUploadSize int64
	logger        *logger.Logger
}

func NewDocumentService(repo repository.Repository, files FileStore, cleanup CleanupQueue, maxUploadSize int64, logger *logger.Logger) *DocumentService {
	return &DocumentService{
		repo:          repo,
		files:         files,
		cleanup:       cleanup,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (s *DocumentService) Create(ctx context.Context, principal *domain.Principal, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := verifyCar(ctx, s.repo, principal.TenantID, req.CarID); err != nil {
		return nil, err
	}

	document := req.ToDocument()
	if err := s.repo.Document().Create(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return dto.FromDocument(document), nil
}

func (s *DocumentService) Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.DocumentResponse, error) {
	document, err := s.repo.Document().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Document")
	}
	return dto.FromDocument(document), nil
}

func (s *DocumentService) List(ctx context.Context, principal *domain.Principal, query dto.ListDocumentsQuery) ([]dto.DocumentResponse, error) {
	offset, limit := query.Bounds()
	documents, err := s.repo.Document().List(ctx, domain.DocumentFilter{
		TenantID:     principal.TenantID,
		CarID:        query.CarID,
		DocumentType: query.DocumentType,
		Offset:       offset,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return dto.FromDocuments(documents), nil
}

func (s *DocumentService) Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := s.repo.Document().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Document")
	}

	if req.CarID != nil && *req.CarID != document.CarID {
		if err := verifyCar(ctx, s.repo, principal.TenantID, *req.CarID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(document)
	if err := s.repo.Document().Update(ctx, principal.TenantID, document); err != nil {
		return nil, notFound(err, "Document")
	}
	return dto.FromDocument(document), nil
}

func (s *DocumentService) Delete(ctx context.Context, principal *domain.Principal, id uint) error {
	document, err := s.repo.Document().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return notFound(err, "Document")
	}

	if err := s.repo.Document().Delete(ctx, principal.TenantID, id); err != nil {
		return notFound(err, "Document")
	}

	s.queueCleanup(ctx, principal.TenantID, document.FileURL)
	return nil
}

// Upload attaches file to an existing document, marks it completed and queues the
// previous file, if any, for deletion.
func (s *DocumentService) Upload(ctx context.Context, principal *domain.Principal, id uint, file dto.FileUpload) (*dto.UploadResponse, error) {
	document, err := s.repo.Document().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Document")
	}

	key, err := s.store(ctx, principal.TenantID, file)
	if err != nil {
		return nil, err
	}

	previous := document.FileURL
	document.FileURL = &key
	document.IsCompleted = true
	if err := s.repo.Document().Update(ctx, principal.TenantID, document); err != nil {
		s.discard(ctx, key)
		return nil, notFound(err, "Document")
	}

	s.queueCleanup(ctx, principal.TenantID, previous)
	return &dto.UploadResponse{
		Message:    "File uploaded successfully",
		FileURL:    key,
		DocumentID: document.ID,
	}, nil
}

func (s *DocumentService) CreateWithFile(ctx context.Context, principal *domain.Principal, carID uint, req dto.CreateDocumentWithFileRequest, file dto.FileUpload) (*dto.DocumentResponse, error) {
	if err := verifyCar(ctx, s.repo, principal.TenantID, carID); err != nil {
		return nil, err
	}

	key, err := s.store(ctx, principal.TenantID, file)
	if err != nil {
		return nil, err
	}

	document := &domain.Document{
		CarID:        carID,
		Name:         req.Name,
		DocumentType: req.DocumentType,
		FileURL:      &key,
		IsRequired:   req.IsRequired,
		IsCompleted:  true,
	}
	if req.Notes != "" {
		document.Notes = &req.Notes
	}

	if err := s.repo.Document().Create(ctx, document); err != nil {
		s.discard(ctx, key)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return dto.FromDocument(document), nil
}

// FileURL returns a short-lived download link for the document's file
func (s *DocumentService) FileURL(ctx context.Context, principal *domain.Principal, id uint) (string, error) {
	document, err := s.repo.Document().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return "", notFound(err, "Document")
	}
	if document.FileURL == nil || *document.FileURL == "" {
		return "", &NotFoundError{Resource: "File"}
	}

	url, err := s.files.PresignGet(ctx, *document.FileURL)
	if err != nil {
		return "", fmt.Errorf("failed to presign document file: %w", err)
	}
	return url, nil
}

func (s *DocumentService) store(ctx context.Context, tenantID uint, file dto.FileUpload) (string, error) {
	ext, err := s.validate(file)
	if err != nil {
		return "", err
	}

	key := objectKey(tenantID, ext)
	if err := s.files.Put(ctx, key, file.Content, file.Size, file.ContentType); err != nil {
		return "", fmt.Errorf("failed to store document file: %w", err)
	}
	metrics.UploadBytesHistogram.Observe(float64(file.Size))
	return key, nil
}

func (s *DocumentService) validate(file dto.FileUpload) (string, error) {
	if file.Filename == "" || file.Content == nil {
		return "", fmt.Errorf("%w: no file provided", ErrInvalidFile)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(allowedDocumentExtensions, ext) {
		return "", fmt.Errorf("%w: file type not allowed, accepted extensions: %s", ErrInvalidFile, strings.Join(allowedDocumentExtensions, ", "))
	}
	if file.Size <= 0 {
		return "", fmt.Errorf("%w: file is empty", ErrInvalidFile)
	}
	if s.maxUploadSize > 0 && file.Size > s.maxUploadSize {
		return "", fmt.Errorf("%w: file too large, maximum size is %d MB", ErrInvalidFile, s.maxUploadSize/(1024*1024))
	}
	return ext, nil
}

// discard removes a stored object whose database row was never written
func (s *DocumentService) discard(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to remove orphaned document file", zap.String("key", key), zap.Error(err))
	}
}

func (s *DocumentService) queueCleanup(ctx context.Context, tenantID uint, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.cleanup.SendFileCleanupMessage(ctx, tenantID, []string{*key}); err != nil {
		s.logger.Error("failed to queue file cleanup", err, zap.String("key", *key))
	}
}

// objectKey keeps every tenant's files under its own prefix
func objectKey(tenantID uint, ext string) string {
	return fmt.Sprintf("tenants/%d/documents/%s%s", tenantID, uuid.NewString(), ext)
}
