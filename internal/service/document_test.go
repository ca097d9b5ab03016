package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/mocks"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

const testMaxUploadSize = 1024

type DocumentServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockCar      *mocks.CarRepository
	mockDocument *mocks.DocumentRepository
	mockFiles    *mocks.FileStore
	mockCleanup  *mocks.CleanupQueue
	service      *DocumentService
	principal    *domain.Principal
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCar = new(mocks.CarRepository)
	s.mockDocument = new(mocks.DocumentRepository)
	s.mockFiles = new(mocks.FileStore)
	s.mockCleanup = new(mocks.CleanupQueue)

	s.mockRepo.On("Car").Return(s.mockCar)
	s.mockRepo.On("Document").Return(s.mockDocument)

	s.service = NewDocumentService(s.mockRepo, s.mockFiles, s.mockCleanup, testMaxUploadSize, logger.NewNop())
	s.principal = &domain.Principal{AccountID: 1, TenantID: 10}
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func pdfUpload(size int) dto.FileUpload {
	return dto.FileUpload{
		Filename:    "title.PDF",
		Size:        int64(size),
		ContentType: "application/pdf",
		Content:     strings.NewReader(strings.Repeat("x", size)),
	}
}

func tenantKey(key string) bool {
	return strings.HasPrefix(key, "tenants/10/documents/") && strings.HasSuffix(key, ".pdf")
}

func (s *DocumentServiceTestSuite) TestCreate_RequiresOwnCar() {
	ctx := context.Background()
	req := dto.CreateDocumentRequest{Name: "Title", DocumentType: "title", CarID: 4}

	s.mockCar.On("GetByID", ctx, uint(10), uint(4)).Return(nil, domain.ErrNotFound)

	resp, err := s.service.Create(ctx, s.principal, req)

	s.Nil(resp)
	s.EqualError(err, "Car not found")
	s.mockDocument.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	req := dto.CreateDocumentRequest{Name: "Title", DocumentType: "title", CarID: 4, IsRequired: true}

	s.mockCar.On("GetByID", ctx, uint(10), uint(4)).Return(&domain.Car{ID: 4, TenantID: 10}, nil)
	s.mockDocument.On("Create", ctx, mock.MatchedBy(func(d *domain.Document) bool {
		return d.CarID == 4 && d.FileURL == nil && d.IsRequired
	})).Return(nil)

	resp, err := s.service.Create(ctx, s.principal, req)

	s.NoError(err)
	s.Equal(uint(4), resp.CarID)
	s.mockDocument.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestUpdate_MovingToForeignCar() {
	ctx := context.Background()
	carID := uint(8)

	s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Document{ID: 1, CarID: 4}, nil)
	s.mockCar.On("GetByID", ctx, uint(10), carID).Return(nil, domain.ErrNotFound)

	_, err := s.service.Update(ctx, s.principal, 1, dto.UpdateDocumentRequest{CarID: &carID})

	s.EqualError(err, "Car not found")
	s.mockDocument.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestDelete_QueuesFile() {
	ctx := context.Background()
	key := "tenants/10/documents/a.pdf"

	s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Document{ID: 1, FileURL: &key}, nil)
	s.mockDocument.On("Delete", ctx, uint(10), uint(1)).Return(nil)
	s.mockCleanup.On("SendFileCleanupMessage", ctx, uint(10), []string{key}).Return(nil)

	err := s.service.Delete(ctx, s.principal, 1)

	s.NoError(err)
	s.mockCleanup.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestUpload_ReplacesPreviousFile() {
	// Arrange
	ctx := context.Background()
	previous := "tenants/10/documents/old.pdf"
	document := &domain.Document{ID: 1, CarID: 4, FileURL: &previous}

	s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(document, nil)
	s.mockFiles.On("Put", ctx, mock.MatchedBy(tenantKey), mock.Anything, int64(16), "application/pdf").Return(nil)
	s.mockDocument.On("Update", ctx, uint(10), mock.MatchedBy(func(d *domain.Document) bool {
		return d.IsCompleted && d.FileURL != nil && tenantKey(*d.FileURL)
	})).Return(nil)
	s.mockCleanup.On("SendFileCleanupMessage", ctx, uint(10), []string{previous}).Return(nil)

	// Act
	resp, err := s.service.Upload(ctx, s.principal, 1, pdfUpload(16))

	// Assert
	s.NoError(err)
	s.Equal(uint(1), resp.DocumentID)
	s.True(tenantKey(resp.FileURL))
	s.Equal("File uploaded successfully", resp.Message)
	s.mockFiles.AssertExpectations(s.T())
	s.mockCleanup.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestUpload_UpdateFailureDiscardsObject() {
	ctx := context.Background()

	s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Document{ID: 1}, nil)
	s.mockFiles.On("Put", ctx, mock.MatchedBy(tenantKey), mock.Anything, int64(16), "application/pdf").Return(nil)
	s.mockDocument.On("Update", ctx, uint(10), mock.Anything).Return(errors.New("db down"))
	s.mockFiles.On("Delete", ctx, mock.MatchedBy(tenantKey)).Return(nil)

	_, err := s.service.Upload(ctx, s.principal, 1, pdfUpload(16))

	s.Error(err)
	s.mockFiles.AssertExpectations(s.T())
	s.mockCleanup.AssertNotCalled(s.T(), "SendFileCleanupMessage", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUpload_Validation() {
	tests := []struct {
		name string
		file dto.FileUpload
	}{
		{name: "no file", file: dto.FileUpload{}},
		{name: "extension not allowed", file: dto.FileUpload{Filename: "run.exe", Size: 4, Content: strings.NewReader("MZ..")}},
		{name: "empty file", file: dto.FileUpload{Filename: "a.pdf", Size: 0, Content: strings.NewReader("")}},
		{name: "too large", file: pdfUpload(testMaxUploadSize + 1)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			ctx := context.Background()
			s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Document{ID: 1}, nil)

			_, err := s.service.Upload(ctx, s.principal, 1, tt.file)

			s.ErrorIs(err, ErrInvalidFile)
			s.mockFiles.AssertNotCalled(s.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (s *DocumentServiceTestSuite) TestCreateWithFile() {
	ctx := context.Background()
	req := dto.CreateDocumentWithFileRequest{Name: "Invoice", DocumentType: "invoice", Notes: "signed"}

	s.mockCar.On("GetByID", ctx, uint(10), uint(4)).Return(&domain.Car{ID: 4, TenantID: 10}, nil)
	s.mockFiles.On("Put", ctx, mock.MatchedBy(tenantKey), mock.Anything, int64(8), "application/pdf").Return(nil)
	s.mockDocument.On("Create", ctx, mock.MatchedBy(func(d *domain.Document) bool {
		return d.CarID == 4 && d.IsCompleted && d.Notes != nil && *d.Notes == "signed"
	})).Return(nil)

	resp, err := s.service.CreateWithFile(ctx, s.principal, 4, req, pdfUpload(8))

	s.NoError(err)
	s.True(resp.IsCompleted)
	s.NotNil(resp.FileURL)
}

func (s *DocumentServiceTestSuite) TestFileURL() {
	ctx := context.Background()
	key := "tenants/10/documents/a.pdf"

	s.mockDocument.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Document{ID: 1, FileURL: &key}, nil)
	s.mockDocument.On("GetByID", ctx, uint(10), uint(2)).Return(&domain.Document{ID: 2}, nil)
	s.mockFiles.On("PresignGet", ctx, key).Return("https://bucket.example/a.pdf?sig=1", nil)

	url, err := s.service.FileURL(ctx, s.principal, 1)
	s.NoError(err)
	s.Equal("https://bucket.example/a.pdf?sig=1", url)

	_, err = s.service.FileURL(ctx, s.principal, 2)
	s.EqualError(err, "File not found")
}
