package services

import (
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/stitchline/stitchline-api/utils"
)

// MockAttachmentService is a mock implementation of AttachmentService for testing
type MockAttachmentService struct {
	uploadedFiles map[string][]byte // map of storage key to file content
	mu            sync.RWMutex
}

// NewMockAttachmentService creates a new mock attachment service
func NewMockAttachmentService() *MockAttachmentService {
	return &MockAttachmentService{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global attachment service instance for testing
func (m *MockAttachmentService) SetAsMockForTesting() {
	SetAttachmentService(m)
}

// UploadAttachment simulates uploading a file
func (m *MockAttachmentService) UploadAttachment(fileHeader *multipart.FileHeader) (string, error) {
	// Validate the file
	if err := utils.ValidateAttachmentFile(fileHeader); err != nil {
		return "", err
	}

	// Open and read the file
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read file content
	content := make([]byte, fileHeader.Size)
	_, err = file.Read(content)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	// Generate mock storage key
	key := fmt.Sprintf("attachments/mock_%s", fileHeader.Filename)

	// Store in mock storage
	m.mu.Lock()
	m.uploadedFiles[key] = content
	m.mu.Unlock()

	return key, nil
}

// GetAttachmentURL simulates generating a URL for an attachment
func (m *MockAttachmentService) GetAttachmentURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	// Check if file exists in mock storage
	m.mu.RLock()
	_, exists := m.uploadedFiles[key]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("attachment not found in mock storage: %s", key)
	}

	// Return a mock URL
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// DeleteAttachment simulates deleting an attachment
func (m *MockAttachmentService) DeleteAttachment(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedFiles, key)
	m.mu.Unlock()

	return nil
}

// GetUploadedFiles returns all uploaded files (for testing assertions)
func (m *MockAttachmentService) GetUploadedFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	files := make(map[string][]byte, len(m.uploadedFiles))
	for k, v := range m.uploadedFiles {
		files[k] = v
	}
	return files
}

// AttachmentExists checks if an attachment exists in mock storage
func (m *MockAttachmentService) AttachmentExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[key]
	return exists
}

// Clear removes all attachments from mock storage
func (m *MockAttachmentService) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.mu.Unlock()
}
