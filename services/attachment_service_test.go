package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeaderFor builds a real multipart.FileHeader the way gin would hand
// one to the upload controller.
func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/uploads/attachments", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestS3AttachmentServiceUpload(t *testing.T) {
	mockS3 := NewMockS3Service()
	svc := &S3AttachmentService{s3Service: mockS3}

	content := []byte("lab dip scan bytes")
	header := fileHeaderFor(t, "lab_report_chambray.pdf", content)

	key, err := svc.UploadAttachment(header)
	require.NoError(t, err)
	assert.Equal(t, "attachments/mock_lab_report_chambray.pdf", key)

	stored, ok := mockS3.StoredContent(key)
	require.True(t, ok)
	assert.Equal(t, content, stored)
}

func TestS3AttachmentServiceRejectsInvalidFormat(t *testing.T) {
	mockS3 := NewMockS3Service()
	svc := &S3AttachmentService{s3Service: mockS3}

	header := fileHeaderFor(t, "notes.txt", []byte("plain text"))

	_, err := svc.UploadAttachment(header)
	assert.Error(t, err)
	assert.False(t, mockS3.FileExists("attachments/mock_notes.txt"))
}

func TestS3AttachmentServiceURLAndDelete(t *testing.T) {
	mockS3 := NewMockS3Service()
	svc := &S3AttachmentService{s3Service: mockS3}

	header := fileHeaderFor(t, "fit_sample.jpg", []byte{0xFF, 0xD8, 0xFF})
	key, err := svc.UploadAttachment(header)
	require.NoError(t, err)

	url, err := svc.GetAttachmentURL(key)
	require.NoError(t, err)
	assert.Contains(t, url, key)

	// Empty keys short-circuit without touching storage
	url, err = svc.GetAttachmentURL("")
	assert.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, svc.DeleteAttachment(key))
	assert.False(t, mockS3.FileExists(key))

	// Deleting an already-absent key is a no-op
	assert.NoError(t, svc.DeleteAttachment(""))

	// URL for a deleted key surfaces the storage miss
	_, err = svc.GetAttachmentURL(key)
	assert.Error(t, err)
}

func TestInitAndSwapAttachmentService(t *testing.T) {
	original := GetAttachmentService()
	defer SetAttachmentService(original)

	mockS3 := NewMockS3Service()
	svc := InitAttachmentService(mockS3)
	assert.Same(t, svc, GetAttachmentService())

	mock := NewMockAttachmentService()
	mock.SetAsMockForTesting()
	assert.Same(t, AttachmentService(mock), GetAttachmentService())
}
