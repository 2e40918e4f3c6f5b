package app

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/student"
)

type fakeStudentRepo struct {
	mu        sync.Mutex
	byID      map[common.UUID]*student.Student
	upsertErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byID: make(map[common.UUID]*student.Student)}
}

func (r *fakeStudentRepo) Upsert(ctx context.Context, record student.Student) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	record.CreatedAt = time.Now().UTC()
	stored := record
	r.byID[record.ID] = &stored
	copy := record
	return &copy, nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id common.UUID) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := r.byID[id]
	if record == nil {
		return nil, common.NewError(common.CodeNotFound, "student not found", nil)
	}
	copy := *record
	return &copy, nil
}

func (r *fakeStudentRepo) List(ctx context.Context) ([]student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []student.Student
	for _, record := range r.byID {
		items = append(items, *record)
	}
	return items, nil
}

type fakeBlobStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	removed  []string
	uploaded []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (s *fakeBlobStore) Upload(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	s.uploaded = append(s.uploaded, name)
	return nil
}

func (s *fakeBlobStore) PresignedURL(ctx context.Context, name string) (string, error) {
	return "https://blob.test/" + name + "?sig=abc", nil
}

func (s *fakeBlobStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, name)
	s.removed = append(s.removed, name)
	return nil
}

func validAddInput(userID common.UUID) AddStudentInput {
	return AddStudentInput{
		UserID:        userID,
		RollNumber:    "21CS042",
		FirstName:     "Priya",
		LastName:      "Sharma",
		Email:         "priya@example.edu",
		ResumeFile:    "priya-resume.pdf",
		ResumeContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")),
	}
}

func TestStudentServiceAdd_StoresProfileWithResumeURL(t *testing.T) {
	repo := newFakeStudentRepo()
	blobs := newFakeBlobStore()
	service := NewStudentService(repo, blobs, noopLogger{})

	userID := common.NewUUID()
	created, err := service.Add(context.Background(), validAddInput(userID))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.ID != userID {
		t.Fatalf("expected profile keyed by user id, got %s", created.ID)
	}
	if created.ResumeURL == "" {
		t.Fatal("expected resume url to be set")
	}
	if len(blobs.uploaded) != 1 || blobs.uploaded[0] != "priya-resume.pdf" {
		t.Fatalf("expected one blob upload, got %v", blobs.uploaded)
	}
}

func TestStudentServiceAdd_ReuploadOverwrites(t *testing.T) {
	repo := newFakeStudentRepo()
	blobs := newFakeBlobStore()
	service := NewStudentService(repo, blobs, noopLogger{})

	userID := common.NewUUID()
	if _, err := service.Add(context.Background(), validAddInput(userID)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	input := validAddInput(userID)
	input.RollNumber = "21CS099"
	updated, err := service.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("expected re-upload to succeed, got %v", err)
	}
	if updated.RollNumber != "21CS099" {
		t.Fatalf("expected overwritten roll number, got %s", updated.RollNumber)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected a single profile row, got %d", len(repo.byID))
	}
}

func TestStudentServiceAdd_RemovesBlobWhenInsertFails(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.upsertErr = errors.New("db down")
	blobs := newFakeBlobStore()
	service := NewStudentService(repo, blobs, noopLogger{})

	_, err := service.Add(context.Background(), validAddInput(common.NewUUID()))
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if len(blobs.removed) != 1 || blobs.removed[0] != "priya-resume.pdf" {
		t.Fatalf("expected orphaned blob to be removed, got %v", blobs.removed)
	}
}

func TestStudentServiceUpload_RejectsInvalidBase64(t *testing.T) {
	service := NewStudentService(newFakeStudentRepo(), newFakeBlobStore(), noopLogger{})

	_, err := service.Upload(context.Background(), "resume.pdf", "not base64!!")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStudentServiceUpload_WithoutBlobStore(t *testing.T) {
	service := NewStudentService(newFakeStudentRepo(), nil, noopLogger{})

	_, err := service.Upload(context.Background(), "resume.pdf", base64.StdEncoding.EncodeToString([]byte("x")))
	if !common.Is(err, common.CodeInternal) {
		t.Fatalf("expected internal error when storage unconfigured, got %v", err)
	}
}

func TestStudentServiceAdd_MissingFields(t *testing.T) {
	service := NewStudentService(newFakeStudentRepo(), newFakeBlobStore(), noopLogger{})

	_, err := service.Add(context.Background(), AddStudentInput{UserID: common.NewUUID()})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
