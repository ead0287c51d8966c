package wizard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/images"
	apperrors "github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/repository/cache"
)

// The redis-backed draft store is the production Store implementation.
var _ Store = (*cache.DraftStore)(nil)

func newTestWizard(t *testing.T) (*Wizard, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return New(store, "session-1", zap.NewNop()), store
}

func TestWizardStepClamping(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWizard(t)

	assert.Equal(t, StepFacilityType, w.Step())
	assert.Equal(t, StepFacilityType, w.Back(ctx), "back at first step stays put")

	for i := 0; i < 10; i++ {
		w.Next(ctx)
	}
	assert.Equal(t, StepConfirmation, w.Step(), "next at last step stays put")

	assert.Equal(t, StepAmenities, w.Back(ctx))
}

func TestWizardDraftRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	w := New(store, "session-1", zap.NewNop())
	w.UpdateForm(ctx, func(f *domain.SubmissionForm) {
		f.FacilityTypeID = 3
		f.Road = "Orchard Road"
		f.Address = "123 Orchard Road"
		f.Latitude = 1.3039
		f.Longitude = 103.8318
		f.HasDiaperChangingStation = true
		f.Amenities = []int64{5, 7}
		f.AmenityQuantities = map[int64]int{5: 2}
	})
	w.AddImage(ctx, ImageRef{Name: "front.jpg", Category: domain.ImageCategoryEntrance, Data: []byte{1, 2, 3}})
	w.Next(ctx)
	w.Next(ctx)

	restored := New(store, "session-1", zap.NewNop())
	require.NoError(t, restored.Attach(ctx))

	assert.Equal(t, w.Draft().FormData, restored.Draft().FormData)
	assert.Equal(t, StepDetails, restored.Step())
	require.Len(t, restored.Draft().Images, 1)
	assert.Equal(t, "front.jpg", restored.Draft().Images[0].Name)
	assert.Nil(t, restored.Draft().Images[0].Data, "binary payloads are not persisted")
}

func TestWizardAttachWithoutDraft(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWizard(t)

	require.NoError(t, w.Attach(ctx))
	assert.Equal(t, StepFacilityType, w.Step())
}

func TestWizardRemoveImage(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWizard(t)

	w.AddImage(ctx, ImageRef{Name: "a.jpg"})
	w.AddImage(ctx, ImageRef{Name: "b.jpg"})

	w.RemoveImage(ctx, 5)
	assert.Len(t, w.Draft().Images, 2)

	w.RemoveImage(ctx, 0)
	require.Len(t, w.Draft().Images, 1)
	assert.Equal(t, "b.jpg", w.Draft().Images[0].Name)
}

type stubUploader struct {
	calls   int
	lastID  int64
	lastLen int
	err     error
}

func (u *stubUploader) Upload(_ context.Context, facilityID int64, uploads []images.Upload) ([]domain.FacilityImageMeta, error) {
	u.calls++
	u.lastID = facilityID
	u.lastLen = len(uploads)
	return nil, u.err
}

func TestSubmitRequiresUser(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWizard(t)

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	_, err := client.Submit(ctx, w, "")

	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
	assert.Zero(t, requests, "no request should be sent without a user")
}

func TestSubmitSuccessClearsDraftAndUploads(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := New(store, "session-1", zap.NewNop())
	w.UpdateForm(ctx, func(f *domain.SubmissionForm) {
		f.FacilityTypeID = 1
		f.Road = "Main St"
		f.Address = "1 Main St"
	})
	w.AddImage(ctx, ImageRef{Name: "a.jpg", Data: []byte{1}})
	w.AddImage(ctx, ImageRef{Name: "stale.jpg"})

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/submitFacility", r.URL.Path)
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"success":true,"message":"ok","facilityId":42}`))
	}))
	defer server.Close()

	uploader := &stubUploader{}
	client := NewClient(server.URL, uploader, zap.NewNop())

	result, err := client.Submit(ctx, w, "user-1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(42), result.FacilityID)

	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, int64(42), uploader.lastID)
	assert.Equal(t, 1, uploader.lastLen, "images without data are skipped")

	data, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, data, "draft is cleared after success")
	assert.Equal(t, StepFacilityType, w.Step())
}

func TestSubmitRejectionKeepsDraft(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := New(store, "session-1", zap.NewNop())
	w.UpdateForm(ctx, func(f *domain.SubmissionForm) { f.Address = "1 Main St" })

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"success":false,"message":"duplicate facility"}`))
	}))
	defer server.Close()

	uploader := &stubUploader{}
	client := NewClient(server.URL, uploader, zap.NewNop())

	result, err := client.Submit(ctx, w, "user-1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "duplicate facility", result.Message)
	assert.Zero(t, uploader.calls)

	data, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.NotNil(t, data, "draft survives a rejection")
}

func TestSubmitNonJSONResponse(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := New(store, "session-1", zap.NewNop())
	w.UpdateForm(ctx, func(f *domain.SubmissionForm) { f.Address = "1 Main St" })

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
		rw.Write([]byte("<html>upstream timeout</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())
	_, err := client.Submit(ctx, w, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrUnexpectedResponse)

	data, loadErr := store.Load(ctx, "session-1")
	require.NoError(t, loadErr)
	assert.NotNil(t, data, "draft survives a transport failure")
}

func TestSubmitUploadFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	w := New(store, "session-1", zap.NewNop())
	w.AddImage(ctx, ImageRef{Name: "a.jpg", Data: []byte{1}})

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"success":true,"message":"ok","facilityId":7}`))
	}))
	defer server.Close()

	uploader := &stubUploader{err: assert.AnError}
	client := NewClient(server.URL, uploader, zap.NewNop())

	result, err := client.Submit(ctx, w, "user-1")
	require.NoError(t, err)
	assert.True(t, result.Success)

	data, loadErr := store.Load(ctx, "session-1")
	require.NoError(t, loadErr)
	assert.Nil(t, data, "draft is cleared even when the upload fails")
}
