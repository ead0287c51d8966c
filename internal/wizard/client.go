package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/images"
	"github.com/facility-directory/internal/pkg/errors"
)

// Uploader pushes the draft's photos once the facility record exists.
type Uploader interface {
	Upload(ctx context.Context, facilityID int64, uploads []images.Upload) ([]domain.FacilityImageMeta, error)
}

// SubmitResult is the server's verdict on a submission.
type SubmitResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FacilityID int64  `json:"facilityId,omitempty"`
}

type submitRequest struct {
	FormData domain.SubmissionForm `json:"formData"`
	UserID   string                `json:"userId"`
}

// Client submits a finished draft to the facility API and manages the
// post-submit fate of the draft: kept on any failure, cleared on success.
type Client struct {
	httpClient *http.Client
	baseURL    string
	uploader   Uploader
	logger     *zap.Logger
}

func NewClient(baseURL string, uploader Uploader, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		uploader:   uploader,
		logger:     logger,
	}
}

// Submit sends the wizard's draft for the given user. An empty userID fails
// before any network traffic. A rejected or failed submission leaves the
// draft untouched so the user can retry; only an accepted one clears it.
func (c *Client) Submit(ctx context.Context, w *Wizard, userID string) (SubmitResult, error) {
	if userID == "" {
		return SubmitResult{}, errors.ErrAuthRequired
	}

	draft := w.Draft()
	payload, err := json.Marshal(submitRequest{FormData: draft.FormData, UserID: userID})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submitFacility", bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("submission request failed: %w", err)
	}
	defer resp.Body.Close()

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Submission returned a non-JSON body",
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return SubmitResult{}, errors.ErrUnexpectedResponse
	}

	if !result.Success {
		c.logger.Warn("Submission rejected", zap.String("message", result.Message))
		return result, nil
	}

	c.uploadImages(ctx, result.FacilityID, draft.Images)
	w.Clear(ctx)
	return result, nil
}

// uploadImages is best-effort: the facility already exists at this point, so
// photo failures are logged and the submission still counts.
func (c *Client) uploadImages(ctx context.Context, facilityID int64, refs []ImageRef) {
	if c.uploader == nil || len(refs) == 0 {
		return
	}

	uploads := make([]images.Upload, 0, len(refs))
	for _, ref := range refs {
		if len(ref.Data) == 0 {
			continue
		}
		uploads = append(uploads, images.Upload{Data: ref.Data, Category: ref.Category})
	}
	if len(uploads) == 0 {
		return
	}

	if _, err := c.uploader.Upload(ctx, facilityID, uploads); err != nil {
		c.logger.Warn("Image upload after submission failed",
			zap.Int64("facility_id", facilityID),
			zap.Error(err))
	}
}
