// Package client talks to the TermoApp server: it submits the delivery form
// and consumes the server-push progress stream.
package client

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/termoapp/termo-desk/internal/model"
)

// transportMessage is the single generic notice shown for any failure that
// is not an itemized server response
const transportMessage = "Erro de comunicação com o servidor. Tente novamente."

// Client is an HTTP client for one TermoApp server
type Client struct {
	baseURL string
	http    *http.Client

	// streaming requests are bounded by context cancellation, not the
	// round-trip timeout
	streaming *http.Client
}

// New creates a client for the server at baseURL. The timeout bounds the
// whole submission round trip, document generation included.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		streaming: &http.Client{},
	}
}

// serverResponse covers both JSON error shapes the server produces: a 400
// with itemized validation_errors, or an {error, field} pair from the
// generation path.
type serverResponse struct {
	Error            string             `json:"error"`
	Field            string             `json:"field"`
	ValidationErrors []model.FieldError `json:"validation_errors"`
}

// Submit posts the form payload as multipart form data and classifies the
// response. It never returns an error: every outcome, transport failures
// included, is expressed as a SubmissionResult so the caller has a single
// completion path.
func (c *Client) Submit(ctx context.Context, payload url.Values) *model.SubmissionResult {
	requestID := uuid.NewString()

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for _, name := range sortedKeys(payload) {
		for _, value := range payload[name] {
			if err := writer.WriteField(name, value); err != nil {
				log.Printf("Failed to encode field %s for request %s: %v", name, requestID, err)
				return transportFailure()
			}
		}
	}
	if err := writer.Close(); err != nil {
		log.Printf("Failed to finish multipart body for request %s: %v", requestID, err)
		return transportFailure()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", strings.NewReader(body.String()))
	if err != nil {
		log.Printf("Failed to build submission request %s: %v", requestID, err)
		return transportFailure()
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", requestID)

	log.Printf("Submitting form, request %s", requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Submission request %s failed: %v", requestID, err)
		return transportFailure()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Failed to read response for request %s: %v", requestID, err)
		return transportFailure()
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode == http.StatusOK && strings.HasPrefix(contentType, "application/pdf") {
		log.Printf("Request %s completed with %d PDF bytes", requestID, len(data))
		return &model.SubmissionResult{
			Kind:        model.ResultSuccess,
			PDF:         data,
			ContentType: contentType,
		}
	}

	var parsed serverResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("Request %s returned status %d with unreadable body: %v", requestID, resp.StatusCode, err)
		return transportFailure()
	}

	if len(parsed.ValidationErrors) > 0 {
		log.Printf("Request %s rejected with %d validation errors", requestID, len(parsed.ValidationErrors))
		return &model.SubmissionResult{
			Kind:   model.ResultValidationFailure,
			Errors: parsed.ValidationErrors,
		}
	}

	if parsed.Error != "" {
		log.Printf("Request %s rejected: %s", requestID, parsed.Error)
		return &model.SubmissionResult{
			Kind:    model.ResultValidationFailure,
			Errors:  []model.FieldError{{Field: parsed.Field, Message: parsed.Error}},
			Message: parsed.Error,
		}
	}

	log.Printf("Request %s returned unexpected status %d (%s)", requestID, resp.StatusCode, contentType)
	return transportFailure()
}

func transportFailure() *model.SubmissionResult {
	return &model.SubmissionResult{
		Kind:    model.ResultTransportFailure,
		Message: transportMessage,
	}
}

// sortedKeys orders scalar fields before the repeated entry lists so the
// request body is stable across submissions
func sortedKeys(payload url.Values) []string {
	scalars := make([]string, 0, len(payload))
	lists := make([]string, 0, 2)
	for name := range payload {
		if strings.HasSuffix(name, "[]") {
			lists = append(lists, name)
		} else {
			scalars = append(scalars, name)
		}
	}
	sort.Strings(scalars)
	sort.Strings(lists)
	return append(scalars, lists...)
}
