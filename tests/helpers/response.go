// response.go
//
// Multi-step job application form state service.
// Envelope assertions shared by the HTTP test suites.

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Envelope mirrors the API response body for assertions.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseEnvelope decodes the response body into an Envelope
func ParseEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
	return env
}

// ParseData decodes the envelope's data payload into target
func ParseData(t *testing.T, env Envelope, target interface{}) {
	t.Helper()
	if len(env.Data) == 0 {
		t.Fatal("Envelope carries no data")
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		t.Fatalf("Failed to decode envelope data: %v. Data: %s", err, string(env.Data))
	}
}

// AssertSuccess verifies a success envelope
func AssertSuccess(t *testing.T, env Envelope) {
	t.Helper()
	if !env.Success {
		t.Errorf("Expected success envelope, got message %q errors %v", env.Message, env.Errors)
	}
}

// AssertFailure verifies an error envelope
func AssertFailure(t *testing.T, env Envelope) {
	t.Helper()
	if env.Success {
		t.Errorf("Expected error envelope, got success with message %q", env.Message)
	}
}
