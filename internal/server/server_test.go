package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/resume-profiler/internal/config"
)

const sampleResumeText = `JORDAN SMITH
jordan.smith@acme.com | (555) 123-4567

Experience
Operations Manager at Acme Corp Inc. since January 2018.
Led a team of 12 employees and increased revenue by 30% across 5 locations.

Skills
• Team Leadership
• Budgeting
• Scheduling`

// newTestServer creates a server without persistence or a model key
func newTestServer(t *testing.T) *Server {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("BCRYPT_COST", "10")

	s, err := New(Config{
		JWTSecret:   "test-secret-key-for-jwt-signing-minimum-32-bytes",
		DefaultRole: "Professional",
	})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

// authHeader issues a token straight from the server's JWT service
func authHeader(t *testing.T, s *Server) string {
	token, err := s.jwtService.GenerateToken("test-client")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

// multipartResume builds a multipart body with a resume file and optional variant
func multipartResume(t *testing.T, filename, content, variant string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if variant != "" {
		if err := writer.WriteField("variant", variant); err != nil {
			t.Fatalf("failed to write variant field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

// TestMetricsEndpoint tests the /metrics endpoint is exposed
func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

// TestGenerateScript_Unauthorized tests that the endpoint requires a token
func TestGenerateScript_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", sampleResumeText, "")
	req := httptest.NewRequest(http.MethodPost, "/generate-script", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

// TestGenerateScript_Success runs the full pipeline on an uploaded resume
func TestGenerateScript_Success(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", sampleResumeText, "general")
	req := httptest.NewRequest(http.MethodPost, "/generate-script", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp.Profile == nil || resp.Profile.Name != "JORDAN SMITH" {
		t.Errorf("expected extracted profile name, got %+v", resp.Profile)
	}
	if !strings.Contains(resp.Script, "1. Introduction") {
		t.Error("expected generated script to contain the introduction section")
	}
	if resp.Industry == "" {
		t.Error("expected detected industry in response")
	}
}

// TestGenerateScript_MissingFile tests the multipart validation
func TestGenerateScript_MissingFile(t *testing.T) {
	s := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("variant", "general") //nolint:errcheck
	writer.Close()                          //nolint:errcheck

	req := httptest.NewRequest(http.MethodPost, "/generate-script", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", authHeader(t, s))
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestGenerateScript_UnsupportedFormat tests extension validation
func TestGenerateScript_UnsupportedFormat(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "resume.xlsx", "not a spreadsheet", "")
	req := httptest.NewRequest(http.MethodPost, "/generate-script", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected status 415, got %d", w.Code)
	}
}

// TestGenerateScript_UnknownVariant tests variant validation
func TestGenerateScript_UnknownVariant(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", sampleResumeText, "industry")
	req := httptest.NewRequest(http.MethodPost, "/generate-script", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestRunsEndpoints_NoDatabase tests run endpoints without persistence
func TestRunsEndpoints_NoDatabase(t *testing.T) {
	s := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/runs"},
		{http.MethodGet, "/runs/8b8f1cbb-5ea9-4f0c-9a3c-2a0a4d21a1ce"},
		{http.MethodGet, "/runs/8b8f1cbb-5ea9-4f0c-9a3c-2a0a4d21a1ce/script"},
		{http.MethodDelete, "/runs/8b8f1cbb-5ea9-4f0c-9a3c-2a0a4d21a1ce"},
	}

	for _, tt := range paths {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Authorization", authHeader(t, s))
		w := httptest.NewRecorder()

		s.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: expected status 503, got %d", tt.method, tt.path, w.Code)
		}
	}
}

// TestGetRunEndpoint_InvalidID tests /runs/{id} with an invalid UUID
func TestGetRunEndpoint_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	// Exercise the ID parser directly so requireDB does not short-circuit
	if _, ok := s.parseRunID(w, req); ok {
		t.Error("expected invalid UUID to be rejected")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestTokenEndpoint_Success tests credential verification and token issuance
func TestTokenEndpoint_Success(t *testing.T) {
	s := newTestServer(t)

	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwordConfig.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	t.Setenv("API_USERNAME", "operator")
	t.Setenv("API_PASSWORD_HASH", hash)

	body := `{"username": "operator", "password": "correct horse battery staple"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %q", resp.TokenType)
	}

	claims, err := s.jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Subject != "operator" {
		t.Errorf("expected subject 'operator', got %q", claims.Subject)
	}
}

// TestTokenEndpoint_WrongPassword tests credential rejection
func TestTokenEndpoint_WrongPassword(t *testing.T) {
	s := newTestServer(t)

	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwordConfig.HashPassword("the real password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	t.Setenv("API_USERNAME", "operator")
	t.Setenv("API_PASSWORD_HASH", hash)

	body := `{"username": "operator", "password": "a guess"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

// TestTokenEndpoint_NotConfigured tests behavior without credential env vars
func TestTokenEndpoint_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	t.Setenv("API_USERNAME", "")
	t.Setenv("API_PASSWORD_HASH", "")

	body := `{"username": "operator", "password": "anything"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}
}

// TestCORSMiddleware tests CORS headers are set
func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header Access-Control-Allow-Origin: *")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected CORS header Access-Control-Allow-Methods")
	}
}

// TestCORSMiddleware_OPTIONS tests OPTIONS preflight request
func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer(t)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for OPTIONS, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("OPTIONS response should have empty body")
	}
}

// TestLoggingMiddleware tests that logging middleware passes through
func TestLoggingMiddleware(t *testing.T) {
	s := newTestServer(t)

	called := false
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("logging middleware should call next handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

// TestSSEWriter tests SSE event writing
func TestSSEWriter(t *testing.T) {
	w := httptest.NewRecorder()

	sse, err := NewSSEWriter(w)
	if err != nil {
		t.Fatalf("failed to create SSE writer: %v", err)
	}

	event := map[string]string{"step": "test", "message": "hello"}
	if err := sse.WriteEvent("step", event); err != nil {
		t.Fatalf("failed to write event: %v", err)
	}

	if !bytes.Contains(w.Body.Bytes(), []byte("event: step")) {
		t.Error("expected 'event: step' in output")
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("data:")) {
		t.Error("expected 'data:' in output")
	}
}

// TestJSONResponse tests jsonResponse helper
func TestJSONResponse(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusOK, map[string]string{"key": "value"})

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("expected Content-Type: application/json")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["key"] != "value" {
		t.Errorf("expected key='value', got '%s'", resp["key"])
	}
}

// TestErrorResponse tests errorResponse helper
func TestErrorResponse(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusBadRequest, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["error"] != "test error" {
		t.Errorf("expected error='test error', got '%s'", resp["error"])
	}
}
