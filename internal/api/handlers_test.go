package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voicesketch/internal/ai"
	"voicesketch/internal/mockup"
	"voicesketch/internal/speech"
)

type fakeRemote struct {
	prompts []string
	keys    []string
	models  []string
}

func (f *fakeRemote) Generate(_ context.Context, prompt, apiKey string) (string, string) {
	f.prompts = append(f.prompts, prompt)
	f.keys = append(f.keys, apiKey)
	if apiKey == "" {
		return mockup.ErrorDocument("Missing API Key", "no key", ""), mockup.ErrorLabel
	}
	return mockup.Wrap("<div>remote</div>"), "GenAI (fake-model)"
}

func (f *fakeRemote) AvailableModels(_ context.Context, apiKey string) ([]string, error) {
	if apiKey == "" {
		return nil, ai.ErrMissingAPIKey
	}
	return f.models, nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ string, audio io.Reader) (string, error) {
	f.calls++
	if audio == nil {
		return "", speech.ErrDeviceUnavailable
	}
	return f.text, f.err
}

func newTestRouter(t *testing.T, remote *fakeRemote, tr speech.Transcriber, defaultKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(t)
	h := NewAPIHandler(mockup.NewLocalGenerator(log), remote, tr, "local", defaultKey, log)
	router := gin.New()
	RegisterRoutes(router, h)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postAudio(t *testing.T, router *gin.Engine, path string, fields map[string]string, withFile bool) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withFile {
		fw, err := mw.CreateFormFile("audio", "clip.wav")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("fake audio"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGenerateMockup_Local(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	w := postJSON(router, "/mockup/generate", `{"prompt":"Create a purple login screen"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[GenerateResponse](t, w)
	assert.Equal(t, "Login", resp.Label)
	assert.Equal(t, "local", resp.Mode)
	assert.NotEmpty(t, resp.MockupID)
	assert.Contains(t, resp.HTML, "purple")
}

func TestGenerateMockup_EmptyPromptIsValid(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	w := postJSON(router, "/mockup/generate", `{"prompt":""}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Generic", decode[GenerateResponse](t, w).Label)
}

func TestGenerateMockup_RemoteUsesDefaultKey(t *testing.T) {
	remote := &fakeRemote{}
	router := newTestRouter(t, remote, &fakeTranscriber{}, "server-key")

	w := postJSON(router, "/mockup/generate", `{"prompt":"a hero","mode":"remote"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "GenAI (fake-model)", decode[GenerateResponse](t, w).Label)

	w = postJSON(router, "/mockup/generate", `{"prompt":"a hero","mode":"remote","apiKey":"user-key"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, []string{"server-key", "user-key"}, remote.keys)
}

func TestGenerateMockup_RemoteWithoutKeyIsErrorDocument(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	w := postJSON(router, "/mockup/generate", `{"prompt":"a hero","mode":"remote"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[GenerateResponse](t, w)
	assert.Equal(t, mockup.ErrorLabel, resp.Label)
	assert.Contains(t, resp.HTML, "Missing API Key")
}

func TestGenerateMockup_BadRequests(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	for _, body := range []string{``, `{not json`, `{"prompt":"x","mode":"cloud"}`} {
		w := postJSON(router, "/mockup/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestPreviewMockup(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	w := postJSON(router, "/mockup/preview", `{"prompt":"analytics dashboard in green"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "Dashboard", w.Header().Get("X-Mockup-Label"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, w.Body.String(), "bg-green-700")
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name     string
		tr       *fakeTranscriber
		withFile bool
		status   int
	}{
		{name: "ok", tr: &fakeTranscriber{text: "a login page"}, withFile: true, status: http.StatusOK},
		{name: "missing upload", tr: &fakeTranscriber{text: "x"}, withFile: false, status: http.StatusBadRequest},
		{name: "no speech", tr: &fakeTranscriber{err: speech.ErrNoSpeech}, withFile: true, status: http.StatusUnprocessableEntity},
		{name: "unintelligible", tr: &fakeTranscriber{err: speech.ErrUnintelligible}, withFile: true, status: http.StatusUnprocessableEntity},
		{name: "service down", tr: &fakeTranscriber{err: speech.ErrServiceUnavailable}, withFile: true, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &fakeRemote{}, tt.tr, "")

			w := postAudio(t, router, "/mockup/transcribe", nil, tt.withFile)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.tr.text, decode[TranscribeResponse](t, w).Text)
			}
		})
	}
}

func TestVoiceMockup(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{text: "my orange profile"}, "")

	w := postAudio(t, router, "/mockup/voice", map[string]string{"mode": "local"}, true)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[GenerateResponse](t, w)
	assert.Equal(t, "my orange profile", resp.Transcript)
	assert.Equal(t, "Profile", resp.Label)
	assert.Contains(t, resp.HTML, "bg-orange-600")
}

func TestVoiceMockup_InvalidMode(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{text: "x"}, "")

	w := postAudio(t, router, "/mockup/voice", map[string]string{"mode": "cloud"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoiceMockup_RemoteWithoutKeySkipsTranscription(t *testing.T) {
	remote := &fakeRemote{}
	tr := &fakeTranscriber{text: "a pricing table"}
	router := newTestRouter(t, remote, tr, "")

	w := postAudio(t, router, "/mockup/voice", map[string]string{"mode": "remote", "apiKey": "  "}, true)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[GenerateResponse](t, w)
	assert.Equal(t, mockup.ErrorLabel, resp.Label)
	assert.Contains(t, resp.HTML, "Missing API Key")
	assert.Empty(t, resp.Transcript)
	assert.Zero(t, tr.calls)
}

func TestVoiceMockup_RemoteWithKeyTranscribes(t *testing.T) {
	remote := &fakeRemote{}
	tr := &fakeTranscriber{text: "a pricing table"}
	router := newTestRouter(t, remote, tr, "server-key")

	w := postAudio(t, router, "/mockup/voice", map[string]string{"mode": "remote"}, true)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "GenAI (fake-model)", decode[GenerateResponse](t, w).Label)
	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, []string{"a pricing table"}, remote.prompts)
}

func TestListModels(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{models: []string{"models/gemini-2.5-flash"}}, &fakeTranscriber{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	req.Header.Set("X-API-Key", "k")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"models/gemini-2.5-flash"}, decode[ModelsResponse](t, w).Models)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{}, &fakeTranscriber{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	postJSON(router, "/mockup/generate", `{"prompt":"stats"}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mockup_generations_total")
}

func TestListModels_KeyNeverReadFromQueryOrLogged(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logBuf bytes.Buffer
	remote := &fakeRemote{models: []string{"models/gemini-2.0-flash"}}
	h := NewAPIHandler(mockup.NewLocalGenerator(nil), remote, &fakeTranscriber{}, "local", "", nil)
	router := gin.New()
	router.Use(AccessLogger(&logBuf))
	RegisterRoutes(router, h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models?apiKey=SECRET-KEY-123", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, logBuf.String(), `"/models"`)
	assert.NotContains(t, logBuf.String(), "SECRET-KEY-123")

	logBuf.Reset()
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	req.Header.Set("X-API-Key", "SECRET-KEY-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, logBuf.String(), "SECRET-KEY-123")
}
