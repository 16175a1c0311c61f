package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/padhoai/backend/internal/middleware"
	"github.com/padhoai/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDevice = "device-1"

// mockAuthService is a mock implementation of AuthService
type mockAuthService struct {
	profile    *models.UserProfile
	err        error
	lastDevice string
	lastLogin  *models.LoginRequest
	lastSignup *models.SignupRequest
}

func (m *mockAuthService) Login(ctx context.Context, deviceID string, req *models.LoginRequest) (*models.UserProfile, error) {
	m.lastDevice, m.lastLogin = deviceID, req
	return m.profile, m.err
}

func (m *mockAuthService) Signup(ctx context.Context, deviceID string, req *models.SignupRequest) (*models.UserProfile, error) {
	m.lastDevice, m.lastSignup = deviceID, req
	return m.profile, m.err
}

func (m *mockAuthService) Logout(ctx context.Context, deviceID string) error {
	m.lastDevice = deviceID
	return m.err
}

func (m *mockAuthService) Profile(ctx context.Context, deviceID string) (*models.UserProfile, error) {
	m.lastDevice = deviceID
	return m.profile, m.err
}

// mockViewService is a mock implementation of ViewService
type mockViewService struct {
	resp       *models.ViewResponse
	err        error
	lastCall   string
	lastTarget models.ViewState
}

func (m *mockViewService) Boot(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	m.lastCall = "boot"
	return m.resp, m.err
}

func (m *mockViewService) Current(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	m.lastCall = "current"
	return m.resp, m.err
}

func (m *mockViewService) Navigate(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error) {
	m.lastCall, m.lastTarget = "navigate", target
	return m.resp, m.err
}

func (m *mockViewService) Back(ctx context.Context, deviceID string) (*models.ViewResponse, error) {
	m.lastCall = "back"
	return m.resp, m.err
}

func (m *mockViewService) SwitchForm(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error) {
	m.lastCall, m.lastTarget = "switch", target
	return m.resp, m.err
}

// mockDashboardService is a mock implementation of DashboardService
type mockDashboardService struct {
	summary *models.DashboardSummary
	err     error
}

func (m *mockDashboardService) Summary(ctx context.Context, deviceID string) (*models.DashboardSummary, error) {
	return m.summary, m.err
}

// mockTutorService is a mock implementation of TutorService
type mockTutorService struct {
	messages      []models.ChatMessage
	sendResp      *models.SendMessageResponse
	speech        *models.SpeechResponse
	err           error
	lastMessageID string
}

func (m *mockTutorService) History(ctx context.Context, deviceID string) ([]models.ChatMessage, error) {
	return m.messages, m.err
}

func (m *mockTutorService) Send(ctx context.Context, deviceID string, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	return m.sendResp, m.err
}

func (m *mockTutorService) Suggestions() []string {
	return []string{"Explain photosynthesis", "Help with algebra"}
}

func (m *mockTutorService) Speech(ctx context.Context, deviceID, messageID string) (*models.SpeechResponse, error) {
	m.lastMessageID = messageID
	return m.speech, m.err
}

type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// serve routes a request through a fresh router, with the device already resolved unless withDevice is false
func serve(h routeRegistrar, method, path, body string, withDevice bool) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if withDevice {
		req = req.WithContext(middleware.WithDeviceID(req.Context(), testDevice))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestBaseHandler_RespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{name: "required fields", err: models.ErrRequiredFields, expectedStatus: http.StatusBadRequest, expectedError: "please fill in all fields"},
		{name: "invalid language", err: fmt.Errorf("%w: Klingon", models.ErrInvalidLanguage), expectedStatus: http.StatusBadRequest, expectedError: "invalid language: Klingon"},
		{name: "invalid level", err: models.ErrInvalidLevel, expectedStatus: http.StatusBadRequest, expectedError: "invalid level"},
		{name: "invalid age", err: models.ErrInvalidAge, expectedStatus: http.StatusBadRequest, expectedError: "invalid age"},
		{name: "invalid view", err: models.ErrInvalidView, expectedStatus: http.StatusBadRequest, expectedError: "invalid view"},
		{name: "empty message", err: models.ErrEmptyMessage, expectedStatus: http.StatusBadRequest, expectedError: "message is empty"},
		{name: "profile not found", err: models.ErrProfileNotFound, expectedStatus: http.StatusNotFound, expectedError: "profile not found"},
		{name: "message not found", err: models.ErrMessageNotFound, expectedStatus: http.StatusNotFound, expectedError: "message not found"},
		{name: "invalid transition", err: fmt.Errorf("%w: back on dashboard", models.ErrInvalidTransition), expectedStatus: http.StatusConflict, expectedError: "invalid view transition: back on dashboard"},
		{name: "chat closed", err: models.ErrChatClosed, expectedStatus: http.StatusConflict, expectedError: "chat is not open"},
		{name: "speech unsupported", err: models.ErrSpeechUnsupported, expectedStatus: http.StatusNotImplemented, expectedError: "speech is not supported"},
		{name: "cancelled", err: context.Canceled, expectedStatus: http.StatusRequestTimeout, expectedError: "request cancelled"},
		{name: "storage failure", err: fmt.Errorf("failed to save profile: %w", assert.AnError), expectedStatus: http.StatusInternalServerError, expectedError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{Logger: zap.NewNop()}
			w := httptest.NewRecorder()

			h.RespondServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedError, errorMessage(t, w))
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	profile := &models.UserProfile{ID: "1", Name: "Student User", Email: "a@b.c", Language: models.LanguageEnglish, Level: models.LevelIntermediate, CompletedLessons: []string{}}

	tests := []struct {
		name           string
		body           string
		withDevice     bool
		service        *mockAuthService
		expectedStatus int
	}{
		{name: "success", body: `{"email":"a@b.c","password":"x"}`, withDevice: true, service: &mockAuthService{profile: profile}, expectedStatus: http.StatusOK},
		{name: "missing fields", body: `{"email":""}`, withDevice: true, service: &mockAuthService{err: models.ErrRequiredFields}, expectedStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{"email":`, withDevice: true, service: &mockAuthService{}, expectedStatus: http.StatusBadRequest},
		{name: "wrong view", body: `{"email":"a@b.c","password":"x"}`, withDevice: true, service: &mockAuthService{err: models.ErrInvalidTransition}, expectedStatus: http.StatusConflict},
		{name: "no device", body: `{"email":"a@b.c","password":"x"}`, withDevice: false, service: &mockAuthService{}, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tt.service, zap.NewNop())

			w := serve(h, http.MethodPost, "/auth/login", tt.body, tt.withDevice)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got models.UserProfile
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *profile, got)
				assert.Equal(t, testDevice, tt.service.lastDevice)
				assert.Equal(t, "a@b.c", tt.service.lastLogin.Email)
			}
		})
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	age := 14
	profile := &models.UserProfile{ID: "1709289000123", Name: "Asha", Language: models.LanguagePunjabi, Level: models.LevelAdvanced, Age: &age, CompletedLessons: []string{}, Badges: []string{}}

	t.Run("success", func(t *testing.T) {
		svc := &mockAuthService{profile: profile}
		h := NewAuthHandler(svc, zap.NewNop())

		w := serve(h, http.MethodPost, "/auth/signup", `{"name":"Asha","email":"asha@padho.ai","password":"x","age":"14","language":"Punjabi","level":"Advanced"}`, true)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Punjabi", svc.lastSignup.Language)
		assert.Equal(t, "14", svc.lastSignup.Age)
		assert.Contains(t, w.Body.String(), `"badges":[]`)
	})

	t.Run("invalid language", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{err: fmt.Errorf("%w: Klingon", models.ErrInvalidLanguage)}, zap.NewNop())

		w := serve(h, http.MethodPost, "/auth/signup", `{"language":"Klingon"}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid language: Klingon", errorMessage(t, w))
	})
}

func TestAuthHandler_LogoutAndProfile(t *testing.T) {
	t.Run("logout", func(t *testing.T) {
		svc := &mockAuthService{}
		w := serve(NewAuthHandler(svc, zap.NewNop()), http.MethodPost, "/auth/logout", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"view":"login","comingSoon":false,"hasProfile":false}`, w.Body.String())
		assert.Equal(t, testDevice, svc.lastDevice)
	})

	t.Run("logout storage failure", func(t *testing.T) {
		w := serve(NewAuthHandler(&mockAuthService{err: assert.AnError}, zap.NewNop()), http.MethodPost, "/auth/logout", "", true)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("profile", func(t *testing.T) {
		svc := &mockAuthService{profile: &models.UserProfile{ID: "1", Name: "Student User", CompletedLessons: []string{}}}
		w := serve(NewAuthHandler(svc, zap.NewNop()), http.MethodGet, "/profile", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Student User"`)
	})

	t.Run("profile missing", func(t *testing.T) {
		w := serve(NewAuthHandler(&mockAuthService{err: models.ErrProfileNotFound}, zap.NewNop()), http.MethodGet, "/profile", "", true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestViewHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		service        *mockViewService
		expectedStatus int
		expectedCall   string
		expectedTarget models.ViewState
	}{
		{name: "current", method: http.MethodGet, path: "/view", service: &mockViewService{resp: &models.ViewResponse{View: models.ViewLogin}}, expectedStatus: http.StatusOK, expectedCall: "current"},
		{name: "boot", method: http.MethodPost, path: "/view/boot", service: &mockViewService{resp: &models.ViewResponse{View: models.ViewDashboard, HasProfile: true}}, expectedStatus: http.StatusOK, expectedCall: "boot"},
		{name: "navigate", method: http.MethodPost, path: "/view/navigate", body: `{"target":"quiz"}`, service: &mockViewService{resp: &models.ViewResponse{View: models.ViewQuiz, ComingSoon: true}}, expectedStatus: http.StatusOK, expectedCall: "navigate", expectedTarget: models.ViewQuiz},
		{name: "navigate rejected", method: http.MethodPost, path: "/view/navigate", body: `{"target":"chat"}`, service: &mockViewService{err: models.ErrInvalidTransition}, expectedStatus: http.StatusConflict, expectedCall: "navigate", expectedTarget: models.ViewChat},
		{name: "navigate unknown view", method: http.MethodPost, path: "/view/navigate", body: `{"target":"arcade"}`, service: &mockViewService{err: models.ErrInvalidView}, expectedStatus: http.StatusBadRequest, expectedCall: "navigate", expectedTarget: "arcade"},
		{name: "back", method: http.MethodPost, path: "/view/back", service: &mockViewService{resp: &models.ViewResponse{View: models.ViewDashboard}}, expectedStatus: http.StatusOK, expectedCall: "back"},
		{name: "switch", method: http.MethodPost, path: "/view/switch", body: `{"target":"signup"}`, service: &mockViewService{resp: &models.ViewResponse{View: models.ViewSignup}}, expectedStatus: http.StatusOK, expectedCall: "switch", expectedTarget: models.ViewSignup},
		{name: "switch malformed", method: http.MethodPost, path: "/view/switch", body: `[`, service: &mockViewService{}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewViewHandler(tt.service, zap.NewNop()), tt.method, tt.path, tt.body, true)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCall, tt.service.lastCall)
			assert.Equal(t, tt.expectedTarget, tt.service.lastTarget)
			if tt.expectedStatus == http.StatusOK {
				var got models.ViewResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.service.resp, got)
			}
		})
	}
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		summary := &models.DashboardSummary{
			User:  &models.UserProfile{ID: "1", Name: "Asha", CompletedLessons: []string{"a"}},
			Stats: models.DashboardStats{LessonsCompleted: 1, StudyTime: "2.5h", Rank: "#42"},
		}
		w := serve(NewDashboardHandler(&mockDashboardService{summary: summary}, zap.NewNop()), http.MethodGet, "/dashboard", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"lessonsCompleted":1`)
		assert.Contains(t, w.Body.String(), `"rank":"#42"`)
	})

	t.Run("no profile", func(t *testing.T) {
		w := serve(NewDashboardHandler(&mockDashboardService{err: models.ErrProfileNotFound}, zap.NewNop()), http.MethodGet, "/dashboard", "", true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTutorHandler(t *testing.T) {
	t.Run("history", func(t *testing.T) {
		svc := &mockTutorService{messages: []models.ChatMessage{{ID: "m1", Content: "Hello", Sender: models.SenderAI}}}
		w := serve(NewTutorHandler(svc, zap.NewNop()), http.MethodGet, "/tutor/messages", "", true)

		require.Equal(t, http.StatusOK, w.Code)
		var got []models.ChatMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("history outside chat", func(t *testing.T) {
		w := serve(NewTutorHandler(&mockTutorService{err: models.ErrChatClosed}, zap.NewNop()), http.MethodGet, "/tutor/messages", "", true)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("send", func(t *testing.T) {
		svc := &mockTutorService{sendResp: &models.SendMessageResponse{
			Question: models.ChatMessage{ID: "q", Content: "Python basics", Sender: models.SenderUser},
			Answer:   models.ChatMessage{ID: "a", Content: "Excellent!", Sender: models.SenderAI},
		}}
		w := serve(NewTutorHandler(svc, zap.NewNop()), http.MethodPost, "/tutor/messages", `{"content":"Python basics"}`, true)

		require.Equal(t, http.StatusOK, w.Code)
		var got models.SendMessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "a", got.Answer.ID)
	})

	t.Run("send blank", func(t *testing.T) {
		w := serve(NewTutorHandler(&mockTutorService{err: models.ErrEmptyMessage}, zap.NewNop()), http.MethodPost, "/tutor/messages", `{"content":"  "}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("suggestions", func(t *testing.T) {
		w := serve(NewTutorHandler(&mockTutorService{}, zap.NewNop()), http.MethodGet, "/tutor/suggestions", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Explain photosynthesis","Help with algebra"]`, w.Body.String())
	})

	t.Run("speech", func(t *testing.T) {
		svc := &mockTutorService{speech: &models.SpeechResponse{MessageID: "a", AudioURL: "https://tts.example/a.mp3"}}
		w := serve(NewTutorHandler(svc, zap.NewNop()), http.MethodGet, "/tutor/messages/a/speech", "", true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a", svc.lastMessageID)
		assert.JSONEq(t, `{"messageId":"a","audioUrl":"https://tts.example/a.mp3"}`, w.Body.String())
	})

	t.Run("speech disabled", func(t *testing.T) {
		w := serve(NewTutorHandler(&mockTutorService{err: models.ErrSpeechUnsupported}, zap.NewNop()), http.MethodGet, "/tutor/messages/a/speech", "", true)

		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}
