package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/wildfire_console/internal/config"
	"github.com/shenikar/wildfire_console/internal/mapview"
	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/service"
	"github.com/shenikar/wildfire_console/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockConsoleService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockConsoleService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{OperatorName: "Test Operator"}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func notFound(what string) error {
	return fmt.Errorf("service: could not get %s: %w", what, service.ErrNotFound)
}

func TestListAlerts_WithFilter(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alerts := []models.Alert{{ID: "alert-001", Status: models.AlertNew, Severity: models.SeverityCritical}}

	mockService.EXPECT().
		ListAlerts(gomock.Any(), service.AlertFilter{Status: models.AlertNew, Severity: models.SeverityCritical}).
		Return(alerts, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts?status=new&severity=critical", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alert-001", resp[0].ID)
}

func TestGetAlert_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetAlert(gomock.Any(), "alert-404").Return(nil, notFound("alert")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alert-404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestAcknowledgeAlert_NoContent(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), "alert-001").Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-001/acknowledge", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDismissAlert_OptionalBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DismissAlert(gomock.Any(), "alert-004", "").Return(nil).Times(1)
	mockService.EXPECT().DismissAlert(gomock.Any(), "alert-005", "controlled burn").Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-004/dismiss", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-005/dismiss", jsonBody(t, DismissAlertRequest{Reason: "controlled burn"}))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEscalateAlert_Created(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().EscalateAlert(gomock.Any(), "alert-001").Return("incident-k3j9x2-a1b2", nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-001/escalate", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "incident-k3j9x2-a1b2", resp.ID)
}

func TestLinkAlert_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().LinkAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-001/link", jsonBody(t, LinkAlertRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), "Zaca Ridge", models.PriorityHigh).Return("incident-new", nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Name: "Zaca Ridge", Priority: "high"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "incident-new")
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Name: "Zaca", Priority: "urgent"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncidentStatus(gomock.Any(), "incident-001", models.IncidentContained).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/incident-001/status", jsonBody(t, UpdateIncidentStatusRequest{Status: "contained"}))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRunPrediction_IncidentNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RunPrediction(gomock.Any(), "incident-404").Return("", notFound("incident")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/incident-404/predictions", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetImpactSummary(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	summary := &models.ImpactSummary{RunID: "run-001", AssetsAtRiskCount: 40}

	mockService.EXPECT().ImpactSummary(gomock.Any()).Return(summary, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/predictions/impact", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"run_id":"run-001"`)
}

func TestStartMission_Conflict(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		StartMission(gomock.Any(), "mission-002").
		Return(fmt.Errorf("service: could not start mission: %w", service.ErrInvalidTransition)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/missions/mission-002/start", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateMission_DefaultType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateMission(gomock.Any(), "drone-01", models.MissionType("")).Return("mission-new", nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/missions", jsonBody(t, CreateMissionRequest{DroneID: "drone-01"}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddUser_InvalidEmail(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/users", jsonBody(t, AddUserRequest{Name: "Ana", Email: "not-an-email", Role: "viewer"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddUser_Conflict(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AddUser(gomock.Any(), "Ana", "ana@example.org", models.RoleViewer).
		Return("", fmt.Errorf("service: could not add user: %w", service.ErrConflict)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/users", jsonBody(t, AddUserRequest{Name: "Ana", Email: "ana@example.org", Role: "viewer"}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGenerateAPIKey_Attachment(t *testing.T) {
	// Подготовка
	_, mockService, router := newTestHandler(t)
	export := &service.SecretExport{ID: "key-abc123-zz01", Secret: "wfk_deadbeef"}

	// Ожидания
	mockService.EXPECT().GenerateAPIKey(gomock.Any(), "Dispatch").Return(export, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/admin/api-keys", jsonBody(t, GenerateAPIKeyRequest{Label: "Dispatch"}))

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "attachment; filename=api-key-key-abc123-zz01.json", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	var resp service.SecretExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, *export, resp)
}

func TestRevokeAPIKey_AlreadyRevoked(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RevokeAPIKey(gomock.Any(), "key-001").Return(service.ErrInvalidTransition).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/api-keys/key-001/revoke", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetAuditLog_Limit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AuditLog(gomock.Any(), 5).Return([]models.AuditLogEntry{{ID: "audit-003"}}, nil).Times(1)
	mockService.EXPECT().AuditLog(gomock.Any(), defaultAuditLimit).Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/audit?limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/admin/audit", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/admin/audit?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetRetention_PassesRawValue(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SetRetentionDays(gomock.Any(), 0).
		Return(models.SystemSettings{DataRetentionDays: 1}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/admin/settings/retention", bytes.NewBufferString(`{"days": 0}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data_retention_days":1`)
}

func TestSetRetention_MissingDays(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetRetentionDays(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/admin/settings/retention", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPanel_Close(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetPanelOpen(gomock.Any(), false).Return(mapview.Snapshot{ContainerWidth: 1440}, nil).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/map/panel", bytes.NewBufferString(`{"open": false}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"container_width":1440`)
}

func TestResizeWindow_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResizeWindow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/map/window", jsonBody(t, WindowRequest{Width: -5, Height: 600}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetCamera_OutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetCamera(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/map/camera", jsonBody(t, CameraRequest{Lat: 120, Lng: 10, Zoom: 5}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInternalError_IsHidden(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListStations(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stations", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), "client error")
}
