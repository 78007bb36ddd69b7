package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	settingsdomain "github.com/billcraft/billcraft/internal/settings/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsService struct {
	settings    settingsdomain.Settings
	getErr      error
	updateErr   error
	updateCalls int
	lastReq     settingsdomain.UpdateSettingsRequest
}

func (f *fakeSettingsService) Get(ctx context.Context) (settingsdomain.Settings, error) {
	_ = ctx
	return f.settings, f.getErr
}

func (f *fakeSettingsService) Update(ctx context.Context, req settingsdomain.UpdateSettingsRequest) (settingsdomain.Settings, error) {
	_ = ctx
	f.updateCalls++
	f.lastReq = req
	if f.updateErr != nil {
		return settingsdomain.Settings{}, f.updateErr
	}
	return f.settings, nil
}

func newSettingsRouter(svc *fakeSettingsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{settingsSvc: svc}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/api/settings", srv.GetSettings)
	router.POST("/api/settings", srv.UpdateSettings)
	return router
}

func TestGetSettings(t *testing.T) {
	svc := &fakeSettingsService{settings: settingsdomain.Settings{
		ID:    1,
		Name:  "Acme",
		Email: "a@x.com",
		UPIID: "acme@upi",
	}}
	router := newSettingsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var got settingsdomain.Settings
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "acme@upi", got.UPIID)
}

func TestGetSettings_MissingSingletonIs404(t *testing.T) {
	router := newSettingsRouter(&fakeSettingsService{getErr: settingsdomain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Type)
}

func TestUpdateSettings(t *testing.T) {
	svc := &fakeSettingsService{}
	router := newSettingsRouter(svc)

	payload := `{"yourName": "Acme", "upiId": "acme@upi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/settings", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Settings saved!", body["message"])

	require.Equal(t, 1, svc.updateCalls)
	require.NotNil(t, svc.lastReq.Name)
	assert.Equal(t, "Acme", *svc.lastReq.Name)
	require.NotNil(t, svc.lastReq.UPIID)
	assert.Equal(t, "acme@upi", *svc.lastReq.UPIID)
	// Omitted fields arrive unset so the service keeps prior values.
	assert.Nil(t, svc.lastReq.Email)
	assert.Nil(t, svc.lastReq.Address)
}

func TestUpdateSettings_MalformedBodyIs400(t *testing.T) {
	svc := &fakeSettingsService{}
	router := newSettingsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/settings", bytes.NewBufferString(`{"yourName"`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, svc.updateCalls)
}
