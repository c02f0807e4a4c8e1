package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/services/users/mocks"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{
		"email": "jane@example.com",
		"password": "hunter2hunter2",
		"full_name": "Jane Doe"
	}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r *models.RegisterRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "jane@example.com", r.Email)
			assert.Equal(t, "Jane Doe", r.FullName)
			return &models.AuthResponse{
				Token:     "signed-token",
				ExpiresAt: 1700000000,
				User:      &models.User{ID: userID, Email: r.Email, Role: models.RoleRider},
			}, nil
		})

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter2hunter2","full_name":"Jane"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Conflict("Email already registered"))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Email already registered", response["error"])
}

func TestLogin_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Unauthorized("Invalid email or password"))

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter2hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "signed-token", User: &models.User{ID: uuid.New()}}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
