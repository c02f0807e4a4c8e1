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

func TestGetMe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)
	c.Set("role", models.RoleRider)

	mockUserUC.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "jane@example.com"}, nil)

	err := userHandler.GetMe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
}

func TestGetMe_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := userHandler.GetMe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateMe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/users/me",
		strings.NewReader(`{"full_name":"Jane Q. Doe","phone":"+8801712345678"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)

	mockUserUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, r *models.UpdateProfileRequest) (*models.User, error) {
			assert.Equal(t, "Jane Q. Doe", r.FullName)
			return &models.User{ID: userID, FullName: r.FullName, Phone: r.Phone}, nil
		})

	err := userHandler.UpdateMe(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetBlocked_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/not-a-uuid/block",
		strings.NewReader(`{"blocked":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := userHandler.SetBlocked(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetBlocked_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+userID.String()+"/block",
		strings.NewReader(`{"blocked":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	mockUserUC.EXPECT().
		SetBlocked(gomock.Any(), userID, true).
		Return(nil, apperr.NotFound("User not found"))

	err := userHandler.SetBlocked(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
