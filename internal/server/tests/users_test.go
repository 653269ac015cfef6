package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/server"
	"github.com/bookhaven/server/internal/server/mocks"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

func setupUserRouter(s *server.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", s.Register)
	r.POST("/login", s.Login)
	return r
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().
		SaveUser(gomock.Any()).
		Return("some_id", nil).
		Times(1)

	body := `{"name":"Test Reader","email":"reader@example.com","pass":"password123"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Authorization"))
}

func TestRegister_BadRequest(t *testing.T) {
	s := server.New(testConfig(), nil, nil, nil)

	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`invalid json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "incorrectly entered data", w.Body.String())
}

func TestRegister_ShortPassword(t *testing.T) {
	s := server.New(testConfig(), nil, nil, nil)

	body := `{"email":"reader@example.com","pass":"short"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().SaveUser(gomock.Any()).Return("", storerrros.ErrUserExists)

	body := `{"email":"exists@example.com","pass":"password123"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", w.Body.String())
}

func TestRegister_AdminKeyPromotesRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().
		SaveUser(gomock.Any()).
		DoAndReturn(func(u models.User) (string, error) {
			assert.Equal(t, "admin", u.Role)
			return "admin_id", nil
		})

	body := `{"email":"boss@example.com","pass":"password123","adminKey":"test-admin-key"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().ValidUser("test@example.com", "password123").Return("user-uuid-1", nil)
	mockStorage.EXPECT().GetUser("user-uuid-1").Return(models.User{
		UID:    "user-uuid-1",
		Email:  "test@example.com",
		Role:   "user",
		CartID: "cart-uuid",
	}, nil)

	body := `{"email":"test@example.com","pass":"password123"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().ValidUser("test@example.com", "bad-password").Return("", storerrros.ErrInvalidPassword)

	body := `{"email":"test@example.com","pass":"bad-password"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().ValidUser("nobody@example.com", "password123").Return("", storerrros.ErrUserNotFound)

	body := `{"email":"nobody@example.com","pass":"password123"}`
	router := setupUserRouter(s)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := &server.Server{Storage: mockStorage}

	t.Run("password never leaves the server", func(t *testing.T) {
		mockStorage.EXPECT().GetUser(testUID).Return(models.User{
			UID:   testUID,
			Name:  "Test Reader",
			Email: "reader@example.com",
			Pass:  "$2a$10$secret-hash",
		}, nil)

		w := httptest.NewRecorder()
		ctx := getCtx(w, testUID)

		s.Profile(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "reader@example.com")
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("unknown user", func(t *testing.T) {
		mockStorage.EXPECT().GetUser(testUID).Return(models.User{}, storerrros.ErrUserNotFound)

		w := httptest.NewRecorder()
		ctx := getCtx(w, testUID)

		s.Profile(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := server.New(testConfig(), mockStorage, nil, nil)

	mockStorage.EXPECT().
		UpdateUser(models.User{
			UID:           testUID,
			Name:          "Renamed Reader",
			Email:         "reader@example.com",
			Address:       "1 Library Way",
			PaymentMethod: "visa",
		}).
		Return(nil)

	body := `{"name":"Renamed Reader","email":"reader@example.com","address":"1 Library Way","payment_method":"visa"}`
	w := httptest.NewRecorder()
	ctx := jsonCtx(w, http.MethodPut, "/users/profile", body, testUID)

	s.UpdateProfile(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
}
