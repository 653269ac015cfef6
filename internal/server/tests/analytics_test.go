package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/bookhaven/server/internal/analytics"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/server"
	"github.com/bookhaven/server/internal/server/mocks"
)

func TestServer_trackEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	tracker := analytics.New(prometheus.NewRegistry())
	s := &server.Server{Storage: mockStorage, Tracker: tracker}

	t.Run("event is stored and counted", func(t *testing.T) {
		mockStorage.EXPECT().
			SaveEvent(models.Event{Name: "add_to_cart", Label: "1984"}).
			Return(nil)

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/analytics/events", `{"name":"add_to_cart","label":"1984"}`, testUID)

		s.TrackEvent(ctx)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("storage failure still acknowledges", func(t *testing.T) {
		mockStorage.EXPECT().
			SaveEvent(models.Event{Name: "page_view"}).
			Return(errors.New("db down"))

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/analytics/events", `{"name":"page_view"}`, testUID)

		s.TrackEvent(ctx)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("name is mandatory", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/analytics/events", `{"label":"orphan"}`, testUID)

		s.TrackEvent(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_analyticsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := &server.Server{Storage: mockStorage}

	mockStorage.EXPECT().GetAnalyticsSummary().Return(models.AnalyticsSummary{
		Orders:  3,
		Revenue: 53.94,
		Users:   2,
		Events:  map[string]int64{"add_to_cart": 7},
		Top:     []models.TitleCount{{Title: "1984", Sold: 4}},
	}, nil)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	s.AnalyticsSummary(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"revenue":53.94`)
	assert.Contains(t, w.Body.String(), "add_to_cart")
}
