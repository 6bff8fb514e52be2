// internal/handlers/catalog_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
	"github.com/freshsaver/freshsaver-be/internal/handlers"
	"github.com/freshsaver/freshsaver-be/test/helpers"
	"github.com/freshsaver/freshsaver-be/test/mocks"
)

func TestCatalogHandler_Browse(t *testing.T) {
	items := domain.NewItemViews(helpers.CreateTestInventoryItems(4), helpers.Today())

	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:  "lists_visible_deals",
			query: "",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Browse(gomock.Any(), ports.ItemCriteria{}).
					Return(&ports.CatalogData{
						Items:      items,
						Categories: []string{"bakery", "dairy", "produce"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.CatalogData
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Len(t, response.Items, 4)
				assert.Len(t, response.Categories, 3)
			},
		},
		{
			name:  "forwards_filter_criteria",
			query: "?category=bakery&search=loaf",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Browse(gomock.Any(), ports.ItemCriteria{Search: "loaf", Category: "bakery"}).
					Return(&ports.CatalogData{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "service_error",
			query: "",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Browse(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockCatalogService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewCatalogHandler(mockService, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/deals"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Browse(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestCatalogHandler_Detail(t *testing.T) {
	item := domain.NewItemView(*helpers.CreateTestInventoryItem(func(i *domain.InventoryItem) {
		i.ID = 5
	}), helpers.Today())
	recommended := domain.NewItemViews(helpers.CreateTestInventoryItems(4), helpers.Today())

	tests := []struct {
		name           string
		dealID         string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:   "returns_deal_with_recommendations",
			dealID: "5",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Detail(gomock.Any(), int64(5)).
					Return(&ports.ProductDetail{
						Item:        item,
						Recommended: recommended,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.ProductDetail
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, int64(5), response.Item.ID)
				assert.Len(t, response.Recommended, 4)
			},
		},
		{
			// Hidden and unknown ids are indistinguishable to the public.
			name:   "hidden_deal_reports_not_found",
			dealID: "99",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Detail(gomock.Any(), int64(99)).
					Return(nil, ports.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non_numeric_id",
			dealID:         "not-a-number",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "service_error",
			dealID: "5",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Detail(gomock.Any(), int64(5)).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockCatalogService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewCatalogHandler(mockService, logger)

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/deals/"+tt.dealID, nil)
			req.SetPathValue("id", tt.dealID)
			w := httptest.NewRecorder()

			handler.Detail(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockContactService)
		expectedStatus int
	}{
		{
			name: "accepts_complete_submission",
			requestBody: domain.ContactMessage{
				Name:    "Alice",
				Email:   "alice@example.com",
				Message: "Do you deliver?",
			},
			setupMocks: func(m *mocks.MockContactService) {
				m.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "rejects_incomplete_submission",
			requestBody: domain.ContactMessage{Name: "Alice"},
			setupMocks: func(m *mocks.MockContactService) {
				m.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(errors.New("email is required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_invalid_json",
			requestBody:    "not json",
			setupMocks:     func(m *mocks.MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockContactService(ctrl)
			logger := helpers.TestLogger()
			handler := handlers.NewContactHandler(mockService, logger)

			tt.setupMocks(mockService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/contact", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
