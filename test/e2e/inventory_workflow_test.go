//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/freshsaver/freshsaver-be/internal/adapters/db"
	redis_a "github.com/freshsaver/freshsaver-be/internal/adapters/redis_adapter"
	"github.com/freshsaver/freshsaver-be/internal/core/services"
	"github.com/freshsaver/freshsaver-be/internal/handlers"
	"github.com/freshsaver/freshsaver-be/internal/handlers/middleware"
	"github.com/freshsaver/freshsaver-be/test/helpers"
)

type InventoryE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *InventoryE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *InventoryE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *InventoryE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

// startTestServer wires the real services and routes against the test
// database and Redis, mirroring the production composition.
func (s *InventoryE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	inventoryRepo := db.NewInventoryRepository(s.testDB.Database, logger)
	userRepo := db.NewUserRepository(s.testDB.Database, logger)
	contactRepo := db.NewContactRepository(s.testDB.Database, logger)
	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)

	inventoryService := services.NewInventoryService(inventoryRepo, cache, logger)
	dashboardService := services.NewDashboardService(inventoryRepo, cache, logger)
	catalogService := services.NewCatalogService(inventoryRepo, cache, logger)
	accountService := services.NewAccountService(userRepo, 4, logger)
	contactService := services.NewContactService(contactRepo, logger)

	inventoryHandler := handlers.NewInventoryHandler(inventoryService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	accountHandler := handlers.NewAccountHandler(accountService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	mux := http.NewServeMux()

	owned := func(h http.HandlerFunc) http.Handler {
		return middleware.Principal(h)
	}

	mux.Handle("POST /api/v1/inventory", owned(inventoryHandler.Create))
	mux.Handle("GET /api/v1/inventory/{id}", owned(inventoryHandler.Get))
	mux.Handle("PUT /api/v1/inventory/{id}", owned(inventoryHandler.Update))
	mux.Handle("DELETE /api/v1/inventory/{id}", owned(inventoryHandler.Delete))
	mux.Handle("GET /api/v1/dashboard", owned(dashboardHandler.Overview))
	mux.Handle("GET /api/v1/dashboard/export", owned(dashboardHandler.Export))
	mux.HandleFunc("GET /api/v1/deals", catalogHandler.Browse)
	mux.HandleFunc("GET /api/v1/deals/{id}", catalogHandler.Detail)
	mux.HandleFunc("GET /api/v1/accounts/id", accountHandler.ResolveID)
	mux.HandleFunc("POST /api/v1/accounts/password", accountHandler.SetPassword)
	mux.HandleFunc("POST /api/v1/accounts/verify", accountHandler.Verify)
	mux.HandleFunc("POST /api/v1/contact", contactHandler.Submit)

	return httptest.NewServer(mux)
}

// registerStore creates an account through the public directory
// endpoints and returns its principal id.
func (s *InventoryE2ESuite) registerStore(email string) int64 {
	resp := s.makeRequest("POST", "/accounts/password", map[string]interface{}{
		"email":         email,
		"password":      "greengrocer",
		"business_name": "E2E Grocer",
	}, 0)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	return int64(created["id"].(float64))
}

func (s *InventoryE2ESuite) TestCompleteInventoryWorkflow() {
	ownerID := s.registerStore("workflow@example.com")

	// 1. The gateway can verify the stored credentials
	resp := s.makeRequest("POST", "/accounts/verify", map[string]interface{}{
		"id":       ownerID,
		"password": "greengrocer",
	}, 0)
	s.Equal(http.StatusOK, resp.StatusCode)
	var verify map[string]interface{}
	s.decodeResponse(resp, &verify)
	s.Equal(true, verify["ok"])

	// 2. Create an inventory item
	resp = s.makeRequest("POST", "/inventory", map[string]interface{}{
		"product_name":     "Sourdough Loaf",
		"category":         "bakery",
		"location":         "Front Counter",
		"expiry_date":      time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		"quantity":         6,
		"original_price":   "3.50",
		"discount_percent": "40",
	}, ownerID)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	itemID := int64(created["id"].(float64))
	s.NotZero(itemID)

	// 3. Retrieve it with derived pricing
	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%d", itemID), nil, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)

	var item map[string]interface{}
	s.decodeResponse(resp, &item)
	s.Equal("Sourdough Loaf", item["product_name"])
	s.Equal("2.1", item["discounted_price"])
	s.Equal(true, item["expiring_soon"])

	// 4. Update it
	resp = s.makeRequest("PUT", fmt.Sprintf("/inventory/%d", itemID), map[string]interface{}{
		"product_name":     "Sourdough Loaf",
		"category":         "bakery",
		"location":         "Front Counter",
		"expiry_date":      time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		"quantity":         2,
		"original_price":   "3.50",
		"discount_percent": "60",
		"status":           "reserved",
	}, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)

	// 5. Dashboard reflects the change
	resp = s.makeRequest("GET", "/dashboard", nil, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)

	var dashboard map[string]interface{}
	s.decodeResponse(resp, &dashboard)
	summary := dashboard["summary"].(map[string]interface{})
	s.Equal(float64(1), summary["total_items"])
	s.Equal(float64(1), summary["reserved_items"])

	// 6. Export the dashboard as a spreadsheet
	resp = s.makeRequest("GET", "/dashboard/export", nil, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	// 7. Delete the item; reads after that report not found
	resp = s.makeRequest("DELETE", fmt.Sprintf("/inventory/%d", itemID), nil, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%d", itemID), nil, ownerID)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *InventoryE2ESuite) TestOwnershipIsolation() {
	aliceID := s.registerStore("alice-store@example.com")
	bobID := s.registerStore("bob-store@example.com")

	resp := s.makeRequest("POST", "/inventory", map[string]interface{}{
		"product_name":   "Whole Milk 2L",
		"location":       "Fridge 1",
		"expiry_date":    time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		"original_price": "1.80",
	}, aliceID)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	itemID := int64(created["id"].(float64))

	// Another store cannot see or mutate it
	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%d", itemID), nil, bobID)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.makeRequest("DELETE", fmt.Sprintf("/inventory/%d", itemID), nil, bobID)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// The owner still can
	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%d", itemID), nil, aliceID)
	s.Equal(http.StatusOK, resp.StatusCode)

	// No principal header at all is rejected outright
	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%d", itemID), nil, 0)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *InventoryE2ESuite) TestPublicCatalog() {
	ownerID := s.registerStore("catalog-store@example.com")

	fixtures := []map[string]interface{}{
		{
			"product_name":     "Greek Yogurt 4-Pack",
			"category":         "dairy",
			"location":         "Aisle 3",
			"expiry_date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			"original_price":   "6.99",
			"discount_percent": "30",
		},
		{
			"product_name":     "Cheddar Block",
			"category":         "dairy",
			"location":         "Aisle 3",
			"expiry_date":      time.Now().AddDate(0, 0, 4).Format("2006-01-02"),
			"original_price":   "4.20",
			"discount_percent": "20",
		},
		{
			"product_name":   "Claimed Pie",
			"category":       "bakery",
			"location":       "Front Counter",
			"expiry_date":    time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
			"original_price": "5.00",
			"status":         "claimed",
		},
	}

	var firstID int64
	for i, fixture := range fixtures {
		resp := s.makeRequest("POST", "/inventory", fixture, ownerID)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
		if i == 0 {
			var created map[string]interface{}
			s.decodeResponse(resp, &created)
			firstID = int64(created["id"].(float64))
		} else {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}

	// Browsing needs no principal and hides the claimed item
	resp := s.makeRequest("GET", "/deals", nil, 0)
	s.Equal(http.StatusOK, resp.StatusCode)

	var catalog map[string]interface{}
	s.decodeResponse(resp, &catalog)
	items := catalog["items"].([]interface{})
	s.Len(items, 2)

	// Soonest-expiring first
	first := items[0].(map[string]interface{})
	s.Equal("Greek Yogurt 4-Pack", first["product_name"])

	// Detail carries same-category recommendations
	resp = s.makeRequest("GET", fmt.Sprintf("/deals/%d", firstID), nil, 0)
	s.Equal(http.StatusOK, resp.StatusCode)

	var detail map[string]interface{}
	s.decodeResponse(resp, &detail)
	deal := detail["item"].(map[string]interface{})
	s.Equal("Greek Yogurt 4-Pack", deal["product_name"])
	recommended := detail["recommended"].([]interface{})
	s.Len(recommended, 1)
	rec := recommended[0].(map[string]interface{})
	s.Equal("Cheddar Block", rec["product_name"])
}

func (s *InventoryE2ESuite) TestContactWorkflow() {
	resp := s.makeRequest("POST", "/contact", map[string]interface{}{
		"name":    "A Shopper",
		"email":   "shopper@example.com",
		"message": "Is the yogurt deal still on?",
	}, 0)
	s.Equal(http.StatusCreated, resp.StatusCode)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	// Incomplete submissions are rejected
	resp = s.makeRequest("POST", "/contact", map[string]interface{}{
		"name": "No Message",
	}, 0)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func (s *InventoryE2ESuite) TestConcurrentCreates() {
	ownerID := s.registerStore("concurrent@example.com")

	done := make(chan int, 10)
	for i := 0; i < 10; i++ {
		go func(idx int) {
			resp := s.makeRequest("POST", "/inventory", map[string]interface{}{
				"product_name":   fmt.Sprintf("Concurrent Item %d", idx),
				"location":       "Back Room",
				"expiry_date":    time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
				"original_price": "1.00",
			}, ownerID)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			done <- resp.StatusCode
		}(i)
	}

	for i := 0; i < 10; i++ {
		s.Equal(http.StatusCreated, <-done)
	}

	resp := s.makeRequest("GET", "/dashboard", nil, ownerID)
	s.Equal(http.StatusOK, resp.StatusCode)

	var dashboard map[string]interface{}
	s.decodeResponse(resp, &dashboard)
	summary := dashboard["summary"].(map[string]interface{})
	s.Equal(float64(10), summary["total_items"])
}

// Helper methods

func (s *InventoryE2ESuite) makeRequest(method, path string, body interface{}, principalID int64) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if principalID > 0 {
		req.Header.Set(middleware.PrincipalHeader, strconv.FormatInt(principalID, 10))
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *InventoryE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.Require().NoError(err)
}

func TestInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(InventoryE2ESuite))
}
