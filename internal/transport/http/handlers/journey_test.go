package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"restopos/internal/app/server"
	"restopos/internal/platform/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error any             `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		DatabaseURL:          dbURL,
		JWTSecret:            "test-secret",
		Environment:          "test",
		SeedBranchName:       "Test Branch",
		SeedAdminUsername:    "admin",
		SeedAdminPassword:    "ChangeMe123!",
		SeedDemoData:         true,
		RunMigrations:        true,
		RunSeed:              true,
		MigrationsDir:        "../../../../migrations",
		PayrollWindowDays:    7,
		TaxRate:              0.16,
		DiscrepancyAlertOver: 50,
		LowStockAlerts:       true,
		MaxBodyBytes:         1048576,
		RateLimitPerMinute:   1000,
		TokenTTL:             time.Hour,
		PayslipDir:           "../../../../storage/payslips",
	}
}

func TestSettlementJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminUsername, cfg.SeedAdminPassword)

	employeeName := fmt.Sprintf("Journey Waiter %d", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, token, employeeName)

	clockIn(t, client, ts.URL, token, employeeID)
	// a second clock-in the same day must be rejected
	postJSONStatus(t, client, ts.URL+"/api/v1/attendance/clock-in", token,
		map[string]any{"employeeId": employeeID}, http.StatusConflict)
	clockOut(t, client, ts.URL, token, employeeID)

	productID := firstProductID(t, client, ts.URL, token)
	orderID := createOrder(t, client, ts.URL, token, employeeID, productID)
	closeOrder(t, client, ts.URL, token, orderID)

	payment := runPayroll(t, client, ts.URL, token, employeeID)
	var amount float64
	if err := json.Unmarshal(payment["amount"], &amount); err != nil {
		t.Fatalf("failed to decode amount: %v", err)
	}
	if amount <= 0 {
		t.Fatalf("expected positive settlement amount, got %v", amount)
	}

	// a second run for the same period must be rejected, not duplicated
	postJSONStatus(t, client, ts.URL+"/api/v1/payroll/employees/"+employeeID+"/run", token,
		nil, http.StatusConflict)

	report := closeShift(t, client, ts.URL, token)
	disc, ok := report["discrepancies"].(map[string]any)
	if !ok {
		t.Fatalf("expected discrepancies in report: %+v", report)
	}
	if _, ok := disc["cash"]; !ok {
		t.Fatal("expected cash discrepancy to be reported")
	}
}

func TestWaiterCannotRunPayroll(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	adminToken := login(t, client, ts.URL, cfg.SeedAdminUsername, cfg.SeedAdminPassword)
	employeeID := createEmployee(t, client, ts.URL, adminToken, fmt.Sprintf("Role Test %d", time.Now().UnixNano()))

	waiterToken := createWaiterUser(t, app, cfg)
	postJSONStatus(t, client, ts.URL+"/api/v1/payroll/employees/"+employeeID+"/run", waiterToken,
		nil, http.StatusForbidden)
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("expected token")
	}
	return token
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token, name string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/staff", token, map[string]any{
		"name":     name,
		"role":     "waiter",
		"hireDate": time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
		"policy": map[string]any{
			"paymentType":     "daily",
			"dailyRate":       300,
			"workdayHours":    8,
			"monthlyBenefits": 900,
			"latePenalty":     50,
			"absencePenalty":  100,
			"restDays":        []int{},
		},
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode employee response: %v", err)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected employee id")
	}
	return id
}

func clockIn(t *testing.T, client *http.Client, baseURL, token, employeeID string) {
	t.Helper()
	postJSON(t, client, baseURL+"/api/v1/attendance/clock-in", token, map[string]any{
		"employeeId": employeeID,
	})
}

func clockOut(t *testing.T, client *http.Client, baseURL, token, employeeID string) {
	t.Helper()
	postJSON(t, client, baseURL+"/api/v1/attendance/clock-out", token, map[string]any{
		"employeeId": employeeID,
	})
}

func firstProductID(t *testing.T, client *http.Client, baseURL, token string) string {
	t.Helper()
	resp := getJSON(t, client, baseURL+"/api/v1/products", token)
	var products []map[string]any
	if err := json.Unmarshal(resp.Data, &products); err != nil {
		t.Fatalf("failed to decode products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}
	id, _ := products[0]["id"].(string)
	return id
}

func createOrder(t *testing.T, client *http.Client, baseURL, token, waiterID, productID string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/orders", token, map[string]any{
		"orderType": "dine_in",
		"waiterId":  waiterID,
		"tip":       150,
		"items":     []map[string]any{{"productId": productID, "quantity": 1}},
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode order response: %v", err)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected order id")
	}
	return id
}

func closeOrder(t *testing.T, client *http.Client, baseURL, token, orderID string) {
	t.Helper()
	postJSON(t, client, baseURL+"/api/v1/orders/"+orderID+"/close", token, map[string]any{
		"paymentType": "cash",
		"amountPaid":  2000,
	})
}

func runPayroll(t *testing.T, client *http.Client, baseURL, token, employeeID string) map[string]json.RawMessage {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/payroll/employees/"+employeeID+"/run", token, nil)
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode payment response: %v", err)
	}
	return payload
}

func closeShift(t *testing.T, client *http.Client, baseURL, token string) map[string]any {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/shift/close", token, map[string]any{
		"declaredCash":     100,
		"declaredCard":     0,
		"declaredTransfer": 0,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode shift report: %v", err)
	}
	return payload
}

func createWaiterUser(t *testing.T, app *server.App, cfg config.Config) string {
	t.Helper()
	ctx := context.Background()

	var branchID string
	if err := app.DB.QueryRow(ctx, "SELECT id FROM branches WHERE name = $1", cfg.SeedBranchName).Scan(&branchID); err != nil {
		t.Fatalf("failed to load branch: %v", err)
	}

	username := fmt.Sprintf("waiter-%d", time.Now().UnixNano())
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // bcrypt of "password"
	var userID string
	if err := app.DB.QueryRow(ctx, `
    INSERT INTO users (branch_id, username, password_hash, name, role)
    VALUES ($1,$2,$3,$4,'waiter')
    RETURNING id
  `, branchID, username, hash, "Waiter User").Scan(&userID); err != nil {
		t.Fatalf("failed to create waiter user: %v", err)
	}

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	return login(t, ts.Client(), ts.URL, username, "password")
}

func postJSON(t *testing.T, client *http.Client, url, token string, body any) envelope {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	return env
}

func postJSONStatus(t *testing.T, client *http.Client, url, token string, body any, want int) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, string(raw))
	}
}

func getJSON(t *testing.T, client *http.Client, url, token string) envelope {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	return env
}
