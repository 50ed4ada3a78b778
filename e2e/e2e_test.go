//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"family-dues-go/internal/config"
	"family-dues-go/internal/db"
	calcdomain "family-dues-go/internal/domain/calculation"
	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	"family-dues-go/internal/domain/plan"
	statementdomain "family-dues-go/internal/domain/statement"
	weddingdomain "family-dues-go/internal/domain/wedding"
	calcrepo "family-dues-go/internal/repository/postgres/calculation"
	familyrepo "family-dues-go/internal/repository/postgres/family"
	ledgerrepo "family-dues-go/internal/repository/postgres/ledger"
	statementrepo "family-dues-go/internal/repository/postgres/statement"
	"family-dues-go/internal/transport/httpserver"
	"family-dues-go/internal/transport/httpserver/handler"
	"family-dues-go/pkg/logger"
	"gorm.io/gorm"
)

type testEnv struct {
	server  *httptest.Server
	db      *gorm.DB
	wedding *weddingdomain.Service
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.New(io.Discard, slog.LevelError, "json")

	dbConn, err := db.NewPostgres(config.DBConfig{DSN: dsn}, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	rates := plan.DefaultRates()

	familyRepository := familyrepo.NewPostgres(dbConn)
	ledgerRepository := ledgerrepo.NewPostgres(dbConn)
	calcRepository := calcrepo.NewPostgres(dbConn)
	statementRepository := statementrepo.NewPostgres(dbConn)

	familyService := familydomain.NewService(familyRepository)
	ledgerService := ledgerdomain.NewService(ledgerRepository, familyRepository, rates)
	calcService := calcdomain.NewService(familyRepository, ledgerRepository, calcRepository, rates)
	statementService := statementdomain.NewService(familyRepository, ledgerService, ledgerRepository, statementRepository, log)
	weddingService := weddingdomain.NewService(familyRepository, log)

	handlers := handler.New(familyService, ledgerService, calcService, statementService, weddingService, log)
	server := httptest.NewServer(httpserver.NewRouter(handlers))

	return &testEnv{server: server, db: dbConn, wedding: weddingService}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE statements, yearly_calculations, lifecycle_event_payments, withdrawals, payments, family_members, families RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

func decode(t *testing.T, data []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("unmarshal response %s: %v", data, err)
	}
}

func TestDuesLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := env.server.Client()
	base := env.server.URL + "/api"
	year := time.Now().UTC().Year()

	// Health first.
	resp, _ := requestJSON(t, client, http.MethodGet, base+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.StatusCode)
	}

	// Create a family with an opening balance.
	resp, body := requestJSON(t, client, http.MethodPost, base+"/families", map[string]interface{}{
		"name":         "Klein Family",
		"wedding_date": "2010-06-01",
		"city":         "Monsey",
		"open_balance": 100,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create family: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var family familydomain.Family
	decode(t, body, &family)
	if family.CurrentPlan != 1 {
		t.Fatalf("expected default plan 1, got %d", family.CurrentPlan)
	}

	// Add a child member.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/families/"+family.ID+"/members", map[string]interface{}{
		"first_name": "Chaim",
		"last_name":  "Klein",
		"birth_date": fmt.Sprintf("%d-01-01", year-6),
		"gender":     "male",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member: expected 201, got %d: %s", resp.StatusCode, body)
	}

	// Record ledger activity.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/families/"+family.ID+"/payments", map[string]interface{}{
		"amount":       500,
		"payment_date": fmt.Sprintf("%d-02-10", year),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create payment: expected 201, got %d: %s", resp.StatusCode, body)
	}
	resp, body = requestJSON(t, client, http.MethodPost, base+"/families/"+family.ID+"/withdrawals", map[string]interface{}{
		"amount":          200,
		"withdrawal_date": fmt.Sprintf("%d-03-05", year),
		"reason":          "simcha support",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create withdrawal: expected 201, got %d: %s", resp.StatusCode, body)
	}
	resp, body = requestJSON(t, client, http.MethodPost, base+"/families/"+family.ID+"/lifecycle-events", map[string]interface{}{
		"event_type": "birth_boy",
		"event_date": fmt.Sprintf("%d-04-01", year),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create lifecycle event: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var event ledgerdomain.LifecycleEventPayment
	decode(t, body, &event)
	if event.Amount != 500 {
		t.Fatalf("expected flat birth_boy rate 500, got %v", event.Amount)
	}

	// Balance at year end: 100 + 500 - 200 - 500 = -100.
	resp, body = requestJSON(t, client, http.MethodGet, fmt.Sprintf("%s/families/%s/balance?as_of=%d-12-31", base, family.ID, year), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("balance: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var balance ledgerdomain.BalanceSnapshot
	decode(t, body, &balance)
	if balance.Balance != -100 {
		t.Fatalf("expected balance -100, got %v", balance.Balance)
	}

	// Yearly calculation: one member aged 6, one birth_boy event.
	resp, body = requestJSON(t, client, http.MethodPost, fmt.Sprintf("%s/calculations/%d", base, year), map[string]interface{}{
		"extra_donation": 200,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("calculate year: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var calc calcdomain.YearlyCalculation
	decode(t, body, &calc)
	if calc.AgeGroup5to8 != 1 {
		t.Fatalf("expected one member in the 5-8 bracket, got %+v", calc)
	}
	if calc.CalculatedIncome != 1700 {
		t.Fatalf("expected calculated income 1700, got %v", calc.CalculatedIncome)
	}
	if calc.CalculatedExpenses != 500 {
		t.Fatalf("expected calculated expenses 500, got %v", calc.CalculatedExpenses)
	}
	if calc.Balance != 1200 {
		t.Fatalf("expected year balance 1200, got %v", calc.Balance)
	}

	// Recalculating must keep a single record for the year.
	resp, _ = requestJSON(t, client, http.MethodPost, fmt.Sprintf("%s/calculations/%d", base, year), map[string]interface{}{
		"extra_donation": 200,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recalculate year: expected 200, got %d", resp.StatusCode)
	}
	resp, body = requestJSON(t, client, http.MethodGet, base+"/calculations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list calculations: expected 200, got %d", resp.StatusCode)
	}
	var calcs []calcdomain.YearlyCalculation
	decode(t, body, &calcs)
	if len(calcs) != 1 {
		t.Fatalf("expected a single calculation record, got %d", len(calcs))
	}

	// Monthly statements: generating twice must not duplicate.
	generateURL := fmt.Sprintf("%s/statements/generate?year=%d&month=5", base, year)
	resp, body = requestJSON(t, client, http.MethodPost, generateURL, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate statements: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var batch statementdomain.BatchResult
	decode(t, body, &batch)
	if batch.Generated != 1 || batch.Failed != 0 {
		t.Fatalf("expected 1 generated, 0 failed, got %+v", batch)
	}

	resp, _ = requestJSON(t, client, http.MethodPost, generateURL, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("regenerate statements: expected 200, got %d", resp.StatusCode)
	}
	resp, body = requestJSON(t, client, http.MethodGet, base+"/families/"+family.ID+"/statements", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list statements: expected 200, got %d", resp.StatusCode)
	}
	var statements []statementdomain.Statement
	decode(t, body, &statements)
	if len(statements) != 1 {
		t.Fatalf("expected a single statement after re-run, got %d", len(statements))
	}
	statement := statements[0]
	if statement.ClosingBalance != statement.OpeningBalance+statement.Income-statement.Withdrawals-statement.Expenses {
		t.Fatalf("closing balance invariant violated: %+v", statement)
	}
}

func TestWeddingConverterJob(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := env.server.Client()
	base := env.server.URL + "/api"

	resp, body := requestJSON(t, client, http.MethodPost, base+"/families", map[string]interface{}{
		"name":         "Gold Family",
		"wedding_date": "1995-06-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create family: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var family familydomain.Family
	decode(t, body, &family)

	resp, body = requestJSON(t, client, http.MethodPost, base+"/families/"+family.ID+"/members", map[string]interface{}{
		"first_name":   "Dovid",
		"last_name":    "Gold",
		"birth_date":   "2000-01-01",
		"gender":       "male",
		"wedding_date": "2020-06-10",
		"spouse_name":  "Rivka Stern",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member: expected 201, got %d: %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/jobs/wedding-converter", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("run converter: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var result weddingdomain.Result
	decode(t, body, &result)
	if result.Converted != 1 || result.Failed != 0 {
		t.Fatalf("expected 1 converted, got %+v", result)
	}
	converted := result.Members[0]
	if converted.FamilyName != "Dovid Gold & Rivka Stern" {
		t.Fatalf("unexpected family name: %q", converted.FamilyName)
	}

	// The new family exists with a spouse member; the original member is gone.
	resp, body = requestJSON(t, client, http.MethodGet, base+"/families/"+converted.FamilyID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get new family: expected 200, got %d: %s", resp.StatusCode, body)
	}
	resp, body = requestJSON(t, client, http.MethodGet, base+"/families/"+converted.FamilyID+"/members", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list new family members: expected 200, got %d", resp.StatusCode)
	}
	var members []familydomain.Member
	decode(t, body, &members)
	if len(members) != 1 || members[0].FirstName != "Rivka" {
		t.Fatalf("expected the spouse in the new family, got %+v", members)
	}

	resp, body = requestJSON(t, client, http.MethodGet, base+"/families/"+family.ID+"/members", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list original members: expected 200, got %d", resp.StatusCode)
	}
	var original []familydomain.Member
	decode(t, body, &original)
	if len(original) != 0 {
		t.Fatalf("expected original member removed, got %+v", original)
	}

	// Re-running the job converts nothing.
	resp, body = requestJSON(t, client, http.MethodPost, base+"/jobs/wedding-converter", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rerun converter: expected 200, got %d", resp.StatusCode)
	}
	decode(t, body, &result)
	if result.Converted != 0 {
		t.Fatalf("expected idempotent rerun, got %+v", result)
	}
}
