// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"autohub/internal/chat"
	"autohub/internal/database"
	"autohub/internal/rules"
	"autohub/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "autohub")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "autohub")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests.
// Valkey and S3 stay unconfigured: the handlers must work without them.
type testEnv struct {
	db     *sql.DB
	api    *API
	public *Public
	mux    chi.Router
}

// newTestEnv wires real stores against the test database and cleans all
// rows before and after each test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	clean := func() {
		tables := []string{
			"sales", "contracts", "contract_templates", "financial_transactions",
			"leads", "vehicles", "site_configs", "dealerships",
		}
		for _, table := range tables {
			if _, err := db.Exec(`DELETE FROM ` + table); err != nil {
				t.Fatalf("clean %s: %v", table, err)
			}
		}
	}
	clean()
	t.Cleanup(clean)

	dealerships := store.NewDealershipStore(db)
	vehicles := store.NewVehicleStore(db)
	leads := store.NewLeadStore(db)
	transactions := store.NewTransactionStore(db)
	contractTemplates := store.NewContractTemplateStore(db)
	contracts := store.NewContractStore(db)
	sales := store.NewSaleStore(db)
	siteConfigs := store.NewSiteConfigStore(db)

	chatSvc := chat.New(siteConfigs, rules.New(nil), 0)

	api := NewAPI(
		dealerships, vehicles, leads, transactions,
		contractTemplates, contracts, sales,
		chatSvc, nil, nil, "http://localhost:8080",
	)
	public := NewPublic(siteConfigs, vehicles, dealerships, nil)

	mux := chi.NewRouter()
	mux.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", api.VehiclesList)
			r.Post("/", api.VehiclesCreate)
			r.Get("/{id}", api.VehiclesGet)
			r.Put("/{id}", api.VehiclesUpdate)
			r.Patch("/{id}/status", api.VehiclesUpdateStatus)
			r.Delete("/{id}", api.VehiclesDelete)
		})
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", api.LeadsList)
			r.Post("/", api.LeadsCreate)
			r.Put("/{id}", api.LeadsUpdate)
			r.Patch("/{id}/status", api.LeadsUpdateStatus)
			r.Delete("/{id}", api.LeadsDelete)
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", api.TransactionsList)
			r.Post("/", api.TransactionsCreate)
			r.Delete("/{id}", api.TransactionsDelete)
		})
		r.Route("/contract-templates", func(r chi.Router) {
			r.Get("/", api.ContractTemplatesList)
			r.Post("/", api.ContractTemplatesCreate)
			r.Put("/{id}", api.ContractTemplatesUpdate)
			r.Delete("/{id}", api.ContractTemplatesDelete)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", api.ContractsList)
			r.Post("/", api.ContractsGenerate)
			r.Get("/{id}/print", api.ContractsPrint)
			r.Delete("/{id}", api.ContractsDelete)
		})
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", api.SalesList)
			r.Post("/", api.SalesRecord)
		})
		r.Get("/stats", api.Stats)
		r.Route("/editor", func(r chi.Router) {
			r.Get("/config", api.EditorConfig)
			r.Post("/chat", api.EditorChat)
			r.Post("/chat/clear", api.EditorChatClear)
			r.Post("/publish", api.EditorPublish)
			r.Get("/qr", api.EditorQR)
		})
	})
	mux.Get("/", public.Home)
	mux.Get("/estoque", public.Inventory)
	mux.Get("/sobre", public.About)

	return &testEnv{db: db, api: api, public: public, mux: mux}
}

// do performs a request against the test router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, target string, body *strings.Reader) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}
