package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/config"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/infrastructure/repository/memory"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/handler"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/utils"
)

type apiFixture struct {
	router       *gin.Engine
	store        *memory.Store
	products     *service.ProductService
	cart         *service.CartService
	admin        entity.Principal
	adminToken   string
	cashier      entity.Principal
	cashierToken string
	catalog      map[string]uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	stockLogRepo := memory.NewStockLogRepository(store)
	cartRepo := memory.NewCartRepository(store)
	checkoutRepo := memory.NewCheckoutRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	reportRepo := memory.NewReportRepository(store)
	idempotencyRepo := memory.NewIdempotencyRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)

	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)

	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, categoryRepo, stockLogRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := &Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(service.NewUserService(userRepo)),
		Product:      handler.NewProductHandler(productService),
		Category:     handler.NewCategoryHandler(service.NewCategoryService(categoryRepo)),
		Cart:         handler.NewCartHandler(cartService),
		Checkout:     handler.NewCheckoutHandler(service.NewCheckoutService(cartRepo, checkoutRepo, productRepo, notificationService)),
		Transaction:  handler.NewTransactionHandler(service.NewTransactionService(transactionRepo)),
		Invoice:      handler.NewInvoiceHandler(service.NewInvoiceService(invoiceRepo, transactionRepo)),
		Report:       handler.NewReportHandler(service.NewReportService(reportRepo, nil, 0)),
		Notification: handler.NewNotificationHandler(notificationService),
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "pos-test"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	f := &apiFixture{
		router:   Setup(handlers, &Deps{JWTManager: jwtManager, Cfg: cfg, IdempotencyRepo: idempotencyRepo}),
		store:    store,
		products: productService,
		cart:     cartService,
		catalog:  make(map[string]uuid.UUID),
	}

	ctx := context.Background()
	admin, err := authService.Register(ctx, &service.RegisterInput{Username: "admin", Password: "admin123", Role: enum.RoleAdmin})
	if err != nil {
		t.Fatalf("register admin failed: %v", err)
	}
	cashier, err := authService.Register(ctx, &service.RegisterInput{Username: "kasir", Password: "kasir123"})
	if err != nil {
		t.Fatalf("register cashier failed: %v", err)
	}
	f.admin = entity.Principal{ID: admin.ID, Username: admin.Username, Role: admin.Role}
	f.cashier = entity.Principal{ID: cashier.ID, Username: cashier.Username, Role: cashier.Role}

	if f.adminToken, err = jwtManager.GenerateAccessToken(admin.ID, admin.Username, admin.Role); err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	if f.cashierToken, err = jwtManager.GenerateAccessToken(cashier.ID, cashier.Username, cashier.Role); err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	category, err := service.NewCategoryService(categoryRepo).Create(ctx, f.admin, "Minuman", nil)
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product, err := productService.Create(ctx, f.admin, &service.CreateProductInput{
		Code:         "KOPI-01",
		Name:         "Kopi Hitam",
		PriceGeneral: 15000,
		PriceSpecial: 12000,
		Stock:        5,
		CategoryID:   category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	f.catalog["KOPI-01"] = product.ID

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) fillCart(t *testing.T, qty int) {
	t.Helper()
	_, err := f.cart.AddItem(context.Background(), f.cashier, &service.AddItemInput{
		ProductID: f.catalog["KOPI-01"],
		Quantity:  qty,
		Tier:      enum.TierGeneral,
	})
	if err != nil {
		t.Fatalf("fill cart failed: %v", err)
	}
}

func TestCheckoutEndpointRequiresIdempotencyKey(t *testing.T) {
	f := newAPIFixture(t)
	f.fillCart(t, 1)

	rec := f.do(t, http.MethodPost, "/api/v1/checkout", f.cashierToken,
		gin.H{"customer_name": "Budi"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without idempotency key, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutEndpointReplaysOnRetry(t *testing.T) {
	f := newAPIFixture(t)
	f.fillCart(t, 2)

	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	first := f.do(t, http.MethodPost, "/api/v1/checkout", f.cashierToken,
		gin.H{"customer_name": "Budi"}, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", first.Code, first.Body.String())
	}

	// Same key again: no second sale, identical body.
	second := f.do(t, http.MethodPost, "/api/v1/checkout", f.cashierToken,
		gin.H{"customer_name": "Budi"}, headers)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201, got %d: %s", second.Code, second.Body.String())
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Fatalf("expected replay marker header")
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("expected identical replayed body")
	}

	product, err := f.products.Get(context.Background(), f.catalog["KOPI-01"])
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Stock != 3 {
		t.Fatalf("expected stock 3 after a single sale of 2, got %d", product.Stock)
	}
}

func TestCheckoutEndpointStockConflictPayload(t *testing.T) {
	f := newAPIFixture(t)
	f.fillCart(t, 6) // stock is 5

	rec := f.do(t, http.MethodPost, "/api/v1/checkout", f.cashierToken,
		gin.H{"customer_name": "Budi"}, map[string]string{"Idempotency-Key": uuid.NewString()})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Success bool `json:"success"`
		Errors  struct {
			Error     string `json:"error"`
			Product   string `json:"product"`
			Requested int    `json:"requested"`
			Available int    `json:"available"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload.Success {
		t.Fatalf("expected success false")
	}
	if payload.Errors.Error != "insufficient_stock" {
		t.Fatalf("expected insufficient_stock, got %s", payload.Errors.Error)
	}
	if payload.Errors.Requested != 6 || payload.Errors.Available != 5 {
		t.Fatalf("expected requested 6 available 5, got %+v", payload.Errors)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/products", "", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAdminOnlyRoutesRejectCashier(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/reports/revenue", f.cashierToken, nil, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cashier on reports, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/reports/revenue", f.adminToken, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin on reports, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartItemRoutesAddressableByID(t *testing.T) {
	f := newAPIFixture(t)

	item, err := f.cart.AddItem(context.Background(), f.cashier, &service.AddItemInput{
		ProductID: f.catalog["KOPI-01"],
		Quantity:  2,
		Tier:      enum.TierGeneral,
	})
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	// Cart entries are addressable both at /cart/:id and /cart/items/:id.
	rec := f.do(t, http.MethodPut, "/api/v1/cart/"+item.ID.String(), f.cashierToken,
		gin.H{"quantity": 3}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on PUT /cart/:id, got %d: %s", rec.Code, rec.Body.String())
	}

	view, err := f.cart.View(context.Background(), f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 after update, got %+v", view.Items)
	}

	rec = f.do(t, http.MethodDelete, "/api/v1/cart/"+item.ID.String(), f.cashierToken, nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on DELETE /cart/:id, got %d: %s", rec.Code, rec.Body.String())
	}

	view, err = f.cart.View(context.Background(), f.cashier)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart after delete, got %d items", len(view.Items))
	}
}

func TestNotificationEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	f.fillCart(t, 2)

	rec := f.do(t, http.MethodPost, "/api/v1/checkout", f.cashierToken,
		gin.H{"customer_name": "Budi"}, map[string]string{"Idempotency-Key": uuid.NewString()})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// The sale leaves KOPI-01 at 3 units, so the cashier gets a success
	// and a low-stock notification.
	rec = f.do(t, http.MethodGet, "/api/v1/notifications", f.cashierToken, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Data struct {
			Items []struct {
				ID     string `json:"id"`
				Type   string `json:"type"`
				IsRead bool   `json:"is_read"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(payload.Data.Items) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(payload.Data.Items))
	}

	rec = f.do(t, http.MethodPost, "/api/v1/notifications/"+payload.Data.Items[0].ID+"/read", f.cashierToken, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on mark read, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/v1/notifications?unread_only=true", f.cashierToken, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(payload.Data.Items) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(payload.Data.Items))
	}

	// Notifications are private to their recipient.
	rec = f.do(t, http.MethodGet, "/api/v1/notifications", f.adminToken, nil, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(payload.Data.Items) != 0 {
		t.Fatalf("expected no notifications for admin, got %d", len(payload.Data.Items))
	}

	rec = f.do(t, http.MethodPost, "/api/v1/notifications/read-all", f.cashierToken, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on read-all, got %d: %s", rec.Code, rec.Body.String())
	}
}
