package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory collaborators so the routes can be exercised end to end through
// the real command handlers without a database.

type stubMenuRepository struct {
	items map[kernel.UUID]*menu.MenuItem
}

func (s *stubMenuRepository) Add(_ context.Context, item *menu.MenuItem) error {
	s.items[item.ID()] = item
	return nil
}

func (s *stubMenuRepository) Update(_ context.Context, item *menu.MenuItem) error {
	if _, ok := s.items[item.ID()]; !ok {
		return errs.NewObjectNotFoundError("menuItemID", item.ID())
	}
	s.items[item.ID()] = item
	return nil
}

func (s *stubMenuRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := s.items[id]; !ok {
		return errs.NewObjectNotFoundError("menuItemID", id)
	}
	delete(s.items, id)
	return nil
}

func (s *stubMenuRepository) Get(_ context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItemID", id)
	}
	return item, nil
}

type stubOrderRepository struct {
	orders        map[kernel.UUID]*order.Order
	lineItemCount int64
}

func (s *stubOrderRepository) Add(_ context.Context, o *order.Order) error {
	s.orders[o.ID()] = o
	return nil
}

func (s *stubOrderRepository) Update(_ context.Context, o *order.Order) error {
	s.orders[o.ID()] = o
	return nil
}

func (s *stubOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (s *stubOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.Get(ctx, id)
}

func (s *stubOrderRepository) CountLineItemsForMenuItem(
	_ context.Context, _ kernel.UUID,
) (int64, error) {
	return s.lineItemCount, nil
}

type stubUoW struct {
	menuRepo  *stubMenuRepository
	orderRepo *stubOrderRepository
}

func (u *stubUoW) Begin(_ context.Context) error    { return nil }
func (u *stubUoW) Commit(_ context.Context) error   { return nil }
func (u *stubUoW) Rollback(_ context.Context) error { return nil }

func (u *stubUoW) MenuRepository() ports.MenuRepository   { return u.menuRepo }
func (u *stubUoW) OrderRepository() ports.OrderRepository { return u.orderRepo }

type menuUoWFactory struct{ uow *stubUoW }

func (f menuUoWFactory) Create() commands.MenuUoW { return f.uow }

type orderUoWFactory struct{ uow *stubUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type uowFactory struct{ uow *stubUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type nopPublisher struct{}

func (nopPublisher) Publish(_ context.Context, _ string, _ any) error { return nil }

type testEnv struct {
	menuRepo  *stubMenuRepository
	orderRepo *stubOrderRepository
	echo      *echo.Echo
}

func newTestEnv() *testEnv {
	menuRepo := &stubMenuRepository{items: map[kernel.UUID]*menu.MenuItem{}}
	orderRepo := &stubOrderRepository{orders: map[kernel.UUID]*order.Order{}}
	uow := &stubUoW{menuRepo: menuRepo, orderRepo: orderRepo}
	var publisher nopPublisher

	server := httpin.NewServer(
		commands.NewCreateMenuItemCommandHandler(menuUoWFactory{uow}, publisher),
		commands.NewUpdateMenuItemCommandHandler(menuUoWFactory{uow}, publisher),
		commands.NewDeleteMenuItemCommandHandler(uowFactory{uow}, publisher),
		commands.NewCreateOrderCommandHandler(uowFactory{uow}, publisher),
		commands.NewChangeOrderStatusCommandHandler(orderUoWFactory{uow}, publisher),
		commands.NewPayOrderCommandHandler(orderUoWFactory{uow}, publisher),
		queries.NewGetMenuQueryHandler(nil),
		queries.NewGetActiveOrdersQueryHandler(nil),
		queries.NewGetCashierOrdersQueryHandler(nil),
		queries.NewGetOrderQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &testEnv{menuRepo: menuRepo, orderRepo: orderRepo, echo: e}
}

func (env *testEnv) request(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func (env *testEnv) seedMenuItem(t *testing.T, name string, price float64) *menu.MenuItem {
	t.Helper()

	item, err := menu.NewMenuItem(kernel.NewUUID(), name, price, "/static/uploads/"+name+".png")
	require.NoError(t, err)
	env.menuRepo.items[item.ID()] = item
	return item
}

func (env *testEnv) seedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item := env.seedMenuItem(t, "Margherita", 9.5)
	line, err := order.NewLineItem(kernel.NewUUID(), item, 2)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), "12", status, status == order.Paid, time.Now().UTC(), []order.LineItem{line},
	)
	require.NoError(t, err)
	env.orderRepo.orders[o.ID()] = o
	return o
}

func TestServer_Health(t *testing.T) {
	env := newTestEnv()

	rec, body := env.request(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_CreateMenuItem(t *testing.T) {
	t.Run("creates item and returns 201", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPost, "/admin/menu",
			`{"name": "Margherita", "price": 9.5, "image_url": "/static/uploads/margherita.png"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Admin added new menu item", body["message"])
		created, ok := body["menu"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Margherita", created["name"])
		assert.InDelta(t, 9.5, created["price"], 0.001)
		assert.Len(t, env.menuRepo.items, 1)
	})

	t.Run("missing name and price", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPost, "/admin/menu", `{"image_url": "x.png"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields: name and price", body["error"])
		assert.Empty(t, env.menuRepo.items)
	})

	t.Run("non-numeric price", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPost, "/admin/menu",
			`{"name": "Margherita", "price": "cheap"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Price must be a number", body["error"])
	})

	t.Run("negative price", func(t *testing.T) {
		env := newTestEnv()

		rec, _ := env.request(t, http.MethodPost, "/admin/menu",
			`{"name": "Margherita", "price": -1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UpdateMenuItem(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)

		rec, body := env.request(t, http.MethodPut, "/admin/menu/"+item.ID().String(),
			`{"price": 11.0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("Admin - Menu item %s updated", item.ID()), body["message"])
		updated, ok := body["menu"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Margherita", updated["name"])
		assert.InDelta(t, 11.0, updated["price"], 0.001)
	})

	t.Run("unknown item", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPut, "/admin/menu/"+kernel.NewUUID().String(),
			`{"price": 11.0}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Menu item not found", body["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv()

		rec, _ := env.request(t, http.MethodPut, "/admin/menu/not-a-uuid", `{"price": 11.0}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_DeleteMenuItem(t *testing.T) {
	t.Run("deletes unreferenced item", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)

		rec, body := env.request(t, http.MethodDelete, "/admin/menu/"+item.ID().String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("Admin - Menu item %s deleted", item.ID()), body["message"])
		assert.Empty(t, env.menuRepo.items)
	})

	t.Run("item referenced by orders", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)
		env.orderRepo.lineItemCount = 3

		rec, body := env.request(t, http.MethodDelete, "/admin/menu/"+item.ID().String(), "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Cannot delete menu item referenced by existing orders", body["error"])
		assert.Len(t, env.menuRepo.items, 1)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("creates order and returns 201", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)

		rec, body := env.request(t, http.MethodPost, "/waiter/orders", fmt.Sprintf(
			`{"seat_number": "7", "items": [{"menu_id": %q, "quantity": 2}]}`, item.ID()))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Order created", body["message"])
		created, ok := body["order"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "7", created["seat_number"])
		assert.Equal(t, "Pending", created["status"])
		assert.InDelta(t, 19.0, created["total_amount"], 0.001)
		assert.Len(t, env.orderRepo.orders, 1)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)

		rec, body := env.request(t, http.MethodPost, "/waiter/orders", fmt.Sprintf(
			`{"items": [{"menu_id": %q}]}`, item.ID()))

		assert.Equal(t, http.StatusCreated, rec.Code)
		created, ok := body["order"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 9.5, created["total_amount"], 0.001)
	})

	t.Run("missing items", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPost, "/waiter/orders", `{"seat_number": "7"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "items is required and must be a list of {menu_id, quantity}", body["error"])
	})

	t.Run("missing menu_id", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPost, "/waiter/orders",
			`{"items": [{"quantity": 2}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Each item requires menu_id", body["error"])
	})

	t.Run("unknown menu item", func(t *testing.T) {
		env := newTestEnv()
		missing := kernel.NewUUID()

		rec, body := env.request(t, http.MethodPost, "/waiter/orders", fmt.Sprintf(
			`{"items": [{"menu_id": %q, "quantity": 1}]}`, missing))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, fmt.Sprintf("Menu id %s not found", missing), body["error"])
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		env := newTestEnv()
		item := env.seedMenuItem(t, "Margherita", 9.5)

		rec, body := env.request(t, http.MethodPost, "/waiter/orders", fmt.Sprintf(
			`{"items": [{"menu_id": %q, "quantity": 0}]}`, item.ID()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "quantity must be > 0", body["error"])
	})
}

func TestServer_UpdateOrderStatus(t *testing.T) {
	t.Run("moves order to a new kitchen status", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Pending)

		rec, body := env.request(t, http.MethodPatch, "/cook/orders/"+o.ID().String(),
			`{"status": "Preparing"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("order %s status updated", o.ID()), body["message"])
		updated, ok := body["order"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Preparing", updated["status"])
	})

	t.Run("missing status", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Pending)

		rec, body := env.request(t, http.MethodPatch, "/cook/orders/"+o.ID().String(), `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status is required", body["error"])
	})

	t.Run("paid is not a kitchen target", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Ready)

		rec, body := env.request(t, http.MethodPatch, "/cook/orders/"+o.ID().String(),
			`{"status": "Paid"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status must be one of Pending, Preparing, Ready, Cancelled", body["error"])
	})

	t.Run("paid order is immutable", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Paid)

		rec, _ := env.request(t, http.MethodPatch, "/cook/orders/"+o.ID().String(),
			`{"status": "Pending"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		env := newTestEnv()

		rec, body := env.request(t, http.MethodPatch, "/cook/orders/"+kernel.NewUUID().String(),
			`{"status": "Ready"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", body["error"])
	})
}

func TestServer_PayOrder(t *testing.T) {
	t.Run("pays a ready order", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Ready)

		rec, body := env.request(t, http.MethodPatch, "/cashier/orders/"+o.ID().String(),
			`{"action": "pay"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("Order %s paid successfully", o.ID()), body["message"])
		assert.InDelta(t, 19.0, body["total_paid"], 0.001)
		paid, ok := body["order"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Paid", paid["status"])
		assert.Equal(t, true, paid["is_paid"])
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Ready)

		rec, body := env.request(t, http.MethodPatch, "/cashier/orders/"+o.ID().String(),
			`{"action": "refund"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "action must be 'pay'", body["error"])
	})

	t.Run("order not ready", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Preparing)

		rec, _ := env.request(t, http.MethodPatch, "/cashier/orders/"+o.ID().String(),
			`{"action": "pay"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("already paid", func(t *testing.T) {
		env := newTestEnv()
		o := env.seedOrder(t, order.Paid)

		rec, _ := env.request(t, http.MethodPatch, "/cashier/orders/"+o.ID().String(),
			`{"action": "pay"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
