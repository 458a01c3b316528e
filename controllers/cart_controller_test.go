package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCartStore keeps cart lines in memory behind the CartStore
// interface so cart handlers can be exercised without a database.
type fakeCartStore struct {
	items map[uint][]models.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{items: make(map[uint][]models.CartItem)}
}

func (s *fakeCartStore) Load(userID uint) ([]models.CartItem, error) {
	return append([]models.CartItem(nil), s.items[userID]...), nil
}

func (s *fakeCartStore) Save(item *models.CartItem) error {
	lines := s.items[item.UserID]
	for i := range lines {
		if lines[i].ProductID == item.ProductID && lines[i].Size == item.Size && lines[i].Color == item.Color {
			lines[i] = *item
			s.items[item.UserID] = lines
			return nil
		}
	}
	s.items[item.UserID] = append(lines, *item)
	return nil
}

func (s *fakeCartStore) SetQuantity(userID, productID uint, size, color string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	lines := s.items[userID]
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Size == size && lines[i].Color == color {
			lines[i].Quantity = quantity
		}
	}
	s.items[userID] = lines
	return nil
}

func (s *fakeCartStore) Remove(userID, productID uint, size, color string) error {
	lines := s.items[userID]
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID && line.Size == size && line.Color == color {
			continue
		}
		kept = append(kept, line)
	}
	s.items[userID] = kept
	return nil
}

func (s *fakeCartStore) Clear(userID uint) error {
	delete(s.items, userID)
	return nil
}

func cartTestRouter(t *testing.T, store utils.CartStore, user models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := utils.Carts
	utils.Carts = store
	t.Cleanup(func() { utils.Carts = prev })

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user", user) })
	router.GET("/cart", GetCart)
	router.PUT("/cart/update", UpdateCartItem)
	router.DELETE("/cart/remove", RemoveFromCart)
	router.DELETE("/cart/clear", ClearCart)
	return router
}

func cartRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	return resp.Data
}

func TestGetCartComputesTotals(t *testing.T) {
	user := models.User{Model: gorm.Model{ID: 7}}
	store := newFakeCartStore()
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 1, Size: "M", Quantity: 2, Price: 100}))
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 2, Size: "L", Quantity: 1, Price: 200}))

	router := cartTestRouter(t, store, user)
	w := cartRequest(router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, w)
	assert.Equal(t, 400.0, data["subtotal"])
	assert.Equal(t, utils.DefaultDeliveryCharge, data["delivery_charge"])
	assert.Equal(t, 450.0, data["total"])
	assert.Len(t, data["items"], 2)
}

func TestGetCartEmpty(t *testing.T) {
	router := cartTestRouter(t, newFakeCartStore(), models.User{Model: gorm.Model{ID: 7}})
	w := cartRequest(router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, w)
	assert.Empty(t, data["items"])
	assert.Equal(t, 0.0, data["subtotal"])
	assert.Equal(t, 0.0, data["delivery_charge"])
	assert.Equal(t, 0.0, data["total"])
}

func TestUpdateCartItemClampsQuantity(t *testing.T) {
	store := newFakeCartStore()
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 1, Size: "M", Quantity: 2, Price: 50}))

	router := cartTestRouter(t, store, models.User{Model: gorm.Model{ID: 7}})
	w := cartRequest(router, http.MethodPut, "/cart/update", gin.H{
		"product_id": 1, "size": "M", "quantity": 25,
	})
	require.Equal(t, http.StatusOK, w.Code)

	items, err := store.Load(7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, utils.MaxCartQuantity, items[0].Quantity)
}

func TestUpdateCartItemUnknownLine(t *testing.T) {
	router := cartTestRouter(t, newFakeCartStore(), models.User{Model: gorm.Model{ID: 7}})
	w := cartRequest(router, http.MethodPut, "/cart/update", gin.H{
		"product_id": 9, "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromCartDeletesOnlyThatLine(t *testing.T) {
	store := newFakeCartStore()
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 1, Size: "M", Quantity: 1, Price: 50}))
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 1, Size: "L", Quantity: 1, Price: 50}))

	router := cartTestRouter(t, store, models.User{Model: gorm.Model{ID: 7}})
	w := cartRequest(router, http.MethodDelete, "/cart/remove", gin.H{
		"product_id": 1, "size": "M", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	items, err := store.Load(7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].Size)
}

func TestClearCartEmptiesCart(t *testing.T) {
	store := newFakeCartStore()
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 1, Quantity: 2, Price: 50}))
	require.NoError(t, store.Save(&models.CartItem{UserID: 7, ProductID: 2, Quantity: 1, Price: 80}))

	router := cartTestRouter(t, store, models.User{Model: gorm.Model{ID: 7}})
	w := cartRequest(router, http.MethodDelete, "/cart/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items, err := store.Load(7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFakeCartStoreRoundTrip(t *testing.T) {
	store := newFakeCartStore()
	item := models.CartItem{UserID: 7, ProductID: 3, Size: "S", Color: "red", Quantity: 4, Price: 12.5, Discount: 10}
	require.NoError(t, store.Save(&item))

	items, err := store.Load(7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}
