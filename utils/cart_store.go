package utils

import (
	"fmt"
	"sync"

	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
)

// CartStore is the persistence boundary for customer carts. Callers
// never touch cart rows directly; mutations write through to the
// database and the per-user cache is refreshed on the next load.
type CartStore interface {
	Load(userID uint) ([]models.CartItem, error)
	Save(item *models.CartItem) error
	SetQuantity(userID, productID uint, size, color string, quantity int) error
	Remove(userID, productID uint, size, color string) error
	Clear(userID uint) error
}

type dbCartStore struct {
	mu    sync.RWMutex
	cache map[uint][]models.CartItem
}

// Carts is the shared cart store
var Carts CartStore = &dbCartStore{cache: make(map[uint][]models.CartItem)}

func (s *dbCartStore) Load(userID uint) ([]models.CartItem, error) {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var items []models.CartItem
	if err := config.DB.Where("user_id = ?", userID).Preload("Product").Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %v", err)
	}

	s.mu.Lock()
	s.cache[userID] = items
	s.mu.Unlock()
	return items, nil
}

func (s *dbCartStore) Save(item *models.CartItem) error {
	if err := config.DB.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %v", err)
	}
	s.invalidate(item.UserID)
	return nil
}

func (s *dbCartStore) SetQuantity(userID, productID uint, size, color string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	err := config.DB.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, productID, size, color).
		Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("failed to update cart quantity: %v", err)
	}
	s.invalidate(userID)
	return nil
}

func (s *dbCartStore) Remove(userID, productID uint, size, color string) error {
	err := config.DB.
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, productID, size, color).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %v", err)
	}
	s.invalidate(userID)
	return nil
}

func (s *dbCartStore) Clear(userID uint) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %v", err)
	}
	s.invalidate(userID)
	return nil
}

func (s *dbCartStore) invalidate(userID uint) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}
