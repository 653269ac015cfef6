package storage

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
)

// snapshot is the serialized form of the persisted state. Only users and
// carts survive a restart; the catalog is reseeded and everything else is
// considered server-derived.
type snapshot struct {
	Users     map[string]models.User       `json:"users"`
	Carts     map[string]models.Cart       `json:"carts"`
	CartItems map[string][]models.CartItem `json:"cart_items"`
}

// LoadSnapshot restores persisted users and carts. A missing file is not an
// error; a corrupt one is.
func (ms *MemStorage) LoadSnapshot(path string) error {
	log := logger.Get()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for uid, user := range snap.Users {
		ms.users[uid] = user
	}
	for cartID, cart := range snap.Carts {
		ms.carts[cartID] = cart
	}
	for cartID, items := range snap.CartItems {
		ms.cartItems[cartID] = items
	}
	log.Info().Int("users", len(snap.Users)).Int("carts", len(snap.Carts)).Msg("snapshot loaded")
	return nil
}

// SaveSnapshot writes persisted state out. Last write wins; there is no
// versioning scheme.
func (ms *MemStorage) SaveSnapshot(path string) error {
	if path == "" {
		return nil
	}
	ms.mu.RLock()
	snap := snapshot{
		Users:     ms.users,
		Carts:     ms.carts,
		CartItems: ms.cartItems,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	ms.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
