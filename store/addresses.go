package store

import (
	"context"
	"fmt"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/google/uuid"
)

// Address books keep exactly one default address whenever any address
// exists.

func (s *Store) Addresses(userID string) []models.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Address(nil), s.addresses[userID]...)
}

// AddAddress saves a new address. The first address, or one flagged as
// default, becomes the default.
func (s *Store) AddAddress(ctx context.Context, userID string, addr models.Address) (models.Address, error) {
	addr.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]models.Address(nil), s.addresses[userID]...)
	list = append(list, addr)
	if len(list) == 1 || addr.IsDefault {
		setDefault(list, addr.ID)
	}
	if err := s.saveAddressesLocked(ctx, userID, list); err != nil {
		return models.Address{}, err
	}
	return list[len(list)-1], nil
}

// UpdateAddress replaces an address. Clearing the flag on the current
// default is ignored so the book never loses its default.
func (s *Store) UpdateAddress(ctx context.Context, userID, id string, addr models.Address) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]models.Address(nil), s.addresses[userID]...)
	i := addressIndex(list, id)
	if i < 0 {
		return models.Address{}, ErrAddressNotFound
	}
	makeDefault := addr.IsDefault
	addr.ID = id
	addr.IsDefault = list[i].IsDefault
	list[i] = addr
	if makeDefault {
		setDefault(list, id)
	}
	if err := s.saveAddressesLocked(ctx, userID, list); err != nil {
		return models.Address{}, err
	}
	return list[i], nil
}

// DeleteAddress removes an address. Deleting the default promotes the first
// remaining address.
func (s *Store) DeleteAddress(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.addresses[userID]
	i := addressIndex(current, id)
	if i < 0 {
		return ErrAddressNotFound
	}
	list := make([]models.Address, 0, len(current)-1)
	list = append(list, current[:i]...)
	list = append(list, current[i+1:]...)
	if current[i].IsDefault && len(list) > 0 {
		setDefault(list, list[0].ID)
	}
	return s.saveAddressesLocked(ctx, userID, list)
}

// SetDefaultAddress makes id the only default address.
func (s *Store) SetDefaultAddress(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]models.Address(nil), s.addresses[userID]...)
	if addressIndex(list, id) < 0 {
		return ErrAddressNotFound
	}
	setDefault(list, id)
	return s.saveAddressesLocked(ctx, userID, list)
}

func (s *Store) saveAddressesLocked(ctx context.Context, userID string, list []models.Address) error {
	if s.repo != nil {
		if err := s.repo.SaveAddresses(ctx, userID, list); err != nil {
			return fmt.Errorf("save addresses: %w", err)
		}
	}
	s.addresses[userID] = list
	return nil
}

func addressIndex(list []models.Address, id string) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func setDefault(list []models.Address, id string) {
	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}
}
