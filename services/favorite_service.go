package services

import (
	"backend/entity"
	"backend/repository"
)

type FavoriteService struct {
	Repo    *repository.FavoriteRepository
	Catalog *repository.CatalogRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, catalog *repository.CatalogRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, Catalog: catalog}
}

// FavoriteItem is a favorite or recent view resolved against the catalog.
type FavoriteItem struct {
	ItemType  entity.ItemType `json:"itemType"`
	ItemID    uint            `json:"itemId"`
	Name      string          `json:"name"`
	Picture   string          `json:"picture"`
	Available bool            `json:"available"`
}

func (s *FavoriteService) resolve(itemType entity.ItemType, itemID uint) (*FavoriteItem, error) {
	switch itemType {
	case entity.ItemCombo:
		cb, err := s.Catalog.GetCombo(itemID)
		if err != nil {
			return nil, err
		}
		return &FavoriteItem{ItemType: itemType, ItemID: itemID,
			Name: cb.Name, Picture: cb.Picture, Available: cb.Available}, nil
	default:
		p, err := s.Catalog.GetProduct(itemID)
		if err != nil {
			return nil, err
		}
		return &FavoriteItem{ItemType: itemType, ItemID: itemID,
			Name: p.Name, Picture: p.Picture, Available: p.Available}, nil
	}
}

// Toggle flips the favorite flag after checking the item exists; returns true
// when the item ends up favorited.
func (s *FavoriteService) Toggle(userID uint, itemType entity.ItemType, itemID uint) (bool, error) {
	if _, err := s.resolve(itemType, itemID); err != nil {
		return false, err
	}
	return s.Repo.Toggle(userID, itemType, itemID)
}

// List resolves the user's favorites; items removed from the catalog since
// they were favorited are dropped from the response.
func (s *FavoriteService) List(userID uint) ([]FavoriteItem, error) {
	favs, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]FavoriteItem, 0, len(favs))
	for _, f := range favs {
		item, err := s.resolve(f.ItemType, f.ItemID)
		if err != nil {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (s *FavoriteService) RecordView(userID uint, itemType entity.ItemType, itemID uint) error {
	if _, err := s.resolve(itemType, itemID); err != nil {
		return err
	}
	return s.Repo.RecordView(&entity.ProductView{UserID: userID, ItemType: itemType, ItemID: itemID})
}

// RecentViews returns the latest resolved views, deduplicated by item.
func (s *FavoriteService) RecentViews(userID uint, limit int) ([]FavoriteItem, error) {
	views, err := s.Repo.RecentViews(userID, limit)
	if err != nil {
		return nil, err
	}
	type key struct {
		t  entity.ItemType
		id uint
	}
	seen := make(map[key]bool, len(views))
	out := make([]FavoriteItem, 0, len(views))
	for _, v := range views {
		k := key{v.ItemType, v.ItemID}
		if seen[k] {
			continue
		}
		seen[k] = true
		item, err := s.resolve(v.ItemType, v.ItemID)
		if err != nil {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}
