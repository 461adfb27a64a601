package services

import (
	"context"
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// Carts idle longer than this are treated as abandoned and reset on access.
const cartTTL = 4 * time.Hour

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	PromoRepo   *repository.PromotionRepository
	AddressRepo *repository.AddressRepository
	RestRepo    *repository.RestaurantRepository
	Delivery    *DeliveryService
}

func NewCartService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	promoRepo *repository.PromotionRepository,
	addressRepo *repository.AddressRepository,
	restRepo *repository.RestaurantRepository,
	delivery *DeliveryService,
) *CartService {
	return &CartService{
		DB: db, CartRepo: cartRepo, CatalogRepo: catalogRepo, PromoRepo: promoRepo,
		AddressRepo: addressRepo, RestRepo: restRepo, Delivery: delivery,
	}
}

// GetOrCreate is idempotent; an expired cart is emptied and reused so the
// one-cart-per-customer invariant holds.
func (s *CartService) GetOrCreate(userID uint) (*entity.Cart, error) {
	c, err := s.CartRepo.GetOrCreateCart(userID, time.Now().Add(cartTTL))
	if err != nil {
		return nil, err
	}
	if c.Expired(time.Now()) {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.CartRepo.ClearCart(tx, userID); err != nil {
				return err
			}
			return tx.Model(c).Update("expires_at", time.Now().Add(cartTTL)).Error
		})
		if err != nil {
			return nil, err
		}
	}
	return s.CartRepo.GetCartWithItems(userID)
}

type SelectionIn struct {
	OptionValueID uint `json:"optionValueId" binding:"required"`
}

type ComboSelectionIn struct {
	ComboSlotID uint `json:"comboSlotId" binding:"required"`
	ProductID   uint `json:"productId" binding:"required"`
}

type AddToCartIn struct {
	RestaurantID    uint               `json:"restaurantId"`
	ProductID       *uint              `json:"productId"`
	ComboID         *uint              `json:"comboId"`
	VariantID       *uint              `json:"variantId"`
	Qty             int                `json:"qty" binding:"min=1"`
	Note            string             `json:"note"`
	Selections      []SelectionIn      `json:"selections"`
	ComboSelections []ComboSelectionIn `json:"comboSelections"`
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}
	if (in.ProductID == nil) == (in.ComboID == nil) {
		return ErrInvalidItemConfig
	}

	c, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}

	if in.RestaurantID != 0 {
		if c.RestaurantID != 0 && c.RestaurantID != in.RestaurantID {
			return ErrCartConflictRestaurant
		}
		if c.RestaurantID == 0 {
			rest, err := s.RestRepo.Get(in.RestaurantID)
			if err != nil {
				return err
			}
			if !rest.Active {
				return ErrItemUnavailable
			}
			c.RestaurantID = rest.ID
			c.Zone = rest.Zone
			if err := s.CartRepo.Save(s.DB, c); err != nil {
				return err
			}
		}
	}

	line, err := s.buildLine(in, c.Zone)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.UpsertItem(tx, c.ID, line); err != nil {
			return err
		}
		return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
			Update("expires_at", time.Now().Add(cartTTL)).Error
	})
}

// buildLine validates the item configuration and prices it for the zone.
func (s *CartService) buildLine(in *AddToCartIn, zone entity.Zone) (*entity.CartItem, error) {
	if in.ProductID != nil {
		return s.buildProductLine(in, zone)
	}
	return s.buildComboLine(in, zone)
}

func (s *CartService) buildProductLine(in *AddToCartIn, zone entity.Zone) (*entity.CartItem, error) {
	p, err := s.CatalogRepo.GetProductBasics(*in.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.Available {
		return nil, ErrItemUnavailable
	}

	var variant *entity.ProductVariant
	if in.VariantID != nil {
		variant, err = s.CatalogRepo.GetVariant(*in.VariantID)
		if err != nil {
			return nil, err
		}
		if variant.ProductID != p.ID {
			return nil, ErrInvalidItemConfig
		}
	} else {
		variant, err = s.CatalogRepo.DefaultVariant(p.ID)
		if err != nil {
			return nil, ErrInvalidItemConfig
		}
	}

	valIDs := make([]uint, 0, len(in.Selections))
	for _, sel := range in.Selections {
		valIDs = append(valIDs, sel.OptionValueID)
	}
	if len(valIDs) > 0 {
		cnt, err := s.CatalogRepo.CountOptionValuesBelongToProduct(p.ID, valIDs)
		if err != nil {
			return nil, err
		}
		if cnt != int64(len(valIDs)) {
			return nil, ErrInvalidItemConfig
		}
	}
	vals, err := s.CatalogRepo.GetOptionValuesByIDs(valIDs)
	if err != nil {
		return nil, err
	}

	picks := make(map[uint]int, len(vals))
	for _, v := range vals {
		picks[v.OptionID]++
	}

	// every required option must be covered by a selection
	required, err := s.CatalogRepo.RequiredOptionsForProduct(p.ID)
	if err != nil {
		return nil, err
	}
	for _, opt := range required {
		if picks[opt.ID] == 0 {
			return nil, ErrInvalidItemConfig
		}
	}

	// and no option may exceed its pick limit
	if len(picks) > 0 {
		optIDs := make([]uint, 0, len(picks))
		for id := range picks {
			optIDs = append(optIDs, id)
		}
		opts, err := s.CatalogRepo.GetOptionsByIDs(optIDs)
		if err != nil {
			return nil, err
		}
		for _, opt := range opts {
			if opt.MaxPicks > 0 && picks[opt.ID] > opt.MaxPicks {
				return nil, ErrInvalidItemConfig
			}
		}
	}

	unit := variant.PriceFor(zone)
	selRows := make([]entity.CartItemSelection, 0, len(vals))
	for _, v := range vals {
		if !v.Available {
			return nil, ErrItemUnavailable
		}
		unit += v.PriceAdjustment
		selRows = append(selRows, entity.CartItemSelection{
			OptionID: v.OptionID, OptionValueID: v.ID, PriceDelta: v.PriceAdjustment,
		})
	}

	vid := variant.ID
	return &entity.CartItem{
		ProductID: &p.ID, VariantID: &vid,
		Qty: in.Qty, UnitPrice: unit, Total: unit * int64(in.Qty), Note: in.Note,
		Selections: selRows,
	}, nil
}

func (s *CartService) buildComboLine(in *AddToCartIn, zone entity.Zone) (*entity.CartItem, error) {
	cb, err := s.CatalogRepo.GetCombo(*in.ComboID)
	if err != nil {
		return nil, err
	}
	if !cb.Available {
		return nil, ErrItemUnavailable
	}

	picked := make(map[uint]uint, len(in.ComboSelections)) // slot -> product
	for _, cs := range in.ComboSelections {
		picked[cs.ComboSlotID] = cs.ProductID
	}
	if len(picked) != len(cb.Slots) {
		return nil, ErrInvalidItemConfig
	}

	unit := cb.PriceFor(zone)
	rows := make([]entity.CartItemComboSelection, 0, len(cb.Slots))
	for _, slot := range cb.Slots {
		productID, ok := picked[slot.ID]
		if !ok {
			return nil, ErrInvalidItemConfig
		}
		var match *entity.ComboSlotItem
		for i := range slot.Items {
			if slot.Items[i].ProductID == productID {
				match = &slot.Items[i]
				break
			}
		}
		if match == nil {
			return nil, ErrInvalidItemConfig
		}
		unit += match.ExtraPrice
		rows = append(rows, entity.CartItemComboSelection{
			ComboSlotID: slot.ID, ProductID: productID, PriceDelta: match.ExtraPrice,
		})
	}

	return &entity.CartItem{
		ComboID: &cb.ID,
		Qty:     in.Qty, UnitPrice: unit, Total: unit * int64(in.Qty), Note: in.Note,
		ComboSelections: rows,
	}, nil
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

type CartSummary struct {
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

// Summary is a pure function of cart state and pricing zone:
// total = subtotal - discount + deliveryFee, never negative.
func (s *CartService) Summary(cart *entity.Cart) (*CartSummary, error) {
	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}

	var discount int64
	if cart.PromotionID != nil {
		promo, err := s.PromoRepo.Get(*cart.PromotionID)
		if err == nil && promo.Usable(time.Now(), subtotal) {
			discount = promo.DiscountOn(subtotal)
		}
	}

	var fee int64
	if cart.ServiceType == entity.ServiceDelivery && cart.RestaurantID != 0 {
		rest, err := s.RestRepo.Get(cart.RestaurantID)
		if err != nil {
			return nil, err
		}
		fee = rest.DeliveryFee
	}

	total := subtotal - discount + fee
	if total < 0 {
		total = 0
	}
	return &CartSummary{Subtotal: subtotal, Discount: discount, DeliveryFee: fee, Total: total}, nil
}

type CartValidation struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

func (s *CartService) Validate(cart *entity.Cart) (*CartValidation, error) {
	v := &CartValidation{Valid: true}
	fail := func(msg string) {
		v.Valid = false
		v.Messages = append(v.Messages, msg)
	}

	if len(cart.Items) == 0 {
		fail("cart is empty")
	}
	if cart.RestaurantID == 0 {
		fail("no restaurant assigned")
	} else {
		rest, err := s.RestRepo.Get(cart.RestaurantID)
		if err != nil {
			return nil, err
		}
		if !rest.Active {
			fail("restaurant is closed")
		}
	}
	if cart.ServiceType == entity.ServiceDelivery && cart.DeliveryAddressID == nil {
		fail("delivery requires an address")
	}

	for _, it := range cart.Items {
		switch {
		case it.ProductID != nil:
			p, err := s.CatalogRepo.GetProductBasics(*it.ProductID)
			if err != nil || !p.Available {
				fail("product no longer available")
			}
		case it.ComboID != nil:
			cb, err := s.CatalogRepo.GetCombo(*it.ComboID)
			if err != nil || !cb.Available {
				fail("combo no longer available")
			}
		}
	}
	return v, nil
}

type ServiceTypeIn struct {
	ServiceType  entity.ServiceType `json:"serviceType" binding:"required"`
	AddressID    *uint              `json:"addressId"`
	RestaurantID *uint              `json:"restaurantId"`
}

// SetServiceType switches pickup/delivery, re-resolves the restaurant and
// zone, and re-prices the cart when the zone changed.
func (s *CartService) SetServiceType(ctx context.Context, userID uint, in *ServiceTypeIn) (*entity.Cart, error) {
	if !in.ServiceType.Valid() {
		return nil, ErrInvalidItemConfig
	}
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	switch in.ServiceType {
	case entity.ServiceDelivery:
		if in.AddressID == nil {
			return nil, ErrDeliveryNeedsAddress
		}
		return s.SetDeliveryAddress(ctx, userID, *in.AddressID)
	default:
		cart.ServiceType = entity.ServicePickup
		cart.DeliveryAddressID = nil
		if in.RestaurantID != nil {
			rest, err := s.RestRepo.Get(*in.RestaurantID)
			if err != nil {
				return nil, err
			}
			cart.RestaurantID = rest.ID
			cart.Zone = rest.Zone
		}
		updates, err := s.zonePrices(cart)
		if err != nil {
			return nil, err
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.CartRepo.Save(tx, cart); err != nil {
				return err
			}
			return s.applyPrices(tx, updates)
		})
		if err != nil {
			return nil, err
		}
		return s.CartRepo.GetCartWithItems(userID)
	}
}

// SetDeliveryAddress validates the address against the geofences and assigns
// the matching restaurant and zone. Returns *DeliveryZoneError when no
// polygon contains the address.
func (s *CartService) SetDeliveryAddress(ctx context.Context, userID uint, addressID uint) (*entity.Cart, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	addr, err := s.AddressRepo.GetForUser(userID, addressID)
	if err != nil {
		return nil, err
	}

	res, err := s.Delivery.ValidateAddress(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &DeliveryZoneError{Lat: addr.Latitude, Lng: addr.Longitude, NearbyPickup: res.NearbyPickup}
	}

	cart.ServiceType = entity.ServiceDelivery
	cart.DeliveryAddressID = &addr.ID
	cart.RestaurantID = res.Restaurant.ID
	cart.Zone = res.Zone

	updates, err := s.zonePrices(cart)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.Save(tx, cart); err != nil {
			return err
		}
		return s.applyPrices(tx, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

// zonePrices recomputes unit prices from the stored selections for the cart's
// zone and returns the lines whose price moved. Catalog reads happen here, on
// the pooled handle, before the caller opens its write transaction.
func (s *CartService) zonePrices(cart *entity.Cart) (map[uint]int64, error) {
	updates := make(map[uint]int64)
	for _, it := range cart.Items {
		var unit int64
		switch {
		case it.VariantID != nil:
			variant, err := s.CatalogRepo.GetVariant(*it.VariantID)
			if err != nil {
				return nil, err
			}
			unit = variant.PriceFor(cart.Zone)
			for _, sel := range it.Selections {
				unit += sel.PriceDelta
			}
		case it.ComboID != nil:
			cb, err := s.CatalogRepo.GetCombo(*it.ComboID)
			if err != nil {
				return nil, err
			}
			unit = cb.PriceFor(cart.Zone)
			for _, sel := range it.ComboSelections {
				unit += sel.PriceDelta
			}
		default:
			continue
		}
		if unit != it.UnitPrice {
			updates[it.ID] = unit
		}
	}
	return updates, nil
}

func (s *CartService) applyPrices(tx *gorm.DB, updates map[uint]int64) error {
	for id, unit := range updates {
		if err := s.CartRepo.UpdateItemPrice(tx, id, unit); err != nil {
			return err
		}
	}
	return nil
}

func (s *CartService) ApplyPromo(userID uint, code string) error {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return err
	}
	promo, err := s.PromoRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromoNotUsable
		}
		return err
	}
	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	if !promo.Usable(time.Now(), subtotal) {
		return ErrPromoNotUsable
	}
	return s.DB.Model(&entity.Cart{}).Where("id = ?", cart.ID).
		Update("promotion_id", promo.ID).Error
}

func (s *CartService) RemovePromo(userID uint) error {
	return s.DB.Model(&entity.Cart{}).Where("user_id = ?", userID).
		Update("promotion_id", nil).Error
}
