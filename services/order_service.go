package services

import (
	"context"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPrepTime = 30 * time.Minute

type StatusIDs struct {
	Created   uint
	Preparing uint
	Ready     uint
	Delivered uint
	Completed uint
	Cancelled uint
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	RestRepo    *repository.RestaurantRepository
	CatalogRepo *repository.CatalogRepository
	AddressRepo *repository.AddressRepository
	NitRepo     *repository.NitRepository
	CartSvc     *CartService
	Points      *PointsService
	Hub         *ws.Hub

	Status StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	catalogRepo *repository.CatalogRepository,
	addressRepo *repository.AddressRepository,
	nitRepo *repository.NitRepository,
	cartSvc *CartService,
	points *PointsService,
	hub *ws.Hub,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo,
		CatalogRepo: catalogRepo, AddressRepo: addressRepo, NitRepo: nitRepo,
		CartSvc: cartSvc, Points: points, Hub: hub,
	}
	s.loadStatusIDs()
	return s
}

func (s *OrderService) loadStatusIDs() {
	if id, err := s.Repo.GetStatusIDByName("Created"); err == nil {
		s.Status.Created = id
	}
	if id, err := s.Repo.GetStatusIDByName("Preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := s.Repo.GetStatusIDByName("Ready"); err == nil {
		s.Status.Ready = id
	}
	if id, err := s.Repo.GetStatusIDByName("Delivered"); err == nil {
		s.Status.Delivered = id
	}
	if id, err := s.Repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := s.Repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}
}

type CheckoutReq struct {
	RedeemPoints int   `json:"redeemPoints"`
	NitID        *uint `json:"nitId"`
}

type CreateOrderRes struct {
	ID             uint   `json:"id"`
	Number         string `json:"number"`
	Total          int64  `json:"total"`
	PointsRedeemed int    `json:"pointsRedeemed"`
	PointsEarned   int    `json:"pointsEarned"`
}

// CreateFromCart snapshots the validated cart into an immutable order,
// applies points redemption, earns points on the final total, and closes the
// cart — all in one transaction.
func (s *OrderService) CreateFromCart(ctx context.Context, userID uint, in *CheckoutReq) (*CreateOrderRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	validation, err := s.CartSvc.Validate(cart)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, &CartInvalidError{Messages: validation.Messages}
	}

	var deliveryAddr *entity.CustomerAddress
	if cart.ServiceType == entity.ServiceDelivery {
		deliveryAddr, err = s.AddressRepo.GetForUser(userID, *cart.DeliveryAddressID)
		if err != nil {
			return nil, err
		}
		res, err := s.CartSvc.Delivery.ValidateAddress(ctx, deliveryAddr)
		if err != nil {
			return nil, err
		}
		if !res.Valid {
			return nil, &DeliveryZoneError{
				Lat: deliveryAddr.Latitude, Lng: deliveryAddr.Longitude,
				NearbyPickup: res.NearbyPickup,
			}
		}
	}

	summary, err := s.CartSvc.Summary(cart)
	if err != nil {
		return nil, err
	}

	redeem := in.RedeemPoints
	if redeem < 0 {
		redeem = 0
	}
	if max := int(summary.Total / PointValueCentavos); redeem > max {
		redeem = max
	}
	pointsDiscount := int64(redeem) * PointValueCentavos
	total := summary.Total - pointsDiscount
	earned := EarnedForTotal(total)

	var nit *entity.CustomerNit
	if in.NitID != nil {
		nit, err = s.NitRepo.GetForUser(userID, *in.NitID)
		if err != nil {
			return nil, err
		}
	} else if def, err := s.NitRepo.DefaultForUser(userID); err == nil {
		nit = def
	}

	estimated := time.Now().Add(defaultPrepTime)
	order := entity.Order{
		Number:         uuid.NewString(),
		Subtotal:       summary.Subtotal,
		Discount:       summary.Discount,
		PointsDiscount: pointsDiscount,
		DeliveryFee:    summary.DeliveryFee,
		Total:          total,
		PointsRedeemed: redeem,
		PointsEarned:   earned,
		ServiceType:    cart.ServiceType,
		Zone:           cart.Zone,
		UserID:         userID,
		RestaurantID:   cart.RestaurantID,
		PromotionID:    cart.PromotionID,
		OrderStatusID:  s.Status.Created,
		EstimatedReadyAt: &estimated,
	}
	if deliveryAddr != nil {
		order.DeliveryStreet = deliveryAddr.Street
		order.DeliveryCity = deliveryAddr.City
		order.DeliveryLat = deliveryAddr.Latitude
		order.DeliveryLng = deliveryAddr.Longitude
	}
	if nit != nil {
		order.NitNumber = nit.Nit
		order.NitName = nit.Name
	}

	// catalog names resolve before the transaction so no pooled read runs
	// while it holds the connection
	orderItems := s.snapshotItems(cart)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &orderItems[i]); err != nil {
				return err
			}
		}

		if redeem > 0 {
			if err := s.Points.Redeem(tx, userID, redeem, "order "+order.Number, "order", order.ID); err != nil {
				return err
			}
		}
		if err := s.Points.Earn(tx, userID, earned, "order "+order.Number, "order", order.ID); err != nil {
			return err
		}

		if err := s.Repo.AppendStatusHistory(tx, &entity.OrderStatusHistory{
			OrderID: order.ID, ToStatusID: s.Status.Created, ChangedByID: userID, Note: "order placed",
		}); err != nil {
			return err
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.notify(userID, order.ID, s.Status.Created)
	return &CreateOrderRes{
		ID: order.ID, Number: order.Number, Total: order.Total,
		PointsRedeemed: redeem, PointsEarned: earned,
	}, nil
}

// snapshotItems copies the cart lines into order rows, including the combo
// slot picks so the order can be reconstructed later.
func (s *OrderService) snapshotItems(cart *entity.Cart) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		oi := entity.OrderItem{
			ProductID: it.ProductID,
			ComboID:   it.ComboID,
			VariantID: it.VariantID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
			Note:      it.Note,
			ItemName:  s.itemName(&it),
		}
		for _, sel := range it.Selections {
			oi.Selections = append(oi.Selections, entity.OrderItemSelection{
				OptionID:      sel.OptionID,
				OptionValueID: sel.OptionValueID,
				ValueName:     s.optionValueName(sel.OptionValueID),
				PriceDelta:    sel.PriceDelta,
			})
		}
		for _, cs := range it.ComboSelections {
			oi.ComboSelections = append(oi.ComboSelections, entity.OrderItemComboSelection{
				ComboSlotID: cs.ComboSlotID,
				ProductID:   cs.ProductID,
				ProductName: s.productName(cs.ProductID),
				PriceDelta:  cs.PriceDelta,
			})
		}
		out = append(out, oi)
	}
	return out
}

func (s *OrderService) itemName(it *entity.CartItem) string {
	switch {
	case it.ProductID != nil:
		if p, err := s.CatalogRepo.GetProductBasics(*it.ProductID); err == nil {
			return p.Name
		}
	case it.ComboID != nil:
		if cb, err := s.CatalogRepo.GetCombo(*it.ComboID); err == nil {
			return cb.Name
		}
	}
	return ""
}

func (s *OrderService) optionValueName(valueID uint) string {
	vals, err := s.CatalogRepo.GetOptionValuesByIDs([]uint{valueID})
	if err != nil || len(vals) == 0 {
		return ""
	}
	return vals[0].Name
}

func (s *OrderService) productName(productID uint) string {
	if p, err := s.CatalogRepo.GetProductBasics(productID); err == nil {
		return p.Name
	}
	return ""
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order   *entity.Order               `json:"order"`
	Status  string                      `json:"status"`
	Items   []entity.OrderItem          `json:"items"`
	History []entity.OrderStatusHistory `json:"history"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.GetStatusHistory(o.ID)
	if err != nil {
		return nil, err
	}
	name, _ := s.Repo.GetStatusName(o.OrderStatusID)
	return &OrderDetail{Order: o, Status: name, Items: items, History: history}, nil
}

// ----- Reorder -----

// Reorder pre-populates a fresh cart from a past order, re-priced and
// re-validated against the current catalog. Combos are rebuilt from the
// snapshotted slot picks; lines that no longer resolve are skipped and
// reported by name.
func (s *OrderService) Reorder(userID, orderID uint) (*entity.Cart, []string, error) {
	past, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.Repo.GetOrderItems(past.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.CartSvc.Clear(userID); err != nil {
		return nil, nil, err
	}

	var skipped []string
	for _, it := range items {
		in := &AddToCartIn{
			RestaurantID: past.RestaurantID,
			ProductID:    it.ProductID,
			ComboID:      it.ComboID,
			VariantID:    it.VariantID,
			Qty:          it.Qty,
			Note:         it.Note,
		}
		for _, sel := range it.Selections {
			in.Selections = append(in.Selections, SelectionIn{OptionValueID: sel.OptionValueID})
		}
		for _, cs := range it.ComboSelections {
			in.ComboSelections = append(in.ComboSelections, ComboSelectionIn{ComboSlotID: cs.ComboSlotID, ProductID: cs.ProductID})
		}
		if err := s.CartSvc.Add(userID, in); err != nil {
			skipped = append(skipped, it.ItemName)
		}
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	return cart, skipped, err
}

func (s *OrderService) notify(userID, orderID, statusID uint) {
	if s.Hub == nil {
		return
	}
	name, err := s.Repo.GetStatusName(statusID)
	if err != nil {
		return
	}
	s.Hub.Notify(userID, ws.StatusEvent{OrderID: orderID, Status: name})
}
