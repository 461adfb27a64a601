package services

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

// Status transitions use a compare-and-swap guard: the UPDATE only fires when
// the order is still in the expected state, so a lost race or an illegal
// transition both surface as ErrInvalidTransition.

func (s *OrderService) transition(actorID, orderID, fromID, toID uint, note string, extra map[string]any) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, toID, extra)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return s.Repo.AppendStatusHistory(tx, &entity.OrderStatusHistory{
			OrderID: o.ID, FromStatusID: fromID, ToStatusID: toID,
			ChangedByID: actorID, Note: note,
		})
	})
	if err != nil {
		return err
	}
	s.notify(o.UserID, o.ID, toID)
	return nil
}

// ----- Staff/admin actions -----

func (s *OrderService) Accept(actorID, orderID uint) error {
	estimated := time.Now().Add(defaultPrepTime)
	return s.transition(actorID, orderID, s.Status.Created, s.Status.Preparing,
		"accepted by kitchen", map[string]any{"estimated_ready_at": estimated})
}

func (s *OrderService) MarkReady(actorID, orderID uint) error {
	return s.transition(actorID, orderID, s.Status.Preparing, s.Status.Ready,
		"ready", map[string]any{"ready_at": time.Now()})
}

func (s *OrderService) MarkDelivered(actorID, orderID uint) error {
	return s.transition(actorID, orderID, s.Status.Ready, s.Status.Delivered,
		"delivered", map[string]any{"delivered_at": time.Now()})
}

func (s *OrderService) Complete(actorID, orderID uint) error {
	return s.transition(actorID, orderID, s.Status.Delivered, s.Status.Completed, "completed", nil)
}

// ----- Customer cancel -----

// Cancel is allowed from Created and Preparing only. Redeemed points are
// refunded and earned points revoked in the same transaction as the flip.
func (s *OrderService) Cancel(userID, orderID uint, reason string) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		fromID := o.OrderStatusID
		if fromID != s.Status.Created && fromID != s.Status.Preparing {
			return ErrInvalidTransition
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, s.Status.Cancelled,
			map[string]any{"cancel_reason": reason})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		if o.PointsRedeemed > 0 {
			if err := s.Points.Adjust(tx, userID, o.PointsRedeemed, "refund for cancelled order "+o.Number); err != nil {
				return err
			}
		}
		if o.PointsEarned > 0 {
			if err := s.Points.Adjust(tx, userID, -o.PointsEarned, "revoked for cancelled order "+o.Number); err != nil {
				return err
			}
		}
		return s.Repo.AppendStatusHistory(tx, &entity.OrderStatusHistory{
			OrderID: o.ID, FromStatusID: fromID, ToStatusID: s.Status.Cancelled,
			ChangedByID: userID, Note: reason,
		})
	})
	if err != nil {
		return err
	}
	s.notify(o.UserID, o.ID, s.Status.Cancelled)
	return nil
}
