package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	Status    *StatusIDs
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, orderRepo *repository.OrderRepository, status *StatusIDs) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo, Status: status}
}

type CreateReviewIn struct {
	FoodRating     int    `json:"foodRating" binding:"required,min=1,max=5"`
	ServiceRating  int    `json:"serviceRating" binding:"required,min=1,max=5"`
	DeliveryRating int    `json:"deliveryRating" binding:"required,min=1,max=5"`
	OverallRating  int    `json:"overallRating" binding:"required,min=1,max=5"`
	Comment        string `json:"comment"`
}

// Create allows one review per order, only after the order reached Delivered
// or Completed.
func (s *ReviewService) Create(userID, orderID uint, in *CreateReviewIn) (*entity.OrderReview, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderStatusID != s.Status.Delivered && o.OrderStatusID != s.Status.Completed {
		return nil, ErrReviewNotAllowed
	}
	exists, err := s.Repo.ExistsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewNotAllowed
	}

	rev := &entity.OrderReview{
		OrderID: o.ID, UserID: userID,
		FoodRating: in.FoodRating, ServiceRating: in.ServiceRating,
		DeliveryRating: in.DeliveryRating, OverallRating: in.OverallRating,
		Comment: in.Comment,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}
