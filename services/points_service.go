package services

import (
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

const (
	// 1 point per Q10.00 (1000 centavos) of order total.
	pointsEarnRateCentavos = 1000
	// Each redeemed point is worth 10 centavos of discount.
	PointValueCentavos = 10
)

type PointsService struct {
	DB       *gorm.DB
	Repo     *repository.PointsRepository
	PassRepo *repository.PassRepository
}

func NewPointsService(db *gorm.DB, repo *repository.PointsRepository, passRepo *repository.PassRepository) *PointsService {
	return &PointsService{DB: db, Repo: repo, PassRepo: passRepo}
}

// append writes the ledger entry and bumps the user's Apple pass so devices
// see the balance change on their next updated-serials poll.
func (s *PointsService) append(tx *gorm.DB, t *entity.PointsTransaction) error {
	if err := s.Repo.Append(tx, t); err != nil {
		return err
	}
	if s.PassRepo == nil {
		return nil
	}
	return s.PassRepo.TouchForUser(tx, t.UserID, entity.PassApple)
}

func (s *PointsService) Balance(userID uint) (int, error) {
	return s.Repo.Balance(s.DB, userID)
}

func (s *PointsService) History(userID uint, limit int) ([]entity.PointsTransaction, error) {
	return s.Repo.History(userID, limit)
}

func EarnedForTotal(totalCentavos int64) int {
	if totalCentavos <= 0 {
		return 0
	}
	return int(totalCentavos / pointsEarnRateCentavos)
}

// Redeem appends a negative entry inside the caller's transaction; the
// balance check and the write share the tx so concurrent redemptions cannot
// overdraw past what the database serializes.
func (s *PointsService) Redeem(tx *gorm.DB, userID uint, points int, detail, refType string, refID uint) error {
	if points <= 0 {
		return ErrInsufficientPoints
	}
	balance, err := s.Repo.Balance(tx, userID)
	if err != nil {
		return err
	}
	if balance < points {
		return ErrInsufficientPoints
	}
	return s.append(tx, &entity.PointsTransaction{
		UserID: userID, Points: -points, Type: entity.PointsRedeemed,
		Detail: detail, ReferenceType: refType, ReferenceID: refID,
	})
}

func (s *PointsService) Earn(tx *gorm.DB, userID uint, points int, detail, refType string, refID uint) error {
	if points <= 0 {
		return nil
	}
	return s.append(tx, &entity.PointsTransaction{
		UserID: userID, Points: points, Type: entity.PointsEarned,
		Detail: detail, ReferenceType: refType, ReferenceID: refID,
	})
}

func (s *PointsService) Adjust(tx *gorm.DB, userID uint, points int, detail string) error {
	if points == 0 {
		return nil
	}
	return s.append(tx, &entity.PointsTransaction{
		UserID: userID, Points: points, Type: entity.PointsAdjustment, Detail: detail,
	})
}

func (s *PointsService) ListRewards() ([]entity.Reward, error) {
	return s.Repo.ListRewards(true)
}

func (s *PointsService) RedeemReward(userID, rewardID uint) (*entity.Reward, error) {
	reward, err := s.Repo.GetReward(rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.Active {
		return nil, ErrItemUnavailable
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Redeem(tx, userID, reward.PointsCost, "reward: "+reward.Name, "reward", reward.ID)
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// ExpirePoints appends expired entries for points earned before the cutoff
// and not yet consumed, treating every negative entry as consuming the oldest
// points first. Admin maintenance endpoint; there is no background job.
func (s *PointsService) ExpirePoints(cutoff time.Time) (int, error) {
	userIDs, err := s.Repo.UserIDsWithTransactions()
	if err != nil {
		return 0, err
	}
	expiredTotal := 0
	for _, uid := range userIDs {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			balance, err := s.Repo.Balance(tx, uid)
			if err != nil {
				return err
			}
			earnedBefore, err := s.Repo.EarnedBefore(tx, uid, cutoff)
			if err != nil {
				return err
			}
			// negatives = balance - all positives; FIFO consumption means the
			// old positives are eaten first.
			positives, err := s.Repo.EarnedBefore(tx, uid, time.Now().Add(time.Hour))
			if err != nil {
				return err
			}
			remainingOld := earnedBefore + (balance - positives)
			if remainingOld > balance {
				remainingOld = balance
			}
			if remainingOld <= 0 {
				return nil
			}
			expiredTotal += remainingOld
			return s.append(tx, &entity.PointsTransaction{
				UserID: uid, Points: -remainingOld, Type: entity.PointsExpired,
				Detail: "points expired " + cutoff.Format("2006-01-02"),
			})
		})
		if err != nil {
			return expiredTotal, err
		}
	}
	return expiredTotal, nil
}
