package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PointsRepository struct{ DB *gorm.DB }

func NewPointsRepository(db *gorm.DB) *PointsRepository { return &PointsRepository{DB: db} }

func (r *PointsRepository) Balance(tx *gorm.DB, userID uint) (int, error) {
	var row struct{ Balance *int }
	err := tx.Model(&entity.PointsTransaction{}).
		Select("SUM(points) AS balance").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Balance == nil {
		return 0, nil
	}
	return *row.Balance, nil
}

func (r *PointsRepository) Append(tx *gorm.DB, t *entity.PointsTransaction) error {
	return tx.Create(t).Error
}

func (r *PointsRepository) History(userID uint, limit int) ([]entity.PointsTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.PointsTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// EarnedBefore sums positive entries older than the cutoff, used by the
// expiry sweep to cap how much can still expire. Takes the caller's tx like
// Balance does so the sweep reads its own snapshot.
func (r *PointsRepository) EarnedBefore(tx *gorm.DB, userID uint, cutoff time.Time) (int, error) {
	var row struct{ Total *int }
	err := tx.Model(&entity.PointsTransaction{}).
		Select("SUM(points) AS total").
		Where("user_id = ? AND points > 0 AND created_at < ?", userID, cutoff).
		Scan(&row).Error
	if err != nil || row.Total == nil {
		return 0, err
	}
	return *row.Total, nil
}

func (r *PointsRepository) UserIDsWithTransactions() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.PointsTransaction{}).
		Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

func (r *PointsRepository) GetReward(id uint) (*entity.Reward, error) {
	var rw entity.Reward
	if err := r.DB.First(&rw, id).Error; err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *PointsRepository) ListRewards(onlyActive bool) ([]entity.Reward, error) {
	q := r.DB.Order("points_cost ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var out []entity.Reward
	err := q.Find(&out).Error
	return out, err
}
