package repository

import (
	"github.com/lshigami/MedQuest/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptTotals is the per-user aggregate over the attempts table.
type AttemptTotals struct {
	Total   int64
	Correct int64
}

// SpecialtyTally groups a user's attempts by the specialty of the answered question.
type SpecialtyTally struct {
	Specialty string
	Count     int64
	Correct   int64
}

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	TotalsByUser(userID uint) (AttemptTotals, error)
	SpecialtyTalliesByUser(userID uint) ([]SpecialtyTally, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Omit(clause.Associations).Create(attempt).Error
}

const correctSum = "COALESCE(SUM(CASE WHEN attempts.is_correct THEN 1 ELSE 0 END), 0)"

func (r *attemptRepository) TotalsByUser(userID uint) (AttemptTotals, error) {
	var totals AttemptTotals
	err := r.db.Table("attempts").
		Select("COUNT(*) AS total, "+correctSum+" AS correct").
		Where("attempts.user_id = ?", userID).
		Scan(&totals).Error
	return totals, err
}

// SpecialtyTalliesByUser joins on questions without the soft-delete filter, so
// attempts on retired questions still land in their specialty.
func (r *attemptRepository) SpecialtyTalliesByUser(userID uint) ([]SpecialtyTally, error) {
	var tallies []SpecialtyTally
	err := r.db.Table("attempts").
		Select("questions.specialty AS specialty, COUNT(*) AS count, "+correctSum+" AS correct").
		Joins("JOIN questions ON questions.id = attempts.question_id").
		Where("attempts.user_id = ?", userID).
		Group("questions.specialty").
		Order("questions.specialty asc").
		Scan(&tallies).Error
	return tallies, err
}
