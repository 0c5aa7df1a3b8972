package repository

import (
	"github.com/lshigami/MedQuest/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindIDs(specialty string) ([]uint, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	Count() (int64, error)
	Specialties() ([]string, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindAll returns the whole active bank, newest first.
func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Order("id desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindIDs lists active question IDs in ascending order, optionally for one specialty.
func (r *questionRepository) FindIDs(specialty string) ([]uint, error) {
	var ids []uint
	query := r.db.Model(&model.Question{})
	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	if err := query.Order("id asc").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// FindByIDs loads the given questions in no particular order. Missing IDs are skipped.
func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) Specialties() ([]string, error) {
	var specialties []string
	err := r.db.Model(&model.Question{}).
		Distinct().
		Order("specialty asc").
		Pluck("specialty", &specialties).Error
	return specialties, err
}

// Delete soft-deletes; deleting a missing or already deleted row affects nothing and is not an error.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
