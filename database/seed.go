package database

import (
	"fmt"

	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SampleQuestions is the starter bank inserted into an empty questions table.
func SampleQuestions() []model.Question {
	return []model.Question{
		{
			Scenario:      "A 45-year-old male presents with sudden onset crushing chest pain radiating to the left arm. ECG shows ST-segment elevation in leads II, III, and aVF. What is the most likely diagnosis?",
			Options:       []string{"Anterior MI", "Inferior MI", "Lateral MI", "Pericarditis"},
			CorrectAnswer: 1,
			Explanation:   "ST elevation in II, III, and aVF indicates an inferior wall myocardial infarction, usually involving the right coronary artery.",
			Specialty:     "Internal Medicine",
			Format:        "clinical scenario",
		},
		{
			Scenario:      "Which of the following is the most common cause of acute appendicitis in children?",
			Options:       []string{"Fecalith", "Lymphoid hyperplasia", "Foreign body", "Parasitic infection"},
			CorrectAnswer: 1,
			Explanation:   "In children, lymphoid hyperplasia is the most common cause of appendiceal obstruction leading to appendicitis.",
			Specialty:     "Surgery",
			Format:        "basic sciences",
		},
		{
			Scenario:      "A 6-month-old infant is brought to the clinic for a routine check-up. The mother is concerned about the timing of the MMR vaccine. According to standard schedules, when should the first dose be given?",
			Options:       []string{"6 months", "9 months", "12-15 months", "18 months"},
			CorrectAnswer: 2,
			Explanation:   "The first dose of the MMR vaccine is typically administered between 12 and 15 months of age.",
			Specialty:     "Pediatrics",
			Format:        "general practice",
		},
	}
}

// Seed inserts the admin account when users is empty and the sample bank when
// questions is empty. Each table is checked independently.
func Seed(db *gorm.DB, seed config.Seed, bcryptCost int) error {
	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("hashing seed admin password: %w", err)
		}
		admin := model.User{
			Email:              seed.AdminEmail,
			Password:           string(hash),
			Role:               model.RoleAdmin,
			SubscriptionStatus: model.SubscriptionActive,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seeding admin: %w", err)
		}
		log.Info().Str("email", admin.Email).Msg("Seeded admin account")
	}

	// Unscoped so a bank whose questions were all soft-deleted is not reseeded.
	var questionCount int64
	if err := db.Unscoped().Model(&model.Question{}).Count(&questionCount).Error; err != nil {
		return fmt.Errorf("counting questions: %w", err)
	}
	if questionCount == 0 {
		samples := SampleQuestions()
		if err := db.Create(&samples).Error; err != nil {
			return fmt.Errorf("seeding questions: %w", err)
		}
		log.Info().Int("count", len(samples)).Msg("Seeded sample questions")
	}
	return nil
}
