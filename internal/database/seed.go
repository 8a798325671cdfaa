package database

import (
	"strings"

	"github.com/hireflow/formstate/data"
	"github.com/hireflow/formstate/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed loads the embedded reference data. A no-op when categories already
// exist, so it is safe to run at every boot.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("reference data present, skipping seed", zap.Int64("categories", count))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, statement := range splitStatements(data.SeedReferenceSQL) {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		log.Info("reference data seeded")
		return nil
	})
}

// splitStatements strips comment lines and splits the script on semicolons.
// The seed script carries no semicolons inside values.
func splitStatements(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var statements []string
	for _, chunk := range strings.Split(strings.Join(lines, "\n"), ";") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			statements = append(statements, chunk)
		}
	}
	return statements
}
