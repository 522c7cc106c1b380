package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes beyond what AutoMigrate ties
// to struct tags. Postgres only; other drivers rely on the tag indexes.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Job search and ordering
		{"jobs", "idx_jobs_active_created", "is_active, created_at DESC"},
		{"jobs", "idx_jobs_category", "category"},
		{"jobs", "idx_jobs_location", "location"},

		// Applicant listing per job, newest first
		{"applications", "idx_applications_job_created", "job_id, created_at DESC"},
		{"applications", "idx_applications_applicant", "applicant_id"},

		// Unread notification lookups
		{"notifications", "idx_notifications_user_read", "user_id, is_read"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
