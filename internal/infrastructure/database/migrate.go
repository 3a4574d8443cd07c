package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// Migrate runs the schema migration and installs the cascade constraints
// that keep share-linked content consistent with its link.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.App{},
		&model.Update{},
		&model.Deployment{},
		&model.ShareLink{},
		&model.Feedback{},
		&model.ClientTask{},
		&model.TaskCompletion{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Feedback and client tasks reference share links by code, not by id,
	// so the cascade has to be installed against the code column. Revoking
	// a link removes every row it ever admitted.
	cascades := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_feedbacks_share_code",
			sql: `ALTER TABLE feedbacks
				ADD CONSTRAINT fk_feedbacks_share_code
				FOREIGN KEY (share_code) REFERENCES share_links(code)
				ON DELETE CASCADE`,
		},
		{
			name: "fk_client_tasks_share_code",
			sql: `ALTER TABLE client_tasks
				ADD CONSTRAINT fk_client_tasks_share_code
				FOREIGN KEY (share_code) REFERENCES share_links(code)
				ON DELETE CASCADE`,
		},
	}

	for _, c := range cascades {
		var exists bool
		err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM information_schema.table_constraints WHERE constraint_name = ?)",
			c.name,
		).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := db.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
		log.Info("Cascade constraint installed", zap.String("constraint", c.name))
	}

	log.Info("Database migration completed")
	return nil
}
