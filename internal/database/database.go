package database

import (
	"github.com/jonar43/portfolio-api/internal/config"
	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Warn
	if !cfg.IsProduction() {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Project{},
		&model.AboutSection{},
		&model.ContactInfo{},
		&model.SiteSettings{},
	)
	if err != nil {
		return err
	}

	// Refresh token lookups are always by token value; expiry sweep scans by
	// expires_at.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires_at ON refresh_tokens(expires_at)")

	// Public project listing is ordered and usually filtered by published.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_projects_published_order ON projects(published, "order")`)

	return nil
}
