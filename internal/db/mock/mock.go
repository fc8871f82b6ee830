package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "petroflow/internal/log"
	"petroflow/internal/theme"
	"petroflow/models"
)

// New returns an in-memory sqlite database seeded with representative
// distributor data.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:petroflow-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.ThemePreset{},
		&models.StorageTank{},
		&models.Delivery{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	gulfline := &models.Tenant{
		Name:        "Gulfline Fuels",
		Slug:        "gulfline",
		BasePreset:  models.ThemeDerrickNight,
		BrandColors: `{"primary":"#7dd3fc"}`,
	}
	if err := db.WithContext(ctx).Create(gulfline).Error; err != nil {
		return err
	}

	password, err := bcrypt.GenerateFromPassword([]byte("terminal"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Dana Alvarez",
		Email:        "dana@gulfline.example",
		PasswordHash: string(password),
		TenantID:     &gulfline.ID,
		Theme:        models.ThemeDerrickNight,
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	if err := seedPresets(ctx, db); err != nil {
		return err
	}

	tanks := []*models.StorageTank{
		{
			TenantID:       gulfline.ID,
			Terminal:       "Port Arthur",
			Product:        "diesel",
			CapacityLiters: 1_200_000,
			LevelLiters:    840_000,
			ReorderLiters:  300_000,
		},
		{
			TenantID:       gulfline.ID,
			Terminal:       "Port Arthur",
			Product:        "gasoline",
			CapacityLiters: 900_000,
			LevelLiters:    180_000,
			ReorderLiters:  250_000,
		},
		{
			TenantID:       gulfline.ID,
			Terminal:       "Baton Rouge",
			Product:        "jet-a",
			CapacityLiters: 600_000,
			LevelLiters:    540_000,
			ReorderLiters:  150_000,
		},
	}
	for _, tank := range tanks {
		if err := db.WithContext(ctx).Create(tank).Error; err != nil {
			return err
		}
	}

	delivered := time.Now().UTC().Add(-36 * time.Hour)
	deliveries := []models.Delivery{
		{
			TenantID:     gulfline.ID,
			TankID:       tanks[1].ID,
			VolumeLiters: 400_000,
			Carrier:      "Bayou Transport",
			Status:       "in_transit",
			ScheduledAt:  time.Now().UTC().Add(18 * time.Hour),
		},
		{
			TenantID:     gulfline.ID,
			TankID:       tanks[0].ID,
			VolumeLiters: 250_000,
			Carrier:      "Lone Star Haulage",
			Status:       "delivered",
			ScheduledAt:  delivered.Add(-2 * time.Hour),
			DeliveredAt:  &delivered,
		},
	}
	for _, delivery := range deliveries {
		deliveryCopy := delivery
		if err := db.WithContext(ctx).Create(&deliveryCopy).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}

func seedPresets(ctx context.Context, db *gorm.DB) error {
	for _, preset := range theme.Presets() {
		document, err := theme.Export(preset)
		if err != nil {
			return err
		}
		record := &models.ThemePreset{
			PresetID: preset.ID,
			Name:     preset.Name,
			Category: preset.Category,
			Document: document,
			Source:   "curated",
		}
		if err := db.WithContext(ctx).Create(record).Error; err != nil {
			return err
		}
	}
	return nil
}
