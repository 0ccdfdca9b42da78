package db

import (
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Region{},
		&model.Distillery{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedRegions(); err != nil {
		logger.Error("Failed to seed regions during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// seedRegions inserts the whisky region taxonomy on an empty database. The
// regions are a fixed vocabulary the showcase navigates by, products and
// distilleries come from cmd/seed or the back office.
func seedRegions() error {
	var count int64
	if err := DB.Model(&model.Region{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Regions already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding whisky regions...")

	regions := []model.Region{
		{Name: "Highlands", Subtitle: "From rich to light", Description: "The largest whisky region by area, producing everything from rich and textured to fragrant and floral drams.", Color: "#a05a2c"},
		{Name: "Speyside", Subtitle: "Elegant and complex", Description: "Home to over half of Scotland's distilleries, known for elegant, fruity and often sherried malts.", Color: "#c08540"},
		{Name: "Islay", Subtitle: "Peat and smoke", Description: "A small island with a big reputation for heavily peated, maritime whiskies.", Color: "#476b6b"},
		{Name: "Lowlands", Subtitle: "Soft and approachable", Description: "Gentle, grassy and light-bodied whiskies, traditionally triple distilled.", Color: "#6b8e23"},
		{Name: "Campbeltown", Subtitle: "Briny character", Description: "Once the whisky capital of the world, its few surviving distilleries make robust, slightly salty malts.", Color: "#5f4b66"},
	}

	for _, region := range regions {
		if err := DB.Create(&region).Error; err != nil {
			logger.Error("Failed to create region", err, map[string]interface{}{
				"region": region.Name,
			})
			return err
		}
	}

	logger.Info("Regions seeded successfully", map[string]interface{}{
		"total_regions": len(regions),
	})
	return nil
}
