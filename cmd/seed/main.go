package main

import (
	"fmt"
	"log"

	"github.com/val100/market/config"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/db"
)

type distilleryFixture struct {
	title       string
	region      string
	description string
	products    []model.Product
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fixtures := catalogFixtures()
	fmt.Printf("Distilleries to import: %d\n", len(fixtures))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported, err := importCatalog(fixtures)
	if err != nil {
		log.Fatal("Failed to import catalog:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func importCatalog(fixtures []distilleryFixture) (int, error) {
	gdb := db.GetDB()
	imported := 0

	for _, fixture := range fixtures {
		var region model.Region
		if err := gdb.Where("name = ?", fixture.region).First(&region).Error; err != nil {
			return imported, fmt.Errorf("region %q not found, run migrations first: %w", fixture.region, err)
		}

		distillery := model.Distillery{
			Title:       fixture.title,
			RegionID:    region.ID,
			Description: fixture.description,
		}
		if err := gdb.Where("title = ? AND region_id = ?", fixture.title, region.ID).
			FirstOrCreate(&distillery).Error; err != nil {
			return imported, fmt.Errorf("failed to create distillery %q: %w", fixture.title, err)
		}

		for _, product := range fixture.products {
			product.DistilleryID = distillery.ID
			if err := gdb.Where("title = ? AND distillery_id = ?", product.Title, distillery.ID).
				FirstOrCreate(&product).Error; err != nil {
				return imported, fmt.Errorf("failed to create product %q: %w", product.Title, err)
			}
			imported++
		}
	}

	return imported, nil
}

func catalogFixtures() []distilleryFixture {
	return []distilleryFixture{
		{
			title:       "Glenmorangie",
			region:      "Highlands",
			description: "Tallest stills in Scotland, famed for delicate, floral spirit finished in a range of casks.",
			products: []model.Product{
				{Title: "Glenmorangie Original", Age: 10, Alcohol: 40, Volume: 0.7, Price: 38, Available: true, Description: "Citrus and vanilla, the house style at its purest."},
				{Title: "Glenmorangie Quinta Ruban", Age: 14, Alcohol: 46, Volume: 0.7, Price: 55, Available: true, Description: "Port cask finish, dark chocolate and mint."},
				{Title: "Glenmorangie 18 Years Old", Age: 18, Alcohol: 43, Volume: 0.7, Price: 110, Available: true, Description: "Honeyed and nutty with a long sherried finish."},
			},
		},
		{
			title:       "Dalmore",
			region:      "Highlands",
			description: "Rich, sherry-led malts carrying the twelve-pointed stag.",
			products: []model.Product{
				{Title: "Dalmore 12", Age: 12, Alcohol: 40, Volume: 0.7, Price: 52, Available: true, Description: "Orange marmalade and sherry spice."},
				{Title: "Dalmore Cigar Malt", Age: 0, Alcohol: 44, Volume: 0.7, Price: 95, Available: true, Description: "Matured in a mix of bourbon, oloroso and cabernet casks."},
			},
		},
		{
			title:       "Macallan",
			region:      "Speyside",
			description: "Exceptional oak casks and natural colour.",
			products: []model.Product{
				{Title: "Macallan Double Cask 12", Age: 12, Alcohol: 40, Volume: 0.7, Price: 68, Available: true, Description: "American and European sherry oak married."},
				{Title: "Macallan Sherry Oak 18", Age: 18, Alcohol: 43, Volume: 0.7, Price: 320, Available: true, Description: "Dried fruits, ginger and polished oak."},
			},
		},
		{
			title:       "Balvenie",
			region:      "Speyside",
			description: "Family-owned distillery keeping its own floor maltings.",
			products: []model.Product{
				{Title: "Balvenie DoubleWood 12", Age: 12, Alcohol: 40, Volume: 0.7, Price: 48, Available: true, Description: "Honey and vanilla with a sherry layer."},
				{Title: "Balvenie Caribbean Cask 14", Age: 14, Alcohol: 43, Volume: 0.7, Price: 72, Available: true, Description: "Rum cask finish, toffee and tropical fruit."},
			},
		},
		{
			title:       "Laphroaig",
			region:      "Islay",
			description: "The most medicinal of the Islay malts, loved and loathed in equal measure.",
			products: []model.Product{
				{Title: "Laphroaig 10", Age: 10, Alcohol: 40, Volume: 0.7, Price: 42, Available: true, Description: "Tar, iodine and sweet smoke."},
				{Title: "Laphroaig Quarter Cask", Age: 0, Alcohol: 48, Volume: 0.7, Price: 55, Available: true, Description: "Small casks, big oak and peat."},
			},
		},
		{
			title:       "Lagavulin",
			region:      "Islay",
			description: "Slow distillation and a long maturation define this south-shore classic.",
			products: []model.Product{
				{Title: "Lagavulin 16", Age: 16, Alcohol: 43, Volume: 0.7, Price: 85, Available: true, Description: "Deep peat smoke balanced by sherry sweetness."},
			},
		},
		{
			title:       "Auchentoshan",
			region:      "Lowlands",
			description: "Triple distilled through and through.",
			products: []model.Product{
				{Title: "Auchentoshan American Oak", Age: 0, Alcohol: 40, Volume: 0.7, Price: 32, Available: true, Description: "Bourbon cask, coconut and citrus."},
				{Title: "Auchentoshan Three Wood", Age: 0, Alcohol: 43, Volume: 0.7, Price: 52, Available: true, Description: "Bourbon, oloroso and PX casks in sequence."},
			},
		},
		{
			title:       "Springbank",
			region:      "Campbeltown",
			description: "Every step from malting to bottling happens on site.",
			products: []model.Product{
				{Title: "Springbank 10", Age: 10, Alcohol: 46, Volume: 0.7, Price: 65, Available: true, Description: "Briny, oily and lightly smoky."},
				{Title: "Springbank 15", Age: 15, Alcohol: 46, Volume: 0.7, Price: 120, Available: true, Description: "Sherry depth over the coastal signature."},
			},
		},
	}
}
