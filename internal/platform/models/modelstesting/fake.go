package modelstesting

import (
	"math/rand"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// FakeBatch returns pending models.Batch with fake data.
func FakeBatch(ops ...func(b *models.Batch)) models.Batch {
	batch := models.Batch{
		ID:         uuid.New(),
		Name:       faker.Word(),
		Status:     models.BatchPending,
		TotalItems: int32(rand.Intn(50) + 1),
		CSVData:    faker.Sentence(),
	}

	for _, op := range ops {
		op(&batch)
	}

	return batch
}

// FakeProduct returns pending models.Product with fake CSV data and no enrichment.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:              uuid.New(),
		BatchID:         uuid.New(),
		Brand:           strings.ToLower(faker.Word()),
		SKU:             faker.UUIDDigit()[:10],
		OENumber:        "A" + faker.UUIDDigit()[:10],
		OriginalTitle:   faker.Sentence(),
		ScrapingStatus:  models.ScrapingPending,
		AIContentStatus: models.AIContentPending,
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeEnrichedProduct returns scraped product with generated content.
func FakeEnrichedProduct(ops ...func(p *models.Product)) models.Product {
	product := FakeProduct(func(p *models.Product) {
		p.ScrapingStatus = models.ScrapingScraped
		p.AIContentStatus = models.AIContentGenerated
		p.ProductName = lo.ToPtr(faker.Sentence())
		p.Category = lo.ToPtr("Brake Parts")
		p.Price = lo.ToPtr(float64(rand.Intn(500)) + 0.99)
		p.Images = []string{faker.URL(), faker.URL()}
		p.TechnicalSpecs = models.TechnicalSpecs{"Weight": "1.2 kg", "Material": faker.Word()}
		p.OEMNumbers = []string{p.SKU, "A" + faker.UUIDDigit()[:9]}
		p.PartNumberTags = []string{p.OENumber}
		p.SEOTitle = lo.ToPtr(faker.Sentence())
		p.ShortDescription = lo.ToPtr(faker.Sentence())
		p.LongDescription = lo.ToPtr(faker.Paragraph())
		p.MetaDescription = lo.ToPtr(faker.Sentence())
	})

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeItemDetails returns models.ItemDetails with fake data.
func FakeItemDetails(ops ...func(d *models.ItemDetails)) models.ItemDetails {
	details := models.ItemDetails{
		ItemID:      faker.UUIDDigit()[:12],
		Title:       faker.Sentence(),
		Description: faker.Paragraph(),
		Condition:   "New",
		Price:       "49.99",
		Currency:    "USD",
		ItemSpecifics: map[string]string{
			"Brand":                    "Febi",
			"Manufacturer Part Number": faker.UUIDDigit()[:8],
		},
		Images: []string{faker.URL()},
		Seller: models.Seller{UserID: faker.Username(), FeedbackScore: rand.Intn(1000)},
	}

	for _, op := range ops {
		op(&details)
	}

	return details
}
