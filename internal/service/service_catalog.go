package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/models"
)

// defaultOfferings is the built-in services marketplace served when no seed
// file is configured.
var defaultOfferings = []models.ServiceOffering{
	{ID: "web-landing", Title: "Landing page", Summary: "Single-page marketing site with copy and deployment", Tier: "starter", Price: 90000},
	{ID: "web-corporate", Title: "Corporate website", Summary: "Multi-page site with CMS integration", Tier: "studio", Price: 280000},
	{ID: "brand-identity", Title: "Brand identity", Summary: "Logo, palette and brand guidelines", Tier: "studio", Price: 150000},
	{ID: "seo-audit", Title: "SEO audit", Summary: "Technical and content audit with an action plan", Tier: "starter", Price: 45000},
	{ID: "support-retainer", Title: "Support retainer", Summary: "Monthly maintenance and content updates", Tier: "retainer", Price: 60000},
}

// catalogService serves the read-only marketplace catalog. Offerings are
// loaded once at construction time, either from a JSON seed file or from the
// built-in default set.
type catalogService struct {
	offerings []models.ServiceOffering
	byID      map[string]models.ServiceOffering
	logger    *logger.Logger
}

// NewCatalogService constructs a CatalogService from cfg. When cfg.SeedPath
// is empty the built-in default offerings are served; otherwise the seed file
// must parse, and a broken seed is a startup error rather than a silently
// empty catalog.
func NewCatalogService(cfg config.Catalog, log *logger.Logger) (CatalogService, error) {
	offerings := defaultOfferings

	if cfg.SeedPath != "" {
		data, err := os.ReadFile(cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("read catalog seed: %w", err)
		}
		var seeded []models.ServiceOffering
		if err = json.Unmarshal(data, &seeded); err != nil {
			return nil, fmt.Errorf("parse catalog seed: %w", err)
		}
		offerings = seeded
		log.Info().Int("offerings", len(seeded)).Str("path", cfg.SeedPath).Msg("catalog seeded from file")
	}

	byID := make(map[string]models.ServiceOffering, len(offerings))
	for _, offering := range offerings {
		byID[offering.ID] = offering
	}

	return &catalogService{offerings: offerings, byID: byID, logger: log}, nil
}

// ListOfferings returns the catalog in seed order. The returned slice is a
// copy; callers may mutate it freely.
func (c *catalogService) ListOfferings(ctx context.Context) []models.ServiceOffering {
	offerings := make([]models.ServiceOffering, len(c.offerings))
	copy(offerings, c.offerings)
	return offerings
}

// FindOffering looks an offering up by id. Returns ErrUnknownOffering when no
// offering with that id exists.
func (c *catalogService) FindOffering(ctx context.Context, offeringID string) (models.ServiceOffering, error) {
	offering, ok := c.byID[offeringID]
	if !ok {
		return models.ServiceOffering{}, ErrUnknownOffering
	}
	return offering, nil
}
