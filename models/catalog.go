package models

// ServiceOffering is one entry of the agency's services marketplace.
// The catalog is read-only at runtime; offerings are seeded from
// configuration or fall back to a built-in default set.
type ServiceOffering struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`

	// Tier is a coarse pricing band label (e.g. "starter", "studio").
	Tier string `json:"tier"`

	// Price is the list price in the smallest currency unit.
	Price int64 `json:"price"`
}
