package metadata

// --- SQLite Keys ---
// These keys are used for the 'key' column in the 'metadata' SQLite table.
const (
	// LastPopularitySnapshotAtKey stores the RFC3339 timestamp of the last
	// successful counter popularity snapshot.
	LastPopularitySnapshotAtKey = "last_popularity_snapshot_at"

	// SeedIngestedAtKey stores the RFC3339 timestamp of the last successful
	// seed tutorial ingestion.
	SeedIngestedAtKey = "seed_ingested_at"

	// CatalogSizeKey stores the number of cards in the last built catalog,
	// recorded for operational visibility.
	CatalogSizeKey = "catalog_size"
)
