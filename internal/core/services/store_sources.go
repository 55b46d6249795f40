package services

import (
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
	"github.com/trovelabs/trove-cli/internal/logger"
	"github.com/trovelabs/trove-cli/internal/sources"
)

// excludedSchemes lists the store directory schemes that never get a
// generated dataset source type.
var excludedSchemes = map[string]bool{
	// http and https denote remote tracking endpoints, not dataset
	// storage. Directly downloadable files are covered by the
	// hand-written HTTPDatasetSource.
	"http":  true,
	"https": true,

	// Logical schemes resolved by the tracking layer.
	"runs":            true,
	"models":          true,
	"trove-artifacts": true,

	// Vault data has two access forms (vault:/ URI and /vault mount).
	// A generated single-URI type would round-trip only one of them,
	// so the hand-written VaultDatasetSource covers both and the
	// scheme stays out of the generated set.
	"vault": true,
}

// RegisterStoreSources derives a dataset source type from every
// eligible store in the directory and registers it with the resolution
// table, in directory order. Excluded schemes, schemes already claimed
// in this pass, and schemes the table already serves are skipped.
//
// A failure to build or register one store's source type is logged as a
// warning and never blocks the remaining stores; the scheme is claimed
// before the attempt so a bad store is tried at most once per pass.
func RegisterStoreSources(reg *SourceRegistry, dir driven.StoreDirectory) {
	claimed := make(map[string]bool)

	for _, entry := range dir.Stores() {
		scheme := entry.Scheme
		if excludedSchemes[scheme] || claimed[scheme] || reg.HasScheme(scheme) {
			continue
		}
		claim(claimed, scheme)

		storeName := ""
		if entry.Store != nil {
			storeName = entry.Store.Name()
		}
		typeName := sources.DeriveTypeName(scheme, storeName)

		st, err := sources.ForStore(scheme, typeName, entry.Store)
		if err != nil {
			logger.Warn("failed to build a dataset source for URIs with scheme %q: %v", scheme, err)
			continue
		}

		if err := reg.Register(st); err != nil {
			logger.Warn("failed to register a dataset source for URIs with scheme %q: %v", scheme, err)
			continue
		}
	}
}

// claim marks a scheme as handled in this pass. The empty scheme and
// "file" are synonyms for local data, so claiming either claims both.
func claim(claimed map[string]bool, scheme string) {
	claimed[scheme] = true
	if scheme == "" || scheme == "file" {
		claimed[""] = true
		claimed["file"] = true
	}
}
