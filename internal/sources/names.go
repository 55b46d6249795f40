package sources

import (
	"fmt"
	"strings"

	"github.com/trovelabs/trove-cli/internal/core/domain"
)

const (
	// storeSuffix is the recognizable suffix of artifact store
	// implementation names, e.g. "LocalArtifactStore".
	storeSuffix = "ArtifactStore"

	// typeSuffix is the suffix of every dataset source type name.
	typeSuffix = "DatasetSource"
)

// DeriveTypeName derives the dataset source type name for a scheme from
// the store implementation name. A store named "<Stem>ArtifactStore"
// keeps its stem with original capitalization ("S3ArtifactStore" ->
// "S3DatasetSource"). Any other store name falls back to camel-casing
// the scheme on "-"/"_" separators ("my-scheme" -> "MySchemeDatasetSource").
// The empty and "file" schemes always read as local.
func DeriveTypeName(scheme, storeName string) string {
	if strings.Contains(storeName, storeSuffix) {
		return strings.Replace(storeName, storeSuffix, typeSuffix, 1)
	}

	if domain.KindForScheme(scheme).IsLocal() {
		return "Local" + typeSuffix
	}

	return camelcaseScheme(scheme) + typeSuffix
}

// camelcaseScheme splits a scheme on hyphen/underscore separators and
// capitalizes each segment's first letter.
func camelcaseScheme(scheme string) string {
	parts := strings.FieldsFunc(scheme, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// docForKind returns the one-line description for a source type.
// Purely cosmetic; identity for errors and lookups is the type name.
func docForKind(kind domain.SourceKind) string {
	if kind.IsLocal() {
		return "Represents the source of a dataset stored on the local filesystem."
	}
	return fmt.Sprintf(
		"Represents a filesystem-based or blob-storage-based dataset source identified by a URI with scheme %q.",
		string(kind),
	)
}
