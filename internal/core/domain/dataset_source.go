package domain

import "encoding/json"

// SourceKind classifies a dataset source type by where its data lives.
// The local kind covers bare paths and file:// URIs; every other kind is
// named after the URI scheme it serves.
type SourceKind string

// KindLocal is the kind of dataset sources stored on the local filesystem.
// Both the empty scheme and "file" map to it.
const KindLocal SourceKind = "local"

// KindForScheme returns the source kind for a store scheme.
func KindForScheme(scheme string) SourceKind {
	if scheme == "" || scheme == "file" {
		return KindLocal
	}
	return SourceKind(scheme)
}

// IsLocal reports whether the kind denotes local filesystem data.
func (k SourceKind) IsLocal() bool {
	return k == KindLocal
}

// DatasetSource is a raw dataset reference bound to the source type that
// recognised it. The URI is always the original string form of the
// reference, never normalised or partially parsed.
type DatasetSource struct {
	// TypeName is the name of the dataset source type that produced this source.
	TypeName string

	// URI is the raw reference, verbatim.
	URI string
}

// sourceJSON is the canonical serialized form of a DatasetSource.
// "uri" is the only recognised key; anything else is ignored on read
// so newer records remain loadable.
type sourceJSON struct {
	URI string `json:"uri"`
}

// ToJSON returns the canonical JSON representation of the source.
func (s *DatasetSource) ToJSON() ([]byte, error) {
	return json.Marshal(sourceJSON{URI: s.URI})
}

// UnmarshalDatasetSource reads the canonical JSON form back into a
// DatasetSource owned by the named source type. A record without the
// "uri" key is corrupt or incompatible and yields an
// InvalidParameterError naming the type; extra keys are ignored.
func UnmarshalDatasetSource(typeName string, data []byte) (*DatasetSource, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &InvalidParameterError{TypeName: typeName, Message: err.Error()}
	}

	raw, ok := record["uri"]
	if !ok {
		return nil, NewMissingKeyError(typeName, "uri")
	}

	var uri string
	if err := json.Unmarshal(raw, &uri); err != nil {
		return nil, &InvalidParameterError{TypeName: typeName, Message: `key "uri" is not a string`}
	}

	return &DatasetSource{TypeName: typeName, URI: uri}, nil
}

// SourceTypeInfo is a read-only summary of a registered dataset source
// type, used for listings.
type SourceTypeInfo struct {
	// Name is the unique dataset source type name.
	Name string

	// Scheme is the URI scheme the type serves ("file" for local data).
	Scheme string

	// Kind classifies the type.
	Kind SourceKind

	// Doc is a one-line description of the type.
	Doc string
}
