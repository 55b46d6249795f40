// Package sources defines dataset source types: the entries of the
// resolution table that recognise raw dataset references and turn them
// into canonical, serializable dataset sources.
//
// Most source types are not written by hand. ForStore builds a generic,
// immutable source type around any registered artifact store, with its
// name derived from the store implementation name (DeriveTypeName).
// The exceptions are the hand-written HTTP and vault source types,
// whose schemes are deliberately excluded from that generation.
package sources
