// Package artifacts provides the store directory: an ordered registry
// mapping URI schemes to the artifact stores that can download them.
// Each store type (local, vault, web, github, dropbox, gdrive,
// tracking) lives in its own subpackage.
package artifacts
