// Package metadata handles parsing and validation of the metadata.json
// descriptor found in the root of every resource project. Validation enforces
// the required type field via an embedded JSON Schema and normalizes the
// resource kind before the upload pipeline runs.
package metadata
