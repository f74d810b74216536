// Package archive produces the compressed project snapshot the uploader
// sends to the hub. Hidden files, transient build artifacts, and the archive
// itself are excluded from the walk.
package archive
