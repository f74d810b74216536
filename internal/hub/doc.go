// Package hub implements the upload client for the ProofAI hub. It maps a
// resource kind to its endpoint, posts the project archive as a multipart
// upload, and interprets the JSON response. The archive is removed after
// every attempt, successful or not.
package hub
