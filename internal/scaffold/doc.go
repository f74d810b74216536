// Package scaffold generates new resource projects from embedded templates.
// It powers the "proofai create-agent", "create-model", and "create-dataset"
// commands, producing a metadata.json descriptor for every kind and a starter
// agent implementation file for agents.
package scaffold
