package metadata

import "strings"

// FileName is the descriptor file expected in the project root.
const FileName = "metadata.json"

// Kind is a normalized (uppercase) resource kind.
type Kind string

// Kind constants for the type discriminator field.
const (
	KindAgent   Kind = "AGENT"
	KindModel   Kind = "MODEL"
	KindDataset Kind = "DATASET"
)

// ValidKinds contains all recognized resource kinds.
var ValidKinds = []Kind{KindAgent, KindDataset, KindModel}

// ParseKind normalizes s case-insensitively and reports whether it names a
// recognized resource kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToUpper(s))
	switch k {
	case KindAgent, KindModel, KindDataset:
		return k, true
	}
	return "", false
}

// Metadata describes a resource project. It is written by the scaffolder,
// hand-edited by the user, and read back before upload.
type Metadata struct {
	Name        string   `json:"name"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
	Version     string   `json:"version,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// Kind returns the resource kind. Only meaningful after validation has
// normalized the Type field.
func (m *Metadata) Kind() Kind {
	k, _ := ParseKind(m.Type)
	return k
}
