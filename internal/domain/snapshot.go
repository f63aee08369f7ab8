package domain

// Snapshot is the versioned export document: the full goal and task state
// serialized as one JSON object. The top-level field names are the
// established export contract and are kept as-is so previously exported
// files remain importable.
type Snapshot struct {
	Goals      []Goal `json:"goals"`
	Tasks      []Task `json:"tasks"`
	ExportedAt string `json:"exportedAt"`
	Version    string `json:"version"`
}
