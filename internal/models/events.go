package models

import "time"

// Event types
const (
	EventTypeDatasetLanded = "DATASET_LANDED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// DatasetLandedEvent published when a dataset file is in place in the landing directory
type DatasetLandedEvent struct {
	BaseEvent
	CycleID       string    `json:"cycle_id"`
	SourceName    string    `json:"source_name"`
	FileName      string    `json:"file_name"`
	Path          string    `json:"path"`
	Format        string    `json:"format"`
	Compression   string    `json:"compression"`
	Rows          int       `json:"rows"`
	SchemaVersion string    `json:"schema_version"`
	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
	Distribution  string    `json:"distribution"`
}
