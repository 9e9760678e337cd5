package model

import "time"

type RecordType string

const (
	RecordTypeIn  RecordType = "in"
	RecordTypeOut RecordType = "out"
)

func (t RecordType) Valid() bool {
	return t == RecordTypeIn || t == RecordTypeOut
}

type RecordStatus string

const (
	StatusApproved RecordStatus = "approved"
	StatusPending  RecordStatus = "pending"
)

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// AttendanceRecord is a single clock event. Only Status changes after creation.
type AttendanceRecord struct {
	ID        int64        `json:"id"`
	UserEmail string       `json:"userEmail"`
	Type      RecordType   `json:"type"`
	Timestamp int64        `json:"timestamp"` // ms since epoch
	Location  *GeoLocation `json:"location"`
	PlaceName *string      `json:"placeName"`
	Status    RecordStatus `json:"status"`
}

func (r *AttendanceRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

func (r *AttendanceRecord) IsPending() bool {
	return r.Status == StatusPending
}
