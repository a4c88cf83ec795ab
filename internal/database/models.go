package database

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

// SnapshotRecord is one archived snapshot. The calendar numbers most useful
// for querying get their own indexed columns; the full snapshot rides along
// as a MessagePack blob so nothing is lost to the flattening.
type SnapshotRecord struct {
	ID              uint      `gorm:"primaryKey"`
	Instant         time.Time `gorm:"index;not null"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	TithiNumber     int       `gorm:"index"`
	Paksha          string
	NakshatraNumber int `gorm:"index"`
	MasaNumber      int
	MuhurtaNumber   int
	Elongation      float64
	Snapshot        []byte `gorm:"type:bytea"`
}

// TableName keeps the table name stable regardless of GORM pluralization
// rules.
func (SnapshotRecord) TableName() string { return "snapshots" }

// NewSnapshotRecord flattens a snapshot into an archive row.
func NewSnapshotRecord(snap *vedictime.Snapshot) (*SnapshotRecord, error) {
	blob, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("unable to encode snapshot: %w", err)
	}

	return &SnapshotRecord{
		Instant:         snap.Instant,
		Latitude:        snap.Location.Latitude,
		Longitude:       snap.Location.Longitude,
		TithiNumber:     snap.Tithi.Number,
		Paksha:          string(snap.Tithi.Paksha),
		NakshatraNumber: snap.Nakshatra.Number,
		MasaNumber:      snap.Masa.Number,
		MuhurtaNumber:   snap.Muhurta.Number,
		Elongation:      snap.Elongation,
		Snapshot:        blob,
	}, nil
}

// DecodeSnapshot restores the full snapshot from the archived blob.
func (r *SnapshotRecord) DecodeSnapshot() (*vedictime.Snapshot, error) {
	var snap vedictime.Snapshot
	if err := msgpack.Unmarshal(r.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("unable to decode archived snapshot %d: %w", r.ID, err)
	}
	return &snap, nil
}

// SaveSnapshot archives one snapshot.
func (c *Client) SaveSnapshot(snap *vedictime.Snapshot) error {
	record, err := NewSnapshotRecord(snap)
	if err != nil {
		return err
	}
	if err := c.DB.Create(record).Error; err != nil {
		return fmt.Errorf("unable to archive snapshot: %w", err)
	}
	return nil
}

// RecentSnapshots returns the most recent archived rows, newest first.
func (c *Client) RecentSnapshots(limit int) ([]SnapshotRecord, error) {
	var records []SnapshotRecord
	err := c.DB.Order("instant DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("unable to query snapshots: %w", err)
	}
	return records, nil
}
