// Package ledger persists every usage delta as a row, for billing reconciliation.
package ledger

import (
	"context"
	"time"

	"gorm.io/gorm"

	"market_backend/internal/platform/usage"
)

// UsageRecord is one recorded usage delta.
type UsageRecord struct {
	ID         uint      `gorm:"primaryKey"`
	API        string    `gorm:"size:32;not null;index"`
	Count      int64     `gorm:"not null"`
	Cost       int64     `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}

type ledger struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usage.Sink = (*ledger)(nil)

// New はDBに記録する Sink を生成します。テーブルは Migrate で作成してください。
func New(db *gorm.DB) *ledger {
	return &ledger{db: db, now: time.Now}
}

// Migrate creates or updates the usage_records table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UsageRecord{})
}

func (l *ledger) Record(ctx context.Context, name usage.APIName, count, cost int64) error {
	return l.db.WithContext(ctx).Create(&UsageRecord{
		API:        string(name),
		Count:      count,
		Cost:       cost,
		RecordedAt: l.now().UTC(),
	}).Error
}

// Totals sums the ledger per API for records at or after since.
func (l *ledger) Totals(ctx context.Context, since time.Time) ([]usage.Entry, error) {
	var rows []struct {
		API   string
		Count int64
		Cost  int64
	}
	err := l.db.WithContext(ctx).
		Model(&UsageRecord{}).
		Select("api, SUM(count) AS count, SUM(cost) AS cost").
		Where("recorded_at >= ?", since.UTC()).
		Group("api").
		Order("api").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]usage.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, usage.Entry{API: usage.APIName(r.API), Count: r.Count, Cost: r.Cost})
	}
	return out, nil
}
