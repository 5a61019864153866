package model

// IDSequence backs the year-scoped business identifiers (BILLID, CUSID,
// SUPID, product code). One row per (scope, year); Value is bumped with an
// atomic upsert so concurrent allocations can never collide.
type IDSequence struct {
	Scope string `gorm:"type:varchar(20);primaryKey" json:"scope"`
	Year  int    `gorm:"primaryKey" json:"year"`
	Value int64  `gorm:"not null" json:"value"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}
