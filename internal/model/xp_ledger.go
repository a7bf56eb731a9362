package model

// XpLedgerEntry is append-only; a student's total XP is always the sum of
// their entries, never a stored counter.
type XpLedgerEntry struct {
	UUIDBase

	StudentID string `gorm:"index;type:varchar(36);not null" json:"studentId"`
	Amount    int    `gorm:"not null" json:"amount"`
	Reason    string `gorm:"size:255" json:"reason"`
}

func (XpLedgerEntry) TableName() string {
	return "xp_ledger"
}
