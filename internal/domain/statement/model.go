package statement

import "time"

type Statement struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID        string    `gorm:"type:uuid;not null;index" json:"family_id"`
	StatementNumber string    `gorm:"not null;uniqueIndex" json:"statement_number"`
	Date            time.Time `gorm:"not null" json:"date"`
	FromDate        time.Time `gorm:"not null;index" json:"from_date"`
	ToDate          time.Time `gorm:"not null" json:"to_date"`
	OpeningBalance  float64   `gorm:"type:numeric(12,2);not null" json:"opening_balance"`
	Income          float64   `gorm:"type:numeric(12,2);not null" json:"income"`
	Withdrawals     float64   `gorm:"type:numeric(12,2);not null" json:"withdrawals"`
	Expenses        float64   `gorm:"type:numeric(12,2);not null" json:"expenses"`
	ClosingBalance  float64   `gorm:"type:numeric(12,2);not null" json:"closing_balance"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Statement) TableName() string {
	return "statements"
}

// GeneratedStatement identifies one statement produced by a batch run.
type GeneratedStatement struct {
	FamilyID        string `json:"family_id"`
	FamilyName      string `json:"family_name"`
	StatementNumber string `json:"statement_number"`
}

// BatchError records one family the batch could not process.
type BatchError struct {
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
	Error      string `json:"error"`
}

// BatchResult summarizes a monthly generation run.
type BatchResult struct {
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Generated  int                  `json:"generated"`
	Failed     int                  `json:"failed"`
	Statements []GeneratedStatement `json:"statements"`
	Errors     []BatchError         `json:"errors"`
}
