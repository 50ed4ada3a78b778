package ledger

import "time"

type Payment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID    string    `gorm:"type:uuid;not null;index" json:"family_id"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null;index" json:"payment_date"`
	Year        int       `gorm:"not null;index" json:"year"`
	Method      string    `gorm:"type:varchar(16);not null;default:'cash'" json:"method"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

type Withdrawal struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID       string    `gorm:"type:uuid;not null;index" json:"family_id"`
	Amount         float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	WithdrawalDate time.Time `gorm:"type:date;not null;index" json:"withdrawal_date"`
	Year           int       `gorm:"not null;index" json:"year"`
	Reason         string    `json:"reason"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}

type LifecycleEventPayment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID  string    `gorm:"type:uuid;not null;index" json:"family_id"`
	MemberID  *string   `gorm:"type:uuid" json:"member_id"`
	EventType string    `gorm:"type:varchar(32);not null;index" json:"event_type"`
	EventDate time.Time `gorm:"type:date;not null;index" json:"event_date"`
	Amount    float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Year      int       `gorm:"not null;index" json:"year"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LifecycleEventPayment) TableName() string {
	return "lifecycle_event_payments"
}

// BalanceSnapshot is a family's running ledger position as of a date.
type BalanceSnapshot struct {
	OpeningBalance         float64 `json:"opening_balance"`
	TotalPayments          float64 `json:"total_payments"`
	TotalWithdrawals       float64 `json:"total_withdrawals"`
	TotalLifecyclePayments float64 `json:"total_lifecycle_payments"`
	Balance                float64 `json:"balance"`
}

type CreatePaymentInput struct {
	FamilyID    string
	Amount      float64
	PaymentDate time.Time
	Year        int
	Method      string
	Notes       string
}

type CreateWithdrawalInput struct {
	FamilyID       string
	Amount         float64
	WithdrawalDate time.Time
	Year           int
	Reason         string
	Notes          string
}

type CreateLifecycleEventInput struct {
	FamilyID  string
	MemberID  *string
	EventType string
	EventDate time.Time
	Amount    float64
	Year      int
	Notes     string
}
