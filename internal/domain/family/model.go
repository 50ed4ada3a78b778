package family

import "time"

type Family struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	WeddingDate    time.Time `gorm:"type:date;not null" json:"wedding_date"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Zip            string    `json:"zip"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CurrentPlan    int       `gorm:"not null;default:1" json:"current_plan"`
	CurrentPayment float64   `gorm:"type:numeric(12,2);not null;default:0" json:"current_payment"`
	OpenBalance    float64   `gorm:"type:numeric(12,2);not null;default:0" json:"open_balance"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Family) TableName() string {
	return "families"
}

type Member struct {
	ID                string     `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID          string     `gorm:"type:uuid;not null;index" json:"family_id"`
	FirstName         string     `gorm:"not null" json:"first_name"`
	LastName          string     `gorm:"not null" json:"last_name"`
	BirthDate         *time.Time `gorm:"type:date" json:"birth_date"`
	Gender            string     `gorm:"type:varchar(16)" json:"gender"`
	WeddingDate       *time.Time `gorm:"type:date" json:"wedding_date"`
	SpouseName        string     `json:"spouse_name"`
	ConvertedToFamily bool       `gorm:"not null;default:false" json:"converted_to_family"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "family_members"
}

type CreateFamilyInput struct {
	Name           string
	WeddingDate    time.Time
	Address        string
	City           string
	State          string
	Zip            string
	Phone          string
	Email          string
	CurrentPlan    int
	CurrentPayment float64
	OpenBalance    float64
}

type UpdateFamilyInput struct {
	ID             string
	Name           string
	WeddingDate    time.Time
	Address        string
	City           string
	State          string
	Zip            string
	Phone          string
	Email          string
	CurrentPlan    int
	CurrentPayment float64
	OpenBalance    float64
}

type CreateMemberInput struct {
	FamilyID    string
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Gender      string
	WeddingDate *time.Time
	SpouseName  string
	Notes       string
}

type UpdateMemberInput struct {
	ID          string
	FamilyID    string
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Gender      string
	WeddingDate *time.Time
	SpouseName  string
	Notes       string
}
