package calculation

import "time"

// YearlyCalculation is the persisted result of a year's dues calculation.
// One record exists per calendar year; recalculating replaces it.
type YearlyCalculation struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Year int    `gorm:"not null;uniqueIndex" json:"year"`

	AgeGroup0to4   int `gorm:"column:age_group_0_to_4;not null;default:0" json:"age_group_0_to_4"`
	AgeGroup5to8   int `gorm:"column:age_group_5_to_8;not null;default:0" json:"age_group_5_to_8"`
	AgeGroup9to16  int `gorm:"column:age_group_9_to_16;not null;default:0" json:"age_group_9_to_16"`
	AgeGroup17Plus int `gorm:"column:age_group_17_plus;not null;default:0" json:"age_group_17_plus"`

	IncomeAgeGroup0to4   float64 `gorm:"column:income_age_group_0_to_4;type:numeric(12,2);not null;default:0" json:"income_age_group_0_to_4"`
	IncomeAgeGroup5to8   float64 `gorm:"column:income_age_group_5_to_8;type:numeric(12,2);not null;default:0" json:"income_age_group_5_to_8"`
	IncomeAgeGroup9to16  float64 `gorm:"column:income_age_group_9_to_16;type:numeric(12,2);not null;default:0" json:"income_age_group_9_to_16"`
	IncomeAgeGroup17Plus float64 `gorm:"column:income_age_group_17_plus;type:numeric(12,2);not null;default:0" json:"income_age_group_17_plus"`

	TotalIncome      float64 `gorm:"type:numeric(12,2);not null;default:0" json:"total_income"`
	ExtraDonation    float64 `gorm:"type:numeric(12,2);not null;default:0" json:"extra_donation"`
	CalculatedIncome float64 `gorm:"type:numeric(12,2);not null;default:0" json:"calculated_income"`

	WeddingCount    int `gorm:"not null;default:0" json:"wedding_count"`
	BarMitzvahCount int `gorm:"not null;default:0" json:"bar_mitzvah_count"`
	BirthBoyCount   int `gorm:"not null;default:0" json:"birth_boy_count"`
	BirthGirlCount  int `gorm:"not null;default:0" json:"birth_girl_count"`

	WeddingAmount    float64 `gorm:"type:numeric(12,2);not null;default:0" json:"wedding_amount"`
	BarMitzvahAmount float64 `gorm:"type:numeric(12,2);not null;default:0" json:"bar_mitzvah_amount"`
	BirthBoyAmount   float64 `gorm:"type:numeric(12,2);not null;default:0" json:"birth_boy_amount"`
	BirthGirlAmount  float64 `gorm:"type:numeric(12,2);not null;default:0" json:"birth_girl_amount"`

	TotalExpenses      float64 `gorm:"type:numeric(12,2);not null;default:0" json:"total_expenses"`
	ExtraExpense       float64 `gorm:"type:numeric(12,2);not null;default:0" json:"extra_expense"`
	CalculatedExpenses float64 `gorm:"type:numeric(12,2);not null;default:0" json:"calculated_expenses"`

	Balance float64 `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (YearlyCalculation) TableName() string {
	return "yearly_calculations"
}

// IncomeBreakdown is the member-count and income side of a year.
type IncomeBreakdown struct {
	AgeGroup0to4   int `json:"age_group_0_to_4"`
	AgeGroup5to8   int `json:"age_group_5_to_8"`
	AgeGroup9to16  int `json:"age_group_9_to_16"`
	AgeGroup17Plus int `json:"age_group_17_plus"`

	IncomeAgeGroup0to4   float64 `json:"income_age_group_0_to_4"`
	IncomeAgeGroup5to8   float64 `json:"income_age_group_5_to_8"`
	IncomeAgeGroup9to16  float64 `json:"income_age_group_9_to_16"`
	IncomeAgeGroup17Plus float64 `json:"income_age_group_17_plus"`

	TotalIncome      float64 `json:"total_income"`
	ExtraDonation    float64 `json:"extra_donation"`
	CalculatedIncome float64 `json:"calculated_income"`
}

// ExpenseBreakdown is the lifecycle-event side of a year.
type ExpenseBreakdown struct {
	WeddingCount    int `json:"wedding_count"`
	BarMitzvahCount int `json:"bar_mitzvah_count"`
	BirthBoyCount   int `json:"birth_boy_count"`
	BirthGirlCount  int `json:"birth_girl_count"`

	WeddingAmount    float64 `json:"wedding_amount"`
	BarMitzvahAmount float64 `json:"bar_mitzvah_amount"`
	BirthBoyAmount   float64 `json:"birth_boy_amount"`
	BirthGirlAmount  float64 `json:"birth_girl_amount"`

	TotalExpenses      float64 `json:"total_expenses"`
	ExtraExpense       float64 `json:"extra_expense"`
	CalculatedExpenses float64 `json:"calculated_expenses"`
}
