package models

type CommissionTierModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	MinAmount   float64
	MaxAmount   *float64
	RatePercent float64
	Active      bool
}
