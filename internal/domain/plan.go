package domain

import "time"

// MembershipPlan is a subscription plan sold by the gym.
type MembershipPlan struct {
	ID           int64     `json:"id,string" form:"id"`
	Name         string    `gorm:"index" json:"name" form:"name"`
	Price        float64   `json:"price" form:"price"` // monthly price in BRL units
	DurationDays int       `json:"duration_days" form:"duration_days"`
	Description  string    `gorm:"size:1024" json:"description" form:"description"`
	Features     string    `gorm:"size:2048" json:"features" form:"features"` // newline separated bullet list
	Highlight    bool      `json:"highlight" form:"highlight"`
	Status       string    `gorm:"size:16" json:"status" form:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MembershipPlan) TableName() string {
	return "gym_plan"
}
