package domain

import "time"

// Member is a gym customer record managed by the admin back office.
type Member struct {
	ID        int64      `json:"id,string" form:"id"`
	Name      string     `gorm:"index" json:"name" form:"name"`
	Email     string     `gorm:"index" json:"email" form:"email"`
	Phone     string     `json:"phone" form:"phone"`
	BirthDate *time.Time `json:"birth_date,omitempty" form:"birth_date"`
	Plan      string     `json:"plan" form:"plan"`
	PlanStart *time.Time `json:"plan_start,omitempty"`
	PlanEnd   *time.Time `json:"plan_end,omitempty"`
	Status    string     `gorm:"size:16" json:"status" form:"status"`
	Remark    string     `json:"remark" form:"remark"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Member) TableName() string {
	return "gym_member"
}

// MemberImportRow is the CSV row shape accepted by the member import endpoint.
type MemberImportRow struct {
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Phone     string `csv:"phone"`
	BirthDate string `csv:"birth_date"`
	Plan      string `csv:"plan"`
	Status    string `csv:"status"`
}
