package domain

import "time"

// GymClass is one entry of the weekly class schedule.
type GymClass struct {
	ID         int64     `json:"id,string" form:"id"`
	Name       string    `gorm:"index" json:"name" form:"name"`
	Instructor string    `json:"instructor" form:"instructor"`
	Weekday    string    `gorm:"size:16" json:"weekday" form:"weekday"` // 'monday' .. 'sunday'
	StartTime  string    `gorm:"size:8" json:"start_time" form:"start_time"`
	EndTime    string    `gorm:"size:8" json:"end_time" form:"end_time"`
	Capacity   int       `json:"capacity" form:"capacity"`
	Room       string    `json:"room" form:"room"`
	Status     string    `gorm:"size:16" json:"status" form:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (GymClass) TableName() string {
	return "gym_class"
}
