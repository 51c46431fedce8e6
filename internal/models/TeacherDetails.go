package models

// TeacherDetails is the teacher extension row for a User with
// category "teacher".
type TeacherDetails struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"uniqueIndex" json:"user_id"`
	Subject string `gorm:"not null" json:"subject"`
}

func (TeacherDetails) TableName() string {
	return "teacher_details"
}
