package models

// StudentDetails is the student extension row for a User with
// category "student". One row per user, created alongside it.
type StudentDetails struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex" json:"user_id"`
	ClassName string `gorm:"column:class_name;not null" json:"class"`
	Division  string `gorm:"not null" json:"division"`
}

func (StudentDetails) TableName() string {
	return "student_details"
}
