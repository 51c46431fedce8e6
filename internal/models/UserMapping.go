package models

import "time"

// UserMapping links one student user to one teacher user. A pair may have
// at most one active (isdelete=false) mapping; the partial unique index
// created at migration time enforces that under concurrency.
type UserMapping struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null" json:"student_id"`
	TeacherID uint      `gorm:"index;not null" json:"teacher_id"`
	CreatedOn time.Time `gorm:"column:created_on;autoCreateTime" json:"created_on"`
	EditedOn  time.Time `gorm:"column:edited_on;autoUpdateTime" json:"edited_on"`
	IsDelete  bool      `gorm:"column:isdelete;default:false" json:"isdelete"`

	Student User `gorm:"foreignKey:StudentID" json:"-"`
	Teacher User `gorm:"foreignKey:TeacherID" json:"-"`
}

func (UserMapping) TableName() string {
	return "user_mapping"
}
