package models

import "time"

const (
	CategoryStudent = "student"
	CategoryTeacher = "teacher"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Category  string    `gorm:"not null" json:"category"` // "student" or "teacher", immutable after creation
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedOn time.Time `gorm:"column:created_on;autoCreateTime" json:"created_on"`
	EditedOn  time.Time `gorm:"column:edited_on;autoUpdateTime" json:"edited_on"`
	IsDelete  bool      `gorm:"column:isdelete;default:false" json:"isdelete"`

	// Category-specific relations; exactly one exists, matching Category
	StudentDetails *StudentDetails `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student_details,omitempty"`
	TeacherDetails *TeacherDetails `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher_details,omitempty"`
}

func (User) TableName() string {
	return "users"
}
