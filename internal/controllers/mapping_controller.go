package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/apperr"
	"school_registry/internal/models"
)

type MappingController struct {
	DB *gorm.DB
}

func NewMappingController(db *gorm.DB) *MappingController {
	return &MappingController{DB: db}
}

type mappingInput struct {
	StudentID uint `json:"student_id" binding:"required"`
	TeacherID uint `json:"teacher_id" binding:"required"`
}

// Create maps one student to one teacher. The existence check gives a clean
// error message; the partial unique index on active pairs is what actually
// guards against two concurrent creates.
func (mc *MappingController) Create(c *gin.Context) {
	var input mappingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := mc.activeUser(input.StudentID, models.CategoryStudent); err != nil {
		apperr.Respond(c, err)
		return
	}
	if _, err := mc.activeUser(input.TeacherID, models.CategoryTeacher); err != nil {
		apperr.Respond(c, err)
		return
	}

	exists, err := mc.activeMappingExists(input.StudentID, input.TeacherID)
	if err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}
	if exists {
		apperr.Respond(c, apperr.Conflict("Mapping already exists for this student and teacher."))
		return
	}

	mapping := models.UserMapping{StudentID: input.StudentID, TeacherID: input.TeacherID}
	if err := mc.DB.Create(&mapping).Error; err != nil {
		if isUniqueViolation(err) {
			apperr.Respond(c, apperr.Conflict("Mapping already exists for this student and teacher."))
			return
		}
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Student successfully mapped to teacher."})
}

type bulkMappingInput struct {
	TeacherID  uint   `json:"teacher_id" binding:"required"`
	StudentIDs []uint `json:"student_ids" binding:"required"`
}

// CreateBulk maps many students to one teacher, all-or-nothing. Every
// student is checked independently and all failures are collected, so the
// caller gets the complete picture in one round trip; each bad id appears
// in exactly one of the two failure lists.
func (mc *MappingController) CreateBulk(c *gin.Context) {
	var input bulkMappingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := mc.activeUser(input.TeacherID, models.CategoryTeacher); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Kind == apperr.KindNotFound {
			apperr.Respond(c, apperr.NotFound("Teacher not found"))
			return
		}
		apperr.Respond(c, err)
		return
	}

	userNotFound := make([]uint, 0)
	existingMappings := make([]uint, 0)

	for _, studentID := range input.StudentIDs {
		if _, err := mc.activeUser(studentID, models.CategoryStudent); err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) && ae.Kind == apperr.KindNotFound {
				userNotFound = append(userNotFound, studentID)
				continue
			}
			apperr.Respond(c, err)
			return
		}

		exists, err := mc.activeMappingExists(studentID, input.TeacherID)
		if err != nil {
			apperr.Respond(c, apperr.Internal(err))
			return
		}
		if exists {
			existingMappings = append(existingMappings, studentID)
		}
	}

	if len(userNotFound) > 0 || len(existingMappings) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "Some mapping already exists / Some users not found",
			"existing_mappings": existingMappings,
			"user_notfound":     userNotFound,
		})
		return
	}

	// nothing to insert; gorm rejects an empty Create
	if len(input.StudentIDs) == 0 {
		c.JSON(http.StatusCreated, gin.H{
			"message":         "Students successfully mapped to teacher.",
			"mapped_students": input.StudentIDs,
		})
		return
	}

	mappings := make([]models.UserMapping, 0, len(input.StudentIDs))
	for _, studentID := range input.StudentIDs {
		mappings = append(mappings, models.UserMapping{
			StudentID: studentID,
			TeacherID: input.TeacherID,
		})
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&mappings).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			apperr.Respond(c, apperr.Conflict("Mapping already exists for this student and teacher."))
			return
		}
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Students successfully mapped to teacher.",
		"mapped_students": input.StudentIDs,
	})
}

// StudentsByTeacher lists the non-deleted students actively mapped to the
// given teacher, projected to id/name/age.
func (mc *MappingController) StudentsByTeacher(c *gin.Context) {
	var mappings []models.UserMapping
	err := mc.DB.Where("teacher_id = ? AND isdelete = ?", c.Param("id"), false).Find(&mappings).Error
	if err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	studentIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		studentIDs = append(studentIDs, mapping.StudentID)
	}

	response, err := mc.projectUsers(studentIDs)
	if err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, response)
}

// TeachersByStudent is the mirror lookup.
func (mc *MappingController) TeachersByStudent(c *gin.Context) {
	var mappings []models.UserMapping
	err := mc.DB.Where("student_id = ? AND isdelete = ?", c.Param("id"), false).Find(&mappings).Error
	if err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	teacherIDs := make([]uint, 0, len(mappings))
	for _, mapping := range mappings {
		teacherIDs = append(teacherIDs, mapping.TeacherID)
	}

	response, err := mc.projectUsers(teacherIDs)
	if err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, response)
}

func (mc *MappingController) projectUsers(ids []uint) ([]gin.H, error) {
	response := make([]gin.H, 0, len(ids))
	if len(ids) == 0 {
		return response, nil
	}

	var users []models.User
	if err := mc.DB.Where("id IN ? AND isdelete = ?", ids, false).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		response = append(response, gin.H{"id": user.ID, "name": user.Name, "age": user.Age})
	}
	return response, nil
}

// activeUser fetches by primary key and checks deletion state and category
// at the service layer. A wrong-category participant reads the same as a
// missing one.
func (mc *MappingController) activeUser(id uint, category string) (*models.User, error) {
	var user models.User
	if err := mc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	if user.IsDelete || user.Category != category {
		return nil, apperr.NotFound("User not found")
	}
	return &user, nil
}

func (mc *MappingController) activeMappingExists(studentID, teacherID uint) (bool, error) {
	var mapping models.UserMapping
	err := mc.DB.Where("student_id = ? AND teacher_id = ? AND isdelete = ?",
		studentID, teacherID, false).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
