package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/apperr"
	"school_registry/internal/models"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// List returns all non-deleted users projected to id/name/age.
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Where("isdelete = ?", false).Find(&users).Error; err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	data := make([]gin.H, 0, len(users))
	for _, user := range users {
		data = append(data, gin.H{"id": user.ID, "name": user.Name, "age": user.Age})
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// View returns one user with its category detail row nested. Soft-deleted
// ids look exactly like missing ones.
func (uc *UserController) View(c *gin.Context) {
	user, err := uc.activeUserByID(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	response := gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"age":        user.Age,
		"category":   user.Category,
		"created_on": user.CreatedOn,
		"edited_on":  user.EditedOn,
	}

	switch user.Category {
	case models.CategoryStudent:
		var details models.StudentDetails
		if err := uc.DB.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
			apperr.Respond(c, apperr.Internal(err))
			return
		}
		response["student_details"] = gin.H{
			"class":    details.ClassName,
			"division": details.Division,
		}
	case models.CategoryTeacher:
		var details models.TeacherDetails
		if err := uc.DB.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
			apperr.Respond(c, apperr.Internal(err))
			return
		}
		response["teacher_details"] = gin.H{
			"subject": details.Subject,
		}
	}

	c.JSON(http.StatusOK, response)
}

type updateUserInput struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Category *string `json:"category"`

	Class    *string `json:"class"`
	Division *string `json:"division"`
	Subject  *string `json:"subject"`
}

// Update applies a partial update; absent fields keep their current value.
// Category never changes: a category in the request must match the stored
// one or the whole update is rejected.
func (uc *UserController) Update(c *gin.Context) {
	user, err := uc.activeUserByID(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Category != nil && *input.Category != user.Category {
		apperr.Respond(c, apperr.Validation("User category mismatch"))
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = *input.Age
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		switch user.Category {
		case models.CategoryStudent:
			var details models.StudentDetails
			if err := tx.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
				return err
			}
			if input.Class != nil {
				details.ClassName = *input.Class
			}
			if input.Division != nil {
				details.Division = *input.Division
			}
			return tx.Save(&details).Error
		case models.CategoryTeacher:
			var details models.TeacherDetails
			if err := tx.Where("user_id = ?", user.ID).First(&details).Error; err != nil {
				return err
			}
			if input.Subject != nil {
				details.Subject = *input.Subject
			}
			return tx.Save(&details).Error
		}
		return nil
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// Delete soft-deletes the user and deactivates every mapping the user
// appears in, either side, in the same transaction.
func (uc *UserController) Delete(c *gin.Context) {
	user, err := uc.activeUserByID(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		user.IsDelete = true
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserMapping{}).
			Where("student_id = ? OR teacher_id = ?", user.ID, user.ID).
			Update("isdelete", true).Error
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and associated mappings deleted successfully"})
}

func (uc *UserController) activeUserByID(id string) (*models.User, error) {
	var user models.User
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	if user.IsDelete {
		return nil, apperr.NotFound("User not found")
	}
	return &user, nil
}
