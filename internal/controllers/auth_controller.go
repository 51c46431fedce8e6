package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school_registry/internal/apperr"
	"school_registry/internal/middleware"
	"school_registry/internal/models"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Category string `json:"category" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	// student fields
	Class    string `json:"class"`
	Division string `json:"division"`

	// teacher field
	Subject string `json:"subject"`
}

// Register creates the user row and its category detail row as one
// transaction; a failed detail insert rolls the user back too.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := validateAndNormalizeCategory(input.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Category = category

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		apperr.Respond(c, apperr.Conflict("email already in use"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	user := models.User{
		Name:     input.Name,
		Age:      input.Age,
		Category: input.Category,
		Email:    input.Email,
		Password: hashedPassword,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return createDetailsRecord(tx, &user, input)
	})
	if err != nil {
		if isUniqueViolation(err) {
			apperr.Respond(c, apperr.Conflict("email already in use"))
			return
		}
		apperr.Respond(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"id":      user.ID,
		"token":   token,
	})
}

// Login verifies credentials and appends one LoginLog row. Missing user and
// wrong password return the same generic failure so accounts cannot be
// enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := ac.DB.Where("email = ? AND isdelete = ?", body.Email, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.Auth("invalid credentials"))
		} else {
			apperr.Respond(c, apperr.Internal(err))
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		apperr.Respond(c, apperr.Auth("invalid credentials"))
		return
	}

	entry := models.LoginLog{
		UserID:   user.ID,
		Name:     user.Name,
		Category: user.Category,
	}
	if err := ac.DB.Create(&entry).Error; err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"id":      user.ID,
		"token":   token,
	})
}

func validateAndNormalizeCategory(categoryInput string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(categoryInput))
	switch category {
	case models.CategoryStudent, models.CategoryTeacher:
		return category, nil
	default:
		return "", errors.New("invalid category")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func createDetailsRecord(tx *gorm.DB, user *models.User, input registerInput) error {
	switch user.Category {
	case models.CategoryStudent:
		if input.Class == "" || input.Division == "" {
			return errors.New("class and division are required for student category")
		}
		details := models.StudentDetails{
			UserID:    user.ID,
			ClassName: input.Class,
			Division:  input.Division,
		}
		return tx.Create(&details).Error
	case models.CategoryTeacher:
		if input.Subject == "" {
			return errors.New("subject is required for teacher category")
		}
		details := models.TeacherDetails{
			UserID:  user.ID,
			Subject: input.Subject,
		}
		return tx.Create(&details).Error
	}
	return nil
}

// isUniqueViolation reports whether err is the storage layer rejecting a
// duplicate key. GORM's translated error covers pgx and sqlite; the pq code
// check catches the raw Postgres error shape.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
