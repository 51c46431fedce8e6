package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"school_registry/internal/models"
	"school_registry/internal/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// One connection, or every pool member gets its own :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.StudentDetails{},
		&models.TeacherDetails{},
		&models.UserMapping{},
		&models.LoginLog{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return routes.SetupRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func registerStudent(t *testing.T, r *gin.Engine, name, email string) uint {
	t.Helper()

	w := doJSON(t, r, "POST", "/register", gin.H{
		"name": name, "age": 12, "category": "student",
		"email": email, "password": "secret",
		"class": "6th", "division": "A",
	})
	if w.Code != 201 {
		t.Fatalf("register student %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	return uint(decodeBody(t, w)["id"].(float64))
}

func registerTeacher(t *testing.T, r *gin.Engine, name, email string) uint {
	t.Helper()

	w := doJSON(t, r, "POST", "/register", gin.H{
		"name": name, "age": 35, "category": "teacher",
		"email": email, "password": "secret",
		"subject": "Math",
	})
	if w.Code != 201 {
		t.Fatalf("register teacher %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	return uint(decodeBody(t, w)["id"].(float64))
}

func createMapping(t *testing.T, r *gin.Engine, studentID, teacherID uint) {
	t.Helper()

	w := doJSON(t, r, "POST", "/mapping", gin.H{
		"student_id": studentID, "teacher_id": teacherID,
	})
	if w.Code != 201 {
		t.Fatalf("create mapping %d/%d: status %d, body %s", studentID, teacherID, w.Code, w.Body.String())
	}
}
