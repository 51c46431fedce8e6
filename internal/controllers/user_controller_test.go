package controllers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"

	"school_registry/internal/models"
)

func TestViewUserWithDetails(t *testing.T) {
	r, _ := setupRouter(t)

	id := registerTeacher(t, r, "Ann", "a@x.com")

	w := doJSON(t, r, "GET", fmt.Sprintf("/users/%d", id), nil)
	if w.Code != 200 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["name"] != "Ann" || body["category"] != "teacher" {
		t.Fatalf("body = %s", w.Body.String())
	}
	details, ok := body["teacher_details"].(map[string]any)
	if !ok {
		t.Fatalf("no teacher_details in %s", w.Body.String())
	}
	if details["subject"] != "Math" {
		t.Fatalf("subject = %v", details["subject"])
	}
	if _, present := body["student_details"]; present {
		t.Fatalf("unexpected student_details in %s", w.Body.String())
	}
}

func TestViewMissingUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/users/42", nil)
	if w.Code != 404 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "User not found" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestViewSoftDeletedUser(t *testing.T) {
	r, _ := setupRouter(t)

	id := registerStudent(t, r, "Bob", "bob@x.com")

	if w := doJSON(t, r, "DELETE", fmt.Sprintf("/users/%d", id), nil); w.Code != 200 {
		t.Fatalf("delete status = %d", w.Code)
	}

	w := doJSON(t, r, "GET", fmt.Sprintf("/users/%d", id), nil)
	if w.Code != 404 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestListUsersSkipsDeleted(t *testing.T) {
	r, _ := setupRouter(t)

	registerTeacher(t, r, "Ann", "a@x.com")
	bobID := registerStudent(t, r, "Bob", "bob@x.com")

	doJSON(t, r, "DELETE", fmt.Sprintf("/users/%d", bobID), nil)

	w := doJSON(t, r, "GET", "/users", nil)
	if w.Code != 200 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("users listed = %d, want 1", len(body.Data))
	}
	if body.Data[0]["name"] != "Ann" {
		t.Fatalf("listed user = %v", body.Data[0])
	}
	// minimal projection only
	if _, present := body.Data[0]["email"]; present {
		t.Fatalf("projection leaked email: %v", body.Data[0])
	}
}

func TestUpdatePartialFields(t *testing.T) {
	r, db := setupRouter(t)

	id := registerStudent(t, r, "Bob", "bob@x.com")

	w := doJSON(t, r, "PATCH", fmt.Sprintf("/users/%d", id), gin.H{"name": "Robert", "class": "7th"})
	if w.Code != 200 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "User updated successfully" {
		t.Fatalf("body = %s", w.Body.String())
	}

	var user models.User
	db.First(&user, id)
	if user.Name != "Robert" || user.Age != 12 {
		t.Fatalf("user = %+v", user)
	}

	var details models.StudentDetails
	db.Where("user_id = ?", id).First(&details)
	if details.ClassName != "7th" || details.Division != "A" {
		t.Fatalf("details = %+v", details)
	}
}

func TestUpdateCategoryMismatch(t *testing.T) {
	r, db := setupRouter(t)

	id := registerStudent(t, r, "Bob", "bob@x.com")

	w := doJSON(t, r, "PUT", fmt.Sprintf("/users/%d", id), gin.H{"name": "Robert", "category": "teacher"})
	if w.Code != 400 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "User category mismatch" {
		t.Fatalf("body = %s", w.Body.String())
	}

	// rejected update changed nothing
	var user models.User
	db.First(&user, id)
	if user.Name != "Bob" || user.Category != "student" {
		t.Fatalf("user = %+v", user)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "PUT", "/users/42", gin.H{"name": "Ghost"})
	if w.Code != 404 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestDeleteDeactivatesAllMappings(t *testing.T) {
	r, db := setupRouter(t)

	teacherID := registerTeacher(t, r, "Ann", "a@x.com")
	s1 := registerStudent(t, r, "Bob", "bob@x.com")
	s2 := registerStudent(t, r, "Cal", "cal@x.com")

	createMapping(t, r, s1, teacherID)
	createMapping(t, r, s2, teacherID)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/users/%d", teacherID), nil)
	if w.Code != 200 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "User and associated mappings deleted successfully" {
		t.Fatalf("body = %s", w.Body.String())
	}

	var active int64
	db.Model(&models.UserMapping{}).Where("isdelete = ?", false).Count(&active)
	if active != 0 {
		t.Fatalf("active mappings = %d, want 0", active)
	}

	// rows retained, only flagged
	var total int64
	db.Model(&models.UserMapping{}).Count(&total)
	if total != 2 {
		t.Fatalf("mapping rows = %d, want 2", total)
	}
}

func TestDeleteTwiceIsNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	id := registerStudent(t, r, "Bob", "bob@x.com")

	doJSON(t, r, "DELETE", fmt.Sprintf("/users/%d", id), nil)
	w := doJSON(t, r, "DELETE", fmt.Sprintf("/users/%d", id), nil)
	if w.Code != 404 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}
