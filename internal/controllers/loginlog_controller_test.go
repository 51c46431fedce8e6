package controllers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListLogsRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/logs", nil)
	if w.Code != 401 {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestListLogs(t *testing.T) {
	r, _ := setupRouter(t)

	registerTeacher(t, r, "Ann", "a@x.com")

	login := doJSON(t, r, "POST", "/login", gin.H{"email": "a@x.com", "password": "secret"})
	if login.Code != 200 {
		t.Fatalf("login status = %d", login.Code)
	}
	token := decodeBody(t, login)["token"].(string)

	req := httptest.NewRequest("GET", "/logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

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
		t.Fatalf("log rows = %d, want 1", len(body.Data))
	}
	if body.Data[0]["category"] != "teacher" || body.Data[0]["name"] != "Ann" {
		t.Fatalf("log = %v", body.Data[0])
	}
}
