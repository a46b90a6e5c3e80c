package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/db"
	"github.com/taskflow-dev/taskflow/internal/auth"
	"github.com/taskflow-dev/taskflow/internal/router"
)

// setupTest points the global db handle at a fresh sqlite file and returns
// the real router, so tests exercise the same wiring as production.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.InitJWTSecret()

	dsn := filepath.Join(t.TempDir(), "taskflow_test.db")

	if err := db.ConnectDatabase(dsn); err != nil {
		t.Fatalf("ConnectDatabase failed: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("MigrateDatabase failed: %v", err)
	}

	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser registers an account and returns its bearer token.
func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/register", "", gin.H{
		"email":    email,
		"password": "password123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("register %s: got status %d, body %s", email, w.Code, w.Body.String())
	}

	var body struct {
		Token  string `json:"token"`
		UserID uint   `json:"userId"`
	}
	decodeBody(t, w, &body)

	if body.Token == "" {
		t.Fatalf("register %s: empty token", email)
	}

	return body.Token
}

func groupPath(groupID uint) string {
	return fmt.Sprintf("/api/groups/%d", groupID)
}

func memberPath(groupID uint) string {
	return fmt.Sprintf("/api/groups/%d/members", groupID)
}

func taskPath(memberID uint) string {
	return fmt.Sprintf("/api/members/%d/tasks", memberID)
}

type countResponse struct {
	Deleted int64 `json:"deleted"`
	Updated int64 `json:"updated"`
}

func createGroup(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/groups", token, gin.H{"name": name})

	if w.Code != http.StatusCreated {
		t.Fatalf("create group: got status %d, body %s", w.Code, w.Body.String())
	}

	var group struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &group)

	return group.ID
}

func createMember(t *testing.T, r *gin.Engine, token string, groupID uint, name string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, memberPath(groupID), token, gin.H{"name": name})

	if w.Code != http.StatusCreated {
		t.Fatalf("create member: got status %d, body %s", w.Code, w.Body.String())
	}

	var member struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &member)

	return member.ID
}

func createTask(t *testing.T, r *gin.Engine, token string, memberID uint, title string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, taskPath(memberID), token, gin.H{"title": title})

	if w.Code != http.StatusCreated {
		t.Fatalf("create task: got status %d, body %s", w.Code, w.Body.String())
	}

	var task struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &task)

	return task.ID
}
