package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/db"
	"github.com/taskflow-dev/taskflow/internal/models"
)

func TestCreateMemberUnderForeignGroupDenied(t *testing.T) {
	r := setupTest(t)

	alice := registerUser(t, r, "alice@example.com")
	bob := registerUser(t, r, "bob@example.com")

	groupID := createGroup(t, r, alice, "Alice's group")

	w := doRequest(t, r, http.MethodPost, memberPath(groupID), bob, gin.H{"name": "Intruder"})

	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign member create: got status %d, want 403", w.Code)
	}

	// No row may have been written.
	var count int64
	if err := db.DB.Model(&models.Member{}).Where("group_id = ?", groupID).Count(&count).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}

	if count != 0 {
		t.Errorf("denied create left %d rows behind", count)
	}
}

func TestListMembersOfForeignOrMissingGroupIsEmpty(t *testing.T) {
	r := setupTest(t)

	alice := registerUser(t, r, "alice@example.com")
	bob := registerUser(t, r, "bob@example.com")

	groupID := createGroup(t, r, alice, "Alice's group")
	createMember(t, r, alice, groupID, "Ann")

	foreign := doRequest(t, r, http.MethodGet, memberPath(groupID), bob, nil)
	missing := doRequest(t, r, http.MethodGet, "/api/groups/99999/members", alice, nil)

	if foreign.Code != http.StatusOK || missing.Code != http.StatusOK {
		t.Fatalf("got statuses %d and %d, want 200 for both", foreign.Code, missing.Code)
	}

	if foreign.Body.String() != "[]" {
		t.Errorf("foreign group list: got body %s, want []", foreign.Body.String())
	}

	if missing.Body.String() != foreign.Body.String() {
		t.Errorf("missing group is distinguishable from foreign group: %s vs %s",
			missing.Body.String(), foreign.Body.String())
	}
}

func TestCreateMemberRequiresName(t *testing.T) {
	r := setupTest(t)

	alice := registerUser(t, r, "alice@example.com")
	groupID := createGroup(t, r, alice, "Alice's group")

	w := doRequest(t, r, http.MethodPost, memberPath(groupID), alice, gin.H{"name": ""})

	if w.Code != http.StatusBadRequest {
		t.Errorf("empty member name: got status %d, want 400", w.Code)
	}
}

func TestMemberRoundTrip(t *testing.T) {
	r := setupTest(t)

	alice := registerUser(t, r, "alice@example.com")
	groupID := createGroup(t, r, alice, "Alice's group")
	memberID := createMember(t, r, alice, groupID, "Ann")

	list := doRequest(t, r, http.MethodGet, memberPath(groupID), alice, nil)

	var members []models.Member
	decodeBody(t, list, &members)

	if len(members) != 1 || members[0].Name != "Ann" || members[0].GroupID != groupID {
		t.Fatalf("member list: got %+v", members)
	}

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/members/%d", memberID), alice, nil)

	var count countResponse
	decodeBody(t, w, &count)

	if count.Deleted != 1 {
		t.Errorf("member delete: got %d rows, want 1", count.Deleted)
	}
}

func TestDeleteForeignMemberAffectsNothing(t *testing.T) {
	r := setupTest(t)

	alice := registerUser(t, r, "alice@example.com")
	bob := registerUser(t, r, "bob@example.com")

	groupID := createGroup(t, r, alice, "Alice's group")
	memberID := createMember(t, r, alice, groupID, "Ann")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/members/%d", memberID), bob, nil)

	var count countResponse
	decodeBody(t, w, &count)

	if count.Deleted != 0 {
		t.Errorf("foreign member delete: got %d rows, want 0", count.Deleted)
	}
}
