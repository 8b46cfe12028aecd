package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdash-backend/internal/models"
)

func createLeave(t *testing.T, router *gin.Engine, token string) models.LeaveRequest {
	t.Helper()
	start := time.Now().UTC().Add(7 * 24 * time.Hour)
	w := doJSON(t, router, http.MethodPost, "/api/leaves", token, map[string]any{
		"start_date": start.Format(time.RFC3339),
		"end_date":   start.Add(2 * 24 * time.Hour).Format(time.RFC3339),
		"reason":     "family visit",
		"leave_type": "casual",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var leave models.LeaveRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leave))
	return leave
}

func TestCreateLeaveStartsPending(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")

	leave := createLeave(t, router, jane)
	assert.Equal(t, "pending", leave.Status)
	assert.Nil(t, leave.ApprovedBy)
}

func TestCreateLeaveRejectsInvertedDates(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")

	start := time.Now().UTC().Add(7 * 24 * time.Hour)
	w := doJSON(t, router, http.MethodPost, "/api/leaves", jane, map[string]any{
		"start_date": start.Format(time.RFC3339),
		"end_date":   start.Add(-24 * time.Hour).Format(time.RFC3339),
		"reason":     "bad dates",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveVisibilityScoped(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")
	bob := registerEmployee(t, router, admin, "bob")

	createLeave(t, router, jane)

	var leaves []models.LeaveRequest

	w := doJSON(t, router, http.MethodGet, "/api/leaves", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leaves))
	assert.Empty(t, leaves)

	w = doJSON(t, router, http.MethodGet, "/api/leaves", jane, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leaves))
	assert.Len(t, leaves, 1)

	w = doJSON(t, router, http.MethodGet, "/api/leaves", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leaves))
	assert.Len(t, leaves, 1)
}

func TestLeaveApproveFlow(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")
	leave := createLeave(t, router, jane)

	w := doJSON(t, router, http.MethodPatch, "/api/leaves/"+leave.ID.String()+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var decided models.LeaveRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decided))
	assert.Equal(t, "approved", decided.Status)
	assert.NotNil(t, decided.ApprovedBy)

	// a decided request stays decided
	w = doJSON(t, router, http.MethodPatch, "/api/leaves/"+leave.ID.String()+"/reject", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLeaveRejectFlow(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")
	leave := createLeave(t, router, jane)

	w := doJSON(t, router, http.MethodPatch, "/api/leaves/"+leave.ID.String()+"/reject", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var decided models.LeaveRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decided))
	assert.Equal(t, "rejected", decided.Status)
}

func TestLeaveDecisionRequiresAdmin(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")
	leave := createLeave(t, router, jane)

	w := doJSON(t, router, http.MethodPatch, "/api/leaves/"+leave.ID.String()+"/approve", jane, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPendingLeaveList(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	jane := registerEmployee(t, router, admin, "jane")

	first := createLeave(t, router, jane)
	createLeave(t, router, jane)

	w := doJSON(t, router, http.MethodPatch, "/api/leaves/"+first.ID.String()+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/leaves/pending", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pending []models.LeaveRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "pending", pending[0].Status)
}

func TestLeaveNotFound(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	w := doJSON(t, router, http.MethodPatch, "/api/leaves/"+uuid.NewString()+"/approve", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
