// handlers/teams_test.go
package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRoutesAuthorization(t *testing.T) {
	app, db := newTestApp(t)
	_, memberToken := newMember(t, db, "member", false)
	_, adminToken := newMember(t, db, "admin", true)
	payload := map[string]interface{}{"teamName": "Arsenal"}

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no session", token: "", wantStatus: http.StatusUnauthorized},
		{name: "member session", token: memberToken, wantStatus: http.StatusForbidden},
		{name: "admin session", token: adminToken, wantStatus: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := request(t, app, http.MethodPost, "/api/teams", payload, tt.token)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestTeamsListEnvelope(t *testing.T) {
	app, db := newTestApp(t)

	t.Run("empty list, not null", func(t *testing.T) {
		resp, body := request(t, app, http.MethodGet, "/api/teams", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		teams, ok := body["data"].([]interface{})
		require.True(t, ok, "data must be a bare list")
		assert.Empty(t, teams)
	})

	seedTeamAndPlayer(t, db)

	t.Run("teams ride directly under data", func(t *testing.T) {
		_, body := request(t, app, http.MethodGet, "/api/teams", nil, "")
		teams := body["data"].([]interface{})
		require.Len(t, teams, 1)
		team := teams[0].(map[string]interface{})
		assert.Equal(t, "Testers FC", team["teamName"])
	})
}

func TestCreateTeamDuplicate(t *testing.T) {
	app, db := newTestApp(t)
	_, adminToken := newMember(t, db, "admin", true)

	resp, _ := request(t, app, http.MethodPost, "/api/teams", map[string]interface{}{"teamName": "Arsenal"}, adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := request(t, app, http.MethodPost, "/api/teams", map[string]interface{}{"teamName": "ARSENAL"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "A team with this name already exists", body["message"])
}

func TestDeleteTeamGuard(t *testing.T) {
	app, db := newTestApp(t)
	_, adminToken := newMember(t, db, "admin", true)
	team, player := seedTeamAndPlayer(t, db)
	path := fmt.Sprintf("/api/teams/%d", team.ID)

	resp, body := request(t, app, http.MethodDelete, path, nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot delete a team that still has players", body["message"])

	// Once the roster is empty the delete goes through.
	require.NoError(t, db.Delete(&player).Error)
	resp, _ = request(t, app, http.MethodDelete, path, nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = request(t, app, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTeamInvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := request(t, app, http.MethodGet, "/api/teams/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = request(t, app, http.MethodGet, "/api/teams/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
