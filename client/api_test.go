// client/api_test.go
package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI points a client at a stub server with a fresh session store.
func newTestAPI(t *testing.T, handler http.Handler) (*API, *Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := newTestSession(t)
	return NewAPI(srv.URL, session), session
}

func TestLoginStoresSnapshotAndToken(t *testing.T) {
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Invalid membername or password",
			})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "jwt-abc", HttpOnly: true})
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    map[string]interface{}{"id": 7, "membername": "diego", "name": "Diego", "YOB": 1985},
		})
	}))

	t.Run("bad credentials", func(t *testing.T) {
		_, err := api.Login("diego", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid membername or password", err.Error())
		_, ok := session.Current()
		assert.False(t, ok, "failed login must not persist anything")
	})

	t.Run("success persists the session", func(t *testing.T) {
		user, err := api.Login("diego", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "diego", user.Membername)

		stored, ok := session.Current()
		require.True(t, ok)
		assert.Equal(t, "Diego", stored.Name)
		assert.Equal(t, "jwt-abc", session.Token())
	})
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"players": []interface{}{}},
		})
	}))
	require.NoError(t, session.Set(testMember(), "jwt-abc"))

	_, err := api.Players("", 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-abc", gotAuth)
}

func TestNotAuthenticatedError(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Admin privileges required",
		})
	}))

	_, err := api.Accounts()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestPlayersDecodesEnvelope(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ronaldo", r.URL.Query().Get("search"))
		assert.Equal(t, "3", r.URL.Query().Get("team"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"players": []map[string]interface{}{
					{"id": 1, "playerName": "Ronaldo", "cost": 500, "team": map[string]interface{}{"id": 3, "teamName": "Madrid"}},
				},
			},
		})
	}))

	players, err := api.Players("ronaldo", 3)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Ronaldo", players[0].PlayerName)
	require.NotNil(t, players[0].Team)
	assert.Equal(t, "Madrid", players[0].Team.TeamName)
}

func TestPlayerDetailCommentsKeepServerOrder(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/players/1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"player": map[string]interface{}{
					"id":         1,
					"playerName": "Maradona",
					"comments": []map[string]interface{}{
						{"id": 9, "rating": 3, "content": "newest", "author": map[string]interface{}{"membername": "bob"}},
						{"id": 4, "rating": 2, "content": "oldest", "author": map[string]interface{}{"membername": "alice"}},
					},
				},
			},
		})
	}))

	player, err := api.Player(1)
	require.NoError(t, err)
	require.Len(t, player.Comments, 2)
	assert.Equal(t, "newest", player.Comments[0].Content)
	assert.Equal(t, "oldest", player.Comments[1].Content)
}

func TestLogoutClearsLocalSessionEvenOnFailure(t *testing.T) {
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	require.NoError(t, session.Set(testMember(), "stale-token"))

	require.NoError(t, api.Logout())
	_, ok := session.Current()
	assert.False(t, ok, "local session goes away regardless of the server")
}

func TestUpdateProfilePatchesSnapshot(t *testing.T) {
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profile", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Profile updated successfully",
		})
	}))
	require.NoError(t, session.Set(testMember(), "jwt-abc"))

	msg, err := api.UpdateProfile("Diego M.", 1986)
	require.NoError(t, err)
	assert.Equal(t, "Profile updated successfully", msg)

	user, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "Diego M.", user.Name)
	assert.Equal(t, 1986, user.YOB)
	assert.Equal(t, "diego", user.Membername)
}
