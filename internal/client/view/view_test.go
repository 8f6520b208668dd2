package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/counter-backend/internal/client"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

func session(id string) *entity.Session {
	return &entity.Session{AccessToken: "token", User: entity.SessionUser{ID: id, Email: id + "@example.com"}}
}

func TestRender_Login(t *testing.T) {
	out := Render(client.State{})

	assert.Contains(t, out, "not signed in")
	assert.Contains(t, out, "login <email> <password>")
}

func TestRender_Lobby(t *testing.T) {
	// Given: a signed-in player with one open game to choose from
	state := client.State{
		Session:  session("alice"),
		Joinable: []*entity.Game{entity.NewGame("OPEN23", "bob")},
	}

	// Then: the lobby lists the code and the hints
	out := Render(state)
	assert.Contains(t, out, "lobby (alice@example.com)")
	assert.Contains(t, out, "OPEN23  1/4 players")
	assert.Contains(t, out, "join <code>")
}

func TestRender_Game(t *testing.T) {
	game := &entity.Game{ID: "GAME23", Players: []string{"alice", "bob"}, CurrentPlayer: "bob", CurrentNumber: -2}

	t.Run("Waiting for someone else", func(t *testing.T) {
		out := Render(client.State{Session: session("alice"), Game: game})

		assert.Contains(t, out, "game GAME23")
		assert.Contains(t, out, "number: -2")
		assert.Contains(t, out, "  alice (you)\n")
		assert.Contains(t, out, "> bob\n")
		assert.Contains(t, out, "waiting")
	})

	t.Run("Own turn", func(t *testing.T) {
		out := Render(client.State{Session: session("bob"), Game: game})

		assert.Contains(t, out, "> bob (you)\n")
		assert.Contains(t, out, "your turn")
	})
}

func TestRender_Notice(t *testing.T) {
	out := Render(client.State{Session: session("alice"), Notice: client.NoticeNotYourTurn})

	assert.Contains(t, out, "! not your turn")
}
