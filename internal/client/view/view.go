// Package view renders client state as plain text.
package view

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/counter-backend/internal/client"
)

func Render(state client.State) string {
	var b strings.Builder

	switch {
	case state.Session == nil:
		renderLogin(&b)
	case state.Game == nil:
		renderLobby(&b, state)
	default:
		renderGame(&b, state)
	}

	if state.Busy {
		b.WriteString("...\n")
	}

	if state.Notice != "" {
		fmt.Fprintf(&b, "! %s (dismiss)\n", state.Notice)
	}

	return b.String()
}

func renderLogin(b *strings.Builder) {
	b.WriteString("== counter ==\n")
	b.WriteString("not signed in\n")
	b.WriteString("commands: signup <email> <password> | login <email> <password> | quit\n")
}

func renderLobby(b *strings.Builder, state client.State) {
	fmt.Fprintf(b, "== lobby (%s) ==\n", state.Session.User.Email)

	if len(state.Joinable) == 0 {
		b.WriteString("no open games\n")
	} else {
		b.WriteString("open games:\n")
		for _, game := range state.Joinable {
			fmt.Fprintf(b, "  %s  %d/4 players\n", game.ID, len(game.Players))
		}
	}

	b.WriteString("commands: new | join <code> | refresh | logout | quit\n")
}

func renderGame(b *strings.Builder, state client.State) {
	game := state.Game
	userID := state.UserID()

	fmt.Fprintf(b, "== game %s ==\n", game.ID)
	fmt.Fprintf(b, "number: %d\n", game.CurrentNumber)
	b.WriteString("players:\n")

	for _, player := range game.Players {
		marker := "  "
		if player == game.CurrentPlayer {
			marker = "> "
		}

		name := player
		if player == userID {
			name += " (you)"
		}

		fmt.Fprintf(b, "%s%s\n", marker, name)
	}

	switch {
	case game.GameOver:
		b.WriteString("game over\n")
	case game.IsTurnOf(userID):
		b.WriteString("your turn: inc | dec\n")
	default:
		b.WriteString("waiting for the other player\n")
	}

	b.WriteString("commands: inc | dec | refresh | logout | quit\n")
}
