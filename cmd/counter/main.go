// Command counter is a terminal client for the counter backend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/counter-backend/internal/client"
	"github.com/rocketscienceinc/counter-backend/internal/client/view"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
)

func main() {
	apiURL := flag.String("api", envOr("COUNTER_API_URL", "http://localhost:9090"), "REST API base url")
	wsURL := flag.String("ws", envOr("COUNTER_WS_URL", "ws://localhost:9091/ws"), "WebSocket endpoint")
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Parse()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := client.NewStore(logger, client.NewHTTPBackend(*apiURL, *wsURL), 0)
	go store.Run(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case state := <-store.Updates():
				fmt.Fprint(os.Stdout, "\n"+view.Render(state)+"> ")
			}
		}
	}()

	fmt.Fprint(os.Stdout, view.Render(store.Snapshot())+"> ")

	if err := readCommands(ctx, os.Stdin, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func readCommands(ctx context.Context, in io.Reader, store *client.Store) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if quit := dispatch(store, fields[0], fields[1:]); quit {
			return nil
		}
	}

	return scanner.Err()
}

// dispatch - maps one command line onto a store action. Reports whether to quit.
func dispatch(store *client.Store, command string, args []string) bool {
	switch strings.ToLower(command) {
	case "signup", "login":
		if len(args) != 2 {
			fmt.Fprintf(os.Stdout, "usage: %s <email> <password>\n> ", command)
			return false
		}

		if command == "signup" {
			store.SignUp(args[0], args[1])
		} else {
			store.SignIn(args[0], args[1])
		}
	case "logout":
		store.SignOut()
	case "new":
		store.CreateGame()
	case "join":
		if len(args) != 1 {
			fmt.Fprint(os.Stdout, "usage: join <code>\n> ")
			return false
		}

		store.JoinGame(args[0])
	case "inc":
		store.Move(counter.Increment)
	case "dec":
		store.Move(counter.Decrement)
	case "refresh":
		store.Refresh()
	case "dismiss":
		store.DismissNotice()
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(os.Stdout, "unknown command %q\n> ", command)
	}

	return false
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
