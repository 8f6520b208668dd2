package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	socket "github.com/rocketscienceinc/counter-backend/transport/websocket"
)

const (
	NoticeNotYourTurn    = "not your turn"
	NoticeAlreadyJoined  = "already joined"
	NoticeNoGame         = "no active game"
	NoticeNotSignedIn    = "sign in first"
	NoticeFeedLost       = "live updates disconnected, use refresh"
	eventBuffer          = 64
	defaultJoinableLimit = 20
)

type State struct {
	Session  *entity.Session
	Game     *entity.Game
	Joinable []*entity.Game
	Notice   string
	Busy     bool
}

// UserID - the signed-in user, empty without a session.
func (that State) UserID() string {
	if that.Session == nil {
		return ""
	}

	return that.Session.User.ID
}

func (that State) clone() State {
	out := that
	if that.Session != nil {
		session := *that.Session
		out.Session = &session
	}
	if that.Game != nil {
		out.Game = that.Game.Clone()
	}
	out.Joinable = make([]*entity.Game, 0, len(that.Joinable))
	for _, game := range that.Joinable {
		out.Joinable = append(out.Joinable, game.Clone())
	}

	return out
}

// event runs inside the Run loop, which is the only owner of state.
type event func(*Store)

type Store struct {
	logger        *slog.Logger
	backend       Backend
	joinableLimit int

	ctx     context.Context
	events  chan event
	updates chan State
	done    chan struct{}

	snapshot atomic.Pointer[State]

	state   State
	pending int

	feed       Feed
	feedGameID string
}

func NewStore(logger *slog.Logger, backend Backend, joinableLimit int) *Store {
	if joinableLimit <= 0 {
		joinableLimit = defaultJoinableLimit
	}

	store := &Store{
		logger:        logger.With("component", "client-store"),
		backend:       backend,
		joinableLimit: joinableLimit,
		ctx:           context.Background(),
		events:        make(chan event, eventBuffer),
		updates:       make(chan State, 1),
		done:          make(chan struct{}),
	}
	store.snapshot.Store(&State{})

	return store
}

// Run - owns the state until ctx ends. Every action and result is applied here.
func (that *Store) Run(ctx context.Context) {
	that.ctx = ctx
	defer func() {
		that.closeFeed()
		close(that.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case apply := <-that.events:
			apply(that)
			that.publish()
		}
	}
}

func (that *Store) Snapshot() State {
	return *that.snapshot.Load()
}

// Updates - the latest state after each change. Stale states are replaced, never queued.
func (that *Store) Updates() <-chan State {
	return that.updates
}

func (that *Store) publish() {
	that.state.Busy = that.pending > 0

	state := that.state.clone()
	that.snapshot.Store(&state)

	select {
	case <-that.updates:
	default:
	}
	that.updates <- state
}

func (that *Store) post(e event) {
	select {
	case that.events <- e:
	case <-that.done:
	}
}

// request - runs call off the loop and applies done with its result on the loop.
func (that *Store) request(call func(ctx context.Context, token string) (any, error), done func(s *Store, result any, err error)) {
	token := that.token()
	ctx := that.ctx
	that.pending++

	go func() {
		result, err := call(ctx, token)

		that.post(func(s *Store) {
			s.pending--

			// a result for a session that has since ended is dropped
			if s.token() != token {
				return
			}

			done(s, result, err)
		})
	}()
}

func (that *Store) token() string {
	if that.state.Session == nil {
		return ""
	}

	return that.state.Session.AccessToken
}

func (that *Store) fail(err error) {
	that.logger.Warn("request failed", "error", err)
	that.state.Notice = noticeFor(err)
}

func (that *Store) SignUp(email, password string) {
	that.post(func(s *Store) { s.authenticate(email, password, s.backend.SignUp) })
}

func (that *Store) SignIn(email, password string) {
	that.post(func(s *Store) { s.authenticate(email, password, s.backend.SignIn) })
}

func (that *Store) authenticate(email, password string, call func(ctx context.Context, email, password string) (*entity.Session, error)) {
	that.request(
		func(ctx context.Context, _ string) (any, error) {
			return call(ctx, strings.TrimSpace(email), password)
		},
		func(s *Store, result any, err error) {
			if err != nil {
				s.fail(err)
				return
			}

			s.setGame(nil)
			s.state = State{Session: result.(*entity.Session)}
			s.refresh()
		},
	)
}

func (that *Store) SignOut() {
	that.post(func(s *Store) {
		if s.state.Session == nil {
			return
		}

		s.request(
			func(ctx context.Context, token string) (any, error) {
				return nil, s.backend.SignOut(ctx, token)
			},
			func(s *Store, _ any, err error) {
				// an expired token means the session is already over
				if err != nil && !errors.Is(err, apperror.ErrUnauthorized) {
					s.fail(err)
					return
				}

				s.setGame(nil)
				s.state = State{}
			},
		)
	})
}

// Refresh - discovery: the active game, or else the joinable list.
func (that *Store) Refresh() {
	that.post(func(s *Store) { s.refresh() })
}

func (that *Store) refresh() {
	if that.state.Session == nil {
		that.state.Notice = NoticeNotSignedIn
		return
	}

	that.request(
		func(ctx context.Context, token string) (any, error) {
			return that.backend.Lobby(ctx, token, that.joinableLimit)
		},
		func(s *Store, result any, err error) {
			if err != nil {
				s.fail(err)
				return
			}

			lobby := result.(*entity.Lobby)
			s.state.Joinable = lobby.Joinable
			s.setGame(lobby.Active)
		},
	)
}

func (that *Store) CreateGame() {
	that.post(func(s *Store) {
		if s.state.Session == nil {
			s.state.Notice = NoticeNotSignedIn
			return
		}

		s.request(
			func(ctx context.Context, token string) (any, error) {
				return s.backend.CreateGame(ctx, token)
			},
			s.gameResult,
		)
	})
}

// JoinGame - re-reads the game first and only writes when the player is not in it yet.
func (that *Store) JoinGame(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))

	that.post(func(s *Store) {
		if s.state.Session == nil {
			s.state.Notice = NoticeNotSignedIn
			return
		}

		userID := s.state.UserID()

		s.request(
			func(ctx context.Context, token string) (any, error) {
				game, err := s.backend.GetGame(ctx, token, code)
				if err != nil {
					return nil, err
				}

				if game.HasPlayer(userID) {
					return nil, apperror.ErrAlreadyJoined
				}

				return s.backend.JoinGame(ctx, token, code)
			},
			s.gameResult,
		)
	})
}

// Move - rejected locally when the player does not hold the turn.
func (that *Store) Move(move counter.Move) {
	that.post(func(s *Store) {
		game := s.state.Game
		if game == nil {
			s.state.Notice = NoticeNoGame
			return
		}

		if !game.IsTurnOf(s.state.UserID()) {
			s.state.Notice = NoticeNotYourTurn
			return
		}

		id := game.ID

		s.request(
			func(ctx context.Context, token string) (any, error) {
				return s.backend.Move(ctx, token, id, move)
			},
			func(s *Store, result any, err error) {
				if err != nil {
					s.fail(err)
					return
				}

				// the game may have changed while the move was in flight
				if updated := result.(*entity.Game); s.state.Game != nil && s.state.Game.ID == updated.ID {
					s.state.Game = updated
				}
			},
		)
	})
}

func (that *Store) DismissNotice() {
	that.post(func(s *Store) { s.state.Notice = "" })
}

func (that *Store) gameResult(s *Store, result any, err error) {
	if err != nil {
		s.fail(err)
		return
	}

	s.setGame(result.(*entity.Game))
}

// setGame - makes game current and moves the live subscription with it.
func (that *Store) setGame(game *entity.Game) {
	previous := that.state.Game
	that.state.Game = game

	if game == nil {
		that.closeFeed()
		return
	}

	if previous != nil && previous.ID == game.ID && that.feedGameID == game.ID {
		return
	}

	that.closeFeed()
	that.subscribe(game.ID)
}

func (that *Store) subscribe(gameID string) {
	token := that.token()
	ctx := that.ctx
	that.feedGameID = gameID

	go func() {
		feed, err := that.backend.Subscribe(ctx, token, gameID)

		that.post(func(s *Store) {
			if err != nil {
				if s.feedGameID == gameID {
					s.feedGameID = ""
				}
				s.fail(err)
				return
			}

			// the game changed before the socket was ready
			if s.feedGameID != gameID || s.token() != token || s.feed != nil {
				_ = feed.Close()
				return
			}

			s.feed = feed
			go s.pump(feed, gameID)
		})
	}()
}

// pump - forwards feed events onto the loop until the feed closes.
func (that *Store) pump(feed Feed, gameID string) {
	for message := range feed.Events() {
		that.post(func(s *Store) { s.onFeedEvent(feed, gameID, message) })
	}

	that.post(func(s *Store) {
		if s.feed != feed {
			return
		}

		s.feed = nil
		s.feedGameID = ""
		s.state.Notice = NoticeFeedLost
	})
}

func (that *Store) onFeedEvent(feed Feed, gameID string, message FeedEvent) {
	if that.feed != feed {
		return
	}

	switch message.Action {
	case socket.ActionSubscribed:
		// one authoritative read covers writes made before the subscription existed
		that.request(
			func(ctx context.Context, token string) (any, error) {
				return that.backend.GetGame(ctx, token, gameID)
			},
			func(s *Store, result any, err error) {
				if err != nil {
					s.fail(err)
					return
				}

				if s.state.Game != nil && s.state.Game.ID == gameID {
					s.state.Game = result.(*entity.Game)
				}
			},
		)
	case socket.ActionUpdate:
		if message.Game != nil && that.state.Game != nil && that.state.Game.ID == message.Game.ID {
			that.state.Game = message.Game
		}
	case socket.ActionError:
		that.fail(message.Err)
	}
}

func (that *Store) closeFeed() {
	if that.feed != nil {
		_ = that.feed.Close()
	}

	that.feed = nil
	that.feedGameID = ""
}

var notices = []struct {
	err    error
	notice string
}{
	{apperror.ErrNotYourTurn, NoticeNotYourTurn},
	{apperror.ErrAlreadyJoined, NoticeAlreadyJoined},
	{apperror.ErrGameFull, "game is full"},
	{apperror.ErrGameOver, "game is over"},
	{apperror.ErrGameNotFound, "game not found"},
	{apperror.ErrForbidden, "the game no longer accepts that change"},
	{apperror.ErrConflict, "the game changed, try again"},
	{apperror.ErrInvalidCredentials, "invalid email or password"},
	{apperror.ErrEmailTaken, "email is already registered"},
	{apperror.ErrInvalidInput, "check your input"},
	{apperror.ErrUnauthorized, "session expired, sign in again"},
}

func noticeFor(err error) string {
	for _, n := range notices {
		if errors.Is(err, n.err) {
			return n.notice
		}
	}

	return err.Error()
}
