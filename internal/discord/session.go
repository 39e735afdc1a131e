package discord

import (
	"context"
	"sync"
	"time"
)

// ReplyHandler consumes the next message of a conversation. A non-nil next
// handler keeps the conversation open for one more reply.
type ReplyHandler func(ctx context.Context, inv *Invocation) (reply string, next ReplyHandler, err error)

type sessionKey struct {
	channelID string
	userID    string
}

// session is the state of one command invocation that waits for further input
// from the same user in the same channel.
type session struct {
	key     sessionKey
	handler ReplyHandler
	timer   *time.Timer
}

// sessionStore holds the open conversations. One user has at most one
// session per channel; opening another replaces it.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[sessionKey]*session
	timeout  time.Duration
	// onExpire is called after a session timed out without a reply.
	onExpire func(key sessionKey)
}

func newSessionStore(timeout time.Duration, onExpire func(key sessionKey)) *sessionStore {
	if timeout <= 0 {
		timeout = DefaultInteraction
	}
	return &sessionStore{
		sessions: make(map[sessionKey]*session),
		timeout:  timeout,
		onExpire: onExpire,
	}
}

// open starts waiting for the next reply of userID in channelID.
func (s *sessionStore) open(channelID, userID string, handler ReplyHandler) {
	key := sessionKey{channelID: channelID, userID: userID}
	sess := &session{key: key, handler: handler}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.sessions[key]; ok {
		old.timer.Stop()
	}
	sess.timer = time.AfterFunc(s.timeout, func() { s.expire(sess) })
	s.sessions[key] = sess
}

// take removes and returns the open session for the pair, if any.
func (s *sessionStore) take(channelID, userID string) (ReplyHandler, bool) {
	key := sessionKey{channelID: channelID, userID: userID}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	if !sess.timer.Stop() {
		// Timer already fired; expire owns the session now.
		return nil, false
	}
	delete(s.sessions, key)
	return sess.handler, true
}

func (s *sessionStore) expire(sess *session) {
	s.mu.Lock()
	current, ok := s.sessions[sess.key]
	if ok && current == sess {
		delete(s.sessions, sess.key)
	}
	s.mu.Unlock()

	if ok && current == sess && s.onExpire != nil {
		s.onExpire(sess.key)
	}
}

// len reports the number of open sessions
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// closeAll drops every open session without notifying
func (s *sessionStore) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sess := range s.sessions {
		sess.timer.Stop()
		delete(s.sessions, key)
	}
}
