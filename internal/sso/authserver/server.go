// Package authserver implements the single-use loopback HTTP endpoint that
// receives the OAuth authorization-code redirect.
package authserver

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const loopbackHost = "127.0.0.1"

// Origins allowed to read the redirect response cross-origin. Only local
// debug pages are permitted.
var debugOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

type Option func(*Server)

// WithPort binds the server on a fixed port. Port 0 lets the OS choose.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server accepts exactly one authorization outcome. The outcome is delivered
// through WaitForAuthorization; later redirects are answered but ignored.
type Server struct {
	state  string
	port   int
	logger *zap.SugaredLogger

	mu      sync.Mutex
	srv     *http.Server
	addr    *net.TCPAddr
	started bool
	closed  bool

	once sync.Once
	done chan struct{}
	code string
	err  error
}

// New creates a server that expects redirects carrying the given state.
func New(state string, opts ...Option) *Server {
	s := &Server{
		state:  state,
		logger: zap.NewNop().Sugar(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the loopback listener and begins serving in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(loopbackHost, strconv.Itoa(s.port)))
	if err != nil {
		return &ServerError{Op: "start", Err: err}
	}

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok || addr.Port == 0 {
		_ = listener.Close()
		return ErrMissingPort
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", s.handleRedirect)
	mux.HandleFunc("/", s.handleOther)

	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.addr = addr
	s.started = true

	go s.serve(listener)

	s.logger.Debugf("redirect server listening on %s", addr)
	return nil
}

func (s *Server) serve(listener net.Listener) {
	err := s.srv.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.resolve("", &ServerError{Op: "serve", Err: err})
		return
	}
	s.resolve("", ErrServerClosed)
}

// RedirectURI is the URI the identity provider should redirect to.
func (s *Server) RedirectURI() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return "", ErrNotStarted
	}
	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(loopbackHost, strconv.Itoa(s.addr.Port)),
		Path:   "/",
	}
	return u.String(), nil
}

// WaitForAuthorization blocks until the redirect has been received and
// returns the authorization code or the error it carried.
func (s *Server) WaitForAuthorization(ctx context.Context) (string, error) {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if !started {
		return "", ErrNotStarted
	}

	select {
	case <-s.done:
		return s.code, s.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close drops open connections and stops the listener.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	if err := s.srv.Close(); err != nil {
		return &ServerError{Op: "close", Err: err}
	}
	return nil
}

func (s *Server) resolve(code string, err error) {
	s.once.Do(func() {
		s.code = code
		s.err = err
		close(s.done)
	})
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", http.MethodGet)
	if debugOrigin.MatchString(r.Header.Get("Origin")) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}

	code, err := s.validate(r.URL.Query())
	s.resolve(code, err)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	body := "<html><body><p>Authorization complete. You can close this window and return to the terminal.</p></body></html>"
	if err != nil {
		s.logger.Debugf("authorization redirect rejected: %v", err)
		body = fmt.Sprintf("<html><body><p>Authorization failed: %s</p><p>You can close this window.</p></body></html>",
			html.EscapeString(err.Error()))
	}
	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.Debugf("failed to write redirect response: %v", err)
	}
}

func (s *Server) validate(query url.Values) (string, error) {
	errCode, description := query.Get("error"), query.Get("error_description")
	if errCode != "" && description != "" {
		return "", &AuthError{Code: errCode, Description: description}
	}

	code := query.Get("code")
	if code == "" {
		return "", ErrMissingCode
	}

	state := query.Get("state")
	if state == "" {
		return "", ErrMissingState
	}
	if state != s.state {
		return "", ErrInvalidState
	}

	return code, nil
}

func (s *Server) handleOther(w http.ResponseWriter, r *http.Request) {
	s.logger.Debugf("redirect server: ignoring request for unknown path %s", r.URL.Path)
	w.WriteHeader(http.StatusNotFound)
}
