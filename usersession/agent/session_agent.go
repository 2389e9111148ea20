// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2019-2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package agent

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coreos/go-systemd/activation"
	"github.com/coreos/go-systemd/daemon"
	"github.com/gorilla/mux"
	"golang.org/x/sys/unix"
	"gopkg.in/tomb.v2"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/apps"
	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/logger"
)

// SessionAgent serves the desktop settings of the user session over a
// REST API on a unix socket.
type SessionAgent struct {
	Version     string
	IdleTimeout time.Duration

	bridge      *bridge.Bridge
	appsOptions *apps.Options

	listener net.Listener
	serve    *http.Server
	tomb     tomb.Tomb
	router   *mux.Router

	idle *idleTracker
}

// Options configures a SessionAgent.
type Options struct {
	// Bridge reaches the desktop backends.
	Bridge *bridge.Bridge
	// Apps controls the application inventory, nil for the defaults.
	Apps *apps.Options
	// SocketPath defaults to dirs.AgentSocket().
	SocketPath string
	// IdleTimeout defaults to 30 seconds.
	IdleTimeout time.Duration
}

// A ResponseFunc handles one of the individual verbs for a method
type ResponseFunc func(*Command, *http.Request) Response

// A Command routes a request to an individual per-verb ResponseFunc
type Command struct {
	Path string

	GET    ResponseFunc
	PUT    ResponseFunc
	POST   ResponseFunc
	DELETE ResponseFunc

	s *SessionAgent
}

func (c *Command) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var rspf ResponseFunc
	rsp := MethodNotAllowed("method %q not allowed", r.Method)

	switch r.Method {
	case "GET":
		rspf = c.GET
	case "PUT":
		rspf = c.PUT
	case "POST":
		rspf = c.POST
	case "DELETE":
		rspf = c.DELETE
	}

	if rspf != nil {
		rsp = rspf(c, r)
	}
	rsp.ServeHTTP(w, r)
}

type idleTracker struct {
	mu         sync.Mutex
	active     map[net.Conn]struct{}
	lastActive time.Time
}

var (
	sysGetsockoptUcred = unix.GetsockoptUcred
	sysGeteuid         = unix.Geteuid
)

func getUcred(conn net.Conn) (*unix.Ucred, error) {
	if uconn, ok := conn.(*net.UnixConn); ok {
		f, err := uconn.File()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return sysGetsockoptUcred(int(f.Fd()), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}
	return nil, fmt.Errorf("expected a net.UnixConn, but got a %T", conn)
}

func (it *idleTracker) trackConn(conn net.Conn, state http.ConnState) {
	// Perform peer credentials check
	if state == http.StateNew {
		ucred, err := getUcred(conn)
		if err != nil {
			logger.Noticef("Failed to retrieve peer credentials: %v", err)
			conn.Close()
			return
		}
		if ucred.Uid != 0 && ucred.Uid != uint32(sysGeteuid()) {
			logger.Noticef("Blocking request from user ID %v", ucred.Uid)
			conn.Close()
			return
		}
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	oldActive := len(it.active)
	if state == http.StateNew || state == http.StateActive {
		it.active[conn] = struct{}{}
	} else {
		delete(it.active, conn)
	}
	if len(it.active) == 0 && oldActive != 0 {
		it.lastActive = time.Now()
	}
}

// idleDuration returns the duration of time the server has been idle
func (it *idleTracker) idleDuration() time.Duration {
	it.mu.Lock()
	defer it.mu.Unlock()
	if len(it.active) != 0 {
		return 0
	}
	return time.Since(it.lastActive)
}

const (
	defaultIdleTimeout = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

type closeOnceListener struct {
	net.Listener

	idempotClose sync.Once
	closeErr     error
}

func (l *closeOnceListener) Close() error {
	l.idempotClose.Do(func() {
		l.closeErr = l.Listener.Close()
	})
	return l.closeErr
}

var (
	activationListeners = activation.Listeners
	sdNotify            = daemon.SdNotify
)

// getListener returns the socket activated listener bound to socketPath,
// or a new listener on it.
func getListener(socketPath string) (net.Listener, error) {
	listeners, err := activationListeners()
	if err != nil {
		return nil, fmt.Errorf("cannot get socket activated listeners: %v", err)
	}
	for _, l := range listeners {
		if l == nil {
			continue
		}
		if l.Addr().Network() == "unix" && l.Addr().String() == socketPath {
			logger.Debugf("using socket activated listener on %s", socketPath)
			return l, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		return nil, err
	}
	// a stale socket of a previous run would make the listen fail
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	addr, err := net.ResolveUnixAddr("unix", socketPath)
	if err != nil {
		return nil, err
	}
	l, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(socketPath, 0600); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func (s *SessionAgent) init(opts *Options) error {
	if opts.Bridge == nil {
		return fmt.Errorf("internal error: session agent needs a bridge")
	}
	s.bridge = opts.Bridge
	s.appsOptions = opts.Apps

	agentSocket := opts.SocketPath
	if agentSocket == "" {
		agentSocket = dirs.AgentSocket()
	}
	l, err := getListener(agentSocket)
	if err != nil {
		return fmt.Errorf("cannot listen on socket %s: %v", agentSocket, err)
	}
	s.listener = &closeOnceListener{Listener: l}

	s.idle = &idleTracker{
		active:     make(map[net.Conn]struct{}),
		lastActive: time.Now(),
	}
	s.IdleTimeout = opts.IdleTimeout
	if s.IdleTimeout <= 0 {
		s.IdleTimeout = defaultIdleTimeout
	}
	s.addRoutes()
	s.serve = &http.Server{
		Handler:   s.router,
		ConnState: s.idle.trackConn,
	}
	return nil
}

func (s *SessionAgent) addRoutes() {
	s.router = mux.NewRouter()
	for _, c := range restApi {
		c := *c
		c.s = s
		s.router.Handle(c.Path, &c).Name(c.Path)
	}
	s.router.NotFoundHandler = NotFound("not found")
}

// Start serves requests until the agent is stopped or stays idle for
// longer than IdleTimeout.
func (s *SessionAgent) Start() {
	s.tomb.Go(s.runServer)
	s.tomb.Go(s.shutdownServerOnKill)
	s.tomb.Go(s.exitOnIdle)
	logger.Noticef("session agent listening on %s", s.listener.Addr())
	sdNotify(false, daemon.SdNotifyReady)
}

func (s *SessionAgent) runServer() error {
	err := s.serve.Serve(s.listener)
	if err == http.ErrServerClosed {
		err = nil
	}
	if s.tomb.Err() == tomb.ErrStillAlive {
		return err
	}
	return nil
}

func (s *SessionAgent) shutdownServerOnKill() error {
	<-s.tomb.Dying()
	sdNotify(false, daemon.SdNotifyStopping)
	// closing the listener (but then it needs wrapping in
	// closeOnceListener) before actually calling Shutdown, as
	// Shutdown may otherwise race with Serve not having started yet
	s.listener.Close()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.serve.Shutdown(ctx)
}

func (s *SessionAgent) exitOnIdle() error {
	timer := time.NewTimer(s.IdleTimeout)
	defer timer.Stop()
Loop:
	for {
		select {
		case <-s.tomb.Dying():
			break Loop
		case <-timer.C:
			idleDuration := s.idle.idleDuration()
			if idleDuration >= s.IdleTimeout {
				logger.Noticef("session agent idle for %v, exiting", idleDuration.Round(time.Millisecond))
				s.tomb.Kill(nil)
				break Loop
			}
			timer.Reset(s.IdleTimeout - idleDuration)
		}
	}
	return nil
}

// Stop performs a graceful shutdown of the session agent and waits up to 5
// seconds for it to complete.
func (s *SessionAgent) Stop() error {
	s.tomb.Kill(nil)
	return s.tomb.Wait()
}

// Dying is closed when the agent starts shutting down.
func (s *SessionAgent) Dying() <-chan struct{} {
	return s.tomb.Dying()
}

// New returns a session agent listening on its socket. Start needs to be
// called to serve requests.
func New(opts *Options) (*SessionAgent, error) {
	if opts == nil {
		opts = &Options{}
	}
	agent := &SessionAgent{}
	if err := agent.init(opts); err != nil {
		return nil, err
	}
	return agent, nil
}
