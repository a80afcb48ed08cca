package driver

import (
	"bufio"
	"net"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxCommandLineBytes = 1024

// pendingCommand is one line read off a client connection, queued for the
// next tick's processEvents call so socket-driven mutations only ever
// apply at a tick boundary, never mid-pipeline.
type pendingCommand struct {
	connID uuid.UUID
	name   string
	args   []string
}

type connState struct {
	conn  net.Conn
	alive bool
}

// controlSocket is a Unix domain socket server: one goroutine accepts
// connections, one goroutine per connection reads lines into a shared
// queue, and the driver's tick loop drains that queue and writes replies
// back, so command handlers always run on the tick thread.
type controlSocket struct {
	log      zerolog.Logger
	listener net.Listener

	mu    sync.Mutex
	conns map[uuid.UUID]*connState
	queue []pendingCommand
}

func newControlSocket(path string, log zerolog.Logger) (*controlSocket, error) {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, &SocketOpenError{Path: path, Cause: err}
	}
	cs := &controlSocket{
		log:      log,
		listener: listener,
		conns:    make(map[uuid.UUID]*connState),
	}
	go cs.acceptLoop()
	return cs, nil
}

func (cs *controlSocket) acceptLoop() {
	for {
		conn, err := cs.listener.Accept()
		if err != nil {
			return
		}
		id := uuid.New()
		cs.mu.Lock()
		cs.conns[id] = &connState{conn: conn, alive: true}
		cs.mu.Unlock()
		go cs.readLoop(id, conn)
	}
}

func (cs *controlSocket) readLoop(id uuid.UUID, conn net.Conn) {
	defer func() {
		conn.Close()
		cs.mu.Lock()
		if c, ok := cs.conns[id]; ok {
			c.alive = false
		}
		cs.mu.Unlock()
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, maxCommandLineBytes), maxCommandLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ":")
		cmd := pendingCommand{connID: id, name: parts[0], args: parts[1:]}
		cs.mu.Lock()
		cs.queue = append(cs.queue, cmd)
		cs.mu.Unlock()
	}
}

// processEvents drains every command queued since the last call, in
// receipt order, dispatching each through fn and writing its reply back
// to the originating connection. Cross-client order is not preserved;
// each client's own commands are, since they share one queue appended to
// in read order.
func (cs *controlSocket) processEvents(fn func(name string, args []string) string) {
	cs.mu.Lock()
	queue := cs.queue
	cs.queue = nil
	cs.mu.Unlock()

	for _, cmd := range queue {
		cs.mu.Lock()
		c, ok := cs.conns[cmd.connID]
		cs.mu.Unlock()
		if !ok || !c.alive {
			continue
		}
		reply := fn(cmd.name, cmd.args)
		if _, err := c.conn.Write([]byte(reply + "\n")); err != nil {
			cs.log.Warn().Err(err).Msg("control socket: write failed")
		}
	}

	cs.reap()
}

// reap drops bookkeeping for connections whose readLoop has exited.
func (cs *controlSocket) reap() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for id, c := range cs.conns {
		if !c.alive {
			delete(cs.conns, id)
		}
	}
}

// broadcast sends msg to every currently connected client, best-effort.
func (cs *controlSocket) broadcast(msg string) {
	cs.mu.Lock()
	conns := make([]*connState, 0, len(cs.conns))
	for _, c := range cs.conns {
		if c.alive {
			conns = append(conns, c)
		}
	}
	cs.mu.Unlock()

	for _, c := range conns {
		if _, err := c.conn.Write([]byte(msg + "\n")); err != nil {
			cs.log.Warn().Err(err).Msg("control socket: broadcast failed")
		}
	}
}

// Close stops the acceptor and closes every live connection, which in
// turn ends their reader goroutines.
func (cs *controlSocket) Close() error {
	err := cs.listener.Close()
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, c := range cs.conns {
		if c.alive {
			c.conn.Close()
		}
	}
	return err
}
