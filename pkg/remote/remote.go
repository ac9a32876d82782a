// Package remote serves a websocket debug channel. A connected client
// drives the machine with small JSON commands and receives a status
// frame after each one; the machine never runs on its own while a
// debugger holds it.
package remote

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kentrosaur/gbcore/internal/gameboy"
	"github.com/kentrosaur/gbcore/pkg/log"
)

// Command is one debugger request.
//
//	status - report without running
//	step   - execute one CPU operation
//	run    - run for Cycles machine cycles
//	wake   - leave stop mode
type Command struct {
	Op     string `json:"op"`
	Cycles uint64 `json:"cycles,omitempty"`
}

// Status is the machine state reported after every command.
type Status struct {
	Cycles uint64 `json:"cycles"`
	Hash   string `json:"hash"`

	AF uint16 `json:"af"`
	BC uint16 `json:"bc"`
	DE uint16 `json:"de"`
	HL uint16 `json:"hl"`
	SP uint16 `json:"sp"`
	PC uint16 `json:"pc"`

	Halted bool   `json:"halted"`
	Error  string `json:"error,omitempty"`
}

// Server exposes one GameBoy to websocket debugger clients. Commands
// from all clients are serialized; there is no concurrent stepping.
type Server struct {
	gb     *gameboy.GameBoy
	logger log.Logger

	mu       sync.Mutex
	upgrader websocket.Upgrader
}

// NewServer returns a Server for the given machine.
func NewServer(gb *gameboy.GameBoy, logger log.Logger) *Server {
	return &Server{
		gb:     gb,
		logger: logger,
		upgrader: websocket.Upgrader{
			// the debugger is a local development tool
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and serves debugger commands until
// the client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorf("remote: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.logger.Infof("remote: debugger connected from %s", r.RemoteAddr)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			s.logger.Infof("remote: debugger disconnected: %v", err)
			return
		}

		status := s.execute(cmd)
		if err := conn.WriteJSON(status); err != nil {
			s.logger.Errorf("remote: write failed: %v", err)
			return
		}
	}
}

func (s *Server) execute(cmd Command) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch cmd.Op {
	case "status", "":
	case "step":
		_, err = s.gb.Step()
	case "run":
		err = s.gb.RunFor(cmd.Cycles)
	case "wake":
		s.gb.Wake()
	default:
		err = fmt.Errorf("unknown op %q", cmd.Op)
	}

	return s.status(err)
}

func (s *Server) status(err error) Status {
	c := s.gb.CPU
	status := Status{
		Cycles: s.gb.Cycles(),
		Hash:   fmt.Sprintf("%016x", s.gb.StateHash()),
		AF:     c.AF.Uint16(),
		BC:     c.BC.Uint16(),
		DE:     c.DE.Uint16(),
		HL:     c.HL.Uint16(),
		SP:     c.SP,
		PC:     c.PC,
		Halted: c.Halted(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}
