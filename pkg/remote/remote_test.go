package remote

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/kentrosaur/gbcore/internal/gameboy"
	"github.com/kentrosaur/gbcore/pkg/log"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	rom := make([]byte, 0x8000)
	rom[0x100] = 0x3C // INC A
	rom[0x101] = 0xC3 // JP 0x0100
	rom[0x102] = 0x00
	rom[0x103] = 0x01

	gb, err := gameboy.NewGameBoy(rom, gameboy.WithLogger(log.NewNullLogger()))
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(NewServer(gb, log.NewNullLogger()))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, cmd Command) Status {
	t.Helper()
	if err := conn.WriteJSON(cmd); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var status Status
	if err := conn.ReadJSON(&status); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return status
}

func TestStatusReportsWithoutRunning(t *testing.T) {
	conn := dialTestServer(t)

	status := roundTrip(t, conn, Command{Op: "status"})
	if status.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", status.PC)
	}
	if status.Cycles != 0 {
		t.Errorf("cycles = %d before any stepping, want 0", status.Cycles)
	}
	if status.Hash == "" {
		t.Error("status carries no state hash")
	}
}

func TestStepAdvancesMachine(t *testing.T) {
	conn := dialTestServer(t)

	before := roundTrip(t, conn, Command{Op: "status"})
	after := roundTrip(t, conn, Command{Op: "step"})

	if after.Cycles <= before.Cycles {
		t.Error("step did not consume cycles")
	}
	if after.Hash == before.Hash {
		t.Error("state hash unchanged after a step")
	}
	if after.AF>>8 != 0x02 {
		t.Errorf("A = %#02x after INC A, want 0x02", after.AF>>8)
	}
}

func TestRunForCycles(t *testing.T) {
	conn := dialTestServer(t)

	status := roundTrip(t, conn, Command{Op: "run", Cycles: 1000})
	if status.Cycles < 1000 {
		t.Errorf("cycles = %d after running for 1000, want at least 1000", status.Cycles)
	}
}

func TestUnknownOp(t *testing.T) {
	conn := dialTestServer(t)

	status := roundTrip(t, conn, Command{Op: "teleport"})
	if status.Error == "" {
		t.Error("no error reported for an unknown op")
	}
}
