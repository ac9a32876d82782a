package types

// State is an in-memory snapshot of machine state. Components append
// their fields in a fixed order on save and consume them in the same
// order on load. It backs determinism checks and debugger inspection;
// no on-disk format is defined here.
type State struct {
	raw          []byte
	readPosition int
}

// Stater is implemented by every component that contributes to a
// machine snapshot.
type Stater interface {
	Load(*State)
	Save(*State)
}

// NewState creates a new empty state.
func NewState() *State {
	return &State{raw: make([]byte, 0)}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{raw: raw}
}

// Bytes returns the raw snapshot data.
func (s *State) Bytes() []byte {
	return s.raw
}

// ResetPosition rewinds the read position, allowing the state to be
// consumed again from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

func (s *State) ReadData(data []byte) {
	copy(data, s.raw[s.readPosition:s.readPosition+len(data)])
	s.readPosition += len(data)
}
