package idoc

// State is the sequence and control state of one output document.
//
// The counter starts at 1. A segment's own sequence number is the counter
// value before it is incremented, so numbers are unique and strictly
// increasing within the document. Owner numbers are snapshots of the
// counter taken when the owning segment was emitted; they are never
// incremented on their own.
type State struct {
	control string
	counter int

	// material is the sequence number of the last material segment.
	material int

	// label is the sequence number of the last label segment.
	label int

	// text is the owner referenced by text and characteristic segments.
	text int

	// lastMaterial is the material of the immediately preceding record,
	// used to suppress adjacent duplicate material segments.
	lastMaterial string
	seenRecord   bool
}

// NewState creates the state for a new document.
func NewState(control string) *State {
	if control == "" {
		control = DefaultControlNumber
	}
	return &State{control: control, counter: 1}
}

// Control returns the 7-character control number.
func (s *State) Control() string {
	return s.control
}

// Emitted returns the number of sequence numbers consumed so far.
func (s *State) Emitted() int {
	return s.counter - 1
}

// next consumes and returns the next sequence number.
func (s *State) next() int {
	n := s.counter
	s.counter++
	return n
}

// materialChanged reports whether a record's material must be emitted and
// remembers it for the next record.
func (s *State) materialChanged(material string) bool {
	changed := material != "" && (!s.seenRecord || material != s.lastMaterial)
	s.lastMaterial = material
	s.seenRecord = true
	return changed
}
