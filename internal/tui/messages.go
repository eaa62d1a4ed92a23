package tui

// stateChangedMsg tells the program the store has a newer snapshot.
// The model reads the snapshot itself, so delivery order does not matter.
type stateChangedMsg struct{}
