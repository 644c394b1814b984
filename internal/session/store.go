package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// EventKind tells journal events apart.
type EventKind string

const (
	EventTeamFinished EventKind = "team_finished"
	EventMissionEnded EventKind = "mission_ended"
)

// Event is one entry of the mission journal.
type Event struct {
	Kind   EventKind `json:"kind"`
	Frame  int       `json:"frame"`
	Time   float32   `json:"time"`
	Team   int       `json:"team,omitempty"`
	Result string    `json:"result,omitempty"`
}

// Journal handles append-only storage of mission events as JSONL.
type Journal struct {
	file *os.File
}

// OpenJournal opens or creates a JSONL journal at the given path.
func OpenJournal(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return &Journal{file: file}, nil
}

// Append marshals an event and appends it as a JSONL line.
func (j *Journal) Append(evt Event) error {
	line, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := j.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return j.file.Sync()
}

// Load replays all events from the journal.
func (j *Journal) Load() ([]Event, error) {
	if _, err := j.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var events []Event
	scanner := bufio.NewScanner(j.file)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			return nil, fmt.Errorf("failed to decode journal event: %w", err)
		}
		events = append(events, evt)
	}

	return events, scanner.Err()
}

// Close flushes and closes the underlying file.
func (j *Journal) Close() error {
	return j.file.Close()
}
