package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	StateFile           = ".powerdex-state.json"
	CurrentStateVersion = "1"
)

// State records what the last extraction wrote to an output directory.
type State struct {
	Version      string            `json:"version"`
	RunID        string            `json:"run_id,omitempty"`
	Format       string            `json:"format,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
	OutputHashes map[string]string `json:"output_hashes"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Version:      CurrentStateVersion,
		OutputHashes: make(map[string]string),
	}
}

// Load reads state from the output directory. A missing file yields an
// empty state.
func Load(outputDir string) (*State, error) {
	path := filepath.Join(outputDir, StateFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	migrateState(&state)

	return &state, nil
}

// Save writes state to the output directory.
func (s *State) Save(outputDir string) error {
	if s.Version == "" {
		s.Version = CurrentStateVersion
	}
	if s.OutputHashes == nil {
		s.OutputHashes = make(map[string]string)
	}

	s.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(outputDir, StateFile)
	return os.WriteFile(path, data, 0644)
}

// SetOutputHash records the content hash for a generated output file.
func (s *State) SetOutputHash(path, hash string) {
	if s.OutputHashes == nil {
		s.OutputHashes = make(map[string]string)
	}
	s.OutputHashes[path] = hash
}

// GetOutputHash returns the previously stored hash for a generated output file.
func (s *State) GetOutputHash(path string) (string, bool) {
	hash, ok := s.OutputHashes[path]
	return hash, ok
}

// ReplaceOutputs swaps the recorded outputs for hashes and returns the
// previously recorded paths that are no longer produced.
func (s *State) ReplaceOutputs(hashes map[string]string) []string {
	stale := make([]string, 0)
	for path := range s.OutputHashes {
		if _, ok := hashes[path]; !ok {
			stale = append(stale, path)
		}
	}
	sort.Strings(stale)

	s.OutputHashes = make(map[string]string, len(hashes))
	for path, hash := range hashes {
		s.OutputHashes[path] = hash
	}
	return stale
}

// Drift compares the recorded outputs with hashes read from disk. Modified
// holds files whose content changed, Missing holds recorded files that are
// gone and Untracked holds files on disk the state does not know about.
type Drift struct {
	Modified  []string `json:"modified"`
	Missing   []string `json:"missing"`
	Untracked []string `json:"untracked"`
}

func (d Drift) Clean() bool {
	return len(d.Modified) == 0 && len(d.Missing) == 0 && len(d.Untracked) == 0
}

// CompareOutputs reports how the files on disk differ from the recorded run.
func (s *State) CompareOutputs(current map[string]string) Drift {
	drift := Drift{
		Modified:  make([]string, 0),
		Missing:   make([]string, 0),
		Untracked: make([]string, 0),
	}
	for path, hash := range s.OutputHashes {
		got, ok := current[path]
		switch {
		case !ok:
			drift.Missing = append(drift.Missing, path)
		case got != hash:
			drift.Modified = append(drift.Modified, path)
		}
	}
	for path := range current {
		if _, ok := s.OutputHashes[path]; !ok {
			drift.Untracked = append(drift.Untracked, path)
		}
	}
	sort.Strings(drift.Modified)
	sort.Strings(drift.Missing)
	sort.Strings(drift.Untracked)
	return drift
}

func migrateState(s *State) {
	if s.OutputHashes == nil {
		s.OutputHashes = make(map[string]string)
	}

	switch s.Version {
	case "":
		s.Version = CurrentStateVersion
	case CurrentStateVersion:
		// no-op
	default:
		// Keep unknown versions untouched but ensure required maps are initialized.
	}
}
