package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/groblegark/waveplan/internal/model"
)

// CLISource shells out to a tracker CLI that prints a snapshot as JSON.
// Any tool that emits either a bare component array or a {"components": [...]}
// object on stdout works as a backend.
type CLISource struct {
	Bin  string   // path to the tracker binary (default: "bd")
	Args []string // arguments producing JSON output (default: "export", "--json")
}

// NewCLISource creates a CLISource for the given binary and arguments.
func NewCLISource(bin string, args ...string) *CLISource {
	if bin == "" {
		bin = "bd"
	}
	if len(args) == 0 {
		args = []string{"export", "--json"}
	}
	return &CLISource{Bin: bin, Args: args}
}

func (s *CLISource) FetchSnapshot(ctx context.Context) (*model.Snapshot, error) {
	cmd := exec.CommandContext(ctx, s.Bin, s.Args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("%s %s: %w\n%s", s.Bin, strings.Join(s.Args, " "), err, string(ee.Stderr))
		}
		return nil, fmt.Errorf("%s %s: %w", s.Bin, strings.Join(s.Args, " "), err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(out, &snap); err != nil {
		return nil, fmt.Errorf("parse %s output: %w", s.Bin, err)
	}
	return &snap, nil
}
