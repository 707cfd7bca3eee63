package platform

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bc-dunia/hostprobe/internal/config"
)

// RunCommand invokes an external command and returns its trimmed
// stdout, or nil on any failure: missing binary, non-zero exit,
// timeout. Attribute commands are best-effort metadata and must never
// surface an error to a collector.
func RunCommand(name string, args ...string) *string {
	ctx, cancel := context.WithTimeout(context.Background(), config.ProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil
	}

	s := strings.TrimSpace(string(out))
	return &s
}
