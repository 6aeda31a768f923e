// Package container probes the host for an available container engine.
package container

import (
	"io"
	"os/exec"
)

// Engine names as they appear in configuration documents.
const (
	Docker      = "Docker"
	Singularity = "Singularity"
	None        = "None"
)

// Detect reports which container engine is available on this host: Docker
// when a working docker client is found, Singularity as the fallback, None
// otherwise. The result seeds the container option of generated
// configurations.
func Detect() string {
	return detect(exec.LookPath, runVersion)
}

// detect is Detect with the binary lookup and the engine probe injected.
func detect(look func(file string) (string, error), probe func(binary string) error) string {
	engines := []struct {
		name   string
		binary string
	}{
		{Docker, "docker"},
		{Singularity, "singularity"},
	}
	for _, engine := range engines {
		if _, err := look(engine.binary); err != nil {
			continue
		}
		if err := probe(engine.binary); err != nil {
			continue
		}
		return engine.name
	}
	return None
}

// runVersion checks that the engine actually responds, not just that a
// binary sits on PATH. For docker this exercises the daemon connection.
func runVersion(binary string) error {
	cmd := exec.Command(binary, "version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
