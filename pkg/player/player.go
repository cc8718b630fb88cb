// Package player hands a rendered MIDI file to the operating system's
// media player. Playback is fire-and-forget; generation never depends
// on it.
package player

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Play opens the given file with the platform's default media handler.
func Play(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot play %s: %w", path, err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to launch player: %w", err)
	}
	return nil
}
