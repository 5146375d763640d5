// Package ptybridge spawns a shell under a pseudo-terminal and feeds its
// output into a vterm.Terminal, the way the teacher's shell.PtySession fed
// raw bytes to the GL renderer.
package ptybridge

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ravenscar-systems/vterm/config"
	"github.com/ravenscar-systems/vterm/vterm"
)

// Session manages a pseudo-terminal connection to a shell, decoding its
// output through a vterm.Terminal and writing the core's Response bytes
// (DSR replies) back to the shell's stdin.
type Session struct {
	ID uuid.UUID

	log *zap.SugaredLogger
	cmd *exec.Cmd
	pty *os.File
	vt  *vterm.Terminal

	mu       sync.Mutex
	exited   bool
	exitedMu sync.Mutex
}

// Open spawns cfg's resolved shell as an interactive shell under a pty of the
// given size, wires its output into a freshly constructed vterm.Terminal
// sized to cols x rows, and returns the running Session. Mirrors
// shell.NewPtySession, generalized to vterm's Callbacks and a session id.
func Open(cfg *config.Config, cols, rows uint16, cb vterm.Callbacks, log *zap.SugaredLogger) (*Session, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	shellPath, shellArgs := cfg.ResolveShell()

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("ptybridge: resolve user: %w", err)
	}

	cmd := buildShellCommand(shellPath, shellArgs, cfg.Shell.SourceRC)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Env = buildEnv(currentUser, shellPath)
	cmd.Dir = currentUser.HomeDir

	id := uuid.New()

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("ptybridge: start pty: %w", err)
	}

	s := &Session{ID: id, log: log.With("session", id.String()), cmd: cmd, pty: ptmx}

	vt, err := vterm.New(withResponseWriter(cb, s), vterm.WithUserContext(id))
	if err != nil {
		ptmx.Close()
		cmd.Process.Kill()
		return nil, fmt.Errorf("ptybridge: new terminal: %w", err)
	}
	if err := vt.SetMode(vterm.Mode{ScrW: int(cols), ScrH: int(rows), Flags: vterm.ModeColor | vterm.ModeScroll}); err != nil {
		ptmx.Close()
		cmd.Process.Kill()
		return nil, fmt.Errorf("ptybridge: size terminal: %w", err)
	}
	s.vt = vt

	log.Infow("session opened", "session", id.String(), "shell", shellPath, "cols", cols, "rows", rows)

	go func() {
		cmd.Wait()
		s.exitedMu.Lock()
		s.exited = true
		s.exitedMu.Unlock()
		s.log.Infow("shell exited")
	}()

	return s, nil
}

// withResponseWriter wraps cb.Response so a host-supplied callback still
// fires, but DSR reply bytes are also written back to the pty's stdin —
// the loop that makes `CSI 6 n` actually round-trip through a real shell.
func withResponseWriter(cb vterm.Callbacks, s *Session) vterm.Callbacks {
	inner := cb.Response
	cb.Response = func(vt *vterm.Terminal, chr byte) {
		if inner != nil {
			inner(vt, chr)
		}
		s.mu.Lock()
		s.pty.Write([]byte{chr})
		s.mu.Unlock()
	}
	return cb
}

// Terminal returns the vterm.Terminal this session decodes pty output into.
func (s *Session) Terminal() *vterm.Terminal { return s.vt }

// Pump reads from the pty until it returns an error (typically io.EOF on
// shell exit) and feeds every chunk through the Terminal. It blocks and is
// meant to be run in its own goroutine by the caller.
func (s *Session) Pump() error {
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.vt.Write(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				s.log.Warnw("pty read error", "error", err)
			}
			return err
		}
	}
}

// Write sends data to the shell's stdin.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize changes the pty's window size and the Terminal's mode to match.
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := pty.Setsize(s.pty, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		return err
	}
	return s.vt.SetMode(vterm.Mode{ScrW: int(cols), ScrH: int(rows), Flags: s.vt.Mode().Flags})
}

// HasExited reports whether the shell process has exited.
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close kills the shell, closes the pty and releases the Terminal's buffer.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	err := s.pty.Close()
	s.mu.Unlock()
	s.vt.Shutdown()
	s.log.Infow("session closed")
	return err
}

// buildShellCommand mirrors shell.findShell's interactive-vs-clean split,
// keyed off the shell's basename rather than a fixed teacher shell list.
func buildShellCommand(shellPath string, extraArgs []string, sourceRC bool) *exec.Cmd {
	base := shellPath
	if idx := strings.LastIndex(shellPath, "/"); idx >= 0 {
		base = shellPath[idx+1:]
	}

	var args []string
	switch {
	case sourceRC && base == "bash":
		args = []string{"-i"}
	case sourceRC:
		args = []string{"-i"}
	case base == "bash":
		args = []string{"--noprofile", "--norc", "-i"}
	case base == "zsh":
		args = []string{"--no-rcs", "-i"}
	case base == "fish":
		args = []string{"--no-config", "-i"}
	default:
		args = []string{"-i"}
	}
	args = append(args, extraArgs...)
	return exec.Command(shellPath, args...)
}

// buildEnv assembles a minimal, predictable environment for the spawned
// shell, carried over from shell.NewPtySession's env block.
func buildEnv(u *user.User, shellPath string) []string {
	xdgRuntimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if xdgRuntimeDir == "" {
		xdgRuntimeDir = "/run/user/" + u.Uid
	}

	env := []string{
		"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin:" + os.Getenv("PATH"),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"HOME=" + u.HomeDir,
		"USER=" + u.Username,
		"SHELL=" + shellPath,
		"LANG=en_US.UTF-8",
		"LC_ALL=en_US.UTF-8",
		"XDG_RUNTIME_DIR=" + xdgRuntimeDir,
	}
	if display := os.Getenv("DISPLAY"); display != "" {
		env = append(env, "DISPLAY="+display)
	}
	if wayland := os.Getenv("WAYLAND_DISPLAY"); wayland != "" {
		env = append(env, "WAYLAND_DISPLAY="+wayland)
	}
	return env
}
