// maze-crawler-server starts an SSH server where every connection gets its
// own dungeon run. Build:
//
//	go build -o maze-crawler-server ./cmd/server
//
// Usage:
//
//	./maze-crawler-server [--port 2222] [--key server_host_key] [--width 61] [--height 41]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"maze-crawler/internal/game"
	internalssh "maze-crawler/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	width := flag.Int("width", game.DefaultWidth, "Dungeon width in cells")
	height := flag.Int("height", game.DefaultHeight, "Dungeon height in cells")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *width, *height)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("maze-crawler SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// allowedTerms is the allowlist of TERM values forwarded to terminfo.
// Anything else falls back to xterm-256color rather than letting a client
// pick an arbitrary terminfo entry.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"tmux":                  true,
	"tmux-256color":         true,
	"screen":                true,
	"screen-256color":       true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu protects os.Setenv("TERM") around screen creation; tcell reads
// TERM from the process environment while building a terminfo screen.
var termMu sync.Mutex

// handleSession runs one single-player dungeon run over an SSH connection.
// It blocks for the duration of the connection.
func handleSession(s gossh.Session, width, height int) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") && allowedTerms[env[5:]] {
			term = env[5:]
			break
		}
	}

	tty := internalssh.NewRemoteTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g := game.NewWithScreen(screen)
	g.SetSize(width, height)
	if err := g.Run(); err != nil {
		log.Printf("session %s: %v", s.RemoteAddr(), err)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "maze-crawler server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
