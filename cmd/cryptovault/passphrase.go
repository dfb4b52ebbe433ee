package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/cryptovault/cryptovault"
)

// readPassphrase prompts on stderr and reads a passphrase without echoing
// it when stdin is a terminal, falling back to a plain line read (e.g. when
// stdin is piped in a script or test) otherwise.
func readPassphrase(prompt string) (*cryptovault.SecretBuffer, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		buf := cryptovault.SecretBufferFromBytes(raw)
		cryptovault.ZeroBytes(raw)
		return buf, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	buf := cryptovault.SecretBufferFromBytes([]byte(line))
	return buf, nil
}
