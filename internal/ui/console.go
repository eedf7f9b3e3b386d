package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// ConsoleUI implements console-based interactive UI
type ConsoleUI struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleUI creates a new console-based interactive UI
func NewConsoleUI(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ShowMessage logs a status message
func (c *ConsoleUI) ShowMessage(message string) {
	log.Printf("%s\n", message)
}

// Println prints a user-facing line to the console
func (c *ConsoleUI) Println(message string) {
	fmt.Fprintln(c.out, message)
}

// InputPath prompts for a file path. Blank answers are asked again.
func (c *ConsoleUI) InputPath(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)

		// Create a channel to receive the input
		inputCh := make(chan string, 1)
		errCh := make(chan error, 1)
		go func() {
			if c.in.Scan() {
				inputCh <- strings.TrimSpace(c.in.Text())
				return
			}
			if err := c.in.Err(); err != nil {
				errCh <- err
				return
			}
			errCh <- io.EOF
		}()

		// Wait for either input or context cancellation
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case err := <-errCh:
			return "", fmt.Errorf("failed to read file path: %w", err)
		case path := <-inputCh:
			if path != "" {
				return path, nil
			}
		}
	}
}
