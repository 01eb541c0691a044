package listener

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/session"
)

// runLineSession drives one line-oriented connection: it reads commands a
// line at a time, renders tagged outcomes as narration, and interleaves
// payloads arriving on the session's subject (chat, join/leave events).
func runLineSession(ctx context.Context, sessions *session.Manager, conn io.ReadWriter) error {
	sess, welcome, err := sessions.Connect(ctx, session.KindLine)
	if err != nil {
		return fmt.Errorf("connecting session: %w", err)
	}
	defer sess.Disconnect()

	if err := writeBlock(conn, display.Render(welcome)); err != nil {
		return err
	}

	// Read input lines into a channel so the select loop can also watch the
	// session subject and the shutdown context. The done channel releases the
	// reader when the loop returns with a line still pending.
	done := make(chan struct{})
	defer close(done)

	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-done:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	if err := prompt(conn); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case data := <-sess.Msgs():
			if err := writeBlock(conn, display.RenderWire(data)); err != nil {
				return err
			}
			if err := prompt(conn); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost; cleanup happens in the deferred Disconnect.
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			cmd := commands.ParseLine(line)
			if cmd.Action == "" {
				if err := prompt(conn); err != nil {
					return err
				}
				continue
			}

			out := sess.Execute(ctx, cmd)
			if err := writeBlock(conn, display.Render(out)); err != nil {
				return err
			}

			if _, quit := out.(*commands.Farewell); quit {
				return nil
			}

			if err := prompt(conn); err != nil {
				return err
			}
		}
	}
}

func prompt(conn io.Writer) error {
	_, err := conn.Write([]byte("> "))
	return err
}

func writeBlock(conn io.Writer, msg string) error {
	_, err := conn.Write([]byte("\n" + display.Wrap(msg) + "\n\n"))
	return err
}
