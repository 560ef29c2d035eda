// Package console provides the line-based menu used when stdin is not a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/stats"
	"github.com/verte-zerg/steplog/internal/tracker"
)

const (
	choiceAdd = iota + 1
	choiceView
	choiceSave
	choiceExit
)

// Console runs the numbered menu over plain reader/writer streams.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	log    *tracker.Log
	cfg    model.Config
}

// New constructs a console bound to the given streams and log.
func New(in io.Reader, out, errOut io.Writer, log *tracker.Log, cfg model.Config) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		log:    log,
		cfg:    cfg,
	}
}

// Run shows the banner and loops over the menu until Exit or end of input.
func (c *Console) Run() error {
	if err := c.printBanner(); err != nil {
		return err
	}
	for {
		if err := c.printMenu(); err != nil {
			return err
		}
		choice, ok := c.readChoice()
		if !ok {
			choice = choiceExit
		}
		switch choice {
		case choiceAdd:
			if c.log.Full() {
				c.println("Session limit reached.")
				continue
			}
			if !c.addSession() {
				c.println("Goodbye!")
				return nil
			}
		case choiceView:
			if err := c.viewSessions(); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		case choiceSave:
			if err := stats.SaveReport(c.cfg.ReportPath, c.log.Sessions()); err != nil {
				c.logErrf("failed to save report: %v\n", err)
				continue
			}
			c.println("Report saved to file.")
		case choiceExit:
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid option.")
		}
	}
}

func (c *Console) printBanner() error {
	_, err := fmt.Fprint(c.out,
		"=====================================\n",
		"   Step Tracker and Idea Log Program\n",
		"=====================================\n",
	)
	return err
}

func (c *Console) printMenu() error {
	_, err := fmt.Fprint(c.out,
		"\n1. Add Walking Session\n",
		"2. View Sessions\n",
		"3. Save Report\n",
		"4. Exit\n",
	)
	return err
}

// readChoice returns false only when input is exhausted.
func (c *Console) readChoice() (int, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(firstField(line)); err == nil {
			return n, true
		}
		c.print("Enter a valid number: ")
	}
}

// addSession prompts for every field and stores the result. It returns
// false when input ran out before the session was complete.
func (c *Console) addSession() bool {
	c.print("Enter idea or reminder: ")
	note, ok := c.readLine()
	if !ok {
		return false
	}

	var session model.WalkSession
	session.Note = note

	for {
		c.print("Enter steps walked: ")
		line, ok := c.readLine()
		if !ok {
			return false
		}
		if n, err := strconv.Atoi(firstField(line)); err == nil && n > 0 {
			session.Steps = n
			break
		}
	}

	for {
		c.print("Enter minutes walked: ")
		line, ok := c.readLine()
		if !ok {
			return false
		}
		if f, err := strconv.ParseFloat(firstField(line), 64); err == nil && f > 0 && !math.IsInf(f, 0) {
			session.Minutes = f
			break
		}
	}

	for {
		c.print("Choose style (1=Vampire, 2=Hunter, 3=Wizard): ")
		line, ok := c.readLine()
		if !ok {
			return false
		}
		if n, err := strconv.Atoi(firstField(line)); err == nil {
			if style, ok := model.ParseStyle(n); ok {
				session.Style = style
				break
			}
		}
	}

	if !c.log.Add(session) {
		c.println("Session limit reached.")
		return true
	}
	c.println(session.Style.Flavor())
	if tracker.IsHighEnergy(session, c.cfg.HighEnergy) {
		c.println(fmt.Sprintf("High-energy walk! %.2f steps/min", tracker.StepsPerMinute(session)))
	}
	return true
}

func (c *Console) viewSessions() error {
	if err := stats.RenderSessions(c.out, c.log.Sessions()); err != nil {
		return err
	}
	return stats.RenderSummary(c.out, c.log, c.cfg.HighEnergy)
}

// readLine returns the next line without its terminator. Lines have no
// length limit; a final line without a newline is still returned.
func (c *Console) readLine() (string, bool) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.logErrf("failed to read input: %v\n", err)
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (c *Console) print(s string) {
	if _, err := fmt.Fprint(c.out, s); err != nil {
		c.logErrf("failed to write output: %v\n", err)
	}
}

func (c *Console) println(s string) {
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		c.logErrf("failed to write output: %v\n", err)
	}
}

func (c *Console) logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.errOut, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
