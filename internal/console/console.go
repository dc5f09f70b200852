// Package console runs the game as a line-oriented prompt for pipes and dumb terminals.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/tuiguess/internal/generator"
	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

const (
	prompt        = "> "
	confettiWidth = 40
)

const helpText = `Commands:
  name <text>    set the player name
  play <level>   start a round guessing 1..level
  <number>       submit a guess
  hint <number>  ask how close a number is without using a try
  giveup         end the round (score = level)
  stats          show the summary and leaderboard
  reset          clear statistics
  levels         list levels
  help           show this help
  quit           leave`

// Console reads commands from in and writes results to out.
type Console struct {
	sess   *session.Session
	gen    *generator.Generator
	levels []int
	in     io.Reader
	out    io.Writer
}

// New returns a Console driving sess. A nil gen disables the win confetti.
func New(sess *session.Session, gen *generator.Generator, levels []int, in io.Reader, out io.Writer) *Console {
	return &Console{sess: sess, gen: gen, levels: levels, in: in, out: out}
}

// Run processes commands until quit or end of input.
// A positive startLevel begins a round before the first prompt.
func (c *Console) Run(startLevel int) error {
	c.printf("Welcome, %s! Type help for commands.\n", c.sess.Player())
	if startLevel > 0 {
		c.play(strconv.Itoa(startLevel))
	}
	scanner := bufio.NewScanner(c.in)
	for {
		c.printf("%s", prompt)
		if !scanner.Scan() {
			c.printf("\n")
			return scanner.Err()
		}
		if quit := c.exec(scanner.Text()); quit {
			return nil
		}
	}
}

func (c *Console) exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		c.printf("%s\n", helpText)
	case "name":
		name, err := c.sess.SetPlayer(arg)
		if err != nil {
			c.fail(err)
			return false
		}
		c.printf("Hello, %s!\n", name)
	case "play":
		c.play(arg)
	case "hint":
		_, msg, err := c.sess.Hint(arg)
		if err != nil {
			c.fail(err)
			return false
		}
		c.printf("%s\n", msg)
	case "giveup":
		rep, err := c.sess.GiveUp()
		if err != nil {
			c.fail(err)
			return false
		}
		c.report(rep)
	case "stats":
		c.summary(c.sess.Summary())
	case "reset":
		c.sess.Reset()
		c.printf("Statistics cleared.\n")
	case "levels":
		parts := make([]string, len(c.levels))
		for i, l := range c.levels {
			parts[i] = strconv.Itoa(l)
		}
		c.printf("Levels: %s\n", strings.Join(parts, ", "))
	default:
		rep, err := c.sess.Guess(line)
		if err != nil {
			c.fail(err)
			return false
		}
		c.report(rep)
	}
	return false
}

func (c *Console) play(arg string) {
	level, err := round.ParseLevel(arg)
	if err != nil {
		c.fail(err)
		return
	}
	rep, err := c.sess.Play(level)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("%s\n", rep.Message)
}

func (c *Console) report(rep session.Report) {
	c.printf("%s\n", rep.Message)
	if rep.Outcome.Won && c.gen != nil {
		c.printf("%s\n", c.gen.ConfettiLine(confettiWidth, 0.5))
	}
	if rep.Finished {
		c.printf("\n")
		c.summary(rep.Summary)
	}
}

func (c *Console) summary(sum stats.Summary) {
	if err := stats.RenderSummary(c.out, sum); err != nil {
		c.printf("%s\n", err)
	}
}

func (c *Console) fail(err error) {
	c.printf("%s\n", session.MessageFor(err))
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
