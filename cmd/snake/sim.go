package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSimSteps string
	flagSimBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim [script]",
	Short: "Replay an input script without a terminal UI",
	Long: `Run a session headlessly from a script and print a snapshot after
every step. With a fixed --seed the output is reproducible.

The script is read from the file argument, from stdin when the argument is
"-" or missing, or from --steps.

Script tokens (separated by spaces, commas or newlines; # starts a comment):
  key                   - any key (start in Ready, reset in Game Over)
  up, down, left, right - directional key (also u, d, l, r)
  echo:<key>            - auto-repeated key, ignored by the game
  tick                  - advance one tick
  tick:N                - advance N ticks

Examples:
  snake sim --seed 1 --steps "key tick:3 up tick:2"
  snake sim --seed 1 --board script.txt
  echo "key tick:20" | snake sim --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimSteps, "steps", "", "Inline script instead of a file")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Draw the board after every step")
}

type stepKind int

const (
	stepInput stepKind = iota
	stepTick
)

// step is one parsed script instruction.
type step struct {
	kind  stepKind
	token string
	event snake.RawEvent
	count int
}

var bindingNames = map[string]snake.Binding{
	"key":   snake.BindingNone,
	"up":    snake.BindingUp,
	"u":     snake.BindingUp,
	"down":  snake.BindingDown,
	"d":     snake.BindingDown,
	"left":  snake.BindingLeft,
	"l":     snake.BindingLeft,
	"right": snake.BindingRight,
	"r":     snake.BindingRight,
}

// parseScript reads script tokens from r.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, tok := range fields {
			st, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			steps = append(steps, st)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseToken(tok string) (step, error) {
	t := strings.ToLower(tok)

	if t == "tick" || strings.HasPrefix(t, "tick:") {
		n := 1
		if rest, ok := strings.CutPrefix(t, "tick:"); ok {
			v, err := strconv.Atoi(rest)
			if err != nil || v <= 0 {
				return step{}, fmt.Errorf("bad tick count in %q", tok)
			}
			n = v
		}
		return step{kind: stepTick, token: t, count: n}, nil
	}

	echo := false
	if rest, ok := strings.CutPrefix(t, "echo:"); ok {
		echo = true
		t = rest
	}
	b, ok := bindingNames[t]
	if !ok {
		return step{}, fmt.Errorf("unknown token %q", tok)
	}
	return step{
		kind:  stepInput,
		token: strings.ToLower(tok),
		event: snake.RawEvent{Pressed: true, Echo: echo, Binding: b},
	}, nil
}

// simulate applies steps to the session and writes one line per step.
// Ticks are only delivered while the session keeps its tick source running,
// as a real timer would.
func simulate(w io.Writer, s *snake.Session, ticks *snake.ManualTicks, steps []step, board bool) {
	var screen *core.Screen
	if board {
		snap := s.Snapshot()
		screen = tui.NewSessionScreen(snap.Size)
	}

	fmt.Fprintf(w, "%4d %-12s %s\n", 0, "init", formatSnapshot(s.Snapshot()))
	for i, st := range steps {
		note := ""
		switch st.kind {
		case stepInput:
			action := s.HandleInput(st.event)
			note = action.Kind.String()
			if action.Kind == snake.ActionMove {
				note += " " + action.Dir.String()
			}
		case stepTick:
			delivered := 0
			for range st.count {
				if !ticks.Running {
					break
				}
				s.Tick()
				delivered++
			}
			note = fmt.Sprintf("%d/%d", delivered, st.count)
		}

		fmt.Fprintf(w, "%4d %-12s %s [%s]\n", i+1, st.token, formatSnapshot(s.Snapshot()), note)
		if screen != nil {
			tui.DrawSession(screen, s.Snapshot(), s.Skin())
			fmt.Fprintln(w, screen.String())
		}
	}
}

func formatSnapshot(snap snake.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "state=%s score=%d len=%d", snap.State, snap.Score, len(snap.Segments))
	if len(snap.Segments) > 0 {
		px, py := snap.HeadPixel()
		fmt.Fprintf(&b, " head=(%d,%d) px=(%g,%g) dir=%s", snap.Head.X, snap.Head.Y, px, py, snap.Direction)
	}
	if snap.HasFood {
		fmt.Fprintf(&b, " food=(%d,%d)", snap.Food.X, snap.Food.Y)
	} else {
		b.WriteString(" food=none")
	}
	if snap.Err != nil {
		fmt.Fprintf(&b, " err=%q", snap.Err.Error())
	}
	return b.String()
}

func openScript(args []string) (io.Reader, func(), error) {
	if flagSimSteps != "" {
		return strings.NewReader(flagSimSteps), func() {}, nil
	}
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() {
		//nolint:errcheck // Read-only file
		f.Close()
	}, nil
}

func runSim(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	exitOnError("log", err)
	defer closeLog()

	r, closeScript, err := openScript(args)
	exitOnError("script", err)
	steps, err := parseScript(r)
	closeScript()
	exitOnError("script", err)

	ticks := &snake.ManualTicks{}
	session, err := snake.New(cfg.Session(resolveSeed()), resolveSkin(cfg.Skin, logger),
		snake.WithLogger(logger),
		snake.WithTickSource(ticks),
		snake.WithListener(func(ev snake.Event) {
			logger.Info("event", "kind", ev.Kind, "score", ev.Score, "head", ev.Head)
		}),
	)
	if session == nil {
		exitOnError("session", err)
	}

	simulate(os.Stdout, session, ticks, steps, flagSimBoard)
}
