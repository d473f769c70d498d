package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"github.com/urfave/cli/v2"
	"github.com/yangrq1018/holdem-equity/config"
	"github.com/yangrq1018/holdem-equity/texas"
	"github.com/yangrq1018/holdem-equity/util"
	"golang.org/x/exp/rand"
)

var logger = util.GetModuleLogger("equity")

const (
	formatText = "text"
	formatJSON = "json"
)

var formats = []string{formatText, formatJSON}

// session is what every command shares once the global flags are resolved.
type session struct {
	cfg    *config.Config
	seed   uint64
	format string
	engine texas.Engine
	out    io.Writer
}

func (s *session) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed))
}

func (s *session) json() bool {
	return s.format == formatJSON
}

func (s *session) load(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logrus.SetOutput(c.App.ErrWriter)
	logrus.SetLevel(cfg.Level())

	format := c.String("format")
	if !funk.ContainsString(formats, format) {
		return fmt.Errorf("unknown format %q, want one of %v", format, formats)
	}

	seed, generated := cfg.ResolveSeed(time.Now())
	if generated {
		logger.Infof("no seed given, using %d", seed)
	}

	s.cfg = cfg
	s.seed = seed
	s.format = format
	s.engine = texas.Engine{Workers: cfg.WorkerCount()}
	s.out = c.App.Writer
	logger.Debugf("workers=%d trials=%d opponents=%d", s.engine.Workers, cfg.Trials, cfg.Opponents)
	return nil
}

// opponents and trials fall back to the configuration when the flag is absent.
func (s *session) opponents(c *cli.Context) int {
	if c.IsSet("opponents") {
		return c.Int("opponents")
	}
	return s.cfg.Opponents
}

func (s *session) trials(c *cli.Context) int {
	if c.IsSet("trials") {
		return c.Int("trials")
	}
	return s.cfg.Trials
}

func (s *session) deal(c *cli.Context) (hand, board []texas.Card, err error) {
	hand, err = texas.ParseCards(c.String("hand"))
	if err != nil {
		return nil, nil, fmt.Errorf("hand: %w", err)
	}
	board, err = texas.ParseCards(c.String("board"))
	if err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}
	return hand, board, nil
}

func newApp() *cli.App {
	s := &session{}

	cliApp := cli.NewApp()
	cliApp.Name = "equity"
	cliApp.Usage = "Texas hold'em equity calculator"
	cliApp.Version = version()
	cliApp.Description = "Defaults come from the environment or the --config YAML file:\n" + config.Usage()
	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML file with defaults, see EQUITY_* variables",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed, 0 picks one from the clock",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "worker goroutines, 0 uses every logical CPU",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "panic, fatal, error, warn, info, debug or trace",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: formatText,
			Usage: "output format: text or json",
		},
	}
	cliApp.Before = s.load
	cliApp.Commands = []*cli.Command{
		equityCommand(s),
		simulateCommand(s),
		exactCommand(s),
		classifyCommand(s),
		histCommand(s),
		piCommand(s),
	}
	return cliApp
}
