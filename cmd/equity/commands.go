package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/yangrq1018/holdem-equity/cache"
	"github.com/yangrq1018/holdem-equity/montecarlo"
	"github.com/yangrq1018/holdem-equity/render"
	"github.com/yangrq1018/holdem-equity/texas"
	"github.com/yangrq1018/holdem-equity/util"
)

func handFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "hand",
		Usage:    `two hole cards, e.g. "As Kd"`,
		Required: true,
	}
}

func boardFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "board",
		Usage: `zero to five community cards, e.g. "Qh 9s 4d"`,
	}
}

func opponentsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "opponents",
		Aliases: []string{"o"},
		Usage:   "number of opponents (default from config)",
	}
}

func trialsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "trials",
		Aliases: []string{"n"},
		Usage:   "Monte Carlo trials (default from config)",
	}
}

type equityReport struct {
	ID        string       `json:"id"`
	Hand      string       `json:"hand"`
	Board     string       `json:"board"`
	Opponents int          `json:"opponents"`
	Trials    int          `json:"trials,omitempty"`
	Seed      uint64       `json:"seed,omitempty"`
	Method    texas.Method `json:"method"`
	Equity    texas.Equity `json:"equity"`
	Strength  string       `json:"strength,omitempty"`
	Cached    bool         `json:"cached"`
}

func equityCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "equity",
		Usage: "exact equity on a full board heads up, Monte Carlo otherwise; the last result is cached",
		Flags: []cli.Flag{
			handFlag(), boardFlag(), opponentsFlag(), trialsFlag(),
			&cli.StringFlag{
				Name:  "cache",
				Usage: "file keeping the last result (default from config)",
			},
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "ignore a cached result",
			},
		},
		Action: func(c *cli.Context) error {
			hand, board, err := s.deal(c)
			if err != nil {
				return err
			}
			opponents, trials := s.opponents(c), s.trials(c)

			path := s.cfg.CachePath
			if c.IsSet("cache") {
				path = c.String("cache")
			}
			store, err := cache.Open(path)
			if err != nil {
				return err
			}

			fp := cache.Fingerprint(hand, board, opponents)
			entry, hit := store.Lookup(fp)
			if hit && c.Bool("refresh") {
				hit = false
			}
			if !hit {
				start := time.Now()
				eq, method, err := s.engine.Equity(s.rng(), hand, board, opponents, trials)
				if err != nil {
					return err
				}
				entry = cache.NewEntry(hand, board, opponents)
				logger.WithField("id", entry.ID).Debugf("%s equity of %s took %s", method, fp, time.Since(start))
				entry.Trials = trials
				entry.Seed = s.seed
				entry.Method = method
				entry.Equity = eq
				if err := store.Save(entry); err != nil {
					logger.WithError(err).Warn("cache not saved")
				}
			} else {
				logger.Infof("reuse result of %s", entry.CreatedAt.Format(time.RFC3339))
			}

			strength, err := s.engine.ClassifyHand(hand, board)
			if err != nil {
				return err
			}
			report := equityReport{
				ID:        entry.ID,
				Hand:      entry.Hand,
				Board:     entry.Board,
				Opponents: entry.Opponents,
				Method:    entry.Method,
				Equity:    entry.Equity,
				Cached:    hit,
			}
			if entry.Method == texas.MethodMonteCarlo {
				report.Trials = entry.Trials
				report.Seed = entry.Seed
			}
			if strength != texas.InsufficientBoard {
				report.Strength = strength
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(report))
				return nil
			}

			render.Deal(s.out, hand, board)
			if report.Strength != "" {
				fmt.Fprintf(s.out, "Hand Strength: %s\n", report.Strength)
			}
			if hit {
				fmt.Fprintln(s.out, "(cached)")
			}
			return render.Equity(s.out, report.Equity, report.Method, report.Trials)
		},
	}
}

func simulateCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Monte Carlo equity against random opponent holdings",
		Flags: []cli.Flag{handFlag(), boardFlag(), opponentsFlag(), trialsFlag()},
		Action: func(c *cli.Context) error {
			hand, board, err := s.deal(c)
			if err != nil {
				return err
			}
			opponents, trials := s.opponents(c), s.trials(c)
			tally, err := s.engine.Simulate(s.rng(), hand, board, opponents, trials)
			if err != nil {
				return err
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(struct {
					Tally  texas.Tally  `json:"tally"`
					Equity texas.Equity `json:"equity"`
					Seed   uint64       `json:"seed"`
				}{tally, tally.Rates(), s.seed}))
				return nil
			}
			render.Deal(s.out, hand, board)
			fmt.Fprintf(s.out, "Wins: %d, Losses: %d, Ties: %d\n", tally.Win, tally.Lose, tally.Tie)
			return render.Equity(s.out, tally.Rates(), texas.MethodMonteCarlo, tally.Trials())
		},
	}
}

func exactCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "exact",
		Usage: "enumerate every opponent holding on a full board, heads up only",
		Flags: []cli.Flag{handFlag(), boardFlag()},
		Action: func(c *cli.Context) error {
			hand, board, err := s.deal(c)
			if err != nil {
				return err
			}
			res, err := s.engine.Exact(hand, board, 1)
			if errors.Is(err, texas.ErrNotApplicable) {
				return fmt.Errorf("exact equity needs all five board cards, got %d; use simulate: %w", len(board), err)
			}
			if err != nil {
				return err
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(res))
				return nil
			}
			render.Deal(s.out, hand, board)
			return render.Exact(s.out, res)
		},
	}
}

func classifyCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "classify",
		Usage: "name the best hand made of hole and board cards",
		Flags: []cli.Flag{handFlag(), boardFlag()},
		Action: func(c *cli.Context) error {
			hand, board, err := s.deal(c)
			if err != nil {
				return err
			}
			label, err := s.engine.ClassifyHand(hand, board)
			if err != nil {
				return err
			}
			var description string
			if label != texas.InsufficientBoard {
				all := append(append([]texas.Card{}, hand...), board...)
				if description, err = texas.Describe(all); err != nil {
					return err
				}
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(map[string]string{
					"category":    label,
					"description": description,
				}))
				return nil
			}
			fmt.Fprintf(s.out, "Hand Strength: %s\n", label)
			if description != "" {
				fmt.Fprintf(s.out, "Best Hand: %s\n", description)
			}
			return nil
		},
	}
}

func histCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "hist",
		Usage: "distribution of final hand types over every board completion",
		Flags: []cli.Flag{
			handFlag(), boardFlag(),
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "one line per hand type instead of a table",
			},
			&cli.BoolFlag{
				Name:  "opponent",
				Usage: "sample the hand types of a random opponent instead, needs a full board",
			},
			&cli.IntFlag{
				Name:  "trials",
				Usage: "opponent samples, 0 picks min(1000, 10 x unseen cards)",
			},
		},
		Action: func(c *cli.Context) error {
			hand, board, err := s.deal(c)
			if err != nil {
				return err
			}
			var (
				hist  []texas.CategoryProbability
				title = "Hero hand types"
			)
			if c.Bool("opponent") {
				title = "Opponent hand types"
				hist, err = s.engine.OpponentHandTypes(s.rng(), hand, board, c.Int("trials"))
				if errors.Is(err, texas.ErrNotApplicable) {
					return fmt.Errorf("opponent hand types need all five board cards: %w", err)
				}
			} else {
				hist, err = s.engine.HandTypes(hand, board)
			}
			if err != nil {
				return err
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(hist))
				return nil
			}
			if c.Bool("compact") {
				fmt.Fprint(s.out, render.Histogram(hist))
				return nil
			}
			render.Deal(s.out, hand, board)
			return render.HistogramTable(s.out, title, hist)
		},
	}
}

func piCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "pi",
		Usage: "estimate π from random points in the unit square",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "points",
				Aliases: []string{"n"},
				Value:   1000000,
				Usage:   "number of random points",
			},
		},
		Action: func(c *cli.Context) error {
			est, err := montecarlo.EstimatePi(s.rng(), c.Int("points"))
			if err != nil {
				return err
			}
			if s.json() {
				fmt.Fprintln(s.out, util.IndentedJSON(est))
				return nil
			}
			render.Pi(s.out, est)
			return nil
		},
	}
}
