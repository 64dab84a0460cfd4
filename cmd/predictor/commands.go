package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/odds"
)

var (
	numRounds   int
	runs        int
	includeOdds bool
	simulate    bool
)

func init() {
	predictCmd.Flags().IntVarP(&numRounds, "rounds", "r", 0, "Scheduled rounds (3 or 5, default from config)")
	predictCmd.Flags().BoolVar(&includeOdds, "odds", false, "Compare with the betting market")

	simulateCmd.Flags().IntVarP(&numRounds, "rounds", "r", 0, "Scheduled rounds (3 or 5, default from config)")
	simulateCmd.Flags().IntVarP(&runs, "runs", "n", 1, "Number of simulations to aggregate")

	cardAddCmd.Flags().IntVarP(&numRounds, "rounds", "r", 0, "Scheduled rounds (3 or 5, default from config)")
	cardAddCmd.Flags().BoolVar(&simulate, "simulate", true, "Store a simulation with the entry")

	cardCmd.AddCommand(cardAddCmd, cardListCmd, cardRemoveCmd, cardLockCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict FIGHTER1 FIGHTER2",
	Short: "Predict the outcome of a fight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := ensureRoster(ctx); err != nil {
			return err
		}

		p, err := predictions.Predict(ctx, args[0], args[1], numRounds)
		if err != nil {
			return err
		}

		if !includeOdds {
			return render(p, func() { printPrediction(p) })
		}
		report := predictions.Odds(ctx, p)
		return render(map[string]interface{}{"prediction": p, "odds": report}, func() {
			printPrediction(p)
			printOddsReport(report.Odds, report.Comparison, report.Status)
		})
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate FIGHTER1 FIGHTER2",
	Short: "Simulate a fight round by round",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := ensureRoster(ctx); err != nil {
			return err
		}

		if runs > 1 {
			summary, err := predictions.SimulateMany(ctx, args[0], args[1], numRounds, runs)
			if err != nil {
				return err
			}
			return render(summary, func() { printSummary(summary) })
		}

		sim, err := predictions.Simulate(ctx, args[0], args[1], numRounds)
		if err != nil {
			return err
		}
		return render(sim, func() { printSimulation(sim) })
	},
}

var oddsCmd = &cobra.Command{
	Use:   "odds FIGHTER1 FIGHTER2",
	Short: "Look up market odds for a fight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if oddsSvc == nil || !oddsSvc.Enabled() {
			return fmt.Errorf("%w: enable odds and set odds.api_key", odds.ErrOddsUnavailable)
		}

		fight, err := oddsSvc.FindFightOdds(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		var comparison *models.OddsComparison
		if fight.Found && ensureRoster(ctx) == nil {
			if p, err := predictions.Predict(ctx, args[0], args[1], 0); err == nil {
				c := odds.Compare(p, fight)
				comparison = &c
			}
		}

		usage, _ := oddsSvc.CheckUsage(ctx)
		return render(map[string]interface{}{"odds": fight, "comparison": comparison, "usage": usage}, func() {
			printOddsReport(fight, comparison, "")
			fmt.Printf("API requests remaining: %s (used %s)\n", usage.Remaining, usage.Used)
		})
	},
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage the fight card",
}

var cardAddCmd = &cobra.Command{
	Use:   "add FIGHTER1 FIGHTER2",
	Short: "Add a predicted fight to the card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := ensureRoster(ctx); err != nil {
			return err
		}

		entry, err := fightCard.Add(ctx, args[0], args[1], numRounds, simulate)
		if err != nil {
			return err
		}
		return render(entry, func() {
			fmt.Printf("Added %s\n", entry.ID)
			printEntry(entry, false)
		})
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fight card",
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := fightCard.List(cmd.Context())
		if err != nil {
			return err
		}
		return render(card, func() {
			if len(card.Entries) == 0 {
				fmt.Println("The fight card is empty")
				return
			}
			for _, e := range card.Entries {
				lock := card.LockOfTheNight != nil && *card.LockOfTheNight == e.ID
				printEntry(e, lock)
			}
		})
	},
}

var cardRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove an entry from the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%w: %s", models.ErrInvalidID, args[0])
		}
		if err := fightCard.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", id)
		return nil
	},
}

var cardLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Show the lock of the night",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := fightCard.Lock(cmd.Context())
		if err != nil {
			return err
		}
		return render(entry, func() { printEntry(entry, true) })
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the roster from its source into storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := ingestion.Ingest(cmd.Context())
		if err != nil {
			return err
		}
		return render(stats, func() { fmt.Println(stats.String()) })
	},
}

// render prints v as JSON when --json is set, otherwise runs text.
func render(v interface{}, text func()) error {
	if !jsonOutput {
		text()
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrediction(p *models.Prediction) {
	out := p.Outcome
	fmt.Printf("%s vs %s (%s, %d rounds)\n", p.Fighter1.Name, p.Fighter2.Name, p.Analysis.WeightClass, p.Analysis.NumRounds)
	fmt.Printf("  %-24s %5.1f%%  %s\n", p.Fighter1.Name, p.Fighter1.WinProbability, p.Fighter1.Style)
	fmt.Printf("  %-24s %5.1f%%  %s\n", p.Fighter2.Name, p.Fighter2.WinProbability, p.Fighter2.Style)
	fmt.Printf("Winner: %s by %s (%s %s)\n", out.Winner, out.LikelyFinish, out.ConfidenceTier.Icon, out.ConfidenceTier.Tier)
	if out.CloseFight {
		fmt.Println("Close fight")
	}
	fmt.Printf("Finish %.1f%% / Decision %.1f%%\n", out.FinishAnalysis.TotalFinishProbability, out.FinishAnalysis.DecisionProbability)
	for _, adv := range p.Analysis.KeyAdvantages {
		fmt.Printf("  - %s: %s (%s)\n", adv.Type, adv.Leader, adv.Value)
	}
}

func printSimulation(sim *models.Simulation) {
	for _, r := range sim.Rounds {
		line := fmt.Sprintf("Round %d: %d - %d strikes", r.Round, r.Fighter1Strikes, r.Fighter2Strikes)
		if r.Result == models.RoundFinish {
			line += fmt.Sprintf(", %s wins by stoppage", r.Winner)
		}
		fmt.Println(line)
	}
	if !sim.Finished() {
		fmt.Println("Went the distance")
	}
	fmt.Printf("Damage absorbed: %d - %d\n", sim.TotalDamage.Fighter1, sim.TotalDamage.Fighter2)
}

func printSummary(s *models.SimulationSummary) {
	fmt.Printf("%d simulations, average %.2f rounds\n", s.Runs, s.AverageRounds)
	for name, n := range s.Finishes {
		fmt.Printf("  %s by stoppage: %d\n", name, n)
	}
	fmt.Printf("  Decisions: %d\n", s.Decisions)
}

func printOddsReport(fight models.FightOdds, comparison *models.OddsComparison, status string) {
	if status != "" && status != "ok" {
		fmt.Printf("Odds: %s\n", strings.ReplaceAll(status, "_", " "))
		return
	}
	if !fight.Found {
		fmt.Println("Odds: fight not found on the board")
		return
	}
	fmt.Printf("%s (%s)\n", fight.EventName, fight.Bookmaker)
	for _, side := range []models.FighterOdds{fight.Fighter1, fight.Fighter2} {
		fmt.Printf("  %-24s %+5d  %.2f  %.1f%%\n", side.Name, side.AmericanOdds, side.DecimalOdds, side.ImpliedProbability)
	}
	if comparison == nil {
		return
	}
	for _, c := range []models.ProbabilityComparison{comparison.Fighter1, comparison.Fighter2} {
		fmt.Printf("  %-24s model %.1f%% vs market %.1f%% (%+.1f): %s\n", c.Name, c.ModelProbability, c.ImpliedProbability, c.Difference, c.Assessment)
	}
}

func printEntry(e *models.FightCardEntry, lock bool) {
	marker := " "
	if lock {
		marker = "*"
	}
	fmt.Printf("%s %s  %s vs %s  %s %.1f%% (%d rds)\n", marker, e.ID, e.Fighter1Name, e.Fighter2Name,
		e.Prediction.Outcome.Winner, e.Confidence(), e.NumRounds)
}
