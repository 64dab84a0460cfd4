package odds

import (
	"strings"

	"github.com/yourusername/fight-predictor/internal/models"
)

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// namesMatch accepts either name containing the other, so "Jones" finds "Jon Jones".
func namesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// FindInEvents looks for the pairing on the board, in either order, using the first
// bookmaker's h2h market of each event. The returned sides follow the caller's order.
func FindInEvents(events []Event, fighter1, fighter2 string) models.FightOdds {
	f1 := normalizeName(fighter1)
	f2 := normalizeName(fighter2)

	for _, event := range events {
		book, market, ok := event.headToHeadMarket()
		if !ok {
			continue
		}

		out1, out2 := market.Outcomes[0], market.Outcomes[1]
		name1, name2 := normalizeName(out1.Name), normalizeName(out2.Name)

		straight := namesMatch(name1, f1) && namesMatch(name2, f2)
		swapped := namesMatch(name2, f1) && namesMatch(name1, f2)
		if !straight && !swapped {
			continue
		}
		if !straight {
			out1, out2 = out2, out1
		}

		return models.FightOdds{
			Found:        true,
			EventName:    event.HomeTeam + " vs " + event.AwayTeam,
			CommenceTime: event.CommenceTime,
			Bookmaker:    book.Title,
			Fighter1:     newFighterOdds(out1.Name, out1.American()),
			Fighter2:     newFighterOdds(out2.Name, out2.American()),
		}
	}

	return models.FightOdds{Found: false}
}
