package odds

import (
	"math"
	"time"
)

// Event is one fixture on The Odds API board.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's markets for an event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is a set of priced outcomes, keyed by market type ("h2h").
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a priced selection. Price is American odds.
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// American returns the price as whole American odds.
func (o Outcome) American() int {
	return int(math.Round(o.Price))
}

const headToHead = "h2h"

// headToHeadMarket returns the first bookmaker's two-way h2h market, if it has one.
func (e Event) headToHeadMarket() (Bookmaker, Market, bool) {
	if len(e.Bookmakers) == 0 {
		return Bookmaker{}, Market{}, false
	}
	book := e.Bookmakers[0]
	for _, m := range book.Markets {
		if m.Key == headToHead {
			if len(m.Outcomes) != 2 {
				return Bookmaker{}, Market{}, false
			}
			return book, m, true
		}
	}
	return Bookmaker{}, Market{}, false
}
