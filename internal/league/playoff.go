package league

import "fmt"

// PlayoffFormat describes the league's playoff settings.
type PlayoffFormat struct {
	Teams     int `json:"teams"`
	Weeks     int `json:"weeks"`
	StartWeek int `json:"start_week"`
}

// PlayoffSlot is one side of a playoff game. Seed is zero when the slot is
// filled by the winner of an earlier game.
type PlayoffSlot struct {
	Seed     int    `json:"seed,omitempty"`
	Label    string `json:"label"`
	TeamName string `json:"team_name,omitempty"`
}

// PlayoffGame pairs two slots.
type PlayoffGame struct {
	Top    PlayoffSlot `json:"top"`
	Bottom PlayoffSlot `json:"bottom"`
}

// PlayoffRound is one playoff week.
type PlayoffRound struct {
	Name  string        `json:"name"`
	Week  int           `json:"week"`
	Games []PlayoffGame `json:"games"`
	Byes  []PlayoffSlot `json:"byes,omitempty"`
}

// PlayoffPicture is the bracket implied by the format and current seeding.
type PlayoffPicture struct {
	Format  PlayoffFormat  `json:"format"`
	Rounds  []PlayoffRound `json:"rounds,omitempty"`
	Summary string         `json:"summary"`
}

// PlayoffWeeks is the number of single-elimination rounds needed for teams.
func PlayoffWeeks(teams int) int {
	weeks := 0
	for n := 1; n < teams; n *= 2 {
		weeks++
	}
	return weeks
}

// BuildPlayoffPicture lays out the bracket for the common 4, 6 and 8 team
// formats, seeding from standings in rank order. Other formats only get a
// summary.
func BuildPlayoffPicture(format PlayoffFormat, standings []StandingsTeam) PlayoffPicture {
	seeded := make([]StandingsTeam, len(standings))
	copy(seeded, standings)
	SortByFinalRank(seeded, standingsRank)

	seed := func(n int) PlayoffSlot {
		slot := PlayoffSlot{Seed: n, Label: ordinal(n) + " seed"}
		if n <= len(seeded) {
			slot.TeamName = seeded[n-1].TeamName
		}
		return slot
	}
	tbd := func(label string) PlayoffSlot {
		return PlayoffSlot{Label: label}
	}
	game := func(top, bottom PlayoffSlot) PlayoffGame {
		return PlayoffGame{Top: top, Bottom: bottom}
	}

	pic := PlayoffPicture{
		Format:  format,
		Summary: fmt.Sprintf("%d teams make playoffs, %d weeks of playoffs, starts week %d", format.Teams, format.Weeks, format.StartWeek),
	}
	start := format.StartWeek

	switch {
	case format.Teams == 4 && format.Weeks == 2:
		pic.Rounds = []PlayoffRound{
			{Name: "Semifinals", Week: start, Games: []PlayoffGame{
				game(seed(1), seed(4)),
				game(seed(2), seed(3)),
			}},
			{Name: "Championship", Week: start + 1, Games: []PlayoffGame{
				game(tbd("Winner 1 vs 4"), tbd("Winner 2 vs 3")),
			}},
		}
	case format.Teams == 6 && format.Weeks == 3:
		pic.Rounds = []PlayoffRound{
			{Name: "Wild Card", Week: start, Games: []PlayoffGame{
				game(seed(3), seed(6)),
				game(seed(4), seed(5)),
			}, Byes: []PlayoffSlot{seed(1), seed(2)}},
			{Name: "Semifinals", Week: start + 1, Games: []PlayoffGame{
				game(seed(1), tbd("Lowest remaining seed")),
				game(seed(2), tbd("Highest remaining seed")),
			}},
			{Name: "Championship", Week: start + 2, Games: []PlayoffGame{
				game(tbd("Semifinal winner"), tbd("Semifinal winner")),
			}},
		}
	case format.Teams == 8 && format.Weeks == 3:
		pic.Rounds = []PlayoffRound{
			{Name: "Quarterfinals", Week: start, Games: []PlayoffGame{
				game(seed(1), seed(8)),
				game(seed(4), seed(5)),
				game(seed(2), seed(7)),
				game(seed(3), seed(6)),
			}},
			{Name: "Semifinals", Week: start + 1, Games: []PlayoffGame{
				game(tbd("Winner 1 vs 8"), tbd("Winner 4 vs 5")),
				game(tbd("Winner 2 vs 7"), tbd("Winner 3 vs 6")),
			}},
			{Name: "Championship", Week: start + 2, Games: []PlayoffGame{
				game(tbd("Semifinal winner"), tbd("Semifinal winner")),
			}},
		}
	}

	return pic
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
