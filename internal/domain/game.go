package domain

type Format struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Game struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Formats []Format `json:"formats"`
}

// HasFormat reports whether the game offers the format id.
func (g Game) HasFormat(id string) bool {
	for _, f := range g.Formats {
		if f.ID == id {
			return true
		}
	}
	return false
}

var games = []Game{
	{
		ID:   "bgmi",
		Name: "BGMI",
		Formats: []Format{
			{ID: "squad", Name: "Squad (4 Players)"},
			{ID: "duo", Name: "Duo (2 Players)"},
			{ID: "solo", Name: "Solo (1 Player)"},
		},
	},
	{
		ID:   "valorant",
		Name: "Valorant",
		Formats: []Format{
			{ID: "team", Name: "Team (5 Players)"},
			{ID: "3v3", Name: "3v3 (3 Players)"},
			{ID: "1v1", Name: "1v1 (1 Player)"},
		},
	},
	{
		ID:   "freefire",
		Name: "Free Fire",
		Formats: []Format{
			{ID: "squad", Name: "Squad (4 Players)"},
			{ID: "duo", Name: "Duo (2 Players)"},
			{ID: "solo", Name: "Solo (1 Player)"},
		},
	},
	{
		ID:   "cod",
		Name: "Call of Duty Mobile",
		Formats: []Format{
			{ID: "5v5", Name: "5v5 Team"},
			{ID: "2v2", Name: "2v2 Duo"},
			{ID: "1v1", Name: "1v1 Solo"},
		},
	},
}

// FormatName returns the display name of format id, or id itself when the
// game does not offer it.
func (g Game) FormatName(id string) string {
	for _, f := range g.Formats {
		if f.ID == id {
			return f.Name
		}
	}
	return id
}

// Games returns the game catalog tournaments can be created for.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

func FindGame(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
