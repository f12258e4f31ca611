package domain

// Records below are fixed seed content served by the browsing pages.

type TournamentCard struct {
	ID           int    `toml:"id" json:"id"`
	Name         string `toml:"name" json:"name"`
	Game         string `toml:"game" json:"game"`
	Format       string `toml:"format" json:"format"`
	Prizepool    string `toml:"prizepool" json:"prizepool"`
	Participants int    `toml:"participants" json:"participants"`
	MaxTeams     int    `toml:"max_teams" json:"maxTeams"`
	StartDate    string `toml:"start_date" json:"startDate"`
	Status       string `toml:"status" json:"status"`
}

type TeamCard struct {
	ID           int     `toml:"id" json:"id"`
	Name         string  `toml:"name" json:"name"`
	Game         string  `toml:"game" json:"game"`
	Region       string  `toml:"region" json:"region"`
	Members      int     `toml:"members" json:"members"`
	Rating       float64 `toml:"rating" json:"rating"`
	Achievements int     `toml:"achievements" json:"achievements"`
	Recruiting   bool    `toml:"recruiting" json:"recruiting"`
	Description  string  `toml:"description" json:"description"`
}

type Post struct {
	ID         int    `toml:"id" json:"id"`
	Author     string `toml:"author" json:"author"`
	AuthorKind Kind   `toml:"author_kind" json:"authorKind"`
	Verified   bool   `toml:"verified" json:"verified"`
	Type       string `toml:"type" json:"type"`
	Game       string `toml:"game" json:"game"`
	Content    string `toml:"content" json:"content"`
	Likes      int    `toml:"likes" json:"likes"`
	Comments   int    `toml:"comments" json:"comments"`
	Posted     string `toml:"posted" json:"posted"`
}

type RecruitmentPost struct {
	ID           int      `toml:"id" json:"id"`
	Team         string   `toml:"team" json:"team"`
	Game         string   `toml:"game" json:"game"`
	Role         string   `toml:"role" json:"role"`
	Requirements []string `toml:"requirements" json:"requirements"`
	Location     string   `toml:"location" json:"location,omitempty"`
	Level        string   `toml:"level" json:"level,omitempty"`
	Applicants   int      `toml:"applicants" json:"applicants"`
	Posted       string   `toml:"posted" json:"posted"`
}

// ConnectUser is a candidate the random-connect stub can pair a player with.
type ConnectUser struct {
	Name   string `toml:"name" json:"name"`
	Gender string `toml:"gender" json:"gender"`
	Game   string `toml:"game" json:"game"`
}
