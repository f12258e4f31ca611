package webpath

import "github.com/goserg/arcesports/internal/access"

const (
	Home        = "/"
	Nav         = "/nav"
	Tournaments = "/tournaments"
	Teams       = "/teams"
	Connect     = "/connect"
	Match       = Connect + "/match"
	VideoChat   = "/video-chat"
	Recruitment = "/recruitment"
	Feed        = "/feed"
	Messages    = "/messages"

	PlayerProfile = "/profile/player"
	TeamProfile   = "/profile/team"

	Admin             = "/admin"
	ApproveTournament = Admin + "/tournaments/:id/approve"

	PlayerAuth = "/player-auth"
	TeamAuth   = "/team-auth"
	AdminAuth  = "/admin-auth"
	Signout    = "/signout"

	NewTournament      = Tournaments + "/new"
	WizardOpen         = NewTournament + "/open"
	WizardClose        = NewTournament + "/close"
	WizardNext         = NewTournament + "/next"
	WizardPrevious     = NewTournament + "/previous"
	WizardField        = NewTournament + "/fields/:field"
	WizardBanner       = NewTournament + "/banner"
	WizardRoadmap      = NewTournament + "/roadmap"
	WizardRoadmapStage = WizardRoadmap + "/:index"
	WizardSubmit       = NewTournament + "/submit"

	Tournament = Tournaments + "/:id"
)

var pages = map[access.Page]string{
	access.PageHome:             Home,
	access.PageTournaments:      Tournaments,
	access.PageTeams:            Teams,
	access.PageConnect:          Connect,
	access.PageVideoChat:        VideoChat,
	access.PageRecruitment:      Recruitment,
	access.PageFeed:             Feed,
	access.PageMessages:         Messages,
	access.PagePlayerProfile:    PlayerProfile,
	access.PageTeamProfile:      TeamProfile,
	access.PageAdmin:            Admin,
	access.PagePlayerAuth:       PlayerAuth,
	access.PageTeamAuth:         TeamAuth,
	access.PageCreateTournament: NewTournament,
}

// ForPage returns the path a page is served on, or Home for unknown pages.
func ForPage(p access.Page) string {
	if path, ok := pages[p]; ok {
		return path
	}
	return Home
}

func Path() map[string]string {
	out := make(map[string]string, len(pages)+2)
	for page, path := range pages {
		out[string(page)] = path
	}
	out["admin-auth"] = AdminAuth
	out["signout"] = Signout
	return out
}
