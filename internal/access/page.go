// Package access decides which identities may view which pages.
package access

// Page is a logical page name.
type Page string

const (
	PageHome             Page = "home"
	PageTournaments      Page = "tournaments"
	PageTeams            Page = "teams"
	PageConnect          Page = "connect"
	PageVideoChat        Page = "video-chat"
	PageRecruitment      Page = "recruitment"
	PageFeed             Page = "feed"
	PageMessages         Page = "messages"
	PagePlayerProfile    Page = "player-profile"
	PageTeamProfile      Page = "team-profile"
	PageAdmin            Page = "admin"
	PagePlayerAuth       Page = "player-auth"
	PageTeamAuth         Page = "team-auth"
	PageCreateTournament Page = "create-tournament"
)

// FallbackPage is where denied requests are sent.
const FallbackPage = PageHome
