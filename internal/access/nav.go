package access

import "github.com/goserg/arcesports/internal/domain"

type NavItem struct {
	Name string `json:"name"`
	Page Page   `json:"page"`
}

var browseItems = []NavItem{
	{Name: "Tournaments", Page: PageTournaments},
	{Name: "Teams", Page: PageTeams},
	{Name: "Connect", Page: PageConnect},
	{Name: "Recruitment", Page: PageRecruitment},
	{Name: "Feed", Page: PageFeed},
}

// NavItems builds the navigation menu for id. Browse entries the identity
// cannot open are left out.
func NavItems(p Policy, id domain.Identity) []NavItem {
	var items []NavItem
	for _, item := range browseItems {
		if p.CanAccess(id, item.Page) {
			items = append(items, item)
		}
	}

	switch id.(type) {
	case nil, domain.Anonymous:
		items = append(items,
			NavItem{Name: "Login", Page: PagePlayerAuth},
			NavItem{Name: "Join ARC", Page: PageTeamAuth},
		)
	case domain.Player:
		items = append(items,
			NavItem{Name: "Profile", Page: PagePlayerProfile},
			NavItem{Name: "Messages", Page: PageMessages},
		)
	case domain.Team:
		items = append(items,
			NavItem{Name: "Team Profile", Page: PageTeamProfile},
			NavItem{Name: "Messages", Page: PageMessages},
		)
	case domain.Admin:
		items = append(items,
			NavItem{Name: "Admin Panel", Page: PageAdmin},
		)
	}
	return items
}
