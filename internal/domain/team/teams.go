package team

import "sort"

// Abbreviations maps the schedule page's display names to the three-letter
// codes used in team and boxscore URLs. Must stay in sync with the persisted
// team table; an unknown name during catalog import is a configuration error.
var Abbreviations = map[string]string{
	"Anaheim Ducks":         "ANA",
	"Arizona Coyotes":       "ARI",
	"Boston Bruins":         "BOS",
	"Buffalo Sabres":        "BUF",
	"Calgary Flames":        "CGY",
	"Carolina Hurricanes":   "CAR",
	"Chicago Blackhawks":    "CHI",
	"Colorado Avalanche":    "COL",
	"Columbus Blue Jackets": "CBJ",
	"Dallas Stars":          "DAL",
	"Detroit Red Wings":     "DET",
	"Edmonton Oilers":       "EDM",
	"Florida Panthers":      "FLA",
	"Los Angeles Kings":     "LAK",
	"Minnesota Wild":        "MIN",
	"Montreal Canadiens":    "MTL",
	"Nashville Predators":   "NSH",
	"New Jersey Devils":     "NJD",
	"New York Islanders":    "NYI",
	"New York Rangers":      "NYR",
	"Ottawa Senators":       "OTT",
	"Philadelphia Flyers":   "PHI",
	"Pittsburgh Penguins":   "PIT",
	"San Jose Sharks":       "SJS",
	"Seattle Kraken":        "SEA",
	"St. Louis Blues":       "STL",
	"Tampa Bay Lightning":   "TBL",
	"Toronto Maple Leafs":   "TOR",
	"Vancouver Canucks":     "VAN",
	"Vegas Golden Knights":  "VEG",
	"Washington Capitals":   "WSH",
	"Winnipeg Jets":         "WPG",
}

// All returns the static franchise list in name order, ready for seeding.
func All() []Team {
	out := make([]Team, 0, len(Abbreviations))
	for name, abbr := range Abbreviations {
		out = append(out, Team{Name: name, Abbr: abbr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
