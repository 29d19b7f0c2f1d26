package research

import (
	"strings"
)

// scopeKeywords restricts the research workflow to defense and government
// topics. Matching is case-insensitive substring matching with no word
// boundaries: "usaf" inside a longer word also matches. That imprecision is
// accepted; the list is the contract.
var scopeKeywords = []string{
	"defense", "military", "dod", "government", "program executive officer", "market size",
	"mission system", "contract", "army", "navy", "air force", "golden dome", "homeland security",
	"intelligence", "federal", "agency", "warfighter", "missile", "weapons", "procurement",
	"department of defense", "usaf", "usn", "usmc", "us army", "us navy", "us air force",
	"national guard", "veteran", "combat", "strategic", "warfighting", "defence", "counterterrorism",
	"nato", "allies", "dhs", "congress", "senate", "military base", "military spending", "defense budget",
	"defense technology", "defense contractor", "defense acquisition", "defense program",
	"darpa", "nsa", "cia", "fbi", "space force", "defense industry", "military intelligence",
	"armed forces", "homeland", "security clearance", "clearance", "classified", "unclassified",
	"public sector", "doe", "doj", "dos", "state department", "defense innovation", "defense logistics",
	"military research", "military technology", "armed services", "defense policy", "defense spending",
	"military operations", "force structure", "defense review", "joint chiefs", "combatant command",
	"socom", "centcom", "pacom", "eucom", "africom", "northcom", "spacecom", "indopacom",
	"defense grant", "defense r&d", "defense funding", "military contract", "military supplier",
	"military procurement", "military training", "military exercise", "military doctrine",
	"military readiness", "military logistics", "military support", "military alliance", "military assistance",
	"military aid", "military deployment", "military force", "military personnel", "military veteran",
	"military reserve", "military retiree", "military spouse", "military dependent", "military family",
	"palantir", "anduril", "budget",
}

// IsInScope reports whether the text is related to defense or government
// topics.
func IsInScope(text string) bool {
	q := strings.ToLower(text)
	for _, kw := range scopeKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
