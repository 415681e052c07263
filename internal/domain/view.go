package domain

import (
	"fmt"
	"strings"
)

// View identifies one of the dashboard screens.
type View string

const (
	ViewDashboard   View = "DASHBOARD"
	ViewResearchHub View = "RESEARCH_HUB"
	ViewAcademy     View = "ACADEMY"
	ViewDiagnostics View = "DIAGNOSTICS"
	ViewSettings    View = "SETTINGS"
)

// Views is the closed set of navigable screens in navigation order.
var Views = []View{ViewDashboard, ViewResearchHub, ViewAcademy, ViewDiagnostics, ViewSettings}

// ParseView accepts the enum name in any case.
func ParseView(s string) (View, error) {
	v := View(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("domain: unknown view %q", s)
	}
	return v, nil
}

func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}
