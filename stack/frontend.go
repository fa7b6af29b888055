package stack

type frontendRule struct {
	Kind    FrontendKind
	Port    int
	Markers []string
}

// Evaluated in order, first match wins.
var frontendRules = []frontendRule{
	{Kind: FrontendReact, Port: 3000, Markers: []string{"react", "react-dom"}},
	{Kind: FrontendVue, Port: 3000, Markers: []string{"vue", "@vue/cli-service"}},
	{Kind: FrontendAngular, Port: 4200, Markers: []string{"@angular/core", "@angular/cli"}},
}

// Every dependency that marks a package.json as a frontend app.
func frontendMarkers() []string {
	var markers []string
	for _, r := range frontendRules {
		markers = append(markers, r.Markers...)
	}
	return markers
}

// Classifies the frontend from package.json.
func matchFrontend(m Manifests) (frontendRule, Evidence) {
	for _, r := range frontendRules {
		ev := m.Check(SourcePackageJSON, r.Markers...)
		if ev.Err != nil {
			return frontendRule{}, ev
		}
		if ev.Matched {
			return r, ev
		}
	}

	return frontendRule{}, Evidence{Source: SourcePackageJSON}
}
