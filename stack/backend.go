package stack

type backendRule struct {
	Kind    BackendKind
	Port    int
	Source  SourceID
	Markers []string
	// Any of these present rules the backend out.
	Excludes []string
}

// Evaluated in order, first match wins.
var backendRules = []backendRule{
	{
		Kind:     BackendNodeJS,
		Port:     3000,
		Source:   SourcePackageJSON,
		Markers:  []string{"express", "koa", "fastify", "@nestjs/core", "hapi", "restify"},
		Excludes: frontendMarkers(),
	},
	{
		Kind:    BackendPython,
		Port:    5000,
		Source:  SourceRequirements,
		Markers: []string{"flask", "django", "fastapi", "tornado", "bottle", "pyramid"},
	},
	{
		Kind:    BackendJava,
		Port:    8080,
		Source:  SourcePomXML,
		Markers: []string{"spring-boot", "spring-web", "servlet-api"},
	},
	{
		Kind:    BackendGo,
		Port:    8080,
		Source:  SourceGoMod,
		Markers: []string{"gin-gonic/gin", "gorilla/mux", "echo", "fiber"},
	},
	{
		Kind:    BackendPHP,
		Port:    8000,
		Source:  SourceComposerJSON,
		Markers: []string{"laravel", "symfony", "slim/slim", "silex/silex", "zendframework/zend-mvc"},
	},
	{
		Kind:    BackendDotNet,
		Port:    5000,
		Source:  SourceCsproj,
		Markers: []string{"Microsoft.AspNetCore", "Microsoft.NET.Sdk.Web"},
	},
	{
		Kind:    BackendRust,
		Port:    8080,
		Source:  SourceCargoTOML,
		Markers: []string{"actix-web", "rocket", "warp", "axum"},
	},
}

// Returns the default port for a backend kind, or false for an unknown kind.
func BackendPort(kind BackendKind) (int, bool) {
	for _, r := range backendRules {
		if r.Kind == kind {
			return r.Port, true
		}
	}
	return 0, false
}

func (r backendRule) match(m Manifests) Evidence {
	ev := m.Check(r.Source, r.Markers...)
	if !ev.Matched || len(r.Excludes) == 0 {
		return ev
	}

	if excluded := m.Check(r.Source, r.Excludes...); excluded.Matched {
		return Evidence{Source: r.Source}
	}
	return ev
}

// Classifies the backend. Every rule's evidence is returned in detection order.
func matchBackend(m Manifests) (backendRule, []Evidence) {
	evidence := make([]Evidence, 0, len(backendRules))
	for _, r := range backendRules {
		ev := r.match(m)
		evidence = append(evidence, ev)
		if ev.Matched {
			return r, evidence
		}
	}

	return backendRule{}, evidence
}
