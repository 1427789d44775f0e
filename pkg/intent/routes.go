package intent

import "github.com/saramhq/aegis/pkg/models"

// Route is where the pipeline sends a classified request.
type Route string

// Routes.
const (
	RouteRAGInternal     Route = "RAG_INTERNAL"
	RouteBackendAPI      Route = "BACKEND_API"
	RouteMixedBackendRAG Route = "MIXED_BACKEND_RAG"
	RouteLLMOnly         Route = "LLM_ONLY"
	RouteClarify         Route = "CLARIFY"
	RouteSystemHelp      Route = "SYSTEM_HELP"
	RouteUnknown         Route = "UNKNOWN"
	RouteError           Route = "ERROR"
)

// routeKey indexes the routing table.
type routeKey struct {
	role   models.UserRole
	domain models.Domain
	intent string
}

// routeTable holds role-specific overrides; defaultRoutes covers everything
// else. Ties are impossible: lookups are exact, then fall back to defaults.
var routeTable = map[routeKey]Route{
	// Incident managers and admins see incident reports enriched with backend
	// incident records; everyone else gets the policy text only.
	{models.RoleIncidentManager, models.DomainIncident, IntentIncidentReport}: RouteMixedBackendRAG,
	{models.RoleAdmin, models.DomainIncident, IntentIncidentReport}:           RouteMixedBackendRAG,

	// Managers asking about education status see team rollups from the
	// backend combined with curriculum text.
	{models.RoleManager, models.DomainEducation, IntentEduStatus}: RouteMixedBackendRAG,
}

var defaultRoutes = map[string]Route{
	IntentIncidentReport: RouteRAGInternal,
	IntentEducationQA:    RouteRAGInternal,
	IntentEduStatus:      RouteBackendAPI,
	IntentBackendStatus:  RouteBackendAPI,
	IntentSystemHelp:     RouteSystemHelp,
	IntentGeneralChat:    RouteLLMOnly,
	IntentPolicyQA:       RouteRAGInternal,
	IntentUnknown:        RouteUnknown,
}

// resolveRoute applies the routing table. A sub-intent mapped to a
// personalization Q forces BACKEND_API regardless of the table.
func resolveRoute(role models.UserRole, domain models.Domain, intentName, subIntentID string) Route {
	if route, ok := routeTable[routeKey{role, domain, intentName}]; ok {
		return route
	}
	if subIntentID != "" {
		return RouteBackendAPI
	}
	if route, ok := defaultRoutes[intentName]; ok {
		return route
	}
	return RouteUnknown
}
