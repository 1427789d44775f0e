// Package intent classifies user queries into (intent, domain) and resolves
// the pipeline route from a (role, domain, intent) table. Classification is
// rule-based: priority-ordered keyword rules with a confidence score.
package intent

import (
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// Intents.
const (
	IntentIncidentReport = "INCIDENT_REPORT"
	IntentEducationQA    = "EDUCATION_QA"
	IntentEduStatus      = "EDU_STATUS"
	IntentBackendStatus  = "BACKEND_STATUS"
	IntentSystemHelp     = "SYSTEM_HELP"
	IntentGeneralChat    = "GENERAL_CHAT"
	IntentPolicyQA       = "POLICY_QA"
	IntentUnknown        = "UNKNOWN"
)

// clarifyThreshold is the minimum confidence below which the router asks the
// user to clarify instead of guessing a route.
const clarifyThreshold = 0.45

// clarifyPrompt is the templated clarification question, in the deployment's
// target language.
const clarifyPrompt = "질문의 의도를 정확히 파악하지 못했어요. 사내 규정 문의인지, 교육 관련 문의인지, " +
	"아니면 개인 현황(연차·복지포인트 등) 조회인지 조금 더 구체적으로 말씀해 주시겠어요?"

// Result is the classification outcome for one query.
type Result struct {
	Intent        string
	SubIntentID   string
	Domain        models.Domain
	Route         Route
	Confidence    float64
	NeedsClarify  bool
	ClarifyPrompt string
}

// rule is one priority-ordered keyword rule. Rules are evaluated top to
// bottom; the first rule with any keyword hit wins. Confidence grows with the
// number of distinct keyword hits.
type rule struct {
	intent   string
	domain   models.Domain
	keywords []string
	base     float64
}

// Keyword sets are matched as substrings of the lowercased query. Single
// Korean syllables that double as function words (하, 되, 그) must never
// appear here: they match almost every sentence and shunt policy questions
// into non-RAG paths.
var rules = []rule{
	{
		intent: IntentIncidentReport,
		domain: models.DomainIncident,
		keywords: []string{
			"사고 신고", "사건 신고", "유출", "침해", "보안사고", "보안 사고",
			"개인정보 유출", "해킹", "랜섬웨어", "신고하고 싶", "신고하려",
		},
		base: 0.8,
	},
	{
		intent: IntentEduStatus,
		domain: models.DomainEducation,
		keywords: []string{
			"내 교육", "나의 교육", "제 교육", "내 이수", "나의 이수", "제 이수",
			"내 수료", "나의 수료", "제 수료", "내 진도", "교육 이수율",
		},
		base: 0.75,
	},
	{
		intent: IntentEducationQA,
		domain: models.DomainEducation,
		keywords: []string{
			"교육", "퀴즈", "이수", "수료", "강의", "커리큘럼", "교육과정", "시험",
		},
		base: 0.6,
	},
	{
		intent: IntentBackendStatus,
		domain: models.DomainGeneral,
		// "연차" alone is a policy topic word ("연차 이월 기준은?") and must
		// only match here together with a status verb or possessive.
		keywords: []string{
			"내 연차", "나의 연차", "제 연차", "연차 잔여", "남은 연차",
			"연차 조회", "연차 몇 개", "휴가 잔여", "남은 휴가",
			"복지포인트", "복지 포인트",
			"근태", "출퇴근 기록", "초과근무", "연장근무", "급여명세", "경조금",
		},
		base: 0.7,
	},
	{
		intent: IntentSystemHelp,
		domain: models.DomainGeneral,
		keywords: []string{
			"사용법", "어떻게 써", "어떻게 사용", "도움말", "무엇을 할 수 있", "뭘 할 수 있",
		},
		base: 0.65,
	},
	{
		intent: IntentGeneralChat,
		domain: models.DomainGeneral,
		keywords: []string{
			"안녕", "고마워", "감사", "잘 지냈", "수고", "재밌", "심심",
		},
		base: 0.55,
	},
}

// subIntentKeywords maps BACKEND_STATUS keyword groups to personalization Q
// codes. Checked in order; first hit wins.
var subIntentKeywords = []struct {
	q        string
	keywords []string
}{
	{"Q11", []string{"연차", "휴가 잔여", "남은 휴가"}},
	{"Q14", []string{"복지포인트", "복지 포인트"}},
	{"Q12", []string{"근태", "출퇴근 기록"}},
	{"Q13", []string{"초과근무", "연장근무"}},
	{"Q15", []string{"급여명세"}},
	{"Q16", []string{"경조금"}},
}

// Classifier resolves intent and route for a query.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify runs the keyword rules and the routing table.
func (c *Classifier) Classify(message string, role models.UserRole, domainHint models.Domain, department string) Result {
	query := strings.ToLower(strings.TrimSpace(message))
	if query == "" {
		return Result{
			Intent: IntentUnknown, Domain: models.DomainGeneral, Route: RouteUnknown,
			NeedsClarify: true, ClarifyPrompt: clarifyPrompt,
		}
	}

	intent, domain, confidence := matchRules(query)

	if intent == "" {
		// Default: a policy question when the caller hinted POLICY, otherwise
		// treat longer questions as policy lookups and short ones as unknown.
		switch {
		case domainHint == models.DomainPolicy || domainHint == "":
			intent, domain, confidence = IntentPolicyQA, models.DomainPolicy, 0.5
		case domainHint == models.DomainEducation:
			intent, domain, confidence = IntentEducationQA, models.DomainEducation, 0.5
		case domainHint == models.DomainIncident:
			intent, domain, confidence = IntentIncidentReport, models.DomainIncident, 0.5
		default:
			intent, domain, confidence = IntentUnknown, models.DomainGeneral, 0.3
		}
	}

	result := Result{
		Intent:     intent,
		Domain:     domain,
		Confidence: confidence,
	}

	if intent == IntentBackendStatus || intent == IntentEduStatus {
		result.SubIntentID = matchSubIntent(query, intent)
	}

	if confidence < clarifyThreshold {
		result.NeedsClarify = true
		result.ClarifyPrompt = clarifyPrompt
		result.Route = RouteClarify
		return result
	}

	result.Route = resolveRoute(role, domain, intent, result.SubIntentID)
	return result
}

// matchRules returns the first matching rule's intent with a confidence that
// grows with distinct keyword hits, or zero values if nothing matched.
func matchRules(query string) (string, models.Domain, float64) {
	for _, r := range rules {
		hits := 0
		for _, kw := range r.keywords {
			if strings.Contains(query, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		confidence := r.base + 0.1*float64(hits-1)
		if confidence > 0.95 {
			confidence = 0.95
		}
		return r.intent, r.domain, confidence
	}
	return "", "", 0
}

// matchSubIntent maps a status query to its personalization Q code.
// EDU_STATUS always resolves to Q20 (own education status).
func matchSubIntent(query, intent string) string {
	if intent == IntentEduStatus {
		return "Q20"
	}
	for _, m := range subIntentKeywords {
		for _, kw := range m.keywords {
			if strings.Contains(query, kw) {
				return m.q
			}
		}
	}
	return ""
}
