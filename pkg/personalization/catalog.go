// Package personalization resolves per-user facts for status questions
// (leave balance, welfare points, education progress) and renders them into
// natural-language answers with deterministic fallbacks.
package personalization

// QDef describes one catalogued sub-intent: what the backend returns for it
// and how to phrase the answer when the LLM is unavailable.
type QDef struct {
	ID          string
	Description string
	// MetricKeys are the metrics the backend's canonical shape carries.
	MetricKeys []string
	// Fallback renders the facts without an LLM. Must only use present keys.
	Fallback func(f Facts) string
}

// Facts is re-exported for the catalog's fallback templates.
type Facts struct {
	SubIntentID string
	Period      string
	Metrics     map[string]interface{}
	Items       []map[string]interface{}
}

// catalog holds the supported personalisation Qs. Router sub-intents outside
// this set fall back to a generic rendering.
var catalog = map[string]QDef{
	"Q11": {
		ID:          "Q11",
		Description: "잔여 연차 조회",
		MetricKeys:  []string{"total_days", "used_days", "remaining_days"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "연차 현황입니다. 총 "+metric(f, "total_days")+"일 중 "+
				metric(f, "used_days")+"일을 사용해 "+metric(f, "remaining_days")+"일이 남아 있습니다.")
		},
	},
	"Q12": {
		ID:          "Q12",
		Description: "근태 기록 조회",
		MetricKeys:  []string{"work_days", "late_count", "absent_count"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "근태 현황입니다. 근무 "+metric(f, "work_days")+"일, 지각 "+
				metric(f, "late_count")+"회, 결근 "+metric(f, "absent_count")+"회입니다.")
		},
	},
	"Q13": {
		ID:          "Q13",
		Description: "초과근무 조회",
		MetricKeys:  []string{"overtime_hours", "limit_hours"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "초과근무 현황입니다. 누적 "+metric(f, "overtime_hours")+"시간이며 한도는 "+
				metric(f, "limit_hours")+"시간입니다.")
		},
	},
	"Q14": {
		ID:          "Q14",
		Description: "복지포인트 조회",
		MetricKeys:  []string{"total_points", "used_points", "remaining_points"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "복지포인트 현황입니다. 총 "+metric(f, "total_points")+"포인트 중 "+
				metric(f, "used_points")+"포인트를 사용해 "+metric(f, "remaining_points")+"포인트가 남아 있습니다.")
		},
	},
	"Q15": {
		ID:          "Q15",
		Description: "급여명세 안내",
		MetricKeys:  []string{"pay_month"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "급여명세는 인사 시스템의 급여 메뉴에서 확인하실 수 있습니다.")
		},
	},
	"Q16": {
		ID:          "Q16",
		Description: "경조금 안내",
		MetricKeys:  []string{"eligible", "amount"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "경조금 신청 현황입니다. 지급 예정 금액은 "+metric(f, "amount")+"원입니다.")
		},
	},
	"Q20": {
		ID:          "Q20",
		Description: "교육 이수 현황 조회",
		MetricKeys:  []string{"required_count", "completed_count", "pending_count"},
		Fallback: func(f Facts) string {
			return withPeriod(f, "교육 이수 현황입니다. 필수 교육 "+metric(f, "required_count")+"건 중 "+
				metric(f, "completed_count")+"건을 이수했고 "+metric(f, "pending_count")+"건이 남아 있습니다.")
		},
	},
}

// Lookup returns the catalog entry for a Q code.
func Lookup(subIntentID string) (QDef, bool) {
	q, ok := catalog[subIntentID]
	return q, ok
}
