package guard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saramhq/aegis/pkg/llm"
	"github.com/saramhq/aegis/pkg/models"
)

type fakeCompleter struct {
	text  string
	err   error
	calls int
	temp  *float64
}

func (f *fakeCompleter) Complete(_ context.Context, _ []models.Message, opts llm.Options) (*llm.Completion, error) {
	f.calls++
	f.temp = opts.Temperature
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Text: f.text}, nil
}

func promptMessages() []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: "연차 규정?"}}
}

func TestCheck_KoreanAnswerPassesUntouched(t *testing.T) {
	completer := &fakeCompleter{}
	result := New(completer).Check(context.Background(), "연차는 1년 근속 시 15일 발생합니다.", false, promptMessages())

	assert.Equal(t, "연차는 1년 근속 시 15일 발생합니다.", result.Text)
	assert.Empty(t, result.ErrorCode)
	assert.False(t, result.SoftGuardrail)
	assert.Equal(t, 0, completer.calls)
}

func TestCheck_SoftGuardrailPrefix(t *testing.T) {
	result := New(nil).Check(context.Background(), "일반적으로 연차는 이월이 제한됩니다.", true, promptMessages())

	assert.True(t, result.SoftGuardrail)
	assert.True(t, strings.HasPrefix(result.Text, "⚠️"))
	assert.Contains(t, result.Text, "일반적으로 연차는 이월이 제한됩니다.")
}

func TestCheck_LanguageRetrySucceeds(t *testing.T) {
	completer := &fakeCompleter{text: "연차는 일 년에 십오 일 부여됩니다."}
	result := New(completer).Check(context.Background(),
		"Annual leave accrues at fifteen days per year of service.", false, promptMessages())

	assert.True(t, result.Retried)
	assert.Empty(t, result.ErrorCode)
	assert.Equal(t, "연차는 일 년에 십오 일 부여됩니다.", result.Text)
	require.NotNil(t, completer.temp)
	assert.Equal(t, 0.1, *completer.temp)
}

func TestCheck_LanguageRetryStillEnglish(t *testing.T) {
	completer := &fakeCompleter{text: "Still answering in English, sorry."}
	original := "Annual leave accrues at fifteen days per year."
	result := New(completer).Check(context.Background(), original, false, promptMessages())

	assert.True(t, result.Retried)
	assert.Equal(t, ErrorCodeLanguage, result.ErrorCode)
	// Keep the first answer rather than silently swapping in another bad one.
	assert.Equal(t, original, result.Text)
}

func TestCheck_RetryTransportFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream down")}
	result := New(completer).Check(context.Background(), "English only answer here.", false, promptMessages())

	assert.Equal(t, ErrorCodeLanguage, result.ErrorCode)
	assert.False(t, result.Retried)
}

func TestCheck_NoCompleterEmitsErrorCode(t *testing.T) {
	result := New(nil).Check(context.Background(), "English only answer here.", false, promptMessages())
	assert.Equal(t, ErrorCodeLanguage, result.ErrorCode)
}

func TestCheck_SoftGuardrailAppliesAfterLanguageCheck(t *testing.T) {
	completer := &fakeCompleter{text: "일반적인 안내입니다."}
	result := New(completer).Check(context.Background(), "A general answer in English.", true, promptMessages())

	assert.True(t, result.SoftGuardrail)
	assert.True(t, strings.HasPrefix(result.Text, "⚠️"))
	assert.Contains(t, result.Text, "일반적인 안내입니다.")
}

func TestKoreanRatio(t *testing.T) {
	assert.Equal(t, 1.0, koreanRatio("15일 2024년"))
	assert.Equal(t, 1.0, koreanRatio(""))
	assert.Greater(t, koreanRatio("연차 leave 기준"), 0.3)
	assert.Less(t, koreanRatio("mostly english with 한 단어"), 0.3)
}
