package locale

import (
	"errors"
	"strings"
	"testing"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

func TestResolve_ExplicitWins(t *testing.T) {
	r := NewResolver(SourceBoth)

	// Explicit locale beats any detected script.
	code, err := r.Resolve("ko", "这是一个中文简报，关于市场竞争格局的完整分析说明", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code != "ko" {
		t.Errorf("expected ko, got %s", code)
	}
}

func TestResolve_ExplicitUnsupported(t *testing.T) {
	r := NewResolver(SourceBoth)
	_, err := r.Resolve("pt", "some brief", "")
	if err == nil {
		t.Fatal("expected error for unsupported locale")
	}
	if !errors.Is(err, model.ErrUnsupportedLocale) {
		t.Errorf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestResolve_AutoDetects(t *testing.T) {
	r := NewResolver(SourceBoth)
	code, err := r.Resolve("auto", "团队协作工具市场的竞争格局正在发生变化，需要系统的基准分析", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code != "zh" {
		t.Errorf("expected zh, got %s", code)
	}
}

func TestResolve_SourceModes(t *testing.T) {
	zhText := "团队协作工具市场的竞争格局正在发生变化，需要进行系统的基准分析"

	// brief mode ignores the input text.
	code, err := NewResolver(SourceBrief).Resolve("", "An English brief about project tooling", zhText)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code != "en" {
		t.Errorf("brief mode: expected en, got %s", code)
	}

	// input mode ignores the brief.
	code, err = NewResolver(SourceInput).Resolve("", "An English brief about project tooling", zhText)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code != "zh" {
		t.Errorf("input mode: expected zh, got %s", code)
	}
}

func TestResolve_InconclusiveFallsBackToEnglish(t *testing.T) {
	r := NewResolver(SourceBoth)
	code, err := r.Resolve("", "", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code != "en" {
		t.Errorf("expected en for empty input, got %s", code)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "en"},
		{"english", "Competitive benchmark for developer productivity tools in the enterprise market", "en"},
		{"chinese", "协作办公软件的市场竞争分析报告，覆盖主要厂商的产品能力与定价策略", "zh"},
		{"japanese", "チームコラボレーションツールの競合分析レポートです。主要な製品を比較します", "ja"},
		{"korean", "협업 도구 시장의 경쟁 분석 보고서입니다. 주요 제품을 비교합니다", "ko"},
		{"spanish", "Análisis competitivo de herramientas de colaboración para los equipos que trabajan con la nube", "es"},
		{"french", "Analyse concurrentielle des outils de collaboration pour les équipes et des entreprises", "fr"},
		{"german", "Wettbewerbsanalyse für die Kollaborationstools und der Markt mit einem Fokus auf Teams", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	text := "Mixed 内容 with some 中文 and English words in roughly equal proportion here"
	first := Detect(text)
	for i := 0; i < 5; i++ {
		if got := Detect(text); got != first {
			t.Fatalf("Detect not deterministic: %s then %s", first, got)
		}
	}
}

func TestLabels_FallbackChain(t *testing.T) {
	ja := For("ja")

	// Known key resolves in-locale.
	if h := ja.Header("rank"); h == "" || h == "rank" {
		t.Errorf("expected localized rank header, got %q", h)
	}

	// Unknown key falls through to the literal key.
	if h := ja.Header("no_such_column"); h != "no_such_column" {
		t.Errorf("expected literal key fallback, got %q", h)
	}

	// Unknown enum token falls back to the canonical token.
	if v := ja.Enum("threat", "apocalyptic"); v != "apocalyptic" {
		t.Errorf("expected canonical fallback, got %q", v)
	}
}

func TestFor_UnknownCode(t *testing.T) {
	l := For("xx")
	if l.Code != "en" {
		t.Errorf("expected en fallback for unknown code, got %s", l.Code)
	}
}

func TestAllLocales_Complete(t *testing.T) {
	en := For("en")
	for _, l := range All() {
		if len(l.SummaryTemplates) != 3 {
			t.Errorf("%s: expected 3 summary templates, got %d", l.Code, len(l.SummaryTemplates))
		}
		for _, sheet := range model.SheetOrder {
			if l.SheetName(sheet) == "" {
				t.Errorf("%s: missing sheet name for %s", l.Code, sheet)
			}
		}
		for key := range en.Headers {
			if _, ok := l.Headers[key]; !ok {
				t.Errorf("%s: missing header %s", l.Code, key)
			}
		}
		for key := range en.Warnings {
			if _, ok := l.Warnings[key]; !ok {
				t.Errorf("%s: missing warning template %s", l.Code, key)
			}
		}
		for kind, tokens := range en.Enums {
			lm, ok := l.Enums[kind]
			if !ok {
				t.Errorf("%s: missing enum table %s", l.Code, kind)
				continue
			}
			for token := range tokens {
				if _, ok := lm[token]; !ok {
					t.Errorf("%s: missing enum label %s/%s", l.Code, kind, token)
				}
			}
		}
	}
}

func TestWarningTemplates_PlaceholderParity(t *testing.T) {
	en := For("en")
	for _, l := range All() {
		for key, tmpl := range l.Warnings {
			want := strings.Count(en.Warnings[key], "%")
			if got := strings.Count(tmpl, "%"); got != want {
				t.Errorf("%s/%s: %d placeholders, en has %d", l.Code, key, got, want)
			}
		}
	}
}
