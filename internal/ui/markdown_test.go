package ui

import (
	"strings"
	"testing"
)

const nextSteps = "## Next steps\n\n```sh\ncd my-app\nnpm run dev\n```\n"

func TestRenderMarkdown_Headless(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	theme := &Theme{Mode: ModeDark}

	if got := RenderMarkdown(theme, hm, nextSteps); got != nextSteps {
		t.Errorf("RenderMarkdown() = %q, want source unchanged", got)
	}
}

func TestRenderMarkdown_NoColor(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	if got := RenderMarkdown(testTheme(), hm, nextSteps); got != nextSteps {
		t.Errorf("RenderMarkdown() = %q, want source unchanged", got)
	}
}

func TestRenderMarkdown_Terminal(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	theme := &Theme{Mode: ModeDark}

	got := RenderMarkdown(theme, hm, nextSteps)
	for _, want := range []string{"Next", "my-app", "dev"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "```") {
		t.Errorf("rendered output still contains fences:\n%s", got)
	}
}
