package replay

import (
	"context"
	"testing"

	"github.com/anselmlong/autocorrect/internal/platform"
	"github.com/anselmlong/autocorrect/internal/platform/simulated"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		class string
		want  platform.TargetClass
	}{
		{"WebView2", platform.TargetWebView},
		{"MozillaWindowClass", platform.TargetBrowser},
		{"Notepad", platform.TargetStandard},
		{"", platform.TargetClassUnknown},
	}
	for _, c := range cases {
		got := Classify(platform.FocusSnapshot{WindowClass: c.class})
		if got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.class, got, c.want)
		}
	}
}

// spec §8 property 7: backspaces = len(original)+len(terminator); typed
// chars = replacement+terminator.
func TestPlanReplace_Arithmetic(t *testing.T) {
	plan := PlanReplace("teh", "the", " ", platform.TargetStandard)
	wantBackspaces := len("teh") + len(" ")
	if got := Backspaces(plan); got != wantBackspaces {
		t.Errorf("Backspaces = %d, want %d", got, wantBackspaces)
	}
	wantTyped := len("the") + len(" ")
	if got := NetKeystrokes(plan); got != wantTyped {
		t.Errorf("NetKeystrokes = %d, want %d", got, wantTyped)
	}
}

func TestSend_RetriesOnceThenFails(t *testing.T) {
	sink := simulated.NewSink()
	sink.FailNext = 2
	plan := PlanReplace("teh", "the", " ", platform.TargetStandard)
	err := Send(context.Background(), sink, plan)
	if _, ok := err.(*ReplayFailed); !ok {
		t.Fatalf("Send after 2 failures = %v, want *ReplayFailed", err)
	}
}

func TestSend_SucceedsAfterOneRetry(t *testing.T) {
	sink := simulated.NewSink()
	sink.FailNext = 1
	plan := PlanReplace("teh", "the", " ", platform.TargetStandard)
	if err := Send(context.Background(), sink, plan); err != nil {
		t.Fatalf("Send = %v, want success after one retry", err)
	}
	if len(sink.Sent) != 1 {
		t.Fatalf("sink recorded %d sends, want 1", len(sink.Sent))
	}
}

func TestPlanReplace_PacingByClass(t *testing.T) {
	standard := PlanReplace("teh", "the", " ", platform.TargetStandard)
	web := PlanReplace("teh", "the", " ", platform.TargetWebView)
	if EstimatedDuration(web) <= EstimatedDuration(standard) {
		t.Errorf("expected WebView plan to take longer than Standard: web=%v standard=%v",
			EstimatedDuration(web), EstimatedDuration(standard))
	}
}
