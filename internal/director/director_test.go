package director

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scenedeck/internal/logging"
	"scenedeck/internal/state"
)

type fakeSwitcher struct {
	programScene string
	previewScene string
}

func (f *fakeSwitcher) SetCurrentProgramScene(_ context.Context, sceneName string) error {
	f.programScene = sceneName
	return nil
}

func (f *fakeSwitcher) SetCurrentPreviewScene(_ context.Context, sceneName string) error {
	f.previewScene = sceneName
	return nil
}

func completionServer(t *testing.T, reply string, capture *chatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}))
}

func testDirector(t *testing.T, server *httptest.Server, switcher *fakeSwitcher, snap state.Snapshot) *Director {
	t.Helper()
	client := NewClient(ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
	})
	return New(client, switcher, func() state.Snapshot { return snap }, logging.NewNop())
}

func TestAskExtractsSuggestionWithoutExecuting(t *testing.T) {
	var captured chatCompletionRequest
	server := completionServer(t, "The energy dipped. Cut to [Break] for a reset.", &captured)
	defer server.Close()

	switcher := &fakeSwitcher{}
	snap := state.Snapshot{
		CurrentScene: "Interview",
		Scenes:       []state.SceneRef{{Name: "Interview"}, {Name: "Break"}},
		Outputs:      state.OutputFlags{Streaming: true},
	}
	d := testDirector(t, server, switcher, snap)

	reply, err := d.Ask(context.Background(), "the talk is dragging")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Suggestion == nil || reply.Suggestion.Scene != "Break" {
		t.Fatalf("suggestion = %+v", reply.Suggestion)
	}
	if switcher.programScene != "" || switcher.previewScene != "" {
		t.Fatal("suggestion was executed without Apply")
	}

	// The prompt carries live deck context.
	if len(captured.Messages) != 2 {
		t.Fatalf("messages = %d, want system+user", len(captured.Messages))
	}
	user := captured.Messages[1].Content
	for _, want := range []string{"Status: live", "Current scene: Interview", "Break", "the talk is dragging"} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
}

func TestAskWithoutDirective(t *testing.T) {
	server := completionServer(t, "Hold the shot, pacing is fine.", nil)
	defer server.Close()

	d := testDirector(t, server, &fakeSwitcher{}, state.Snapshot{})
	reply, err := d.Ask(context.Background(), "thoughts?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Suggestion != nil {
		t.Fatalf("suggestion = %+v, want none", reply.Suggestion)
	}
}

func TestApplyRoutesByStudioMode(t *testing.T) {
	server := completionServer(t, "ok", nil)
	defer server.Close()

	direct := &fakeSwitcher{}
	d := testDirector(t, server, direct, state.Snapshot{StudioMode: false})
	if err := d.Apply(context.Background(), Suggestion{Scene: "Break"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if direct.programScene != "Break" || direct.previewScene != "" {
		t.Fatalf("direct mode routed to %q/%q", direct.programScene, direct.previewScene)
	}

	staged := &fakeSwitcher{}
	d = testDirector(t, server, staged, state.Snapshot{StudioMode: true})
	if err := d.Apply(context.Background(), Suggestion{Scene: "Break"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if staged.previewScene != "Break" || staged.programScene != "" {
		t.Fatalf("studio mode routed to %q/%q", staged.programScene, staged.previewScene)
	}
}
