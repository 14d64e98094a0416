package director

import (
	"context"
	"fmt"
	"log/slog"

	"scenedeck/internal/logging"
	"scenedeck/internal/state"
)

// Switcher is the slice of the command catalog the director acts through.
type Switcher interface {
	SetCurrentProgramScene(ctx context.Context, sceneName string) error
	SetCurrentPreviewScene(ctx context.Context, sceneName string) error
}

// SnapshotProvider yields the current deck state for prompt context and
// mode gating.
type SnapshotProvider func() state.Snapshot

// Suggestion is an actionable scene directive extracted from assistant
// output. It is presented to the operator and only executed through Apply.
type Suggestion struct {
	Scene string
}

// Reply is the assistant's answer to one Ask.
type Reply struct {
	Text       string
	Suggestion *Suggestion
}

// Director binds the chat client, the command catalog, and the snapshot.
type Director struct {
	client   *Client
	switcher Switcher
	snapshot SnapshotProvider
	logger   *slog.Logger
}

// New constructs a director.
func New(client *Client, switcher Switcher, snapshot SnapshotProvider, logger *slog.Logger) *Director {
	return &Director{
		client:   client,
		switcher: switcher,
		snapshot: snapshot,
		logger:   logging.NewComponentLogger(logger, "director"),
	}
}

// Ask sends the operator's message with live deck context and returns the
// assistant's reply, including a scene suggestion when the reply carries a
// bracketed directive.
func (d *Director) Ask(ctx context.Context, message string) (Reply, error) {
	snap := d.snapshot()
	text, err := d.client.Complete(ctx, systemPrompt, buildUserPrompt(snap, message))
	if err != nil {
		return Reply{}, fmt.Errorf("ask director: %w", err)
	}

	reply := Reply{Text: text}
	if scene, ok := ExtractDirective(text); ok {
		reply.Suggestion = &Suggestion{Scene: scene}
		d.logger.Info("directive extracted",
			logging.String("scene", scene),
			logging.String(logging.FieldEventType, "directive_extracted"),
		)
	}
	return reply, nil
}

// Apply executes a suggestion. In studio mode the switch stages the scene in
// preview; otherwise it goes straight to program. The remote rejects unknown
// scene names and that error propagates to the caller.
func (d *Director) Apply(ctx context.Context, suggestion Suggestion) error {
	if d.snapshot().StudioMode {
		return d.switcher.SetCurrentPreviewScene(ctx, suggestion.Scene)
	}
	return d.switcher.SetCurrentProgramScene(ctx, suggestion.Scene)
}
