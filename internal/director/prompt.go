package director

import (
	"fmt"
	"strings"

	"scenedeck/internal/state"
)

const systemPrompt = `You are the AI assistant integrated into a live production control deck.
Reply briefly, in a professional broadcast-director style.
If you recommend a scene switch, the reply must contain the scene name in square brackets, e.g. [Scene Name].`

// buildUserPrompt embeds the deck's live context around the operator's
// message so the model can reason about the production state.
func buildUserPrompt(snap state.Snapshot, message string) string {
	status := "idle"
	if snap.Outputs.Streaming {
		status = "live"
	}
	mode := "direct"
	if snap.StudioMode {
		mode = "studio (switches stage to preview)"
	}
	names := make([]string, 0, len(snap.Scenes))
	for _, scene := range snap.Scenes {
		names = append(names, scene.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Mode: %s\n", mode)
	fmt.Fprintf(&b, "Current scene: %s\n", snap.CurrentScene)
	fmt.Fprintf(&b, "Scene pool: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Hardware: CPU %.1f%% / %.0f FPS\n", snap.Stats.CPUPercent, snap.Stats.FPS)
	fmt.Fprintf(&b, "\nOperator: %s\n", message)
	return b.String()
}
