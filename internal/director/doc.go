// Package director implements the conversational assistant that watches the
// deck and proposes scene switches.
//
// Ask sends the operator's message, together with the current mode, scene
// catalog, and hardware stats, to a chat completion service and scans the
// reply for a bracketed scene directive. Directives are suggestions bound to
// an explicit Apply call, never auto-executed, and no scene-name validation
// happens here: the remote rejects unknown names and that rejection is
// surfaced as a chat-level failure.
package director
