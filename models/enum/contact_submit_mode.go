package enum

// ContactSubmitMode selects how contact-form submissions are handled. The two
// historical behaviors (forwarding the post untouched vs. intercepting it and
// acknowledging locally) drifted apart in production, so the choice is
// configuration rather than code.
type ContactSubmitMode string

const (
	ContactSubmitModeSilent    ContactSubmitMode = "silent"
	ContactSubmitModeIntercept ContactSubmitMode = "intercept"
)
