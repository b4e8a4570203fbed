package model

// Verification flag axes. Mode gates whether unverified vendors may use
// the reporting surfaces at all; Method gates which paths may promote.
const (
	ModeBlocking    = "blocking"
	ModeNonBlocking = "non-blocking"

	MethodPhoto     = "photo"
	MethodCommunity = "community"
	MethodBoth      = "both"
)

// VerificationFlag is the process-wide singleton policy document.
type VerificationFlag struct {
	Mode   string `json:"mode"`
	Method string `json:"method"`
}

// DefaultVerificationFlag is what the pipeline assumes when the flag
// document is missing or unreadable. Blocking/both is the strict default:
// failing closed beats failing open for a trust gate.
func DefaultVerificationFlag() VerificationFlag {
	return VerificationFlag{Mode: ModeBlocking, Method: MethodBoth}
}

// AllowsCommunityPromotion reports whether quorum alone may promote a
// sighting cluster under this flag.
func (f VerificationFlag) AllowsCommunityPromotion() bool {
	return f.Method == MethodCommunity || f.Method == MethodBoth
}

// ValidMode reports whether s is a known mode value.
func ValidMode(s string) bool {
	return s == ModeBlocking || s == ModeNonBlocking
}

// ValidMethod reports whether s is a known method value.
func ValidMethod(s string) bool {
	return s == MethodPhoto || s == MethodCommunity || s == MethodBoth
}

// PolicyUpdateRequest is the API request body for the admin policy toggle.
// Either axis may be omitted to leave it unchanged.
type PolicyUpdateRequest struct {
	Mode   *string `json:"mode,omitempty"`
	Method *string `json:"method,omitempty"`
}
