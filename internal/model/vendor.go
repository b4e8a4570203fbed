package model

// Vendor verification statuses, set by the photo-approval workflow. That
// workflow is an external collaborator; the pipeline only consumes the
// resulting status.
const (
	VendorApproved     = "approved"
	VendorPendingPhoto = "pending_photo"
	VendorNeedsPhoto   = "needs_photo"
	VendorRejected     = "rejected"
)

// VendorProfile is the vendor-side record for a truck.
type VendorProfile struct {
	VendorKey          string   `json:"vendorKey"`
	TruckName          string   `json:"truckName"`
	CuisineType        string   `json:"cuisineType"`
	Menu               []string `json:"menu,omitempty"`
	VerificationStatus string   `json:"verificationStatus,omitempty"`
}

// Trusted reports whether the vendor has passed photo verification.
func (v VendorProfile) Trusted() bool {
	return v.VerificationStatus == VendorApproved
}
