package auditorstatus

// Type is an enumeration for auditor states.
type Type int

// Various auditor states.
const (
	_ Type = iota

	// Active auditors are allowed to issue certifications.
	Active

	// Inactive auditors keep their record but can't issue certifications.
	Inactive

	// Probation is set by the platform owner while an auditor is under
	// review.
	Probation

	// Suspended auditors are barred from issuing certifications.
	Suspended
)

// IsValid checks whether t is one of the enumerated states.
func (t Type) IsValid() bool {
	return t >= Active && t <= Suspended
}
