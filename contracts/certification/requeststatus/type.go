package requeststatus

// Type is an enumeration for certification request states. The state is
// informational and never gates certificate issuance.
type Type int

// Various request states.
const (
	_ Type = iota

	Pending
	InReview
	Certified
	Rejected
)

// IsValid checks whether t is one of the enumerated states.
func (t Type) IsValid() bool {
	return t >= Pending && t <= Rejected
}
