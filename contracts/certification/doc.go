/*
Package certification contains implementation of the Certification Registry
contract.

The registry lets independent auditors certify versioned smart contracts and
lets anyone verify certification status and provenance. The contract owner
approves auditor applications and manages auditor status. Active auditors
issue certifications for (artifact, version) pairs, every issuance is appended
to the per-artifact history which is never rewritten. A certification can be
revoked by its auditor or by the owner, history and statistics are kept.

# Contract notifications

OwnershipTransferred notification. This notification is produced when the
owner transfers administration rights via TransferOwnership method.

	OwnershipTransferred
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160

AuditorApplied notification. This notification is produced when an account
submits an auditor application.

	AuditorApplied
	  - name: candidate
	    type: Hash160

AuditorApproved notification. This notification is produced when the owner
approves an application.

	AuditorApproved
	  - name: auditor
	    type: Hash160

AuditorStatusChanged notification. Supported states: active/inactive/
probation/suspended.

	AuditorStatusChanged
	  - name: auditor
	    type: Hash160
	  - name: status
	    type: Integer

ReputationChanged notification.

	ReputationChanged
	  - name: auditor
	    type: Hash160
	  - name: score
	    type: Integer

CertificationRequested notification. This notification is produced when a
certification is requested for an artifact version.

	CertificationRequested
	  - name: artifact
	    type: Hash160
	  - name: version
	    type: String
	  - name: requester
	    type: Hash160

RequestStatusChanged notification. Supported states: pending/in review/
certified/rejected.

	RequestStatusChanged
	  - name: artifact
	    type: Hash160
	  - name: version
	    type: String
	  - name: status
	    type: Integer

CertificationIssued notification.

	CertificationIssued
	  - name: artifact
	    type: Hash160
	  - name: version
	    type: String
	  - name: auditor
	    type: Hash160
	  - name: rating
	    type: Integer

CertificationRevoked notification. RevokedBy field contains the account which
revoked the certification.

	CertificationRevoked
	  - name: artifact
	    type: Hash160
	  - name: version
	    type: String
	  - name: revokedBy
	    type: Hash160

CertificationVerified notification. This notification is produced by
VerifyCertification method.

	CertificationVerified
	  - name: artifact
	    type: Hash160
	  - name: version
	    type: String
	  - name: certified
	    type: Boolean
*/
package certification

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'owner' -> interop.Hash160
    registry administrator
  - 'totalAuditors' -> int
    number of approved auditors
  - 'totalCertifications' -> int
    number of issued certifications
  - 'totalCertifiedContracts' -> int
    number of distinct artifacts certified at least once
  - 'p' + candidate -> std.Serialize(AuditorApplication)
    pending auditor applications
  - 'a' + auditor -> std.Serialize(Auditor)
    approved auditors
  - 'r' + artifact + version -> std.Serialize(Request)
    certification requests
  - 'c' + artifact + version -> std.Serialize(Certification)
    live certifications
  - 'n' + artifact -> int
    artifact history length
  - 'h' + artifact + index -> std.Serialize(HistoryEntry)
    artifact history entries, index starts from 1

# Counters
Statistics counters are never decremented: revocation removes a live
certification only.
*/
