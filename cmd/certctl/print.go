package main

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func formatAccount(h util.Uint160) string {
	return address.Uint160ToString(h)
}

// formatTime formats chain timestamp in milliseconds, zero is printed as
// "never".
func formatTime(ms *big.Int) string {
	if ms == nil || ms.Sign() == 0 {
		return "never"
	}
	return time.UnixMilli(ms.Int64()).UTC().Format(time.RFC3339)
}

// formatVersion prints numeric contract version as major.minor.patch.
func formatVersion(v *big.Int) string {
	n := v.Int64()
	return fmt.Sprintf("%d.%d.%d", n/1_000_000, n/1_000%1_000, n%1_000)
}

func printAuditor(w io.Writer, a *certification.CertificationAuditor) {
	fmt.Fprintf(w, "Name:           %s\n", a.Name)
	fmt.Fprintf(w, "Company:        %s\n", a.Company)
	fmt.Fprintf(w, "Website:        %s\n", a.Website)
	fmt.Fprintf(w, "Status:         %s\n", certification.AuditorStatusString(a.Status))
	fmt.Fprintf(w, "Reputation:     %s/%d\n", a.ReputationScore, certification.MaxReputation)
	fmt.Fprintf(w, "Certifications: %s\n", a.CertificationCount)
	fmt.Fprintf(w, "Approved:       %s\n", formatTime(a.ApprovedAt))
}

func printApplication(w io.Writer, a *certification.CertificationAuditorApplication) {
	fmt.Fprintf(w, "Pending application\n")
	fmt.Fprintf(w, "Name:        %s\n", a.Name)
	fmt.Fprintf(w, "Company:     %s\n", a.Company)
	fmt.Fprintf(w, "Website:     %s\n", a.Website)
	fmt.Fprintf(w, "Credentials: %s\n", a.Credentials)
	fmt.Fprintf(w, "Submitted:   %s\n", formatTime(a.SubmittedAt))
}

func printCertification(w io.Writer, c *certification.CertificationCertification) {
	fmt.Fprintf(w, "Auditor:     %s\n", formatAccount(c.Auditor))
	fmt.Fprintf(w, "Rating:      %s/%d\n", c.Rating, certification.MaxRating)
	fmt.Fprintf(w, "Report:      %s\n", c.Report)
	fmt.Fprintf(w, "Issued:      %s\n", formatTime(c.IssuedAt))
	fmt.Fprintf(w, "Valid until: %s\n", formatTime(c.ValidUntil))
	fmt.Fprintf(w, "Notes:       %s\n", c.Notes)
}

func printRequest(w io.Writer, r *certification.CertificationRequest) {
	fmt.Fprintf(w, "Requester:   %s\n", formatAccount(r.Requester))
	fmt.Fprintf(w, "Status:      %s\n", certification.RequestStatusString(r.Status))
	fmt.Fprintf(w, "Description: %s\n", r.Description)
	fmt.Fprintf(w, "Repository:  %s\n", r.Repository)
	fmt.Fprintf(w, "Requested:   %s\n", formatTime(r.RequestedAt))
}

func printVerificationInfo(w io.Writer, v *certification.CertificationVerificationInfo) {
	fmt.Fprintf(w, "Certified:   %t\n", v.Certified)
	if !v.Certified {
		return
	}
	fmt.Fprintf(w, "Auditor:     %s (%s, %s)\n", formatAccount(v.Auditor), v.AuditorName, v.AuditorCompany)
	fmt.Fprintf(w, "Reputation:  %s/%d\n", v.ReputationScore, certification.MaxReputation)
	fmt.Fprintf(w, "Rating:      %s/%d\n", v.Rating, certification.MaxRating)
	fmt.Fprintf(w, "Issued:      %s\n", formatTime(v.IssuedAt))
	fmt.Fprintf(w, "Valid until: %s\n", formatTime(v.ValidUntil))
}

func printHistoryEntry(w io.Writer, i int64, e *certification.CertificationHistoryEntry) {
	fmt.Fprintf(w, "#%d\t%s\t%s\trating=%s\t%s\n", i, e.Version, formatAccount(e.Auditor), e.Rating, formatTime(e.Time))
}

func printStatistics(w io.Writer, s *certification.CertificationStatistics) {
	fmt.Fprintf(w, "Auditors:            %s\n", s.TotalAuditors)
	fmt.Fprintf(w, "Certifications:      %s\n", s.TotalCertifications)
	fmt.Fprintf(w, "Certified contracts: %s\n", s.TotalCertifiedContracts)
}
