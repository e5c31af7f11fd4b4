package entities

import "testing"

func TestTenderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to TenderStatus
		want     bool
	}{
		{TenderStatusToBeOpened, TenderStatusTechnicalBidOpening, true},
		{TenderStatusTechnicalBidOpening, TenderStatusTechnicalEvaluation, true},
		{TenderStatusTechnicalEvaluation, TenderStatusFinancialBidOpening, true},
		{TenderStatusFinancialBidOpening, TenderStatusFinancialEvaluation, true},
		{TenderStatusFinancialEvaluation, TenderStatusAOC, true},
		{TenderStatusToBeOpened, TenderStatusTechnicalEvaluation, false},
		{TenderStatusTechnicalEvaluation, TenderStatusTechnicalBidOpening, false},
		{TenderStatusTechnicalEvaluation, TenderStatusTechnicalEvaluation, false},
		{TenderStatusFinancialBidOpening, TenderStatusCancelled, true},
		{TenderStatusRetender, TenderStatusCancelled, true},
		{TenderStatusTechnicalBidOpening, TenderStatusRetender, true},
		{TenderStatusAOC, TenderStatusCancelled, false},
		{TenderStatusCancelled, TenderStatusRetender, false},
		{TenderStatusCancelled, TenderStatusToBeOpened, false},
		{TenderStatus("Bogus"), TenderStatusTechnicalBidOpening, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Fatalf("%s -> %s: expected %v, got %v", c.from, c.to, c.want, got)
		}
	}
}

func TestParseTenderStatus(t *testing.T) {
	s, err := ParseTenderStatus(" technicalevaluation ")
	if err != nil || s != TenderStatusTechnicalEvaluation {
		t.Fatalf("expected TechnicalEvaluation, got %q %v", s, err)
	}
	s, err = ParseTenderStatus("Awarded")
	if err != nil || s != TenderStatusAOC {
		t.Fatalf("expected AOC alias, got %q %v", s, err)
	}
	if _, err := ParseTenderStatus("opened"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestTenderStatus_TerminalAndReopen(t *testing.T) {
	if !TenderStatusAOC.Terminal() || !TenderStatusCancelled.Terminal() {
		t.Fatalf("AOC and Cancelled must be terminal")
	}
	if TenderStatusRetender.Terminal() {
		t.Fatalf("Retender is not terminal")
	}
	if !TenderStatusRetender.CanReopen() || !TenderStatusCancelled.CanReopen() || TenderStatusAOC.CanReopen() {
		t.Fatalf("unexpected reopen table")
	}
	if next, ok := TenderStatusFinancialEvaluation.Next(); !ok || next != TenderStatusAOC {
		t.Fatalf("expected AOC after FinancialEvaluation, got %q", next)
	}
	if _, ok := TenderStatusAOC.Next(); ok {
		t.Fatalf("AOC has no successor")
	}
}

func TestWorkStatus(t *testing.T) {
	s, err := ParseWorkStatus("Work In-Progress")
	if err != nil || s != WorkStatusInProgress {
		t.Fatalf("expected workinprogress, got %q %v", s, err)
	}
	if !WorkStatusCompleted.CanTransitionTo(WorkStatusBillPaid) {
		t.Fatalf("completed -> billpaid must be allowed")
	}
	if WorkStatusYetToStart.CanTransitionTo(WorkStatusCompleted) {
		t.Fatalf("skipping a step must be rejected")
	}
	if WorkStatusBillPaid.CanTransitionTo(WorkStatusInProgress) {
		t.Fatalf("the chain never regresses")
	}
}
