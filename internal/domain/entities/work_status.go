package entities

import (
	"fmt"
	"strings"
)

// WorkStatus is the post-award execution status of a Work.
type WorkStatus string

const (
	WorkStatusYetToStart WorkStatus = "yettostart"
	WorkStatusInProgress WorkStatus = "workinprogress"
	WorkStatusCompleted  WorkStatus = "workcompleted"
	WorkStatusBillPaid   WorkStatus = "billpaid"
)

var workForward = map[WorkStatus]WorkStatus{
	WorkStatusYetToStart: WorkStatusInProgress,
	WorkStatusInProgress: WorkStatusCompleted,
	WorkStatusCompleted:  WorkStatusBillPaid,
}

var workStatuses = []WorkStatus{
	WorkStatusYetToStart,
	WorkStatusInProgress,
	WorkStatusCompleted,
	WorkStatusBillPaid,
}

func ParseWorkStatus(raw string) (WorkStatus, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(v)
	for _, s := range workStatuses {
		if v == string(s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown work status %q", raw)
}

func (s WorkStatus) Valid() bool {
	for _, v := range workStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo allows exactly one step forward; the chain never regresses.
func (s WorkStatus) CanTransitionTo(target WorkStatus) bool {
	next, ok := workForward[s]
	return ok && next == target
}
