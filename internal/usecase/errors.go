package usecase

import (
	"errors"
	"fmt"
)

// ErrorClass groups workflow errors by how callers should react to them.
type ErrorClass string

const (
	ClassValidation     ErrorClass = "validation"     // bad input; nothing was touched
	ClassNotFound       ErrorClass = "not_found"      // a referenced record does not exist
	ClassBusinessRule   ErrorClass = "business_rule"  // an expected, user-facing rejection
	ClassConflict       ErrorClass = "conflict"       // a concurrent writer won; reload and retry
	ClassInfrastructure ErrorClass = "infrastructure" // the store failed; logged with full context
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidAmount = errors.New("invalid amount")

	ErrNitNotFound   = errors.New("nit not found")
	ErrWorkNotFound  = errors.New("work not found")
	ErrBidNotFound   = errors.New("bid not found")
	ErrAwardNotFound = errors.New("award not found")

	ErrDuplicateMemo                = errors.New("memo number already used")
	ErrDuplicateSerial              = errors.New("serial number already used in nit")
	ErrNitHasWorks                  = errors.New("nit has works")
	ErrNitCancelled                 = errors.New("nit cancelled")
	ErrIllegalTransition            = errors.New("illegal transition")
	ErrAlreadyTerminal              = errors.New("work already in a terminal tender status")
	ErrBiddingClosed                = errors.New("bidding closed")
	ErrDuplicateBidder              = errors.New("agency already bid on this work")
	ErrEvaluationClosed             = errors.New("technical evaluation not open")
	ErrEvaluationIncomplete         = errors.New("technical evaluation incomplete")
	ErrNoQualifiedBidders           = errors.New("no qualified bidders")
	ErrInsufficientQualifiedBidders = errors.New("insufficient qualified bidders")
	ErrCannotDeleteEvaluatedBid     = errors.New("cannot delete evaluated bid")
	ErrFinancialBidClosed           = errors.New("financial bid not open")
	ErrNotQualified                 = errors.New("bid not qualified")
	ErrAlreadyAwarded               = errors.New("work already awarded")
	ErrPrematureAward               = errors.New("premature award")
	ErrAgreementAlreadyExists       = errors.New("agreement already exists")
	ErrFinalBillNotAllowed          = errors.New("final bill not allowed before award")
	ErrFinalBillMissing             = errors.New("final bill missing")
	ErrWorkNotAwarded               = errors.New("work not awarded")
	ErrCompletionPending            = errors.New("work completion date not set")
	ErrNoPayments                   = errors.New("no payments recorded")

	ErrConcurrentModification = errors.New("concurrent modification")
	ErrInfrastructure         = errors.New("infrastructure failure")
)

type errorSpec struct {
	class ErrorClass
	code  string
}

var errorCatalog = map[error]errorSpec{
	ErrInvalidInput:  {ClassValidation, "INVALID_INPUT"},
	ErrInvalidStatus: {ClassValidation, "INVALID_STATUS"},
	ErrInvalidAmount: {ClassValidation, "INVALID_AMOUNT"},

	ErrNitNotFound:   {ClassNotFound, "NIT_NOT_FOUND"},
	ErrWorkNotFound:  {ClassNotFound, "WORK_NOT_FOUND"},
	ErrBidNotFound:   {ClassNotFound, "BID_NOT_FOUND"},
	ErrAwardNotFound: {ClassNotFound, "AWARD_NOT_FOUND"},

	ErrDuplicateMemo:                {ClassBusinessRule, "DUPLICATE_MEMO"},
	ErrDuplicateSerial:              {ClassBusinessRule, "DUPLICATE_SERIAL"},
	ErrNitHasWorks:                  {ClassBusinessRule, "NIT_HAS_WORKS"},
	ErrNitCancelled:                 {ClassBusinessRule, "NIT_CANCELLED"},
	ErrIllegalTransition:            {ClassBusinessRule, "ILLEGAL_TRANSITION"},
	ErrAlreadyTerminal:              {ClassBusinessRule, "ALREADY_TERMINAL"},
	ErrBiddingClosed:                {ClassBusinessRule, "BIDDING_CLOSED"},
	ErrDuplicateBidder:              {ClassBusinessRule, "DUPLICATE_BIDDER"},
	ErrEvaluationClosed:             {ClassBusinessRule, "EVALUATION_CLOSED"},
	ErrEvaluationIncomplete:         {ClassBusinessRule, "EVALUATION_INCOMPLETE"},
	ErrNoQualifiedBidders:           {ClassBusinessRule, "NO_QUALIFIED_BIDDERS"},
	ErrInsufficientQualifiedBidders: {ClassBusinessRule, "INSUFFICIENT_QUALIFIED_BIDDERS"},
	ErrCannotDeleteEvaluatedBid:     {ClassBusinessRule, "CANNOT_DELETE_EVALUATED_BID"},
	ErrFinancialBidClosed:           {ClassBusinessRule, "FINANCIAL_BID_CLOSED"},
	ErrNotQualified:                 {ClassBusinessRule, "NOT_QUALIFIED"},
	ErrAlreadyAwarded:               {ClassBusinessRule, "ALREADY_AWARDED"},
	ErrPrematureAward:               {ClassBusinessRule, "PREMATURE_AWARD"},
	ErrAgreementAlreadyExists:       {ClassBusinessRule, "AGREEMENT_ALREADY_EXISTS"},
	ErrFinalBillNotAllowed:          {ClassBusinessRule, "FINAL_BILL_NOT_ALLOWED"},
	ErrFinalBillMissing:             {ClassBusinessRule, "FINAL_BILL_MISSING"},
	ErrWorkNotAwarded:               {ClassBusinessRule, "WORK_NOT_AWARDED"},
	ErrCompletionPending:            {ClassBusinessRule, "COMPLETION_PENDING"},
	ErrNoPayments:                   {ClassBusinessRule, "NO_PAYMENTS"},

	ErrConcurrentModification: {ClassConflict, "CONCURRENT_MODIFICATION"},
	ErrInfrastructure:         {ClassInfrastructure, "INFRASTRUCTURE_ERROR"},
}

// WorkflowError is the typed failure every workflow operation returns. Err is
// one of the sentinels above, so errors.Is works against them; Detail carries
// the user-facing reason (e.g. "2 of 3 required qualified bidders").
type WorkflowError struct {
	Class  ErrorClass
	Code   string
	Detail string
	Err    error
	Cause  error
}

func (e *WorkflowError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *WorkflowError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newError(sentinel error, detail string, cause error) *WorkflowError {
	spec, ok := errorCatalog[sentinel]
	if !ok {
		spec = errorSpec{ClassInfrastructure, "INTERNAL_ERROR"}
	}
	return &WorkflowError{Class: spec.class, Code: spec.code, Detail: detail, Err: sentinel, Cause: cause}
}

func rejectf(sentinel error, format string, args ...any) error {
	return newError(sentinel, fmt.Sprintf(format, args...), nil)
}

func infraError(op string, cause error) error {
	return newError(ErrInfrastructure, op, cause)
}

// ClassOf reports the class of err; errors that did not come from the
// workflow are treated as infrastructure failures.
func ClassOf(err error) ErrorClass {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Class
	}
	return ClassInfrastructure
}

// DetailOf returns the user-facing detail of a workflow error, if any.
func DetailOf(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Detail
	}
	return ""
}
