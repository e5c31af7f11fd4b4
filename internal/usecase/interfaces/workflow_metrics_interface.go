package interfaces

//go:generate mockgen -source=workflow_metrics_interface.go -destination=mocks/mock_workflow_metrics_interface.go -package=mock_interfaces

// IWorkflowMetrics records the outcome of every workflow operation.
// outcome is "success" or the error class of the rejection.
type IWorkflowMetrics interface {
	ObserveOutcome(action, outcome string)
}
