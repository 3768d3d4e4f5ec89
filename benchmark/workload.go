package benchmark

import (
	"fmt"

	"github.com/qbench/pauli-bench/pauli"
)

// Workload defines what runs inside the timed region of a trial.
type Workload interface {
	// Name returns the human-readable name of this workload
	Name() string

	// Run processes one label batch. The entire call is timed.
	Run(labels []string) error

	// GetDescription returns a detailed description of the workload
	GetDescription() string
}

// WorkloadType represents available workload types
type WorkloadType string

const (
	WorkloadSimplify  WorkloadType = "simplify"
	WorkloadConstruct WorkloadType = "construct"
)

// CreateWorkload creates a workload instance based on the type. An empty
// type selects the simplify workload, matching the reference measurement.
func CreateWorkload(t WorkloadType) (Workload, error) {
	switch t {
	case WorkloadConstruct:
		return constructWorkload{}, nil
	case WorkloadSimplify, "":
		return simplifyWorkload{}, nil
	default:
		return nil, fmt.Errorf("unknown workload type %q", t)
	}
}

// simplifyWorkload builds a SparsePauliOp from the batch and canonicalizes
// it, the operation the harness exists to measure.
type simplifyWorkload struct{}

func (simplifyWorkload) Name() string {
	return "Simplify"
}

func (simplifyWorkload) GetDescription() string {
	return "Construct a sparse Pauli operator from the label batch, then combine duplicate terms"
}

func (simplifyWorkload) Run(labels []string) error {
	op, err := pauli.FromLabels(labels)
	if err != nil {
		return err
	}
	op.Simplify()
	return nil
}

// constructWorkload stops after construction, isolating label parsing cost
// from term combination.
type constructWorkload struct{}

func (constructWorkload) Name() string {
	return "Construct"
}

func (constructWorkload) GetDescription() string {
	return "Construct a sparse Pauli operator from the label batch without simplifying"
}

func (constructWorkload) Run(labels []string) error {
	_, err := pauli.FromLabels(labels)
	return err
}
