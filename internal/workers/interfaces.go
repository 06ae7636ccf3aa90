// Package workers runs the jobs of a sync one after another.
// It defines the Worker interface and a Workers aggregate that runs several
// workers in a unified way.
package workers

import "context"

// Worker is one unit of work of a run, such as the sync of one resource kind.
//
// Run blocks for the duration of the work and returns its failure, if any.
//
// Example implementation:
//
//	type contactsJob struct{}
//
//	func (j *contactsJob) Name() string { return "contacts" }
//
//	func (j *contactsJob) Run(ctx context.Context) error {
//	    // fetch and write contacts
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
