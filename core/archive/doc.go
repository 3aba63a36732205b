// Package archive provides optional report archival to object storage.
//
// The reconciliation core owns no persisted state; archiving finished
// reports is a collaborator concern for scheduled runs that want a paper
// trail. The archiver serializes a report to JSON and uploads it under
// a date-partitioned key, e.g.:
//
//	reconciliation/2025-06-01/run-6f1c….json
//
// The Client interface wraps the minio operations the archiver needs so
// tests can run against mocks.
package archive
