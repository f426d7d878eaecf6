package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning     JobStatus = "RUNNING"    // in progress
	JobStatusOCROK       JobStatus = "OCR_OK"     // stage 1 completed (text extracted)
	JobStatusExtractedOK JobStatus = "EXTRACT_OK" // stage 2 completed (notice assembled)
	JobStatusFailed      JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in extract_job.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusOCROK),
	string(JobStatusExtractedOK),
	string(JobStatusFailed),
}
