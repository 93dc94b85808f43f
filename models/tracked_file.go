package models

// FileCategory is the closed set of file kinds the scanner knows how to update.
type FileCategory string

const (
	CategoryKustomize  FileCategory = "kustomize"
	CategoryChart      FileCategory = "chart"
	CategoryDeployment FileCategory = "deployment"
)

// TrackedFile is an immutable snapshot of one repository file at scan time.
// The SHA is the blob identity the file had when it was read and is later used
// as the precondition when committing a mutated version back.
type TrackedFile struct {
	Path     string
	SHA      string
	Content  []byte
	Category FileCategory
}
