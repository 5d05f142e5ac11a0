package pipeline

import "errors"

var (
	// ErrImporterMissing indicates the scene importer capability is absent.
	ErrImporterMissing = errors.New("scene importer capability missing")

	// ErrMoveFailed indicates a source file could not be relocated to its
	// terminal store.
	ErrMoveFailed = errors.New("failed to move source file")
)

// Failure reasons recorded on jobs; the log and history store carry these.
const (
	reasonImporterMissing = "scene importer capability missing"
	reasonImportFailed    = "import failed"
	reasonNoSkeleton      = "no armature"
	reasonNoMeshes        = "no meshes"
	reasonExportFailed    = "conversion-only export failed"
	reasonAllExportFailed = "rigged and conversion-only export failed"
)
