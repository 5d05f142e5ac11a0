package host

// Registry is the capability-query surface. Lookups return (capability, ok);
// a missing capability is not an error, callers branch to fallbacks.
type Registry struct {
	importer  SceneImporter
	rigTool   RigTool
	exporters map[Format]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{exporters: make(map[Format]Exporter)}
}

// RegisterImporter installs the scene importer capability.
func (r *Registry) RegisterImporter(imp SceneImporter) {
	r.importer = imp
}

// RegisterRigTool installs the auto-rig capability.
func (r *Registry) RegisterRigTool(tool RigTool) {
	r.rigTool = tool
}

// RegisterExporter installs an exporter for the given format.
func (r *Registry) RegisterExporter(f Format, e Exporter) {
	r.exporters[f] = e
}

// Importer returns the scene importer, if present.
func (r *Registry) Importer() (SceneImporter, bool) {
	return r.importer, r.importer != nil
}

// RigTool returns the auto-rig capability, if present.
func (r *Registry) RigTool() (RigTool, bool) {
	return r.rigTool, r.rigTool != nil
}

// Exporter returns the exporter for a format, if present.
func (r *Registry) Exporter(f Format) (Exporter, bool) {
	e, ok := r.exporters[f]
	return e, ok
}
