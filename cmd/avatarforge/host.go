package main

import (
	"log/slog"

	"github.com/vmunix/avatarforge/internal/host"
)

// registerHost wires scene host capabilities into the registry. The stock
// build registers nothing; a build embedding a host bridge adds its importer,
// rig tool and exporters here. Assets processed without an importer fail with
// a clear reason instead of crashing the batch.
func registerHost(reg *host.Registry, log *slog.Logger) {
	if _, ok := reg.Importer(); !ok {
		log.Warn("no scene importer registered, assets will fail until a host bridge is linked")
	}
}
