package internal

import (
	"errors"

	"github.com/qiniu/x/log"

	"github.com/goplus/cptb/internal/dispatch"
	"github.com/goplus/cptb/internal/env"
	"github.com/goplus/cptb/internal/kit"
	"github.com/goplus/cptb/internal/settings"
)

// newLauncher is replaced in tests.
var newLauncher = func() dispatch.Launcher {
	return dispatch.NewExecLauncher()
}

func loadCatalog() (string, *settings.Catalog, error) {
	dir, err := env.ConfigDir(configDir)
	if err != nil {
		return "", nil, err
	}
	c, err := settings.Load(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, c, nil
}

// activeKitID returns --kit, or the default kit of the selection document.
func activeKitID(dir string) (string, error) {
	if kitID != "" {
		return kitID, nil
	}
	sel, err := settings.LoadSelection(dir)
	if err != nil {
		return "", err
	}
	return sel.DefaultKit, nil
}

// resolveActive loads the catalog and resolves the active kit.
func resolveActive() (*kit.Resolved, error) {
	dir, c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	id, err := activeKitID(dir)
	if err != nil {
		return nil, err
	}
	r := kit.Resolve(c, id)
	if err := r.Check(); err != nil {
		log.Debugf("kit %s: %v", id, err)
	}
	return r, nil
}

// optionalKitID is activeKitID for callers that can do without a kit.
func optionalKitID() string {
	dir, err := env.ConfigDir(configDir)
	if err != nil {
		return kitID
	}
	id, err := activeKitID(dir)
	if err != nil {
		if !errors.Is(err, settings.ErrNotFound) {
			log.Warn("ignoring selection:", err)
		}
		return ""
	}
	return id
}
