// Package loader registers the HTTP features of the tracker.
//
// Each feature implements the Feature interface and registers its own routes.
// The Manager keeps the registry and loads the enabled features in
// registration order:
//
//	mgr := loader.NewManager()
//	mgr.Register(applications.NewFeature(db, store, cfg.Storage, logg))
//	mgr.Register(integrity.NewFeature(db, store, cfg.Storage, logg))
//	if err := mgr.LoadAll(app); err != nil {
//	    ...
//	}
package loader
