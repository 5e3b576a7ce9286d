// Package config reads the tour's settings file.
//
// A file is a flat set of keys in YAML, JSON or HCL; the extension picks
// the decoder. Values are read back through typed accessors that fall back
// to a default:
//
//	cfg, err := config.FromFile("tour.hcl")
//	if err != nil {
//	    return err
//	}
//	level := cfg.String("log_level", "info")
//	only := cfg.Strings("only", nil)
//	timeout := cfg.Duration("timeout", 0)
//
// The HCL form holds top-level attributes only:
//
//	log_level = "debug"
//	only      = ["hello", "branches"]
//	timeout   = "30s"
//
// A Config is never modified after it is built and is safe for concurrent reads.
package config
