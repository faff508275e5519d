// Package config manages user-level settings stored at ~/.asicmf/config.yaml.
// Every key can be overridden by an ASICMF_-prefixed environment variable,
// e.g. ASICMF_EXPECTED_MIMETYPE or ASICMF_STRICT.
package config
