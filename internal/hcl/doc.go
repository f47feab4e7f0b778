// Package hcl provides the concrete HCL implementation of the settings
// Loader defined in the `config` package. It is responsible for parsing the
// settings file, evaluating its expressions, and translating the result into
// the format-agnostic config.Settings model.
//
// A settings file looks like:
//
//	input = "${config_dir}/cities.txt"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	output {
//	  echo_connections = false
//	}
//
// Every attribute and block is optional. `config_dir` is the directory that
// contains the settings file.
package hcl
