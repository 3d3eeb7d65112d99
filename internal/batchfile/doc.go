// Package batchfile loads batch documents: named sections of key/value
// options plus a [DEFAULT] section whose "command" is the shared template.
//
// Three formats are accepted, picked by file extension:
//
//	.toml        BurntSushi/toml; top-level keys and [DEFAULT] are defaults
//	.yaml, .yml  yaml.v3; the DEFAULT mapping holds defaults
//	anything     INI (ini.v1), the format the tool was designed around
//
// An INI batch file looks like:
//
//	[DEFAULT]
//	command=msgSendCommand sclsvrServer GETCAL
//
//	[vega]
//	objectName=vega
//	mag=0.03
//
// Section order and key case are preserved in every format, because option
// names are passed through verbatim as command flags. Keys of [DEFAULT] other
// than "command" are inherited by every section, see [Document.Options].
package batchfile
