// Package template fills page blueprints with named slots. The native
// grammar is the `%(name)s` placeholder; substitution happens in a single
// pass so slot values are never scanned for further placeholders. The pongo
// subpackage provides a pongo2-backed Filler for Django style blueprints.
package template
