// Package page assembles a complete document from a component tree.
//
// Render runs the pipeline in a fixed order: the embedded Container renders
// the subtree, headers are deduplicated (base headers first), the help menu
// is rendered with page level entries ahead of tree entries, collected
// scripts are wrapped in a single ready block, the template is filled and
// the result is postprocessed. Any failure aborts the render; no partial
// document is returned.
package page
