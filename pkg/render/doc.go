// Package render defines the value every component produces: a Result holding
// markup plus the header, script and help side channels. Results are
// immutable; containers combine them with Merge or a Builder, which
// concatenate each field in argument order so rendering the same tree twice
// yields identical results.
package render
