// Package pipeline implements the text-to-HTML conversion pipeline.
//
// The package is built from four pieces, leaf first:
//   - EncodeEntities escapes &, <, > and " in a text
//   - Linkify and URLToImage rewrite whole lines shaped like "[X] URL"
//     or a bare image URL into anchors and images
//   - RunStage composes a chain of transforms and emits its result
//     only when it is non-empty
//   - Assembler writes the fixed HTML skeleton around five hook stages
//
// The line filters are not applied by the Assembler. Callers wire them in
// as transforms of the pre stage, where they see the already-encoded body.
package pipeline
