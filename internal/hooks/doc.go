// Package hooks resolves hook references from configuration into
// txt2html.Hook values and builds the Registry handed to the converter.
//
// References:
//
//	linkify          anchor tags for "[X] URL" lines
//	url2img          image tags for lines holding only an image URL
//	style:NAME       append a <style> element with the CSS of style NAME
//	snippet:NAME     append the rendered HTML snippet NAME
//	NAME             run the shell command configured as commands.NAME
//
// Command hooks receive the stage text on stdin and replace it with their
// stdout. They run in their own process group, which is killed when the
// timeout expires or the context is cancelled.
package hooks
