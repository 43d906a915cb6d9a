// Package process runs child commands in their own process group so a
// cancelled command takes its children down with it.
package process
