// Command cascade is a CLI front end over the cascade, difftool, and
// patchutil packages: read a layered configuration file, look up a
// node path in it, diff two resolved trees, or apply a JSON Patch
// document to one.
package main
