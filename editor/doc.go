// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The editor owns a layer surface that floating blocks are drawn on. Plugin
// views attached to it receive the previous state on every state change and
// may map document positions to cells with CoordsAtPos.
package editor
