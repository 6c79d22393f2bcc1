/*
Package domain contains the shared vocabulary of the ipcli editor.

It defines the output events a session emits to its host, the lifecycle hooks used for
observability, the published canvas snapshot, and the sentinel errors shared by the
script stores. This package is kept free of I/O and persistence.

# Key Entities

  - OutputEvent: A piece of text the host should display (canvas, command output, error, system).
  - LifecycleHooks: Callbacks fired for every command, redraw and script replay.
  - Snapshot: The latest rendered canvas and history, published for read-only viewers.
*/
package domain
