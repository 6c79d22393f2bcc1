/*
Package ports defines the driven ports (interfaces) for the ipcli session.

These interfaces decouple the session from external implementations, allowing
recorded scripts to live in memory, on disk, or in Redis.

# Key Interfaces

  - ScriptStore: Responsible for saving, loading and listing recorded scripts.
*/
package ports
