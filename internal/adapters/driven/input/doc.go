// Package input provides driven.InputSource and driven.InputWatcher
// implementations backed by the local filesystem and standard input.
//
// Adapters:
//   - FileSource: Reads a text file by path
//   - StdinSource: Reads piped standard input
//   - TextSource: Wraps text already in memory (MCP tool arguments)
//   - Watcher: Signals settled changes to a file using fsnotify
package input
