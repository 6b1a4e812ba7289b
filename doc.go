/*
Package curmap is a local-first curriculum mapping tool.

It records a programme's modules, learning activities and assessments, tags
each against six fixed AI-literacy domains, and turns the result into a
deterministic Markdown report or a JSON export. All state lives in a single
JSON file under the workspace's .curmap directory; there is no server and no
network I/O.

The App type is the composition root: it owns the persisted state, the file
store and the content pack, and exposes every operation the curmap CLI
performs. Untrusted data (the persisted file, imported exports) only enters
through the normalize package, which degrades malformed input to defaults
instead of failing.
*/
package curmap
