package cmd

const rootLongDescription = `Bannerfmt checks Python source files for the banner comment every
function is expected to carry: a three-line rule/name/rule block
directly above the def line, plus a closing rule after the body.

Without a subcommand it behaves like "bannerfmt check".

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./a ./b        scan multiple directories`

const checkLongDescription = `Scan Python files and report every function definition that is not
wrapped in the required banner comment. One warning is emitted per
function, keyed by its def line; decorators above the def belong to
the same function and never produce a second warning.

Exits non-zero when violations are found. Reports are stored in the
reports directory for later inspection with "bannerfmt view".`

const fixLongDescription = `Insert the missing banners in place. For each violating function the
three opening banner lines are inserted directly above the def line
(pushing it down, never overwriting it) and a closing banner line is
inserted after the function body. Fixes are pure insertions computed
against one snapshot per file, so a file with several violations is
rewritten consistently in a single pass.`

const listLongDescription = `List the Python files that would be scanned, along with how many
function definitions each contains and how many of them violate the
banner format.`
