package cmd

const rootLongDescription = `Fnlen scans a source tree for function definitions that exceed a
configured line limit and reports violations as a CI gate.

Detection is heuristic: ordered regex patterns find likely function-start
lines and a brace-balance counter measures each function's span. Braces in
strings or comments are counted as structural; that trade-off keeps the tool
a simple linear pass instead of a parser.

Without arguments it scans the ` + "`src`" + ` directory for *.ts files with a
120 line limit, matching its original CI role. Paths, extension, and limit
are all overridable via flags or an fnlen.toml config file.`

const checkLongDescription = `Check runs the same gate as the bare command and additionally persists
the report as JSON into the reports directory, so it can be reviewed later
with 'fnlen view'.

The exit status is 0 when every function is within the limit and 1 when the
source directory is missing or at least one violation was found.`

const listLongDescription = `List scans the given paths and prints every measured function with its
file, line, name, and span, including the ones within the limit. Useful for
seeing how close a codebase is to the gate before it starts failing.`

const viewLongDescription = `View renders the report persisted by the last 'fnlen check' run from the
reports directory, without rescanning any files.`
